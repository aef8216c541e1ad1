package flatkind

import "fmt"

// Niche describes a reserved sub-range of a kind's representation: Size bytes
// at Offset whose raw little-endian values in [Min, Max] are never produced by
// a well-formed value of the owning kind. The free range is what lets an
// enclosing kind pack a discriminant (or an "absent" marker) into storage the
// inner kind already occupies.
//
// A Niche is built once during kind initialization and never mutated.
type Niche struct {
	Offset int    // byte offset within the owning kind's representation
	Size   int    // byte width of the reserved region (1, 2, 4 or 8)
	Min    uint64 // inclusive lower bound of the reusable raw range
	Max    uint64 // inclusive upper bound of the reusable raw range
}

// validate checks the niche against the owning kind's size.
func (n Niche) validate(kindName string, ownerSize int) error {
	if n.Offset < 0 || n.Size < 1 {
		return schemaErrf(kindName, CodeBadNiche, "niche region %d+%d is malformed", n.Offset, n.Size)
	}
	if n.Offset+n.Size > ownerSize {
		return schemaErrf(kindName, CodeBadNiche, "niche region %d+%d exceeds kind size %d", n.Offset, n.Size, ownerSize)
	}
	switch n.Size {
	case 1, 2, 4, 8:
	default:
		return schemaErrf(kindName, CodeBadNiche, "niche width %d is not a view width", n.Size)
	}
	if n.Min > n.Max {
		return schemaErrf(kindName, CodeBadNiche, "niche range [%d,%d] is empty", n.Min, n.Max)
	}
	if max := maxRaw(n.Size); n.Max > max {
		return schemaErrf(kindName, CodeBadNiche, "niche bound %d does not fit in %d bytes", n.Max, n.Size)
	}
	return nil
}

// translated returns a copy of the niche shifted by delta bytes, for a
// composite that inherits a member's niche at the member's offset.
func (n Niche) translated(delta int) Niche {
	n.Offset += delta
	return n
}

func (n Niche) String() string {
	return fmt.Sprintf("niche{offset:%d size:%d free:[%d,%d]}", n.Offset, n.Size, n.Min, n.Max)
}

// maxRaw returns the largest raw value representable in width bytes.
func maxRaw(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return 1<<(8*uint(width)) - 1
}
