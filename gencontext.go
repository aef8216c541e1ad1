package flatkind

import (
	"math/bits"
	"strconv"
	"strings"
)

// GenContext is the shared state of one generation pass: a registry of helper
// declarations emitted once alongside the generated expressions, and a counter
// for allocating temporary names. Kinds receive the context through
// Deserializer and may register helpers; they never read buffer contents.
type GenContext struct {
	helpers []helperDecl
	seen    map[string]struct{}
	tmp     int
}

type helperDecl struct {
	name string
	src  string
}

// NewGenContext returns an empty generation context.
func NewGenContext() *GenContext {
	return &GenContext{seen: make(map[string]struct{})}
}

// RegisterHelper records a named helper declaration. The first registration of
// a name wins; later registrations with the same name are ignored, so kinds
// may register unconditionally on every emission.
func (g *GenContext) RegisterHelper(name, src string) {
	if _, ok := g.seen[name]; ok {
		return
	}
	g.seen[name] = struct{}{}
	g.helpers = append(g.helpers, helperDecl{name: name, src: src})
}

// Helpers returns the registered helper sources in registration order.
func (g *GenContext) Helpers() []string {
	out := make([]string, len(g.helpers))
	for i, h := range g.helpers {
		out[i] = h.src
	}
	return out
}

// TempName allocates a fresh identifier with the given prefix.
func (g *GenContext) TempName(prefix string) string {
	g.tmp++
	return prefix + strconv.Itoa(g.tmp)
}

// AddPos offsets a position expression by delta bytes, folding the addition
// when pos is an integer literal.
func AddPos(pos string, delta int) string {
	if delta == 0 {
		return pos
	}
	if n, ok := posLiteral(pos); ok {
		return strconv.Itoa(n + delta)
	}
	return pos + " + " + strconv.Itoa(delta)
}

// posLiteral reports whether pos is a plain non-negative integer literal.
func posLiteral(pos string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(pos))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// viewIndex converts a byte position expression into an index expression for
// a typed view of the given byte width. Literal positions are folded and
// checked for divisibility; symbolic positions emit a right shift, relying on
// the layout's alignment guarantees.
func viewIndex(pos string, width int) (string, bool) {
	if width <= 1 {
		return pos, true
	}
	if n, ok := posLiteral(pos); ok {
		if n%width != 0 {
			return "", false
		}
		return strconv.Itoa(n / width), true
	}
	shift := bits.TrailingZeros(uint(width))
	return "(" + pos + ") >> " + strconv.Itoa(shift), true
}
