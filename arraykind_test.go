package flatkind_test

import (
	"testing"

	flatkind "github.com/flatkind/flatkind"
	"github.com/flatkind/flatkind/dsl"
)

func TestArray_Layout(t *testing.T) {
	s := compile(t, dsl.Array("Coords", "F64", 3))
	k, err := s.Lookup("Coords")
	if err != nil {
		t.Fatalf("lookup Coords: %v", err)
	}
	if k.Size() != 24 || k.Alignment() != 8 {
		t.Fatalf("Coords: got size=%d align=%d, want size=24 align=8", k.Size(), k.Alignment())
	}
}

func TestArray_DeserializerEmission(t *testing.T) {
	s := compile(t, dsl.Array("Coords", "F64", 3))
	want := "[float64[(P) >> 3], float64[(P + 8) >> 3], float64[(P + 16) >> 3]]"
	if got := deserialize(t, s, "Coords", "P"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	want = "[float64[0], float64[1], float64[2]]"
	if got := deserialize(t, s, "Coords", "0"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestArray_ZeroCount(t *testing.T) {
	s := compile(t, dsl.Array("None", "U32", 0))
	k, err := s.Lookup("None")
	if err != nil {
		t.Fatalf("lookup None: %v", err)
	}
	if k.Size() != 0 || k.Alignment() != 4 {
		t.Fatalf("None: got size=%d align=%d, want size=0 align=4", k.Size(), k.Alignment())
	}
	if got := deserialize(t, s, "None", "P"); got != "[]" {
		t.Fatalf("got %q, want []", got)
	}
}

func TestArray_OfStructs(t *testing.T) {
	s := compile(t,
		dsl.Struct("Pair", dsl.Field("a", "U8"), dsl.Field("b", "U32")),
		dsl.Array("Pairs", "Pair", 2),
	)
	k, err := s.Lookup("Pairs")
	if err != nil {
		t.Fatalf("lookup Pairs: %v", err)
	}
	if k.Size() != 16 || k.Alignment() != 4 {
		t.Fatalf("Pairs: got size=%d align=%d, want size=16 align=4", k.Size(), k.Alignment())
	}
	want := "[{a: uint8[0], b: uint32[1]}, {a: uint8[8], b: uint32[3]}]"
	if got := deserialize(t, s, "Pairs", "0"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestArray_InheritsElementNiche(t *testing.T) {
	s := compile(t, dsl.Array("Ids", "NonZeroU32", 4))
	k, err := s.Lookup("Ids")
	if err != nil {
		t.Fatalf("lookup Ids: %v", err)
	}
	if n := k.Niche(); n == nil || *n != (flatkind.Niche{Offset: 0, Size: 4, Min: 0, Max: 0}) {
		t.Fatalf("Ids niche = %v, want {0 4 0 0}", k.Niche())
	}
}

func TestArray_NegativeCountRejected(t *testing.T) {
	_, err := flatkind.Compile([]flatkind.Def{dsl.Array("Bad", "U8", -1)})
	se, ok := flatkind.AsSchemaError(err)
	if !ok || se.Code != flatkind.CodeBadField {
		t.Fatalf("expected bad_field SchemaError, got %v", err)
	}
}
