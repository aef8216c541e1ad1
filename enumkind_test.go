package flatkind_test

import (
	"strings"
	"testing"

	flatkind "github.com/flatkind/flatkind"
	"github.com/flatkind/flatkind/dsl"
)

func TestEnum_TagOnlyLayout(t *testing.T) {
	s := compile(t, dsl.Enum("Direction", dsl.Variant("North"), dsl.Variant("South"), dsl.Variant("East"), dsl.Variant("West")))
	k, err := s.Lookup("Direction")
	if err != nil {
		t.Fatalf("lookup Direction: %v", err)
	}
	if k.Size() != 1 || k.Alignment() != 1 {
		t.Fatalf("Direction: got size=%d align=%d, want size=1 align=1", k.Size(), k.Alignment())
	}
	if n := k.Niche(); n == nil || *n != (flatkind.Niche{Offset: 0, Size: 1, Min: 4, Max: 255}) {
		t.Fatalf("Direction niche = %v, want {0 1 4 255}", k.Niche())
	}
}

func TestEnum_PayloadLayout(t *testing.T) {
	s := compile(t, dsl.Enum("Value", dsl.Variant("None"), dsl.VariantOf("Int", "U32"), dsl.VariantOf("Float", "F64")))
	k, err := s.Lookup("Value")
	if err != nil {
		t.Fatalf("lookup Value: %v", err)
	}
	// One tag byte, payload union aligned to 8, max payload 8.
	if k.Size() != 16 || k.Alignment() != 8 {
		t.Fatalf("Value: got size=%d align=%d, want size=16 align=8", k.Size(), k.Alignment())
	}
}

func TestEnum_DeserializerDispatch(t *testing.T) {
	s := compile(t, dsl.Enum("Shape", dsl.Variant("None"), dsl.VariantOf("Some", "U32")))
	g := flatkind.NewGenContext()
	k, err := s.Lookup("Shape")
	if err != nil {
		t.Fatalf("lookup Shape: %v", err)
	}
	expr, err := k.Deserializer("0", g)
	if err != nil {
		t.Fatalf("deserializer: %v", err)
	}
	want := `(uint8[0] === 0 ? {tag: "None"} : (uint8[0] === 1 ? {tag: "Some", value: uint32[1]} : enumTagOutOfRange(uint8[0])))`
	if expr != want {
		t.Fatalf("got %q, want %q", expr, want)
	}
	helpers := g.Helpers()
	if len(helpers) != 1 || !strings.Contains(helpers[0], "function enumTagOutOfRange") {
		t.Fatalf("expected the tag helper to be registered, got %v", helpers)
	}
}

func TestEnum_HelperRegisteredOnce(t *testing.T) {
	s := compile(t,
		dsl.Enum("A", dsl.Variant("X"), dsl.Variant("Y")),
		dsl.Enum("B", dsl.Variant("P"), dsl.Variant("Q")),
	)
	g := flatkind.NewGenContext()
	for _, name := range []string{"A", "B"} {
		k, err := s.Lookup(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		if _, err := k.Deserializer("pos", g); err != nil {
			t.Fatalf("deserializer %s: %v", name, err)
		}
	}
	if len(g.Helpers()) != 1 {
		t.Fatalf("helper registered %d times, want 1", len(g.Helpers()))
	}
}

func TestEnum_NoVariantsRejected(t *testing.T) {
	_, err := flatkind.Compile([]flatkind.Def{dsl.Enum("Empty")})
	se, ok := flatkind.AsSchemaError(err)
	if !ok || se.Code != flatkind.CodeMissingField {
		t.Fatalf("expected missing_field SchemaError, got %v", err)
	}
}

func TestEnum_DuplicateVariantRejected(t *testing.T) {
	_, err := flatkind.Compile([]flatkind.Def{dsl.Enum("Bad", dsl.Variant("X"), dsl.Variant("X"))})
	se, ok := flatkind.AsSchemaError(err)
	if !ok || se.Code != flatkind.CodeBadField {
		t.Fatalf("expected bad_field SchemaError, got %v", err)
	}
}
