package flatkind_test

import (
	"testing"

	flatkind "github.com/flatkind/flatkind"
)

const yamlDoc = `
kinds:
  - kind: struct
    name: Pair
    members:
      - name: a
        type: U8
      - name: b
        type: U32
  - kind: option
    name: MaybeId
    inner: NonZeroU32
`

const jsonDoc = `{
  "kinds": [
    {"kind": "array", "name": "Coords", "elem": "F64", "count": 3},
    {"kind": "enum", "name": "Shape", "variants": [
      {"name": "None"},
      {"name": "Some", "payload": "U32"}
    ]}
  ]
}`

func TestLoadYAML_CompilesEndToEnd(t *testing.T) {
	defs, err := flatkind.LoadYAML([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	s, err := flatkind.Compile(defs)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	pair, err := s.Lookup("Pair")
	if err != nil {
		t.Fatalf("lookup Pair: %v", err)
	}
	if pair.Size() != 8 || pair.Alignment() != 4 {
		t.Fatalf("Pair: got size=%d align=%d, want size=8 align=4", pair.Size(), pair.Alignment())
	}
	maybe, err := s.Lookup("MaybeId")
	if err != nil {
		t.Fatalf("lookup MaybeId: %v", err)
	}
	if maybe.Size() != 4 {
		t.Fatalf("MaybeId size = %d, want 4", maybe.Size())
	}
}

func TestLoadJSON_CompilesEndToEnd(t *testing.T) {
	defs, err := flatkind.LoadJSON([]byte(jsonDoc))
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	s, err := flatkind.Compile(defs)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	coords, err := s.Lookup("Coords")
	if err != nil {
		t.Fatalf("lookup Coords: %v", err)
	}
	if coords.Size() != 24 {
		t.Fatalf("Coords size = %d, want 24", coords.Size())
	}
	shape, err := s.Lookup("Shape")
	if err != nil {
		t.Fatalf("lookup Shape: %v", err)
	}
	if shape.Size() != 8 || shape.Alignment() != 4 {
		t.Fatalf("Shape: got size=%d align=%d, want size=8 align=4", shape.Size(), shape.Alignment())
	}
}

func TestLoad_BadDocuments(t *testing.T) {
	cases := []struct {
		name string
		load func([]byte) ([]flatkind.Def, error)
		doc  string
	}{
		{"malformed json", flatkind.LoadJSON, `{"kinds": [`},
		{"empty json", flatkind.LoadJSON, `{"kinds": []}`},
		{"malformed yaml", flatkind.LoadYAML, "kinds:\n\t- kind: struct"},
		{"empty yaml", flatkind.LoadYAML, "kinds: []"},
	}
	for _, tc := range cases {
		_, err := tc.load([]byte(tc.doc))
		se, ok := flatkind.AsSchemaError(err)
		if !ok || se.Code != flatkind.CodeBadDocument {
			t.Errorf("%s: expected bad_document SchemaError, got %v", tc.name, err)
		}
	}
}
