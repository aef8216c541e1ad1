package flatkind

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is the top-level shape of an external schema file.
type Document struct {
	Kinds []Def `json:"kinds" yaml:"kinds"`
}

// LoadJSON decodes a JSON schema document into definitions. Decoding errors
// surface as a SchemaError; field-level validation happens later, in each
// kind's Init.
func LoadJSON(data []byte) ([]Def, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, schemaErrf("", CodeBadDocument, "decoding JSON schema document: %v", err)
	}
	if len(doc.Kinds) == 0 {
		return nil, schemaErrf("", CodeBadDocument, "schema document declares no kinds")
	}
	return doc.Kinds, nil
}

// LoadYAML decodes a YAML schema document into definitions.
func LoadYAML(data []byte) ([]Def, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, schemaErrf("", CodeBadDocument, "decoding YAML schema document: %v", err)
	}
	if len(doc.Kinds) == 0 {
		return nil, schemaErrf("", CodeBadDocument, "schema document declares no kinds")
	}
	return doc.Kinds, nil
}
