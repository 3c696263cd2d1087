package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/uber/polysync/src/polysync/entity"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Codec converts between the project and one textual syntax.
type Codec interface {
	Encode(project entity.Project) (string, error)
	Decode(code string) (entity.Project, error)
}

// NewCodec returns the Codec for format.
func NewCodec(format string) (Codec, error) {
	switch format {
	case FormatYAML:
		return yamlCodec{}, nil
	case FormatJSON:
		return jsonCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q, expected %q or %q", format, FormatYAML, FormatJSON)
	}
}

type jsonCodec struct{}

func (jsonCodec) Encode(project entity.Project) (string, error) {
	b, err := json.MarshalIndent(project.Clone(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

func (jsonCodec) Decode(code string) (entity.Project, error) {
	if !gjson.Valid(code) {
		return entity.Project{}, fmt.Errorf("invalid JSON document")
	}
	return decodeJSON([]byte(code))
}

type yamlCodec struct{}

func (yamlCodec) Encode(project entity.Project) (string, error) {
	// Entities carry service-defined attributes as raw JSON, so the document goes through its JSON form.
	raw, err := json.Marshal(project.Clone())
	if err != nil {
		return "", err
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (yamlCodec) Decode(code string) (entity.Project, error) {
	if strings.TrimSpace(code) == "" {
		return entity.Project{}, fmt.Errorf("empty document")
	}

	var doc interface{}
	if err := yaml.Unmarshal([]byte(code), &doc); err != nil {
		return entity.Project{}, err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return entity.Project{}, fmt.Errorf("document is not representable as JSON: %w", err)
	}
	return decodeJSON(raw)
}

// decodeJSON validates the project shape before decoding, so that partial documents are rejected.
func decodeJSON(raw []byte) (entity.Project, error) {
	if !gjson.ParseBytes(raw).IsObject() {
		return entity.Project{}, fmt.Errorf("document must be a mapping")
	}
	for _, key := range []entity.EntityKind{entity.EntityKindModel, entity.EntityKindRequest} {
		value := gjson.GetBytes(raw, string(key))
		if !value.IsArray() {
			return entity.Project{}, fmt.Errorf("%q is missing or not a list", key)
		}
		for i, e := range value.Array() {
			if e.Get("name").String() == "" {
				return entity.Project{}, fmt.Errorf("%s[%d] has no name", key, i)
			}
		}
	}

	var project entity.Project
	if err := json.Unmarshal(raw, &project); err != nil {
		return entity.Project{}, err
	}
	return project.Clone(), nil
}
