package entity

import (
	"encoding/json"
	"fmt"
)

const (
	_keyName = "name"
	_keyVars = "vars"
)

// EntityKind names one of the two entity collections of a Project.
type EntityKind string

const (
	// EntityKindModel identifies the models collection.
	EntityKindModel EntityKind = "models"
	// EntityKindRequest identifies the requests collection.
	EntityKindRequest EntityKind = "requests"
)

// Var is a single member field of an entity.
type Var struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Entity is an immutable semantic unit produced by a parse.
// Attributes other than name and vars are service-defined and kept verbatim in Extra.
type Entity struct {
	Name  string
	Vars  []Var
	Extra map[string]json.RawMessage
}

// MarshalJSON implements json.Marshaler.
func (e Entity) MarshalJSON() ([]byte, error) {
	fields := make(map[string]interface{}, len(e.Extra)+2)
	for k, v := range e.Extra {
		fields[k] = v
	}
	fields[_keyName] = e.Name
	// Present but empty vars are kept; only absent ones are omitted.
	if e.Vars != nil {
		fields[_keyVars] = e.Vars
	}
	return json.Marshal(fields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Entity) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var out Entity
	if raw, ok := fields[_keyName]; ok {
		if err := json.Unmarshal(raw, &out.Name); err != nil {
			return fmt.Errorf("decoding entity name: %w", err)
		}
		delete(fields, _keyName)
	}
	if raw, ok := fields[_keyVars]; ok {
		if err := json.Unmarshal(raw, &out.Vars); err != nil {
			return fmt.Errorf("decoding vars of entity %q: %w", out.Name, err)
		}
		delete(fields, _keyVars)
	}
	if len(fields) > 0 {
		out.Extra = fields
	}

	*e = out
	return nil
}

// Clone returns a deep copy of the entity.
func (e Entity) Clone() Entity {
	out := Entity{Name: e.Name}
	if e.Vars != nil {
		out.Vars = make([]Var, len(e.Vars))
		copy(out.Vars, e.Vars)
	}
	if e.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(e.Extra))
		for k, v := range e.Extra {
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

// Project is the canonical model shared by every syntax.
type Project struct {
	Models   []Entity `json:"models"`
	Requests []Entity `json:"requests"`
}

// EmptyProject returns a project with empty, non-nil collections.
func EmptyProject() Project {
	return Project{
		Models:   []Entity{},
		Requests: []Entity{},
	}
}

// Clone returns a deep copy of the project. Collections are never nil.
func (p Project) Clone() Project {
	return Project{
		Models:   cloneEntities(p.Models),
		Requests: cloneEntities(p.Requests),
	}
}

// Entities returns the collection of the given kind.
func (p Project) Entities(kind EntityKind) []Entity {
	switch kind {
	case EntityKindModel:
		return p.Models
	case EntityKindRequest:
		return p.Requests
	default:
		return nil
	}
}

// Names returns the entity names of the given kind in order.
func (p Project) Names(kind EntityKind) []string {
	entities := p.Entities(kind)
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, e.Name)
	}
	return names
}

// String implements fmt.Stringer.
func (p Project) String() string {
	return toJSON(p)
}

func cloneEntities(in []Entity) []Entity {
	out := make([]Entity, 0, len(in))
	for _, e := range in {
		out = append(out, e.Clone())
	}
	return out
}
