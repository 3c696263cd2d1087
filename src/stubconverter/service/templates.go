package service

import (
	"encoding/json"
	"fmt"

	"github.com/uber/polysync/src/polysync/entity"
)

// Template returns the project behind the named template.
func Template(name string) (entity.Project, error) {
	switch name {
	case "petstore":
		return petstore(), nil
	case "empty":
		return entity.EmptyProject(), nil
	default:
		return entity.Project{}, fmt.Errorf("unknown template %q", name)
	}
}

func petstore() entity.Project {
	return entity.Project{
		Models: []entity.Entity{
			{
				Name: "Pet",
				Vars: []entity.Var{
					{Name: "id", Type: "integer"},
					{Name: "name", Type: "string"},
					{Name: "tag", Type: "string"},
				},
			},
			{
				Name: "Error",
				Vars: []entity.Var{
					{Name: "code", Type: "integer"},
					{Name: "message", Type: "string"},
				},
			},
		},
		Requests: []entity.Entity{
			request("listPets", "GET", "/pets"),
			request("createPets", "POST", "/pets"),
			request("showPetById", "GET", "/pets/{petId}"),
		},
	}
}

func request(name, method, path string) entity.Entity {
	return entity.Entity{
		Name: name,
		Extra: map[string]json.RawMessage{
			"method": mustJSON(method),
			"path":   mustJSON(path),
		},
	}
}

func mustJSON(v string) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
