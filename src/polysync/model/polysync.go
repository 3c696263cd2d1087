// Package model contains the repository layer representations of polysync entities.
package model

import (
	"github.com/uber/polysync/src/polysync/entity"
)

// SyntaxBuffer is the repository layer model for a single syntax.
type SyntaxBuffer struct {
	Syntax      int
	Address     string
	Mode        string
	DisplayName string
	Text        string
}

// Project is the repository layer model for the canonical project.
type Project struct {
	Models   []entity.Entity
	Requests []entity.Entity
}
