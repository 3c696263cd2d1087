// Package project stores the canonical project shared by every syntax.
package project

import (
	"context"
	"sync"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/polysync/src/polysync/entity"
	"github.com/uber/polysync/src/polysync/mapper"
	"github.com/uber/polysync/src/polysync/model"
)

// Repository holds the last agreed-upon project.
type Repository interface {
	// Replace swaps in p wholesale. Later changes to p do not affect the store.
	Replace(ctx context.Context, p entity.Project)
	// Current returns a copy of the stored project.
	Current(ctx context.Context) entity.Project
}

type repository struct {
	mu      sync.Mutex
	current *model.Project
	stats   tally.Scope
}

// New returns a Repository holding an empty project.
func New(stats tally.Scope) Repository {
	return &repository{
		current: mapper.ProjectToModel(entity.EmptyProject()),
		stats:   stats.SubScope("project"),
	}
}

func (r *repository) Replace(ctx context.Context, p entity.Project) {
	m := mapper.ProjectToModel(p)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = m
	r.stats.Counter("replaced").Inc(1)
	r.stats.Gauge("models").Update(float64(len(m.Models)))
	r.stats.Gauge("requests").Update(float64(len(m.Requests)))
}

func (r *repository) Current(ctx context.Context) entity.Project {
	r.mu.Lock()
	defer r.mu.Unlock()
	return mapper.ModelToProject(r.current)
}
