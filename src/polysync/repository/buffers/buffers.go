// Package buffers is the registry of per-syntax text buffers and endpoint descriptors.
package buffers

import (
	"context"
	"fmt"
	"sync"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/polysync/src/polysync/entity"
	"github.com/uber/polysync/src/polysync/internal/errors"
	"github.com/uber/polysync/src/polysync/mapper"
	"github.com/uber/polysync/src/polysync/model"
	"go.uber.org/config"
	"go.uber.org/fx"
)

const _configKeySyntaxes = "syntaxes"

// Repository holds one descriptor per supported syntax for the lifetime of the session.
type Repository interface {
	// Get returns the descriptor of the given syntax.
	Get(ctx context.Context, id entity.SyntaxID) (entity.SyntaxDescriptor, error)
	// SetText replaces the text buffer of the given syntax.
	SetText(ctx context.Context, id entity.SyntaxID, text string) error
	// List returns every syntax in enumeration order.
	List(ctx context.Context) []entity.SyntaxID
	// Snapshot returns a copy of every descriptor in enumeration order.
	Snapshot(ctx context.Context) []entity.SyntaxDescriptor
}

// SyntaxConfig is the configuration of a single syntax under the "syntaxes" config key.
type SyntaxConfig struct {
	Address     string `yaml:"address"`
	Mode        string `yaml:"mode"`
	DisplayName string `yaml:"displayName"`
}

// Params are inbound parameters to initialize a new Repository.
type Params struct {
	fx.In

	Config config.Provider
	Stats  tally.Scope
}

type repository struct {
	mu       sync.Mutex
	memstore [entity.NumSyntaxes]*model.SyntaxBuffer
	stats    tally.Scope
}

// New returns a Repository populated from the "syntaxes" config key.
// Every supported syntax must be configured with an address, and unknown syntax names are rejected.
func New(p Params) (Repository, error) {
	var cfg map[string]SyntaxConfig
	if err := p.Config.Get(_configKeySyntaxes).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeySyntaxes, err)
	}

	descriptors := make([]entity.SyntaxDescriptor, entity.NumSyntaxes)
	for name, c := range cfg {
		id, err := entity.ParseSyntaxID(name)
		if err != nil {
			return nil, &errors.UnknownSyntaxError{Name: name}
		}
		descriptors[id] = entity.SyntaxDescriptor{
			ID:          id,
			Address:     c.Address,
			Mode:        c.Mode,
			DisplayName: c.DisplayName,
		}
	}

	for _, id := range entity.AllSyntaxes() {
		if _, ok := cfg[id.String()]; !ok {
			return nil, fmt.Errorf("missing field %q in config", _configKeySyntaxes+"."+id.String())
		}
		if descriptors[id].Address == "" {
			return nil, fmt.Errorf("missing field %q in config", _configKeySyntaxes+"."+id.String()+".address")
		}
		if descriptors[id].Mode == "" {
			descriptors[id].Mode = id.String()
		}
		if descriptors[id].DisplayName == "" {
			descriptors[id].DisplayName = id.String()
		}
	}

	return NewFromDescriptors(descriptors, p.Stats)
}

// NewFromDescriptors returns a Repository holding the given descriptors, which must cover every supported syntax.
func NewFromDescriptors(descriptors []entity.SyntaxDescriptor, stats tally.Scope) (Repository, error) {
	r := &repository{
		stats: stats.SubScope("buffers"),
	}
	for _, d := range descriptors {
		if !d.ID.Valid() {
			return nil, &errors.UnknownSyntaxError{Name: fmt.Sprint(int(d.ID))}
		}
		r.memstore[d.ID] = mapper.SyntaxDescriptorToModel(d)
	}
	for _, id := range entity.AllSyntaxes() {
		if r.memstore[id] == nil {
			return nil, fmt.Errorf("no descriptor for syntax %q", id)
		}
	}
	return r, nil
}

// Get returns the descriptor of the given syntax.
func (r *repository) Get(ctx context.Context, id entity.SyntaxID) (entity.SyntaxDescriptor, error) {
	if !id.Valid() {
		return entity.SyntaxDescriptor{}, &errors.UnknownSyntaxError{Name: fmt.Sprint(int(id))}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return mapper.ModelToSyntaxDescriptor(r.memstore[id])
}

// SetText replaces the text buffer of the given syntax.
func (r *repository) SetText(ctx context.Context, id entity.SyntaxID, text string) error {
	if !id.Valid() {
		return &errors.UnknownSyntaxError{Name: fmt.Sprint(int(id))}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.memstore[id].Text = text
	r.stats.Tagged(map[string]string{"syntax": id.String()}).Gauge("text_bytes").Update(float64(len(text)))
	return nil
}

// List returns every syntax in enumeration order.
func (r *repository) List(ctx context.Context) []entity.SyntaxID {
	return entity.AllSyntaxes()
}

// Snapshot returns a copy of every descriptor in enumeration order.
func (r *repository) Snapshot(ctx context.Context) []entity.SyntaxDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]entity.SyntaxDescriptor, 0, entity.NumSyntaxes)
	for _, m := range r.memstore {
		d, err := mapper.ModelToSyntaxDescriptor(m)
		if err != nil {
			continue
		}
		result = append(result, d)
	}
	return result
}
