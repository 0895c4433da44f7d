package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// Registry is the immutable set of personas keyed by id.
type Registry struct {
	byID      map[string]domain.Persona
	order     []string
	defaultID string
}

type personaFile struct {
	Personas []personaEntry `yaml:"personas"`
}

type personaEntry struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Tone        string `yaml:"tone"`
	Focus       string `yaml:"focus"`
}

// LoadRegistry parses the personas file at path (embedded registry when empty).
func LoadRegistry(path, defaultID string) (*Registry, error) {
	b, err := readSource(path, "personas.yaml")
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}

	var f personaFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("registry: parse personas: %w", err)
	}

	personas := make([]domain.Persona, 0, len(f.Personas))
	for _, p := range f.Personas {
		personas = append(personas, domain.Persona{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			Tone:        p.Tone,
			Focus:       p.Focus,
		})
	}

	return NewRegistry(personas, defaultID)
}

// NewRegistry validates personas and requires defaultID to be among them.
func NewRegistry(personas []domain.Persona, defaultID string) (*Registry, error) {
	r := &Registry{
		byID:      make(map[string]domain.Persona, len(personas)),
		defaultID: defaultID,
	}

	for i, p := range personas {
		if p.ID == "" || p.DisplayName == "" {
			return nil, fmt.Errorf("registry: persona %d: %w", i, domain.NewValidationError("persona", "id", "id and display_name are required"))
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("registry: persona %q: %w", p.ID, domain.ErrAlreadyExists)
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}

	if _, ok := r.byID[defaultID]; !ok {
		return nil, fmt.Errorf("registry: default persona %q: %w", defaultID, domain.ErrNotFound)
	}

	return r, nil
}

// Get looks a persona up by id.
func (r *Registry) Get(id string) (domain.Persona, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Default returns the fallback persona.
func (r *Registry) Default() domain.Persona {
	return r.byID[r.defaultID]
}

// List returns personas in file order.
func (r *Registry) List() []domain.Persona {
	out := make([]domain.Persona, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
