package preset

import (
	"errors"

	"github.com/samdwyer/rooms"
)

// Def defines a named generation preset loaded from JSON.
type Def struct {
	Name        string  `json:"name"`        // Unique identifier (e.g., "warren")
	Description string  `json:"description"` // One-line summary for listings
	Width       int     `json:"width"`       // Grid width in common cells
	Height      int     `json:"height"`      // Grid height in common cells
	EpicenterX  int     `json:"epicenterX"`  // Corner of the first big cell
	EpicenterY  int     `json:"epicenterY"`
	Chance      float64 `json:"chance"`   // Continuation chance at dead ends
	MaxHeads    int     `json:"maxHeads"` // Head budget for the whole run
}

// Options converts the preset into generator options. Seed is left zero so
// each run draws a fresh one unless the caller sets it.
func (d *Def) Options() rooms.Options {
	return rooms.Options{
		Width:      d.Width,
		Height:     d.Height,
		EpicenterX: d.EpicenterX,
		EpicenterY: d.EpicenterY,
		Chance:     d.Chance,
		MaxHeads:   d.MaxHeads,
	}
}

// File represents the structure of presets.json.
type File struct {
	Presets []Def `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]Def, error) {
	file, err := Load[File]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

// MustLoadPresets loads preset definitions, panicking on error.
func MustLoadPresets() []Def {
	presets, err := LoadPresets()
	if err != nil {
		panic(err)
	}
	return presets
}

// Registry holds loaded presets and provides lookup utilities.
type Registry struct {
	presets []Def
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(presets []Def) *Registry {
	return &Registry{presets: presets}
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(presets), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByName returns the preset with the given name, or nil if not found.
func (r *Registry) GetByName(name string) *Def {
	for i := range r.presets {
		if r.presets[i].Name == name {
			return &r.presets[i]
		}
	}
	return nil
}

// Names returns the preset names in file order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for i := range r.presets {
		names = append(names, r.presets[i].Name)
	}
	return names
}

// All returns all preset definitions.
func (r *Registry) All() []Def {
	return r.presets
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.presets)
}
