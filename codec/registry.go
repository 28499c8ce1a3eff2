package codec

import (
	"fmt"
	"sort"
)

// Registry is an explicit name to codec lookup table.  It is constructed
// and populated by the caller at startup and injected wherever a codec
// instance is needed, there is no package level global registry.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry returns an empty codec registry
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
	}
}

// Register adds a codec under the given name.  Registering the same name
// twice returns an error.
func (r *Registry) Register(name string, c Codec) error {

	if _, exists := r.codecs[name]; exists {
		return fmt.Errorf("codec %q already registered", name)
	}

	r.codecs[name] = c
	return nil
}

// Get returns the codec registered under the given name
func (r *Registry) Get(name string) (Codec, error) {

	c, exists := r.codecs[name]

	if !exists {
		return nil, fmt.Errorf("unknown codec %q", name)
	}

	return c, nil
}

// Names returns the registered codec names in sorted order
func (r *Registry) Names() []string {

	names := make([]string, 0, len(r.codecs))

	for name := range r.codecs {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
