// Package codec provides the value serializers used to dump reports and
// variables to the results directory. Serializers are looked up by name
// through a Registry so the dump format is a configuration choice.
package codec

import (
	"github.com/hyp3rd/ewrap"

	"reportkit/ports"
)

// Registry manages codec constructors.
type Registry struct {
	codecs map[string]func() ports.Codec
}

func defaultCodecs() map[string]func() ports.Codec {
	return map[string]func() ports.Codec{
		"msgpack": func() ports.Codec {
			return &MsgpackCodec{}
		},
		"json": func() ports.Codec {
			return &JSONCodec{}
		},
	}
}

// NewRegistry creates a registry with the msgpack and json codecs registered.
func NewRegistry() *Registry {
	registry := &Registry{
		codecs: make(map[string]func() ports.Codec),
	}
	for name, createFunc := range defaultCodecs() {
		registry.Register(name, createFunc)
	}

	return registry
}

// Register registers a codec constructor under name.
func (r *Registry) Register(name string, createFunc func() ports.Codec) {
	r.codecs[name] = createFunc
}

// New returns the codec registered under name.
func (r *Registry) New(name string) (ports.Codec, error) {
	if name == "" {
		return nil, ewrap.New("codec name cannot be empty")
	}

	createFunc, ok := r.codecs[name]
	if !ok {
		return nil, ewrap.Newf("codec %q not found", name)
	}

	return createFunc(), nil
}

// New returns a codec from the default registry.
func New(name string) (ports.Codec, error) {
	return NewRegistry().New(name)
}
