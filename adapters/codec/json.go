package codec

import (
	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
)

// JSONCodec writes human readable dumps.
type JSONCodec struct{}

// Marshal serializes v into JSON.
func (*JSONCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal json")
	}

	return data, nil
}

// Unmarshal deserializes JSON data into v, which must be a pointer.
func (*JSONCodec) Unmarshal(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err != nil {
		return ewrap.Wrap(err, "failed to unmarshal json")
	}

	return nil
}

// Extension of JSON dumps.
func (*JSONCodec) Extension() string { return "json" }
