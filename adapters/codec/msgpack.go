package codec

import (
	"github.com/hyp3rd/ewrap"
	"github.com/shamaton/msgpack/v2"
)

// MsgpackCodec is the default dump format.
type MsgpackCodec struct{}

// Marshal serializes v into msgpack.
func (*MsgpackCodec) Marshal(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal msgpack")
	}

	return data, nil
}

// Unmarshal deserializes msgpack data into v, which must be a pointer.
func (*MsgpackCodec) Unmarshal(data []byte, v any) error {
	err := msgpack.Unmarshal(data, v)
	if err != nil {
		return ewrap.Wrap(err, "failed to unmarshal msgpack")
	}

	return nil
}

// Extension of msgpack dumps.
func (*MsgpackCodec) Extension() string { return "msgpack" }
