package ports

// Codec serializes arbitrary values for dumps
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// Extension is the file extension of dumps written with this codec, without the dot
	Extension() string
}
