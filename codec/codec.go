// Package codec provides pluggable value serialization for the encoded
// cache view (see the encoded package).
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
