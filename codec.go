package filecache

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Codec turns values into payload bytes and back. Decode must report
// malformed input through its error return; a nil error with a falsy value
// (nil, false, 0, "") is a successful decode, not a failure.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte) (any, error)
}

// JSONCodec encodes payloads as JSON. It is the default codec.
type JSONCodec struct{}

// Encode marshals v to JSON.
func (JSONCodec) Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding cache payload: %w", err)
	}
	return data, nil
}

// Decode unmarshals JSON payload bytes. Objects decode to map[string]any
// and numbers to float64, following encoding/json defaults.
func (JSONCodec) Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding cache payload: %w", err)
	}
	return v, nil
}

// YAMLCodec encodes payloads as YAML. Useful when cache files are expected
// to be inspected or edited by hand.
type YAMLCodec struct{}

// Encode marshals v to YAML.
func (YAMLCodec) Encode(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding cache payload: %w", err)
	}
	return data, nil
}

// Decode unmarshals YAML payload bytes.
func (YAMLCodec) Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding cache payload: %w", err)
	}
	return v, nil
}
