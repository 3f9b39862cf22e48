package storagesafe

import (
	"encoding/base64"
	"encoding/json"
)

// Serializer converts values to the string form stored in the host
// store and back. Decode fills the value pointed to by v, which must be
// a non-nil pointer.
type Serializer interface {
	Encode(v any) (string, error)
	Decode(data string, v any) error
}

// JSONSerializer is the default Serializer. It stores values as their
// canonical JSON text.
type JSONSerializer struct{}

func (JSONSerializer) Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSONSerializer) Decode(data string, v any) error {
	return json.Unmarshal([]byte(data), v)
}

// Base64Serializer wraps another Serializer and base64-encodes its
// output, so the stored text is binary-safe and opaque. A zero value
// wraps JSONSerializer.
type Base64Serializer struct {
	// Inner produces the text that gets base64-encoded. Nil means
	// JSONSerializer.
	Inner Serializer
}

func (s Base64Serializer) inner() Serializer {
	if s.Inner != nil {
		return s.Inner
	}
	return JSONSerializer{}
}

func (s Base64Serializer) Encode(v any) (string, error) {
	plain, err := s.inner().Encode(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString([]byte(plain)), nil
}

func (s Base64Serializer) Decode(data string, v any) error {
	plain, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return err
	}
	return s.inner().Decode(string(plain), v)
}
