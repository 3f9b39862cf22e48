package storagesafe

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// failingSerializer returns fixed errors, for exercising façade error
// wrapping.
type failingSerializer struct {
	encodeErr error
	decodeErr error
}

func (f failingSerializer) Encode(v any) (string, error) {
	if f.encodeErr != nil {
		return "", f.encodeErr
	}
	return JSONSerializer{}.Encode(v)
}

func (f failingSerializer) Decode(data string, v any) error {
	if f.decodeErr != nil {
		return f.decodeErr
	}
	return JSONSerializer{}.Decode(data, v)
}

func TestJSONSerializer_Encode(t *testing.T) {
	var ser JSONSerializer

	got, err := ser.Encode(map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got != `{"a":1}` {
		t.Errorf("Encode = %q, want %q", got, `{"a":1}`)
	}
}

func TestJSONSerializer_Decode(t *testing.T) {
	var ser JSONSerializer

	var got map[string]int
	if err := ser.Decode(`{"a":1}`, &got); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if want := map[string]int{"a": 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Decode = %v, want %v", got, want)
	}
}

func TestJSONSerializer_DecodeInvalid(t *testing.T) {
	var ser JSONSerializer

	var got int
	if err := ser.Decode("not json", &got); err == nil {
		t.Error("Decode should fail on malformed input")
	}
}

func TestBase64Serializer_RoundTrip(t *testing.T) {
	ser := Base64Serializer{}

	encoded, err := ser.Encode("hello")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// The stored form must not be the plain JSON text.
	if encoded == `"hello"` {
		t.Error("Base64Serializer should transform the JSON text")
	}

	var got string
	if err := ser.Decode(encoded, &got); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "hello" {
		t.Errorf("round trip = %q, want %q", got, "hello")
	}
}

func TestBase64Serializer_DecodeInvalid(t *testing.T) {
	ser := Base64Serializer{}

	var got string
	if err := ser.Decode("!!! not base64 !!!", &got); err == nil {
		t.Error("Decode should fail on malformed base64")
	}
}

func TestStorage_CustomSerializerRoundTrip(t *testing.T) {
	host := NewMemory()
	s := New(host, WithPrefix("app"), WithSerializer(Base64Serializer{}))

	want := testUser{Name: "Bob", Age: 7, Tags: []string{"x"}}
	if err := s.Set("user", want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok, err := Get[testUser](s, "user")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Get should find the stored value")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}

	// The raw stored text must be the transformed form, not plain JSON.
	raw, ok, err := host.GetItem("app:user")
	if err != nil || !ok {
		t.Fatalf("GetItem failed: ok=%v err=%v", ok, err)
	}

	plain, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if raw == string(plain) {
		t.Error("custom serializer was not applied to the stored value")
	}
}

func TestStorage_SerializerEncodeErrorWraps(t *testing.T) {
	errEncode := errors.New("encode boom")

	s := New(NewMemory(), WithSerializer(failingSerializer{encodeErr: errEncode}))

	err := s.Set("key1", "value")

	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("Set should return *WriteError, got %T", err)
	}
	if !errors.Is(err, errEncode) {
		t.Error("WriteError should wrap the encode failure")
	}
	if got, want := err.Error(), "Failed to set item: encode boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
