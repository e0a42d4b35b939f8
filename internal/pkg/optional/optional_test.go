package optional

import (
	"encoding/json"
	"testing"
)

type payload struct {
	Kind Value[string]   `json:"kind"`
	Tags Value[[]string] `json:"tags"`
}

func TestValue_UnmarshalNullAndMissingAreAbsent(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"kind":null}`), &p); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Kind.IsPresent() {
		t.Fatalf("expected kind absent")
	}
	if p.Tags.IsPresent() {
		t.Fatalf("expected tags absent")
	}
}

func TestValue_UnmarshalPresent(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"kind":"internship","tags":["a","b"]}`), &p); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	k, ok := p.Kind.Get()
	if !ok || k != "internship" {
		t.Fatalf("expected internship, got %q ok=%v", k, ok)
	}
	tags := p.Tags.OrElse(nil)
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
}

func TestValue_UnmarshalWrongType(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"kind":42}`), &p); err == nil {
		t.Fatalf("expected type error")
	}
}

func TestValue_Marshal(t *testing.T) {
	b, err := json.Marshal(payload{Kind: Some("full_time")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(b) != `{"kind":"full_time","tags":null}` {
		t.Fatalf("unexpected json: %s", b)
	}
}
