package rpc

import (
	"encoding/json"
	"testing"
)

func TestRawParams_RoundTripsVerbatim(t *testing.T) {
	original := json.RawMessage(`["3gU8...tx",{"encoding":"base58","skipPreflight":true}]`)

	var p RawParams
	if err := json.Unmarshal(original, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != string(original) {
		t.Fatalf("round trip mismatch: got %s, want %s", out, original)
	}
}

func TestRawParams_EmptyBecomesArray(t *testing.T) {
	p := NewRawParams(nil)
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "[]" {
		t.Fatalf("expected empty array, got %s", out)
	}
}

func TestRawParams_PassesSingleElementArrayThroughUnchanged(t *testing.T) {
	// NewRawParams never repackages its input; callers forwarding a single
	// element (e.g. sendTransaction's tx string) must pass the original
	// params array bytes, not the decoded element, or this would produce
	// a JSON string instead of an array.
	p := NewRawParams(json.RawMessage(`["3gU8...tx"]`))
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `["3gU8...tx"]` {
		t.Fatalf("expected array, got %s", out)
	}
}
