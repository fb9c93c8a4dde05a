package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUpstreamClient_Call_ForwardsParamsAsArray(t *testing.T) {
	var captured struct {
		Params json.RawMessage `json:"params"`
	}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode upstream request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"ok"}`))
	}))
	defer upstream.Close()

	c := newUpstreamClient(upstream.URL)
	if _, err := c.Call(context.Background(), "sendTransaction", NewRawParams(json.RawMessage(`["3gU8...tx"]`))); err != nil {
		t.Fatalf("Call: %v", err)
	}

	var params []string
	if err := json.Unmarshal(captured.Params, &params); err != nil {
		t.Fatalf("upstream params were not a JSON array (got %s): %v", captured.Params, err)
	}
	if len(params) != 1 || params[0] != "3gU8...tx" {
		t.Fatalf("unexpected params: %+v", params)
	}
}
