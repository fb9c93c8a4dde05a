package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/synnergylabs/conduit/pkg/utils"
)

// upstreamClient forwards JSON-RPC 2.0 requests to a single chain RPC
// endpoint and returns the raw (unparsed) result, so the router never
// needs a typed response shape to relay a call byte-equivalently.
type upstreamClient struct {
	url        string
	httpClient *http.Client
}

// newUpstreamClient reads its HTTP timeout from
// CONDUIT_UPSTREAM_TIMEOUT_SECONDS (default 30), so it is overridable per
// deployment since chain and ephemeral RPC nodes can have very different
// load profiles.
func newUpstreamClient(url string) *upstreamClient {
	timeout := time.Duration(utils.EnvOrDefaultInt("CONDUIT_UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second
	return &upstreamClient{url: url, httpClient: &http.Client{Timeout: timeout}}
}

type upstreamRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      int       `json:"id"`
	Method  string    `json:"method"`
	Params  RawParams `json:"params"`
}

type upstreamResponse struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  *Error          `json:"error,omitempty"`
}

// Call forwards method with the given params array and returns the raw
// result bytes, or an error whose message carries the upstream JSON-RPC
// error's code and message (its data field is dropped). params must
// already be a JSON array (or object), never a bare scalar, matching
// JSON-RPC 2.0's params contract.
func (c *upstreamClient) Call(ctx context.Context, method string, params RawParams) (json.RawMessage, error) {
	body, err := json.Marshal(upstreamRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("marshal upstream request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	var out upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("upstream error %d: %s", out.Error.Code, out.Error.Message)
	}
	return out.Result, nil
}
