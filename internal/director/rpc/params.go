package rpc

import "encoding/json"

// RawParams carries a request's params byte-for-byte so a forwarded call
// to the chain RPC is byte-equivalent to what the client sent, aside from
// transport framing. Mirrors original_source/director-rpc/src/rpc/params.rs.
type RawParams struct {
	raw json.RawMessage
}

// NewRawParams wraps raw params JSON. An empty or missing params value
// becomes an empty array, since JSON-RPC 2.0 params must be an array or
// object, never bare null or a scalar.
func NewRawParams(raw json.RawMessage) RawParams {
	if len(raw) == 0 {
		raw = json.RawMessage("[]")
	}
	return RawParams{raw: raw}
}

func (p RawParams) MarshalJSON() ([]byte, error) {
	if len(p.raw) == 0 {
		return []byte("[]"), nil
	}
	return p.raw, nil
}

func (p *RawParams) UnmarshalJSON(data []byte) error {
	p.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Request is an incoming JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is an outgoing JSON-RPC 2.0 response. Exactly one of Result or
// Error is set.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}
