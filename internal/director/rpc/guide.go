package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/synnergylabs/conduit/internal/transwise"
)

// sendTransactionConfig mirrors the RpcSendTransactionConfig fields this
// router actually inspects; unrecognized fields are ignored.
type sendTransactionConfig struct {
	SkipPreflight       bool   `json:"skipPreflight,omitempty"`
	PreflightCommitment string `json:"preflightCommitment,omitempty"`
	Encoding            string `json:"encoding,omitempty"`
	MaxRetries          *int   `json:"maxRetries,omitempty"`
	MinContextSlot      *int   `json:"minContextSlot,omitempty"`
}

// sendTransaction implements the sole guided method: decode, classify,
// validate, and forward to the endpoint the classifier selected.
func (s *Server) sendTransaction(ctx context.Context, rawParams json.RawMessage) (interface{}, *Error) {
	var params []json.RawMessage
	if len(rawParams) > 0 {
		if err := json.Unmarshal(rawParams, &params); err != nil {
			return nil, invalidParams("params must be a JSON array")
		}
	}
	if len(params) == 0 {
		return nil, invalidParams("sendTransaction requires a transaction parameter")
	}

	var encoded string
	if err := json.Unmarshal(params[0], &encoded); err != nil {
		return nil, invalidParams("transaction must be a string")
	}

	var cfg sendTransactionConfig
	if len(params) > 1 && len(params[1]) > 0 {
		if err := json.Unmarshal(params[1], &cfg); err != nil {
			return nil, invalidParams("invalid sendTransaction config")
		}
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "base58"
	}
	if encoding != "base58" && encoding != "base64" {
		return nil, invalidParams(fmt.Sprintf("unsupported encoding: %s. Supported encodings: base58, base64", encoding))
	}

	_, accounts, err := decodeTransaction(encoded, encoding)
	if err != nil {
		return nil, invalidParams(err.Error())
	}

	snapshot, err := transwise.FromHolder(ctx, accounts, s.snapshotResolver)
	if err != nil {
		return nil, serverError(fmt.Sprintf("error: %v", err), CodeFailedToFetchEndpointInformation)
	}

	endpoint := transwise.Classify(snapshot)
	if endpoint.IsUnroutable() {
		return nil, serverErrorWithData("Transaction is unroutable", CodeTransactionUnroutable, endpointDiagnostic(endpoint))
	}
	if endpoint.IsEphemeral() {
		if err := transwise.ValidateForEphemeral(snapshot); err != nil {
			return nil, serverErrorWithData("Transaction is unroutable", CodeTransactionUnroutable, err.Error())
		}
	}

	var upstream *upstreamClient
	if endpoint.IsChain() {
		upstream = s.chainClient
	} else {
		upstream = s.ephemeralClient
	}

	result, err := upstream.Call(ctx, "sendTransaction", NewRawParams(rawParams))
	if err != nil {
		return nil, serverError(fmt.Sprintf("Failed to forward to RPC: %v", err), CodeRpcClientError)
	}
	return result, nil
}

// endpointDiagnostic renders the classifier's unroutable reason as
// structured data for the client: the reason name and the offending
// pubkeys. The transaction-accounts snapshot is not included.
func endpointDiagnostic(endpoint transwise.Endpoint) interface{} {
	reason := endpoint.Reason()
	switch reason.Kind() {
	case transwise.ReasonContainsBothDelegatedAndUndelegatedWritable:
		delegated, undelegated := reason.DelegatedAndUndelegated()
		return map[string]interface{}{
			"reason":      "ContainsBothDelegatedAndUndelegatedWritable",
			"delegated":   delegated,
			"undelegated": undelegated,
		}
	case transwise.ReasonWritablesIncludeInconsistentAccounts:
		return map[string]interface{}{
			"reason":  "WritablesIncludeInconsistentAccounts",
			"pubkeys": reason.InconsistentPubkeys(),
		}
	default:
		return map[string]interface{}{"reason": "unknown"}
	}
}
