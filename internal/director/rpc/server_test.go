package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/synnergylabs/conduit/internal/corestate"
	"github.com/synnergylabs/conduit/internal/lockbox"
)

type stubSnapshotResolver struct {
	state corestate.ChainState
}

func (s *stubSnapshotResolver) ResolveSnapshot(_ context.Context, pubkey solana.PublicKey) (*lockbox.AccountChainSnapshot, error) {
	return &lockbox.AccountChainSnapshot{Pubkey: pubkey, AtSlot: 1, ChainState: s.state}, nil
}

func fakeUpstream(t *testing.T, result string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":` + result + `}`))
	}))
}

func doRPC(t *testing.T, s *Server, body string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v (%s)", err, rec.Body.String())
	}
	return out
}

func TestDispatch_PassthroughForwardsToChain(t *testing.T) {
	chain := fakeUpstream(t, `"42"`)
	defer chain.Close()
	ephemeral := fakeUpstream(t, `"unused"`)
	defer ephemeral.Close()

	resolver := &stubSnapshotResolver{state: corestate.WalletChainState(0, solana.PublicKey{})}
	s := NewServer(chain.URL, ephemeral.URL, resolver, nil)

	out := doRPC(t, s, `{"jsonrpc":"2.0","id":1,"method":"getSlot","params":[]}`)
	if out["result"] != "42" {
		t.Fatalf("expected result 42, got %+v", out)
	}
}

func TestDispatch_UnknownMethodReturnsMethodNotFound(t *testing.T) {
	chain := fakeUpstream(t, `"42"`)
	defer chain.Close()
	s := NewServer(chain.URL, chain.URL, &stubSnapshotResolver{}, nil)

	out := doRPC(t, s, `{"jsonrpc":"2.0","id":1,"method":"notAMethod","params":[]}`)
	errObj, ok := out["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %+v", out)
	}
	if int(errObj["code"].(float64)) != CodeMethodNotFound {
		t.Fatalf("expected CodeMethodNotFound, got %+v", errObj)
	}
}

func TestDispatch_SendTransactionInvalidEncodingRejected(t *testing.T) {
	chain := fakeUpstream(t, `"ok"`)
	defer chain.Close()
	s := NewServer(chain.URL, chain.URL, &stubSnapshotResolver{}, nil)

	out := doRPC(t, s, `{"jsonrpc":"2.0","id":1,"method":"sendTransaction","params":["deadbeef",{"encoding":"hex"}]}`)
	errObj, ok := out["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %+v", out)
	}
	if int(errObj["code"].(float64)) != CodeInvalidParams {
		t.Fatalf("expected InvalidParams, got %+v", errObj)
	}
}

func TestDispatch_SendTransactionMalformedTxRejected(t *testing.T) {
	chain := fakeUpstream(t, `"ok"`)
	defer chain.Close()
	s := NewServer(chain.URL, chain.URL, &stubSnapshotResolver{}, nil)

	out := doRPC(t, s, `{"jsonrpc":"2.0","id":1,"method":"sendTransaction","params":["not-valid-base58-tx!!"]}`)
	errObj, ok := out["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %+v", out)
	}
	if int(errObj["code"].(float64)) != CodeInvalidParams {
		t.Fatalf("expected InvalidParams, got %+v", errObj)
	}
}
