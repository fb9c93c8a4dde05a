// Package rpc hosts the JSON-RPC 2.0 HTTP server that routes
// sendTransaction through the classifier and forwards every other
// recognized method straight to the chain RPC, mirroring
// original_source/director-rpc.
package rpc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/synnergylabs/conduit/internal/transwise"
)

const maxBodySize = 5 << 20

// Server is the dual-cluster JSON-RPC 2.0 HTTP server.
type Server struct {
	chainClient      *upstreamClient
	ephemeralClient  *upstreamClient
	snapshotResolver transwise.SnapshotResolver
	log              *logrus.Entry
	router           chi.Router
}

// NewServer wires a Server forwarding passthrough and routed sendTransaction
// calls to chainURL/ephemeralURL, classifying with resolver.
func NewServer(chainURL, ephemeralURL string, resolver transwise.SnapshotResolver, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Server{
		chainClient:      newUpstreamClient(chainURL),
		ephemeralClient:  newUpstreamClient(ephemeralURL),
		snapshotResolver: resolver,
		log:              log.WithField("component", "director.rpc"),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/", s.handleRequest)
	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleRequest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		writeError(w, nil, &Error{Code: CodeParseError, Message: "failed to read request body"})
		return
	}
	if len(body) > maxBodySize {
		writeError(w, nil, &Error{Code: CodeInvalidRequest, Message: "request body too large"})
		return
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, nil, &Error{Code: CodeParseError, Message: "invalid JSON"})
		return
	}

	result, rpcErr := s.dispatch(r.Context(), &req)
	if rpcErr != nil {
		writeJSON(w, Response{JSONRPC: "2.0", ID: req.ID, Error: rpcErr})
		return
	}
	writeJSON(w, Response{JSONRPC: "2.0", ID: req.ID, Result: result})
}

func (s *Server) dispatch(ctx context.Context, req *Request) (interface{}, *Error) {
	switch {
	case req.Method == "sendTransaction":
		return s.sendTransaction(ctx, req.Params)
	case isPassthroughMethod(req.Method):
		result, err := s.chainClient.Call(ctx, req.Method, NewRawParams(req.Params))
		if err != nil {
			return nil, serverError("Failed to forward to on-chain RPC: "+err.Error(), CodeRpcClientError)
		}
		return result, nil
	default:
		return nil, &Error{Code: CodeMethodNotFound, Message: "method not found: " + req.Method}
	}
}

func writeJSON(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, id json.RawMessage, rpcErr *Error) {
	writeJSON(w, Response{JSONRPC: "2.0", ID: id, Error: rpcErr})
}
