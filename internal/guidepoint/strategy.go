// Package guidepoint extracts a per-message routing intent from a pub/sub
// request and resolves it against the ephemeral cluster, mirroring
// original_source/guidepoint.
package guidepoint

import (
	"encoding/json"
	"fmt"
)

type guideStrategyKind int

const (
	StrategyChain guideStrategyKind = iota
	StrategyEphemeral
	StrategyBoth
	StrategyTryEphemeralForAccount
	StrategyTryEphemeralForProgram
	StrategyTryEphemeralForSignature
)

// GuideStrategy is the intent extracted from a single pub/sub request.
// Address/signature and IsSubscription are only meaningful for the three
// TryEphemeralFor* kinds.
type GuideStrategy struct {
	kind           guideStrategyKind
	address        string
	isSubscription bool
}

func (g GuideStrategy) Kind() guideStrategyKind { return g.kind }
func (g GuideStrategy) Address() string         { return g.address }
func (g GuideStrategy) IsSubscription() bool    { return g.isSubscription }

func (g GuideStrategy) String() string {
	switch g.kind {
	case StrategyChain:
		return "Chain"
	case StrategyEphemeral:
		return "Ephemeral"
	case StrategyBoth:
		return "Both"
	case StrategyTryEphemeralForAccount:
		return fmt.Sprintf("TryEphemeralForAccount(%s, sub=%v)", g.address, g.isSubscription)
	case StrategyTryEphemeralForProgram:
		return fmt.Sprintf("TryEphemeralForProgram(%s, sub=%v)", g.address, g.isSubscription)
	case StrategyTryEphemeralForSignature:
		return fmt.Sprintf("TryEphemeralForSignature(%s, sub=%v)", g.address, g.isSubscription)
	default:
		return "UnknownGuideStrategy"
	}
}

func chainStrategy() GuideStrategy { return GuideStrategy{kind: StrategyChain} }
func bothStrategy() GuideStrategy  { return GuideStrategy{kind: StrategyBoth} }

func tryAccount(addr string) GuideStrategy {
	return GuideStrategy{kind: StrategyTryEphemeralForAccount, address: addr, isSubscription: true}
}

func tryProgram(addr string) GuideStrategy {
	return GuideStrategy{kind: StrategyTryEphemeralForProgram, address: addr, isSubscription: true}
}

func trySignature(sig string) GuideStrategy {
	return GuideStrategy{kind: StrategyTryEphemeralForSignature, address: sig, isSubscription: true}
}

// jsonRPCRequest is the subset of a JSON-RPC request we need to extract a
// guide strategy: method name and the first positional param.
type jsonRPCRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// ParseGuideStrategy inspects a pub/sub client frame's method (and its
// first parameter, for subscribe methods) and maps it to a GuideStrategy.
// An unparseable frame or unknown method defaults to Chain.
func ParseGuideStrategy(frame []byte) GuideStrategy {
	var req jsonRPCRequest
	if err := json.Unmarshal(frame, &req); err != nil {
		return chainStrategy()
	}

	switch req.Method {
	case "accountSubscribe":
		addr, ok := firstStringParam(req.Params)
		if !ok {
			return chainStrategy()
		}
		return tryAccount(addr)
	case "programSubscribe":
		addr, ok := firstStringParam(req.Params)
		if !ok {
			return chainStrategy()
		}
		return tryProgram(addr)
	case "signatureSubscribe":
		sig, ok := firstStringParam(req.Params)
		if !ok {
			return chainStrategy()
		}
		return trySignature(sig)
	case "slotSubscribe", "rootSubscribe", "blockSubscribe",
		"accountUnsubscribe", "programUnsubscribe", "signatureUnsubscribe",
		"slotUnsubscribe", "rootUnsubscribe", "blockUnsubscribe":
		return bothStrategy()
	default:
		return chainStrategy()
	}
}

func firstStringParam(params []json.RawMessage) (string, bool) {
	if len(params) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(params[0], &s); err != nil {
		return "", false
	}
	return s, true
}
