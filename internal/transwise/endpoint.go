package transwise

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

type endpointKind int

const (
	EndpointChain endpointKind = iota
	EndpointEphemeral
	EndpointUnroutable
)

type unroutableReasonKind int

const (
	ReasonContainsBothDelegatedAndUndelegatedWritable unroutableReasonKind = iota
	ReasonWritablesIncludeInconsistentAccounts
)

// UnroutableReason explains why a snapshot could not be routed anywhere.
// Only one of its fields is meaningful, selected by Kind().
type UnroutableReason struct {
	kind         unroutableReasonKind
	delegated    []solana.PublicKey
	undelegated  []solana.PublicKey
	inconsistent []solana.PublicKey
}

func (r UnroutableReason) Kind() unroutableReasonKind { return r.kind }

// DelegatedAndUndelegated returns the conflicting pubkey sets when Kind is
// ReasonContainsBothDelegatedAndUndelegatedWritable.
func (r UnroutableReason) DelegatedAndUndelegated() (delegated, undelegated []solana.PublicKey) {
	return r.delegated, r.undelegated
}

// InconsistentPubkeys returns the offending pubkeys when Kind is
// ReasonWritablesIncludeInconsistentAccounts.
func (r UnroutableReason) InconsistentPubkeys() []solana.PublicKey {
	return r.inconsistent
}

func (r UnroutableReason) String() string {
	switch r.kind {
	case ReasonContainsBothDelegatedAndUndelegatedWritable:
		return fmt.Sprintf("ContainsBothDelegatedAndUndelegatedWritable{delegated=%v, undelegated=%v}", r.delegated, r.undelegated)
	case ReasonWritablesIncludeInconsistentAccounts:
		return fmt.Sprintf("WritablesIncludeInconsistentAccounts{%v}", r.inconsistent)
	default:
		return "UnknownUnroutableReason"
	}
}

// Endpoint is the classifier's verdict: Chain, Ephemeral (carrying the
// writable delegated pubkeys that will be locked), or Unroutable (carrying
// the reason).
type Endpoint struct {
	kind              endpointKind
	snapshot          *TransactionAccountsSnapshot
	writableDelegated []solana.PublicKey
	reason            UnroutableReason
}

func (e Endpoint) Kind() endpointKind                           { return e.kind }
func (e Endpoint) IsChain() bool                                { return e.kind == EndpointChain }
func (e Endpoint) IsEphemeral() bool                            { return e.kind == EndpointEphemeral }
func (e Endpoint) IsUnroutable() bool                           { return e.kind == EndpointUnroutable }
func (e Endpoint) Snapshot() *TransactionAccountsSnapshot       { return e.snapshot }
func (e Endpoint) WritableDelegatedPubkeys() []solana.PublicKey { return e.writableDelegated }
func (e Endpoint) Reason() UnroutableReason                     { return e.reason }

func (e Endpoint) String() string {
	switch e.kind {
	case EndpointChain:
		return "Chain"
	case EndpointEphemeral:
		return fmt.Sprintf("Ephemeral{writable_delegated=%v}", e.writableDelegated)
	case EndpointUnroutable:
		return fmt.Sprintf("Unroutable{%s}", e.reason)
	default:
		return "UnknownEndpoint"
	}
}

// Classify is the pure routing decision described in the account-accounts
// classifier: readonly accounts never influence it.
func Classify(snapshot *TransactionAccountsSnapshot) Endpoint {
	if inconsistent := snapshot.WritableInconsistentPubkeys(); len(inconsistent) > 0 {
		return Endpoint{
			kind:     EndpointUnroutable,
			snapshot: snapshot,
			reason: UnroutableReason{
				kind:         ReasonWritablesIncludeInconsistentAccounts,
				inconsistent: inconsistent,
			},
		}
	}

	delegated := snapshot.WritableDelegatedPubkeys()
	if len(delegated) == 0 {
		return Endpoint{kind: EndpointChain, snapshot: snapshot}
	}

	undelegated := snapshot.WritableUndelegatedNonPayerPubkeys()
	if len(undelegated) > 0 {
		return Endpoint{
			kind:     EndpointUnroutable,
			snapshot: snapshot,
			reason: UnroutableReason{
				kind:        ReasonContainsBothDelegatedAndUndelegatedWritable,
				delegated:   delegated,
				undelegated: undelegated,
			},
		}
	}

	return Endpoint{kind: EndpointEphemeral, snapshot: snapshot, writableDelegated: delegated}
}
