package corestate

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// DelegationInconsistency names why an account that is not a proper
// Delegated account isn't one.
type DelegationInconsistency struct {
	kind delegationInconsistencyKind
	// detail carries the parse-error message for DelegationRecordDataInvalid.
	detail string
}

type delegationInconsistencyKind int

const (
	AccountNotFound delegationInconsistencyKind = iota
	AccountInvalidOwner
	DelegationRecordNotFound
	DelegationRecordInvalidOwner
	DelegationRecordDataInvalid
)

func NewDelegationInconsistency(kind delegationInconsistencyKind) DelegationInconsistency {
	return DelegationInconsistency{kind: kind}
}

func NewDelegationRecordDataInvalid(detail string) DelegationInconsistency {
	return DelegationInconsistency{kind: DelegationRecordDataInvalid, detail: detail}
}

func (d DelegationInconsistency) Kind() delegationInconsistencyKind { return d.kind }
func (d DelegationInconsistency) Detail() string                    { return d.detail }

func (d DelegationInconsistency) String() string {
	switch d.kind {
	case AccountNotFound:
		return "AccountNotFound"
	case AccountInvalidOwner:
		return "AccountInvalidOwner"
	case DelegationRecordNotFound:
		return "DelegationRecordNotFound"
	case DelegationRecordInvalidOwner:
		return "DelegationRecordInvalidOwner"
	case DelegationRecordDataInvalid:
		return "DelegationRecordDataInvalid(" + d.detail + ")"
	default:
		return "unknown"
	}
}

// ChainState is a closed sum type over the three ways an account can relate
// to the delegation program: Wallet, Undelegated, Delegated. Callers
// exhaustively switch on Kind().
type ChainState struct {
	kind chainStateKind

	// Wallet, Undelegated and Delegated all carry an Account; for Wallet it
	// holds just {owner, lamports}.
	account Account

	// Undelegated
	inconsistency DelegationInconsistency

	// Delegated
	record DelegationRecord
}

type chainStateKind int

const (
	KindWallet chainStateKind = iota
	KindUndelegated
	KindDelegated
)

func (c ChainState) Kind() chainStateKind { return c.kind }
func (c ChainState) IsWallet() bool       { return c.kind == KindWallet }
func (c ChainState) IsUndelegated() bool  { return c.kind == KindUndelegated }
func (c ChainState) IsDelegated() bool    { return c.kind == KindDelegated }

// Account returns the underlying account for Undelegated and Delegated
// states, and a synthesized {lamports, owner} account for Wallet.
func (c ChainState) Account() Account { return c.account }

// Inconsistency is only meaningful when Kind() == KindUndelegated.
func (c ChainState) Inconsistency() DelegationInconsistency { return c.inconsistency }

// Record is only meaningful when Kind() == KindDelegated.
func (c ChainState) Record() DelegationRecord { return c.record }

// WalletChainState builds the Wallet variant for an on-curve pubkey.
func WalletChainState(lamports uint64, owner solana.PublicKey) ChainState {
	return ChainState{kind: KindWallet, account: Account{Owner: owner, Lamports: lamports}}
}

// UndelegatedChainState builds the Undelegated variant.
func UndelegatedChainState(account Account, inconsistency DelegationInconsistency) ChainState {
	return ChainState{kind: KindUndelegated, account: account, inconsistency: inconsistency}
}

// DelegatedChainState builds the Delegated variant.
func DelegatedChainState(account Account, record DelegationRecord) ChainState {
	return ChainState{kind: KindDelegated, account: account, record: record}
}

func (c ChainState) String() string {
	switch c.kind {
	case KindWallet:
		return fmt.Sprintf("Wallet{lamports=%d}", c.account.Lamports)
	case KindUndelegated:
		return "Undelegated{" + c.inconsistency.String() + "}"
	case KindDelegated:
		return "Delegated{" + c.record.String() + "}"
	default:
		return "unknown"
	}
}
