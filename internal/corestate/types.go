// Package corestate holds the entities shared by lockbox, transwise, and
// guidepoint: the delegation record, the chain-state sum type, and the
// error taxonomy that binds them together.
package corestate

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
)

// Slot is a monotonic u64 timestamp of chain observation.
type Slot = uint64

// Account mirrors the fields of an on-chain account that the resolver cares
// about. It is immutable once fetched.
type Account struct {
	Owner      solana.PublicKey
	Lamports   uint64
	Data       []byte
	Executable bool
}

// SystemProgramID is the owner reported for an absent wallet account.
var SystemProgramID = solana.PublicKey{}

// DefaultAccount is the zero-value account substituted for an absent
// wallet: zero lamports, owned by the system program.
func DefaultAccount() Account {
	return Account{Owner: SystemProgramID}
}

// CommitFrequency is how often the ephemeral validator commits account
// state back to the base chain.
type CommitFrequency time.Duration

func (c CommitFrequency) Duration() time.Duration { return time.Duration(c) }

func (c CommitFrequency) String() string {
	return time.Duration(c).String()
}

// DefaultCommitFrequency is a 300-second commit frequency. Nothing in this
// repository substitutes it automatically: the delegation parser always
// takes the frequency from the record's data.
const DefaultCommitFrequency = CommitFrequency(300 * time.Second)

// DelegationRecord is the semantic content of a delegation-record account,
// decoded from its opaque byte layout.
type DelegationRecord struct {
	Authority       solana.PublicKey
	Owner           solana.PublicKey
	DelegationSlot  Slot
	CommitFrequency CommitFrequency
	Lamports        uint64
}

func (r DelegationRecord) String() string {
	return fmt.Sprintf(
		"DelegationRecord{authority=%s owner=%s slot=%d commit_frequency=%s lamports=%d}",
		r.Authority, r.Owner, r.DelegationSlot, r.CommitFrequency, r.Lamports,
	)
}
