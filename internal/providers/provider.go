// Package providers defines the account-provider capability the rest of
// the core depends on, and a production implementation backed by a
// gagliardetto/solana-go RPC client.
package providers

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/synnergylabs/conduit/internal/corestate"
)

// AccountProvider abstracts fetching one or many accounts from a chain
// endpoint. Implementations must be safe for concurrent use; the core holds
// providers as shared, read-only state.
type AccountProvider interface {
	// GetAccount returns the observation slot and the account for pubkey,
	// or a nil account if it does not exist.
	GetAccount(ctx context.Context, pubkey solana.PublicKey, minContextSlot *corestate.Slot) (corestate.Slot, *corestate.Account, error)

	// GetMultipleAccounts returns the observation slot and one entry per
	// input pubkey, in the same order, with nil entries for absent
	// accounts. len(result) always equals len(pubkeys).
	GetMultipleAccounts(ctx context.Context, pubkeys []solana.PublicKey, minContextSlot *corestate.Slot) (corestate.Slot, []*corestate.Account, error)
}

// Commitment mirrors solana-go's commitment levels without requiring
// callers to import rpc directly.
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

// DefaultCommitment is used whenever a caller does not specify one. The
// production provider always pairs a commitment with its calls, following
// original_source/providers/src/rpc_account_watcher.rs, which never issues
// an RPC call without an explicit commitment.
const DefaultCommitment = CommitmentConfirmed
