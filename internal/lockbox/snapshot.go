// Package lockbox resolves a single pubkey's on-chain state into an
// AccountChainSnapshot: wallet, undelegated, or properly delegated.
package lockbox

import (
	"github.com/gagliardetto/solana-go"

	"github.com/synnergylabs/conduit/internal/corestate"
)

// AccountChainSnapshot is an immutable observation of a pubkey's chain
// state at a specific slot. It is shared by reference between the
// resolver's caller and the classifier; nothing mutates it after
// construction.
type AccountChainSnapshot struct {
	Pubkey     solana.PublicKey
	AtSlot     corestate.Slot
	ChainState corestate.ChainState
}
