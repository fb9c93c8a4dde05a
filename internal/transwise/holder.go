// Package transwise classifies a transaction's accounts into a routing
// verdict (chain, ephemeral, or unroutable) from their chain-snapshot
// states, mirroring original_source/transwise.
package transwise

import "github.com/gagliardetto/solana-go"

// AccountsHolder exposes the readonly/writable/payer pubkeys of a
// transaction, independent of how that transaction was decoded.
type AccountsHolder interface {
	Readonly() []solana.PublicKey
	Writable() []solana.PublicKey
	Payer() solana.PublicKey
}
