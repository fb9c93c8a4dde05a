// Package chainaddr derives the program-derived addresses (PDAs) the
// delegation program uses, and names the clusters conduit can route to.
package chainaddr

import "github.com/gagliardetto/solana-go"

// Seed prefixes for the four PDA categories the delegation program mints.
// These bytes, in this order, are the first seed element of every
// derivation below; changing them breaks wire compatibility with accounts
// already delegated on chain.
var (
	DelegationSeed   = []byte("delegation")
	BufferSeed       = []byte("buffer")
	StateDiffSeed    = []byte("state-diff")
	CommitRecordSeed = []byte("commit-state-record")
)

// DelegationProgramID is the fixed program that owns delegated accounts and
// their associated PDAs.
var DelegationProgramID = solana.MustPublicKeyFromBase58(
	"DELeGGvXpWV2fqJUhqcF5ZSYMS4JTLjteaAMARRSaeSh",
)
