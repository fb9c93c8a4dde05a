package chainaddr

import "github.com/gagliardetto/solana-go"

// seeds returns the seed tuple [prefix, id] used to derive a PDA of the
// given category for the given id.
func seeds(prefix []byte, id []byte) [][]byte {
	return [][]byte{prefix, id}
}

// seedsWithBump returns the seed tuple [prefix, id, bump] used to verify a
// PDA whose bump has already been found.
func seedsWithBump(prefix []byte, id []byte, bump byte) [][]byte {
	return [][]byte{prefix, id, {bump}}
}

// DelegationSeeds returns the seed tuple for a delegation-record PDA.
func DelegationSeeds(id []byte) [][]byte { return seeds(DelegationSeed, id) }

// DelegationSeedsWithBump returns the seed tuple for a delegation-record PDA
// once its bump has been found.
func DelegationSeedsWithBump(id []byte, bump byte) [][]byte {
	return seedsWithBump(DelegationSeed, id, bump)
}

// BufferSeeds returns the seed tuple for a buffer account PDA.
func BufferSeeds(id []byte) [][]byte { return seeds(BufferSeed, id) }

// BufferSeedsWithBump returns the seed tuple for a buffer account PDA once
// its bump has been found.
func BufferSeedsWithBump(id []byte, bump byte) [][]byte {
	return seedsWithBump(BufferSeed, id, bump)
}

// StateDiffSeeds returns the seed tuple for a state-diff PDA.
func StateDiffSeeds(id []byte) [][]byte { return seeds(StateDiffSeed, id) }

// StateDiffSeedsWithBump returns the seed tuple for a state-diff PDA once
// its bump has been found.
func StateDiffSeedsWithBump(id []byte, bump byte) [][]byte {
	return seedsWithBump(StateDiffSeed, id, bump)
}

// CommitRecordSeeds returns the seed tuple for a commit-state-record PDA.
func CommitRecordSeeds(id []byte) [][]byte {
	return seeds(CommitRecordSeed, id)
}

// CommitRecordSeedsWithBump returns the seed tuple for a commit-state-record
// PDA once its bump has been found.
func CommitRecordSeedsWithBump(id []byte, bump byte) [][]byte {
	return seedsWithBump(CommitRecordSeed, id, bump)
}

// DelegationPDA derives the delegation-record PDA for id under
// DelegationProgramID, returning the first derivable address and its bump.
func DelegationPDA(id solana.PublicKey) (solana.PublicKey, byte, error) {
	return solana.FindProgramAddress(DelegationSeeds(id.Bytes()), DelegationProgramID)
}

// BufferPDA derives the buffer account PDA for id.
func BufferPDA(id solana.PublicKey) (solana.PublicKey, byte, error) {
	return solana.FindProgramAddress(BufferSeeds(id.Bytes()), DelegationProgramID)
}

// StateDiffPDA derives the state-diff PDA for id.
func StateDiffPDA(id solana.PublicKey) (solana.PublicKey, byte, error) {
	return solana.FindProgramAddress(StateDiffSeeds(id.Bytes()), DelegationProgramID)
}

// CommitRecordPDA derives the commit-state-record PDA for id.
func CommitRecordPDA(id solana.PublicKey) (solana.PublicKey, byte, error) {
	return solana.FindProgramAddress(CommitRecordSeeds(id.Bytes()), DelegationProgramID)
}
