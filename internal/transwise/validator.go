package transwise

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// UndelegatedWritablesError reports writable accounts that would be
// illegally mutated on the ephemeral validator: undelegated accounts
// holding data, as opposed to plain wallets.
type UndelegatedWritablesError struct {
	Pubkeys []solana.PublicKey
}

func (e *UndelegatedWritablesError) Error() string {
	return fmt.Sprintf("transaction writes to undelegated data account(s): %v", e.Pubkeys)
}

// ValidateForEphemeral rejects transactions that, despite routing to
// Ephemeral, contain a writable Undelegated account holding data. Wallet
// writables, including the payer, are always permitted.
func ValidateForEphemeral(snapshot *TransactionAccountsSnapshot) error {
	var offending []solana.PublicKey
	for _, snap := range snapshot.Writable {
		if !snap.ChainState.IsUndelegated() {
			continue
		}
		if len(snap.ChainState.Account().Data) == 0 {
			continue
		}
		offending = append(offending, snap.Pubkey)
	}
	if len(offending) > 0 {
		return &UndelegatedWritablesError{Pubkeys: offending}
	}
	return nil
}
