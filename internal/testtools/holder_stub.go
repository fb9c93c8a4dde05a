package testtools

import "github.com/gagliardetto/solana-go"

// HolderStub is a fixed TransactionAccountsHolder-shaped value for tests,
// mirroring original_source/test-tools/src/transaction_accounts_holder_stub.rs.
type HolderStub struct {
	ReadonlyKeys []solana.PublicKey
	WritableKeys []solana.PublicKey
	PayerKey     solana.PublicKey
}

func (h HolderStub) Readonly() []solana.PublicKey { return h.ReadonlyKeys }
func (h HolderStub) Writable() []solana.PublicKey { return h.WritableKeys }
func (h HolderStub) Payer() solana.PublicKey      { return h.PayerKey }
