package transwise_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/synnergylabs/conduit/internal/corestate"
	"github.com/synnergylabs/conduit/internal/lockbox"
	"github.com/synnergylabs/conduit/internal/testtools"
	"github.com/synnergylabs/conduit/internal/transwise"
)

type fixedResolver struct {
	states map[solana.PublicKey]corestate.ChainState
	failOn solana.PublicKey
}

func (f *fixedResolver) ResolveSnapshot(_ context.Context, pubkey solana.PublicKey) (*lockbox.AccountChainSnapshot, error) {
	if pubkey == f.failOn {
		return nil, errors.New("boom")
	}
	state, ok := f.states[pubkey]
	if !ok {
		state = corestate.WalletChainState(0, solana.PublicKey{})
	}
	return &lockbox.AccountChainSnapshot{Pubkey: pubkey, AtSlot: 1, ChainState: state}, nil
}

func key(b byte) solana.PublicKey {
	var pk solana.PublicKey
	pk[0] = b
	return pk
}

func TestFromHolder_PreservesOrderAndPayer(t *testing.T) {
	ro1, ro2 := key(1), key(2)
	w1, w2 := key(3), key(4)
	payer := key(5)

	holder := testtools.HolderStub{
		ReadonlyKeys: []solana.PublicKey{ro1, ro2},
		WritableKeys: []solana.PublicKey{w1, w2},
		PayerKey:     payer,
	}
	resolver := &fixedResolver{states: map[solana.PublicKey]corestate.ChainState{}}

	snap, err := transwise.FromHolder(context.Background(), holder, resolver)
	if err != nil {
		t.Fatalf("FromHolder: %v", err)
	}
	if len(snap.Readonly) != 2 || snap.Readonly[0].Pubkey != ro1 || snap.Readonly[1].Pubkey != ro2 {
		t.Fatalf("readonly order not preserved: %+v", snap.Readonly)
	}
	if len(snap.Writable) != 2 || snap.Writable[0].Pubkey != w1 || snap.Writable[1].Pubkey != w2 {
		t.Fatalf("writable order not preserved: %+v", snap.Writable)
	}
	if snap.Payer != payer {
		t.Fatalf("payer not copied verbatim: got %s want %s", snap.Payer, payer)
	}
}

func TestFromHolder_SingleFailureFailsWholeOperation(t *testing.T) {
	w1 := key(9)
	holder := testtools.HolderStub{WritableKeys: []solana.PublicKey{w1}, PayerKey: key(1)}
	resolver := &fixedResolver{states: map[solana.PublicKey]corestate.ChainState{}, failOn: w1}

	_, err := transwise.FromHolder(context.Background(), holder, resolver)
	if err == nil {
		t.Fatal("expected error when any resolution fails")
	}
}

func TestPredicates(t *testing.T) {
	delegated := key(1)
	undelegated := key(2)
	wallet := key(3)
	payer := key(3) // payer == wallet writable

	states := map[solana.PublicKey]corestate.ChainState{
		delegated:   corestate.DelegatedChainState(corestate.Account{}, corestate.DelegationRecord{}),
		undelegated: corestate.UndelegatedChainState(corestate.Account{}, corestate.NewDelegationInconsistency(corestate.AccountNotFound)),
		wallet:      corestate.WalletChainState(10, solana.PublicKey{}),
	}
	holder := testtools.HolderStub{
		WritableKeys: []solana.PublicKey{delegated, undelegated, wallet},
		PayerKey:     payer,
	}
	resolver := &fixedResolver{states: states}

	snap, err := transwise.FromHolder(context.Background(), holder, resolver)
	if err != nil {
		t.Fatalf("FromHolder: %v", err)
	}

	d := snap.WritableDelegatedPubkeys()
	if len(d) != 1 || d[0] != delegated {
		t.Fatalf("WritableDelegatedPubkeys = %v", d)
	}
	u := snap.WritableUndelegatedNonPayerPubkeys()
	if len(u) != 1 || u[0] != undelegated {
		t.Fatalf("WritableUndelegatedNonPayerPubkeys = %v", u)
	}
	w := snap.WritableWalletPubkeys()
	if len(w) != 1 || w[0] != wallet {
		t.Fatalf("WritableWalletPubkeys = %v", w)
	}
}

func TestClassify_OnlyUndelegatedAndPayerRoutesToChain(t *testing.T) {
	undelegated := key(1)
	payer := key(2)
	snapshot := &transwise.TransactionAccountsSnapshot{
		Writable: []*lockbox.AccountChainSnapshot{
			{Pubkey: undelegated, ChainState: corestate.UndelegatedChainState(corestate.Account{}, corestate.NewDelegationInconsistency(corestate.AccountNotFound))},
			{Pubkey: payer, ChainState: corestate.WalletChainState(1, solana.PublicKey{})},
		},
		Payer: payer,
	}
	endpoint := transwise.Classify(snapshot)
	if !endpoint.IsChain() {
		t.Fatalf("expected Chain, got %s", endpoint)
	}
}

func TestClassify_DelegatedPlusWalletPayerRoutesToEphemeral(t *testing.T) {
	delegated := key(1)
	payer := key(2)
	snapshot := &transwise.TransactionAccountsSnapshot{
		Writable: []*lockbox.AccountChainSnapshot{
			{Pubkey: delegated, ChainState: corestate.DelegatedChainState(corestate.Account{}, corestate.DelegationRecord{})},
			{Pubkey: payer, ChainState: corestate.WalletChainState(1, solana.PublicKey{})},
		},
		Payer: payer,
	}
	endpoint := transwise.Classify(snapshot)
	if !endpoint.IsEphemeral() {
		t.Fatalf("expected Ephemeral, got %s", endpoint)
	}
	if got := endpoint.WritableDelegatedPubkeys(); len(got) != 1 || got[0] != delegated {
		t.Fatalf("WritableDelegatedPubkeys = %v", got)
	}
}

func TestClassify_DelegatedPlusUndelegatedIsUnroutable(t *testing.T) {
	delegated := key(1)
	undelegated := key(2)
	payer := key(3)
	snapshot := &transwise.TransactionAccountsSnapshot{
		Writable: []*lockbox.AccountChainSnapshot{
			{Pubkey: delegated, ChainState: corestate.DelegatedChainState(corestate.Account{}, corestate.DelegationRecord{})},
			{Pubkey: undelegated, ChainState: corestate.UndelegatedChainState(corestate.Account{}, corestate.NewDelegationInconsistency(corestate.AccountNotFound))},
		},
		Payer: payer,
	}
	endpoint := transwise.Classify(snapshot)
	if !endpoint.IsUnroutable() {
		t.Fatalf("expected Unroutable, got %s", endpoint)
	}
	if endpoint.Reason().Kind() != transwise.ReasonContainsBothDelegatedAndUndelegatedWritable {
		t.Fatalf("unexpected reason: %s", endpoint.Reason())
	}
}

func TestValidateForEphemeral_RejectsUndelegatedDataWritable(t *testing.T) {
	dataAccount := key(7)
	snapshot := &transwise.TransactionAccountsSnapshot{
		Writable: []*lockbox.AccountChainSnapshot{
			{Pubkey: dataAccount, ChainState: corestate.UndelegatedChainState(corestate.Account{Data: []byte{1, 2, 3}}, corestate.NewDelegationInconsistency(corestate.AccountNotFound))},
		},
	}
	if err := transwise.ValidateForEphemeral(snapshot); err == nil {
		t.Fatal("expected rejection of undelegated data writable")
	}
}

func TestValidateForEphemeral_AllowsWalletWritables(t *testing.T) {
	payer := key(7)
	snapshot := &transwise.TransactionAccountsSnapshot{
		Writable: []*lockbox.AccountChainSnapshot{
			{Pubkey: payer, ChainState: corestate.WalletChainState(1, solana.PublicKey{})},
		},
		Payer: payer,
	}
	if err := transwise.ValidateForEphemeral(snapshot); err != nil {
		t.Fatalf("expected wallet writable to be allowed: %v", err)
	}
}
