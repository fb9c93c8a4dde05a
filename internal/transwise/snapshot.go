package transwise

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"

	"github.com/synnergylabs/conduit/internal/lockbox"
)

// SnapshotResolver fetches and classifies a single pubkey's on-chain state.
// Narrowed to *lockbox.Resolver's one relevant method so tests can swap in
// a stub without touching the account provider or delegation parser.
type SnapshotResolver interface {
	ResolveSnapshot(ctx context.Context, pubkey solana.PublicKey) (*lockbox.AccountChainSnapshot, error)
}

// TransactionAccountsSnapshot holds the resolved chain state of every
// account a transaction touches, in the same order the holder produced
// them.
type TransactionAccountsSnapshot struct {
	Readonly []*lockbox.AccountChainSnapshot
	Writable []*lockbox.AccountChainSnapshot
	Payer    solana.PublicKey
}

// FromHolder resolves every readonly and writable pubkey in parallel; the
// two fan-outs are themselves run concurrently. Any single failure fails
// the whole operation, and ordering within each list matches holder's.
func FromHolder(ctx context.Context, holder AccountsHolder, resolver SnapshotResolver) (*TransactionAccountsSnapshot, error) {
	g, ctx := errgroup.WithContext(ctx)

	var readonly, writable []*lockbox.AccountChainSnapshot
	g.Go(func() error {
		snaps, err := resolveAll(ctx, holder.Readonly(), resolver)
		readonly = snaps
		return err
	})
	g.Go(func() error {
		snaps, err := resolveAll(ctx, holder.Writable(), resolver)
		writable = snaps
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &TransactionAccountsSnapshot{
		Readonly: readonly,
		Writable: writable,
		Payer:    holder.Payer(),
	}, nil
}

func resolveAll(ctx context.Context, pubkeys []solana.PublicKey, resolver SnapshotResolver) ([]*lockbox.AccountChainSnapshot, error) {
	out := make([]*lockbox.AccountChainSnapshot, len(pubkeys))
	g, ctx := errgroup.WithContext(ctx)
	for i, pk := range pubkeys {
		i, pk := i, pk
		g.Go(func() error {
			snap, err := resolver.ResolveSnapshot(ctx, pk)
			if err != nil {
				return err
			}
			out[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// WritableDelegatedPubkeys returns, in input order, the writable pubkeys
// whose chain state is Delegated.
func (s *TransactionAccountsSnapshot) WritableDelegatedPubkeys() []solana.PublicKey {
	var out []solana.PublicKey
	for _, snap := range s.Writable {
		if snap.ChainState.IsDelegated() {
			out = append(out, snap.Pubkey)
		}
	}
	return out
}

// WritableUndelegatedNonPayerPubkeys returns, in input order, writable
// pubkeys whose chain state is Undelegated and that are not the payer.
func (s *TransactionAccountsSnapshot) WritableUndelegatedNonPayerPubkeys() []solana.PublicKey {
	var out []solana.PublicKey
	for _, snap := range s.Writable {
		if snap.ChainState.IsUndelegated() && snap.Pubkey != s.Payer {
			out = append(out, snap.Pubkey)
		}
	}
	return out
}

// WritableWalletPubkeys returns, in input order, writable pubkeys whose
// chain state is Wallet.
func (s *TransactionAccountsSnapshot) WritableWalletPubkeys() []solana.PublicKey {
	var out []solana.PublicKey
	for _, snap := range s.Writable {
		if snap.ChainState.IsWallet() {
			out = append(out, snap.Pubkey)
		}
	}
	return out
}

// WritableInconsistentPubkeys always returns nil in this deployment: the
// resolver folds inconsistency into Undelegated rather than preserving a
// distinct Inconsistent variant. Kept so callers can treat the classifier's
// step 1 uniformly across resolver modes.
func (s *TransactionAccountsSnapshot) WritableInconsistentPubkeys() []solana.PublicKey {
	return nil
}
