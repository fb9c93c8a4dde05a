package lockbox

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"github.com/synnergylabs/conduit/internal/chainaddr"
	"github.com/synnergylabs/conduit/internal/corestate"
	"github.com/synnergylabs/conduit/internal/providers"
)

// DelegationRecordParser decodes a delegation-record account's opaque
// bytes. It is narrow on purpose so tests can substitute a stub without
// depending on internal/delegation's binary decoder.
type DelegationRecordParser interface {
	TryParse(data []byte) (corestate.DelegationRecord, error)
}

// Resolver fetches a pubkey's account (and, for PDAs, its delegation
// record) and classifies the result into a ChainState. It holds no mutable
// state of its own: the account provider and parser it wraps are shared,
// read-only collaborators.
type Resolver struct {
	accounts providers.AccountProvider
	parser   DelegationRecordParser
	log      *logrus.Entry
}

// NewResolver builds a Resolver over the given account provider and
// delegation-record parser.
func NewResolver(accounts providers.AccountProvider, parser DelegationRecordParser, log *logrus.Entry) *Resolver {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Resolver{accounts: accounts, parser: parser, log: log.WithField("component", "lockbox")}
}

// ResolveSnapshot fetches and classifies pubkey per spec: a single fetch
// for on-curve pubkeys, or a single multi-get against [pubkey,
// delegation_pda] for off-curve ones. The resolver never retries; that is
// the account provider's responsibility.
func (r *Resolver) ResolveSnapshot(ctx context.Context, pubkey solana.PublicKey) (*AccountChainSnapshot, error) {
	if pubkey.IsOnCurve() {
		return r.resolveWallet(ctx, pubkey)
	}
	return r.resolvePDA(ctx, pubkey)
}

func (r *Resolver) resolveWallet(ctx context.Context, pubkey solana.PublicKey) (*AccountChainSnapshot, error) {
	slot, account, err := r.accounts.GetAccount(ctx, pubkey, nil)
	if err != nil {
		return nil, err
	}
	if account == nil {
		def := corestate.DefaultAccount()
		return &AccountChainSnapshot{
			Pubkey:     pubkey,
			AtSlot:     slot,
			ChainState: corestate.WalletChainState(0, def.Owner),
		}, nil
	}
	return &AccountChainSnapshot{
		Pubkey:     pubkey,
		AtSlot:     slot,
		ChainState: corestate.WalletChainState(account.Lamports, account.Owner),
	}, nil
}

func (r *Resolver) resolvePDA(ctx context.Context, pubkey solana.PublicKey) (*AccountChainSnapshot, error) {
	delegationPDA, _, err := chainaddr.DelegationPDA(pubkey)
	if err != nil {
		return nil, err
	}

	slot, accounts, err := r.accounts.GetMultipleAccounts(ctx, []solana.PublicKey{pubkey, delegationPDA}, nil)
	if err != nil {
		return nil, err
	}
	if len(accounts) != 2 {
		return nil, &corestate.InvalidFetchError{Expected: 2, Received: len(accounts)}
	}

	chainState := r.classifyPDA(accounts[0], accounts[1])
	return &AccountChainSnapshot{Pubkey: pubkey, AtSlot: slot, ChainState: chainState}, nil
}

func (r *Resolver) classifyPDA(account, delegationRecordAccount *corestate.Account) corestate.ChainState {
	if account == nil {
		return corestate.UndelegatedChainState(
			corestate.DefaultAccount(),
			corestate.NewDelegationInconsistency(corestate.AccountNotFound),
		)
	}
	if !isOwnedByDelegationProgram(*account) {
		return corestate.UndelegatedChainState(
			*account,
			corestate.NewDelegationInconsistency(corestate.AccountInvalidOwner),
		)
	}
	if delegationRecordAccount == nil {
		return corestate.UndelegatedChainState(
			*account,
			corestate.NewDelegationInconsistency(corestate.DelegationRecordNotFound),
		)
	}
	if !isOwnedByDelegationProgram(*delegationRecordAccount) {
		return corestate.UndelegatedChainState(
			*account,
			corestate.NewDelegationInconsistency(corestate.DelegationRecordInvalidOwner),
		)
	}
	record, err := r.parser.TryParse(delegationRecordAccount.Data)
	if err != nil {
		r.log.WithError(err).Debug("delegation record parse failed, folding into Undelegated")
		return corestate.UndelegatedChainState(
			*account,
			corestate.NewDelegationRecordDataInvalid(err.Error()),
		)
	}
	return corestate.DelegatedChainState(*account, record)
}

func isOwnedByDelegationProgram(account corestate.Account) bool {
	return account.Owner.Equals(chainaddr.DelegationProgramID)
}
