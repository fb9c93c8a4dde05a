package providers

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"

	"github.com/synnergylabs/conduit/internal/corestate"
)

// RPCAccountProvider is the production AccountProvider, backed by a
// gagliardetto/solana-go RPC client pointed at one cluster endpoint.
type RPCAccountProvider struct {
	client     *rpc.Client
	commitment rpc.CommitmentType
	log        *logrus.Entry
}

// NewRPCAccountProvider builds a provider against httpURL, defaulting to
// DefaultCommitment when commitment is empty.
func NewRPCAccountProvider(httpURL string, commitment Commitment, log *logrus.Entry) *RPCAccountProvider {
	if commitment == "" {
		commitment = DefaultCommitment
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &RPCAccountProvider{
		client:     rpc.New(httpURL),
		commitment: rpc.CommitmentType(commitment),
		log:        log.WithField("component", "rpc_account_provider"),
	}
}

func (p *RPCAccountProvider) GetAccount(ctx context.Context, pubkey solana.PublicKey, minContextSlot *corestate.Slot) (corestate.Slot, *corestate.Account, error) {
	opts := &rpc.GetAccountInfoOpts{
		Commitment: p.commitment,
		Encoding:   solana.EncodingBase64,
	}
	if minContextSlot != nil {
		opts.MinContextSlot = minContextSlot
	}
	res, err := p.client.GetAccountInfoWithOpts(ctx, pubkey, opts)
	if err != nil {
		if err == rpc.ErrNotFound {
			return 0, nil, nil
		}
		p.log.WithError(err).WithField("pubkey", pubkey).Warn("get_account failed")
		return 0, nil, &corestate.TransportError{Op: "GetAccountInfo", Err: err}
	}
	if res.Value == nil {
		return res.Context.Slot, nil, nil
	}
	return res.Context.Slot, toCoreAccount(res.Value), nil
}

func (p *RPCAccountProvider) GetMultipleAccounts(ctx context.Context, pubkeys []solana.PublicKey, minContextSlot *corestate.Slot) (corestate.Slot, []*corestate.Account, error) {
	opts := &rpc.GetMultipleAccountsOpts{
		Commitment: p.commitment,
		Encoding:   solana.EncodingBase64,
	}
	if minContextSlot != nil {
		opts.MinContextSlot = minContextSlot
	}
	res, err := p.client.GetMultipleAccountsWithOpts(ctx, pubkeys, opts)
	if err != nil {
		p.log.WithError(err).WithField("count", len(pubkeys)).Warn("get_multiple_accounts failed")
		return 0, nil, &corestate.TransportError{Op: "GetMultipleAccounts", Err: err}
	}
	out := make([]*corestate.Account, len(res.Value))
	for i, acc := range res.Value {
		if acc == nil {
			continue
		}
		out[i] = toCoreAccount(acc)
	}
	return res.Context.Slot, out, nil
}

func toCoreAccount(acc *rpc.Account) *corestate.Account {
	var data []byte
	if acc.Data != nil {
		data = acc.Data.GetBinary()
	}
	return &corestate.Account{
		Owner:      acc.Owner,
		Lamports:   acc.Lamports,
		Data:       data,
		Executable: acc.Executable,
	}
}
