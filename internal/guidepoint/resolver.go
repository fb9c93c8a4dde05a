package guidepoint

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"github.com/synnergylabs/conduit/internal/corestate"
)

// EphemeralAccountProvider is the narrow capability the resolver needs:
// read a single account from the ephemeral cluster.
type EphemeralAccountProvider interface {
	GetAccount(ctx context.Context, pubkey solana.PublicKey, minContextSlot *corestate.Slot) (corestate.Slot, *corestate.Account, error)
}

// Resolver maps a GuideStrategy to a RequestEndpoint by consulting the
// ephemeral cluster's account provider.
type Resolver struct {
	ephemeral EphemeralAccountProvider
	log       *logrus.Entry
}

// NewResolver builds a Resolver over the ephemeral cluster's account
// provider.
func NewResolver(ephemeral EphemeralAccountProvider, log *logrus.Entry) *Resolver {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Resolver{ephemeral: ephemeral, log: log.WithField("component", "guidepoint")}
}

// Resolve turns strategy into a RequestEndpoint. TryEphemeralForSignature
// is best-effort at this layer and always resolves to Both.
func (r *Resolver) Resolve(ctx context.Context, strategy GuideStrategy) RequestEndpoint {
	switch strategy.Kind() {
	case StrategyChain:
		return chainEndpoint
	case StrategyEphemeral:
		return ephemeralEndpoint
	case StrategyBoth:
		return bothEndpoint
	case StrategyTryEphemeralForAccount:
		return r.guideByAddress(ctx, strategy.Address(), false, strategy.IsSubscription())
	case StrategyTryEphemeralForProgram:
		return r.guideByAddress(ctx, strategy.Address(), true, strategy.IsSubscription())
	case StrategyTryEphemeralForSignature:
		return bothEndpoint
	default:
		return chainEndpoint
	}
}

func (r *Resolver) guideByAddress(ctx context.Context, address string, isProgram, isSubscription bool) RequestEndpoint {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return chainEndpoint
	}

	_, account, err := r.ephemeral.GetAccount(ctx, pubkey, nil)
	if err != nil {
		r.log.WithError(err).Warn("error fetching account from ephemeral cluster, defaulting to chain")
		return chainEndpoint
	}
	if account == nil {
		if isSubscription {
			return bothEndpoint
		}
		return chainEndpoint
	}
	if isProgram && !account.Executable {
		return chainEndpoint
	}
	return ephemeralEndpoint
}
