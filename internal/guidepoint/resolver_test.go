package guidepoint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/synnergylabs/conduit/internal/corestate"
	"github.com/synnergylabs/conduit/internal/guidepoint"
)

type fakeEphemeralProvider struct {
	account *corestate.Account
	err     error
}

func (f *fakeEphemeralProvider) GetAccount(_ context.Context, _ solana.PublicKey, _ *corestate.Slot) (corestate.Slot, *corestate.Account, error) {
	return 1, f.account, f.err
}

const validAddr = "4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM"

func TestResolve_PassThroughKinds(t *testing.T) {
	r := guidepoint.NewResolver(&fakeEphemeralProvider{}, nil)
	ctx := context.Background()

	if got := r.Resolve(ctx, mustParse(t, `{"method":"slotSubscribe","params":[]}`)); !got.IsBoth() {
		t.Fatalf("slotSubscribe: expected Both, got %s", got)
	}
	if got := r.Resolve(ctx, mustParse(t, `{"method":"getFoo","params":[]}`)); !got.IsChain() {
		t.Fatalf("unknown method: expected Chain, got %s", got)
	}
}

func mustParse(t *testing.T, frame string) guidepoint.GuideStrategy {
	t.Helper()
	return guidepoint.ParseGuideStrategy([]byte(frame))
}

func TestResolve_AccountFoundRoutesToEphemeral(t *testing.T) {
	provider := &fakeEphemeralProvider{account: &corestate.Account{}}
	r := guidepoint.NewResolver(provider, nil)

	strategy := mustParse(t, `{"method":"accountSubscribe","params":["`+validAddr+`"]}`)
	got := r.Resolve(context.Background(), strategy)
	if !got.IsEphemeral() {
		t.Fatalf("expected Ephemeral, got %s", got)
	}
}

func TestResolve_AccountAbsentSubscriptionRoutesToBoth(t *testing.T) {
	provider := &fakeEphemeralProvider{account: nil}
	r := guidepoint.NewResolver(provider, nil)

	strategy := mustParse(t, `{"method":"accountSubscribe","params":["`+validAddr+`"]}`)
	got := r.Resolve(context.Background(), strategy)
	if !got.IsBoth() {
		t.Fatalf("expected Both, got %s", got)
	}
}

func TestResolve_FetchErrorRoutesToChain(t *testing.T) {
	provider := &fakeEphemeralProvider{err: errors.New("boom")}
	r := guidepoint.NewResolver(provider, nil)

	strategy := mustParse(t, `{"method":"accountSubscribe","params":["`+validAddr+`"]}`)
	got := r.Resolve(context.Background(), strategy)
	if !got.IsChain() {
		t.Fatalf("expected Chain, got %s", got)
	}
}

func TestResolve_ProgramNotExecutableRoutesToChain(t *testing.T) {
	provider := &fakeEphemeralProvider{account: &corestate.Account{Executable: false}}
	r := guidepoint.NewResolver(provider, nil)

	strategy := mustParse(t, `{"method":"programSubscribe","params":["`+validAddr+`"]}`)
	got := r.Resolve(context.Background(), strategy)
	if !got.IsChain() {
		t.Fatalf("expected Chain for non-executable program, got %s", got)
	}
}

func TestResolve_ProgramExecutableRoutesToEphemeral(t *testing.T) {
	provider := &fakeEphemeralProvider{account: &corestate.Account{Executable: true}}
	r := guidepoint.NewResolver(provider, nil)

	strategy := mustParse(t, `{"method":"programSubscribe","params":["`+validAddr+`"]}`)
	got := r.Resolve(context.Background(), strategy)
	if !got.IsEphemeral() {
		t.Fatalf("expected Ephemeral for executable program, got %s", got)
	}
}

func TestResolve_InvalidAddressRoutesToChain(t *testing.T) {
	r := guidepoint.NewResolver(&fakeEphemeralProvider{}, nil)
	strategy := mustParse(t, `{"method":"accountSubscribe","params":["not-a-valid-pubkey"]}`)
	got := r.Resolve(context.Background(), strategy)
	if !got.IsChain() {
		t.Fatalf("expected Chain for invalid address, got %s", got)
	}
}

func TestResolve_SignatureAlwaysBoth(t *testing.T) {
	r := guidepoint.NewResolver(&fakeEphemeralProvider{}, nil)
	strategy := mustParse(t, `{"method":"signatureSubscribe","params":["5VERsig"]}`)
	got := r.Resolve(context.Background(), strategy)
	if !got.IsBoth() {
		t.Fatalf("expected Both, got %s", got)
	}
}
