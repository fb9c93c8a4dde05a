// Package testtools provides in-memory stand-ins for the account-provider
// and delegation-parser capabilities, so lockbox/transwise/guidepoint tests
// don't need a live RPC endpoint.
package testtools

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/synnergylabs/conduit/internal/corestate"
)

// StubAccountProvider answers GetAccount/GetMultipleAccounts from an
// in-memory map populated by the test. A pubkey absent from the map is
// reported as a missing account, not an error.
type StubAccountProvider struct {
	mu       sync.Mutex
	accounts map[solana.PublicKey]corestate.Account
	slot     corestate.Slot
	failWith error
}

// NewStubAccountProvider builds an empty stub reporting slot 1 by default.
func NewStubAccountProvider() *StubAccountProvider {
	return &StubAccountProvider{accounts: make(map[solana.PublicKey]corestate.Account), slot: 1}
}

// SetAccount registers pubkey as present with the given account.
func (s *StubAccountProvider) SetAccount(pubkey solana.PublicKey, account corestate.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[pubkey] = account
}

// SetSlot overrides the observation slot returned by subsequent calls.
func (s *StubAccountProvider) SetSlot(slot corestate.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot = slot
}

// FailWith makes every subsequent call return err.
func (s *StubAccountProvider) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func (s *StubAccountProvider) GetAccount(_ context.Context, pubkey solana.PublicKey, _ *corestate.Slot) (corestate.Slot, *corestate.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, nil, s.failWith
	}
	if acc, ok := s.accounts[pubkey]; ok {
		return s.slot, &acc, nil
	}
	return s.slot, nil, nil
}

func (s *StubAccountProvider) GetMultipleAccounts(_ context.Context, pubkeys []solana.PublicKey, _ *corestate.Slot) (corestate.Slot, []*corestate.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, nil, s.failWith
	}
	out := make([]*corestate.Account, len(pubkeys))
	for i, pk := range pubkeys {
		if acc, ok := s.accounts[pk]; ok {
			accCopy := acc
			out[i] = &accCopy
		}
	}
	return s.slot, out, nil
}
