// Package delegation decodes the opaque byte layout of a delegation-record
// account into a corestate.DelegationRecord.
package delegation

import (
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/synnergylabs/conduit/internal/corestate"
)

// discriminatorLen is the width of the Anchor-style 8-byte discriminator
// every delegation-record account is expected to start with.
const discriminatorLen = 8

// recordDiscriminator identifies a delegation-record account's data layout.
// Any input not starting with these bytes is rejected outright rather than
// risk silently misinterpreting unrelated account data.
var recordDiscriminator = [discriminatorLen]byte{
	0xb7, 0x0d, 0x5e, 0x7d, 0x5d, 0x5c, 0x6a, 0x51,
}

// Parser decodes delegation-record bytes. It is stateless and safe for
// concurrent use.
type Parser struct{}

// NewParser constructs a stateless delegation-record Parser.
func NewParser() *Parser { return &Parser{} }

// TryParse decodes data into a DelegationRecord, rejecting input that is
// missing the documented discriminator prefix or too short to hold the
// fixed-width fields that follow it.
func (p *Parser) TryParse(data []byte) (corestate.DelegationRecord, error) {
	if len(data) < discriminatorLen {
		return corestate.DelegationRecord{}, &corestate.ParseError{
			Msg: "data shorter than discriminator",
		}
	}
	var disc [discriminatorLen]byte
	copy(disc[:], data[:discriminatorLen])
	if disc != recordDiscriminator {
		return corestate.DelegationRecord{}, &corestate.ParseError{
			Msg: "missing delegation-record discriminator",
		}
	}

	decoder := bin.NewBorshDecoder(data[discriminatorLen:])

	var authority solana.PublicKey
	if err := decoder.Decode(&authority); err != nil {
		return corestate.DelegationRecord{}, &corestate.ParseError{
			Msg: "failed to decode authority: " + err.Error(),
		}
	}
	var owner solana.PublicKey
	if err := decoder.Decode(&owner); err != nil {
		return corestate.DelegationRecord{}, &corestate.ParseError{
			Msg: "failed to decode owner: " + err.Error(),
		}
	}
	delegationSlot, err := decoder.ReadUint64(bin.LE)
	if err != nil {
		return corestate.DelegationRecord{}, &corestate.ParseError{
			Msg: "failed to decode delegation slot: " + err.Error(),
		}
	}
	commitFrequencyMs, err := decoder.ReadUint64(bin.LE)
	if err != nil {
		return corestate.DelegationRecord{}, &corestate.ParseError{
			Msg: "failed to decode commit frequency: " + err.Error(),
		}
	}
	lamports, err := decoder.ReadUint64(bin.LE)
	if err != nil {
		return corestate.DelegationRecord{}, &corestate.ParseError{
			Msg: "failed to decode lamports: " + err.Error(),
		}
	}

	return corestate.DelegationRecord{
		Authority:       authority,
		Owner:           owner,
		DelegationSlot:  delegationSlot,
		CommitFrequency: corestate.CommitFrequency(time.Duration(commitFrequencyMs) * time.Millisecond),
		Lamports:        lamports,
	}, nil
}
