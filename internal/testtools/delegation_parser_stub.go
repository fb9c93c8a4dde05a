package testtools

import (
	"errors"

	"github.com/synnergylabs/conduit/internal/corestate"
)

// DelegationParserStub returns a fixed record, or a parse error when none
// has been set, mirroring original_source/test-tools/src/delegation_record_parser_stub.rs.
type DelegationParserStub struct {
	nextRecord *corestate.DelegationRecord
}

// NewDelegationParserStub builds a stub that fails to parse until
// SetNextRecord is called.
func NewDelegationParserStub() *DelegationParserStub {
	return &DelegationParserStub{}
}

// SetNextRecord makes the next (and all subsequent) TryParse calls succeed
// with record.
func (s *DelegationParserStub) SetNextRecord(record corestate.DelegationRecord) {
	s.nextRecord = &record
}

func (s *DelegationParserStub) TryParse(_ []byte) (corestate.DelegationRecord, error) {
	if s.nextRecord == nil {
		return corestate.DelegationRecord{}, errors.New("stub: no record configured")
	}
	return *s.nextRecord, nil
}
