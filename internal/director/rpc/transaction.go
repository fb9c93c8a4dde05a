package rpc

import (
	"encoding/base64"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// decodedTransactionAccounts implements transwise.AccountsHolder over a
// decoded wire transaction's account keys, classified by the standard
// Solana message-header layout: signed-writable, signed-readonly,
// unsigned-writable, unsigned-readonly, in that order.
type decodedTransactionAccounts struct {
	readonly []solana.PublicKey
	writable []solana.PublicKey
	payer    solana.PublicKey
}

func (d decodedTransactionAccounts) Readonly() []solana.PublicKey { return d.readonly }
func (d decodedTransactionAccounts) Writable() []solana.PublicKey { return d.writable }
func (d decodedTransactionAccounts) Payer() solana.PublicKey      { return d.payer }

// decodeTransaction decodes a base58 or base64 wire-encoded transaction
// and classifies its account keys into readonly/writable/payer lists.
func decodeTransaction(data, encoding string) (*solana.Transaction, decodedTransactionAccounts, error) {
	raw, err := decodeWire(data, encoding)
	if err != nil {
		return nil, decodedTransactionAccounts{}, err
	}

	tx, err := solana.TransactionFromBytes(raw)
	if err != nil {
		return nil, decodedTransactionAccounts{}, fmt.Errorf("failed to deserialize transaction: %w", err)
	}

	accounts := classifyAccounts(tx)
	return tx, accounts, nil
}

func decodeWire(data, encoding string) ([]byte, error) {
	switch encoding {
	case "", "base58":
		raw, err := base58.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("invalid base58 transaction: %w", err)
		}
		return raw, nil
	case "base64":
		raw, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 transaction: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s. Supported encodings: base58, base64", encoding)
	}
}

func classifyAccounts(tx *solana.Transaction) decodedTransactionAccounts {
	keys := tx.Message.AccountKeys
	header := tx.Message.Header

	numRequiredSignatures := int(header.NumRequiredSignatures)
	numReadonlySigned := int(header.NumReadonlySignedAccounts)
	numReadonlyUnsigned := int(header.NumReadonlyUnsignedAccounts)

	var readonly, writable []solana.PublicKey
	for i, key := range keys {
		signed := i < numRequiredSignatures
		var isReadonly bool
		if signed {
			isReadonly = i >= numRequiredSignatures-numReadonlySigned
		} else {
			isReadonly = i >= len(keys)-numReadonlyUnsigned
		}
		if isReadonly {
			readonly = append(readonly, key)
		} else {
			writable = append(writable, key)
		}
	}

	var payer solana.PublicKey
	if len(keys) > 0 {
		payer = keys[0]
	}

	return decodedTransactionAccounts{readonly: readonly, writable: writable, payer: payer}
}
