package models

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// Signer is an identity able to authorize transactions
type Signer struct {
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey `json:"-"`
}

// PendingTx is a broadcast transaction that has not been confirmed yet
type PendingTx struct {
	Hash            common.Hash
	From            common.Address
	Nonce           uint64
	ContractAddress common.Address // Set for contract creations
}

// Receipt is the confirmed result of a transaction
type Receipt struct {
	TxHash          common.Hash
	BlockNumber     uint64
	GasUsed         uint64
	ContractAddress common.Address
	Success         bool
}
