package blockchain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/models"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// KeySigner builds signers from hex private keys
type KeySigner struct{}

// NewKeySigner creates a new private key signer provider
func NewKeySigner() *KeySigner {
	return &KeySigner{}
}

// FromPrivateKey parses a hex private key, with or without 0x prefix.
// The key itself never appears in returned errors.
func (KeySigner) FromPrivateKey(key string) (*models.Signer, error) {
	key = trimHexPrefix(key)
	if key == "" {
		return nil, domain.ErrNoPrivateKey
	}
	pk, err := crypto.HexToECDSA(key)
	if err != nil {
		return nil, fmt.Errorf("%w: expected 32 hex encoded bytes", domain.ErrInvalidPrivateKey)
	}
	return &models.Signer{
		Address:    crypto.PubkeyToAddress(pk.PublicKey),
		PrivateKey: pk,
	}, nil
}

func trimHexPrefix(key string) string {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, "0x") || strings.HasPrefix(key, "0X") {
		return key[2:]
	}
	return key
}

var _ usecase.SignerProvider = (*KeySigner)(nil)
