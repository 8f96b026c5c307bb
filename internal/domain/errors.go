package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidPrivateKey is returned when a private key can't be parsed
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrNetworkMismatch is returned when the RPC reports a different chain than configured
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrContractNotFound is returned when no artifact exists for a contract
	ErrContractNotFound = errors.New("contract not found")

	// ErrNotEnoughAccounts is returned when a network can't provide every scenario role
	ErrNotEnoughAccounts = errors.New("not enough accounts")

	// ErrVerificationFailed is returned when contract verification fails
	ErrVerificationFailed = errors.New("verification failed")

	// ErrNoPrivateKey is returned when a deployment has no signer to use
	ErrNoPrivateKey = errors.New("no private key provided")
)

// RevertError is returned when a transaction or call reverts on-chain.
// Reason is empty when the revert carried no decodable reason string.
type RevertError struct {
	Reason string
	Data   []byte
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return "execution reverted"
	}
	return fmt.Sprintf("execution reverted: %s", e.Reason)
}

// AsRevert unwraps err into a RevertError if one is in the chain.
func AsRevert(err error) (*RevertError, bool) {
	var revert *RevertError
	if errors.As(err, &revert) {
		return revert, true
	}
	return nil, false
}

// AmbiguousContractErr is returned when a contract name matches several artifacts
type AmbiguousContractErr struct {
	Name    string
	Matches []string
}

func (e AmbiguousContractErr) Error() string {
	var suggestions []string
	for _, m := range e.Matches {
		suggestions = append(suggestions, "  - "+m)
	}
	return fmt.Sprintf("multiple contracts found matching %q - use sourceName:contract format to disambiguate:\n%s",
		e.Name, strings.Join(suggestions, "\n"))
}

// ContractNotFoundErr carries fuzzy suggestions for a missing contract
type ContractNotFoundErr struct {
	Name        string
	Suggestions []string
}

func (e ContractNotFoundErr) Error() string {
	msg := fmt.Sprintf("contract %q not found in compiled artifacts", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e ContractNotFoundErr) Unwrap() error {
	return ErrContractNotFound
}
