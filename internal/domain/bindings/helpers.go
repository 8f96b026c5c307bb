package bindings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/samber/lo"
)

// ABI exposes the parsed interface so callers can pack calls by name
func (marketplace *Marketplace) ABI() *abi.ABI { return &marketplace.abi }

// ABI exposes the parsed interface so callers can pack calls by name
func (nFT *NFT) ABI() *abi.ABI { return &nFT.abi }

// ABI exposes the parsed interface so callers can pack calls by name
func (deployment *Deployment) ABI() *abi.ABI { return &deployment.abi }

// Interfaces maps artifact contract names to the interface the harness drives
func Interfaces() map[string]*abi.ABI {
	return map[string]*abi.ABI{
		"Marketplace": NewMarketplace().ABI(),
		"NFT":         NewNFT().ABI(),
		"Deployment":  NewDeployment().ABI(),
	}
}

// InterfaceMismatchError lists the methods an artifact is missing
type InterfaceMismatchError struct {
	Contract string
	Missing  []string
}

func (e *InterfaceMismatchError) Error() string {
	return fmt.Sprintf("artifact %s does not implement: %s", e.Contract, strings.Join(e.Missing, ", "))
}

// CheckImplements reports every method of want whose signature is absent from got.
// Mutability is compared too: a payable method compiled as nonpayable rejects value.
func CheckImplements(contract string, want, got *abi.ABI) error {
	bySig := lo.KeyBy(lo.Values(got.Methods), func(m abi.Method) string { return m.Sig })

	var missing []string
	for _, m := range want.Methods {
		have, ok := bySig[m.Sig]
		if !ok {
			missing = append(missing, m.Sig)
			continue
		}
		if m.IsPayable() && !have.IsPayable() {
			missing = append(missing, m.Sig+" payable")
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &InterfaceMismatchError{Contract: contract, Missing: missing}
}
