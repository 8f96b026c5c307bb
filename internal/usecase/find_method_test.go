package usecase

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overloadedABI = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"id","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"id","type":"uint256"}],"outputs":[]}
]`

func TestFindMethod(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(overloadedABI))
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		arity  int
		sig    string
		errMsg string
	}{
		{
			name:   "exact name",
			method: "transfer",
			arity:  2,
			sig:    "transfer(address,uint256)",
		},
		{
			name:   "overload by arity",
			method: "transfer",
			arity:  3,
			sig:    "transfer(address,address,uint256)",
		},
		{
			name:   "wrong arity",
			method: "transfer",
			arity:  1,
			errMsg: "transfer(address,uint256) takes 2 arguments, got 1",
		},
		{
			name:   "unknown method",
			method: "approve",
			arity:  2,
			errMsg: "method approve not found in ABI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := findMethod(&parsed, tt.method, tt.arity)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sig, m.Sig)
		})
	}
}
