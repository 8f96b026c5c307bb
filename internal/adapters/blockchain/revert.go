package blockchain

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/mkt/internal/domain"
)

// Node specific renderings of a revert reason, checked in order
var revertMessagePrefixes = []string{
	"reverted with reason string '",                      // hardhat
	"execution reverted: ",                               // geth, anvil
	"VM Exception while processing transaction: revert ", // ganache
}

// revertFromError extracts a revert from an RPC error. The ABI encoded revert
// payload is preferred; the node's message is parsed when no payload is attached.
func revertFromError(err error) (*domain.RevertError, bool) {
	if err == nil {
		return nil, false
	}
	if revert, ok := domain.AsRevert(err); ok {
		return revert, true
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data := revertData(dataErr.ErrorData()); len(data) > 0 {
			revert := &domain.RevertError{Data: data}
			if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
				revert.Reason = reason
			} else if reason, ok := reasonFromMessage(err.Error()); ok {
				revert.Reason = reason
			}
			return revert, true
		}
	}

	msg := err.Error()
	if reason, ok := reasonFromMessage(msg); ok {
		return &domain.RevertError{Reason: reason}, true
	}
	if strings.Contains(msg, "execution reverted") || strings.Contains(msg, "Transaction reverted") {
		return &domain.RevertError{}, true
	}
	return nil, false
}

func revertData(v any) []byte {
	switch d := v.(type) {
	case string:
		b, err := hexutil.Decode(d)
		if err != nil {
			return nil
		}
		return b
	case []byte:
		return d
	case map[string]any:
		// some nodes nest the payload: {"data": "0x..."}
		return revertData(d["data"])
	default:
		return nil
	}
}

func reasonFromMessage(msg string) (string, bool) {
	for _, prefix := range revertMessagePrefixes {
		idx := strings.Index(msg, prefix)
		if idx == -1 {
			continue
		}
		reason := msg[idx+len(prefix):]
		if strings.HasSuffix(prefix, "'") {
			end := strings.LastIndex(reason, "'")
			if end == -1 {
				continue
			}
			reason = reason[:end]
		}
		if strings.HasPrefix(reason, "0x") && !strings.Contains(reason, " ") {
			// undecodable custom error selector
			return "", false
		}
		return reason, true
	}
	return "", false
}
