package usecase

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/mkt/internal/domain"
)

// AddressLookup resolves `$name` references to addresses
type AddressLookup func(name string) (common.Address, bool)

// ParseArgs converts raw values (CLI strings or decoded YAML) into the Go types
// the ABI packer expects for the given inputs.
func ParseArgs(inputs abi.Arguments, raw []any, lookup AddressLookup) ([]any, error) {
	if len(raw) != len(inputs) {
		return nil, fmt.Errorf("expected %d arguments (%s), got %d", len(inputs), describeInputs(inputs), len(raw))
	}
	out := make([]any, len(raw))
	for i, input := range inputs {
		v, err := coerce(input.Type, raw[i], lookup)
		if err != nil {
			name := input.Name
			if name == "" {
				name = strconv.Itoa(i)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, input.Type.String(), err)
		}
		out[i] = v
	}
	return out, nil
}

// StringArgs adapts CLI string arguments for ParseArgs
func StringArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

func describeInputs(inputs abi.Arguments) string {
	parts := make([]string, len(inputs))
	for i, in := range inputs {
		parts[i] = strings.TrimSpace(in.Type.String() + " " + in.Name)
	}
	return strings.Join(parts, ", ")
}

func coerce(t abi.Type, v any, lookup AddressLookup) (any, error) {
	if ref, ok := domain.ParseRef(v); ok {
		if t.T != abi.AddressTy {
			return nil, fmt.Errorf("reference $%s used for a non-address parameter", ref)
		}
		if lookup == nil {
			return nil, fmt.Errorf("references are not supported here")
		}
		addr, found := lookup(ref)
		if !found {
			return nil, fmt.Errorf("unknown reference $%s", ref)
		}
		return addr, nil
	}

	switch t.T {
	case abi.AddressTy:
		return toAddress(v)
	case abi.UintTy, abi.IntTy:
		n, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		return sizedInt(t, n)
	case abi.BoolTy:
		return toBool(v)
	case abi.StringTy:
		return fmt.Sprint(v), nil
	case abi.BytesTy:
		return toBytes(v)
	case abi.FixedBytesTy:
		b, err := toBytes(v)
		if err != nil {
			return nil, err
		}
		if len(b) > t.Size {
			return nil, fmt.Errorf("value has %d bytes, type holds %d", len(b), t.Size)
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil
	case abi.SliceTy, abi.ArrayTy:
		items, err := toList(v)
		if err != nil {
			return nil, err
		}
		if t.T == abi.ArrayTy && len(items) != t.Size {
			return nil, fmt.Errorf("expected %d elements, got %d", t.Size, len(items))
		}
		var out reflect.Value
		if t.T == abi.ArrayTy {
			out = reflect.New(t.GetType()).Elem()
		} else {
			out = reflect.MakeSlice(t.GetType(), len(items), len(items))
		}
		for i, item := range items {
			elem, err := coerce(*t.Elem, item, lookup)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out.Index(i).Set(reflect.ValueOf(elem))
		}
		return out.Interface(), nil
	default:
		return nil, fmt.Errorf("unsupported parameter type %s", t.String())
	}
}

func toAddress(v any) (common.Address, error) {
	switch a := v.(type) {
	case common.Address:
		return a, nil
	case string:
		if !common.IsHexAddress(a) {
			return common.Address{}, fmt.Errorf("%q: %w", a, domain.ErrInvalidAddress)
		}
		return common.HexToAddress(a), nil
	default:
		return common.Address{}, fmt.Errorf("%v: %w", v, domain.ErrInvalidAddress)
	}
}

func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return new(big.Int).Set(n), nil
	case int:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("%v is not an integer", n)
		}
		b, _ := big.NewFloat(n).Int(nil)
		return b, nil
	case string:
		b, ok := new(big.Int).SetString(strings.TrimSpace(n), 0)
		if !ok {
			return nil, fmt.Errorf("%q is not an integer", n)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%v (%T) is not an integer", v, v)
	}
}

// sizedInt converts n to the Go type go-ethereum packs for the integer type
func sizedInt(t abi.Type, n *big.Int) (any, error) {
	unsigned := t.T == abi.UintTy
	if unsigned && n.Sign() < 0 {
		return nil, fmt.Errorf("%s is negative", n)
	}
	bits := n.BitLen()
	if !unsigned && n.Sign() < 0 {
		bits = new(big.Int).Add(n, big.NewInt(1)).BitLen()
	}
	limit := t.Size
	if !unsigned {
		limit--
	}
	if bits > limit {
		return nil, fmt.Errorf("%s overflows %s", n, t.String())
	}

	switch {
	case t.Size == 8 && unsigned:
		return uint8(n.Uint64()), nil
	case t.Size == 16 && unsigned:
		return uint16(n.Uint64()), nil
	case t.Size == 32 && unsigned:
		return uint32(n.Uint64()), nil
	case t.Size == 64 && unsigned:
		return n.Uint64(), nil
	case t.Size == 8:
		return int8(n.Int64()), nil
	case t.Size == 16:
		return int16(n.Int64()), nil
	case t.Size == 32:
		return int32(n.Int64()), nil
	case t.Size == 64:
		return n.Int64(), nil
	default:
		return n, nil
	}
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("%q is not a boolean", b)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("%v (%T) is not a boolean", v, v)
	}
}

func toBytes(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		if !strings.HasPrefix(b, "0x") {
			b = "0x" + b
		}
		decoded, err := hexutil.Decode(b)
		if err != nil {
			return nil, fmt.Errorf("invalid hex bytes: %w", err)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%v (%T) is not hex bytes", v, v)
	}
}

func toList(v any) ([]any, error) {
	switch l := v.(type) {
	case []any:
		return l, nil
	case string:
		// CLI form: comma separated, optionally wrapped in brackets
		s := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(l), "["), "]")
		if s == "" {
			return nil, nil
		}
		parts := strings.Split(s, ",")
		out := make([]any, len(parts))
		for i, p := range parts {
			out[i] = strings.TrimSpace(p)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%v (%T) is not a list", v, v)
	}
}
