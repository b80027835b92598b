package contest

import (
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
)

// NormalizeBigInts walks a decoded contract value and replaces every big
// integer with its base-10 string representation. The view layer is not
// guaranteed native big-integer support, so nothing wider than the values a
// JSON number can hold may cross the gateway boundary. Addresses become
// their checksummed hex form on the way through.
func NormalizeBigInts(v interface{}) interface{} {
	switch x := v.(type) {
	case nil:
		return nil
	case *big.Int:
		if x == nil {
			return nil
		}
		return x.String()
	case big.Int:
		return x.String()
	case common.Address:
		return x.Hex()
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = NormalizeBigInts(e)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, e := range x {
			out[k] = NormalizeBigInts(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		return NormalizeBigInts(rv.Elem().Interface())

	case reflect.Slice:
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = NormalizeBigInts(rv.Index(i).Interface())
		}
		return out

	case reflect.Struct:
		// Decoded tuples surface as structs; flatten into a field map so
		// callers never touch positional indices.
		out := make(map[string]interface{}, rv.NumField())
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			out[t.Field(i).Name] = NormalizeBigInts(rv.Field(i).Interface())
		}
		return out

	default:
		return v
	}
}
