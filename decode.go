package jsonschema

import (
	"bytes"
	"math/big"

	"github.com/goccy/go-json"
)

// decodeJSON parses raw JSON bytes into the library's value model: nil,
// bool, json.Number, string, []any, or map[string]any (insertion order is
// not preserved by Go maps, which matches spec §3's note that object key
// order is immaterial to validation). Numbers decode to json.Number rather
// than float64 so classifyType can tell "42" from "42.0" the way spec §4.5
// requires, grounded on the teacher's getDataType (utils.go), which
// special-cases json.Number for exactly this reason.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, newError(JSONParseError, "", "#")
	}
	return v, nil
}

// classifyType determines a decoded value's InstanceType, treating any
// json.Number with a zero fractional part as TypeInteger and everything
// else numeric as TypeNumber, per spec §4.5's "type" contract.
func classifyType(v any) InstanceType {
	switch val := v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBoolean
	case json.Number:
		if isIntegerNumber(val) {
			return TypeInteger
		}
		return TypeNumber
	case float64:
		if float64(int64(val)) == val {
			return TypeInteger
		}
		return TypeNumber
	case string:
		return TypeString
	case []any:
		return TypeArray
	case map[string]any:
		return TypeObject
	default:
		return TypeInvalid
	}
}

// isIntegerNumber reports whether a json.Number has a zero fractional
// part, without losing precision the way a float64 round-trip would for
// large integers.
func isIntegerNumber(n json.Number) bool {
	s := string(n)
	if _, ok := new(big.Int).SetString(s, 10); ok {
		return true
	}
	f, ok := new(big.Float).SetString(s)
	if !ok {
		return false
	}
	_, acc := f.Int(nil)
	return acc == big.Exact
}

// toRat converts a decoded numeric value (json.Number or float64) to an
// exact *big.Rat, returning false if v is not numeric.
func toRat(v any) (*big.Rat, bool) {
	switch val := v.(type) {
	case json.Number:
		r, ok := new(big.Rat).SetString(string(val))
		return r, ok
	case float64:
		r := new(big.Rat).SetFloat64(val)
		return r, r != nil
	default:
		return nil, false
	}
}
