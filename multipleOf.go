package jsonschema

import "math/big"

func parseKeywordMultipleOf(ctx *Context, idx SchemaIndex, raw any) error {
	r, ok := toRat(raw)
	if !ok || r.Sign() <= 0 {
		return newError(InvalidNumberType, "multipleOf", "#")
	}
	ctx.get(idx).multipleOf = r
	return nil
}

// validateKeywordMultipleOf divides as exact rationals so values like 0.1
// never misclassify due to binary floating-point rounding (spec §4.5).
func validateKeywordMultipleOf(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	value, ok := toRat(instance)
	if !ok {
		return nil
	}
	quotient := new(big.Rat).Quo(value, ctx.get(idx).multipleOf)
	if !quotient.IsInt() {
		return newError(MultipleOfValidationFailed, "multipleOf", path)
	}
	return nil
}
