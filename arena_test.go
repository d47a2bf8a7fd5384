package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaAllocReturnsStableIndices(t *testing.T) {
	ctx := NewContext(0)
	first := ctx.alloc()
	for i := 0; i < 100; i++ {
		ctx.alloc()
	}
	// first must still resolve to the same record after many reallocations.
	assert.NotNil(t, ctx.get(first))
	assert.Equal(t, 101, ctx.Len())
}

func TestBoolSchemaLiteralsAlwaysOrNeverValidate(t *testing.T) {
	ctx := NewContext(4)
	trueRoot, err := ParseSchemaFromJSONValue(true, ctx)
	assert := assert.New(t)
	assert.NoError(err)
	assert.NoError(ValidateValue(map[string]any{"anything": 1}, trueRoot, ctx))

	falseRoot, err := ParseSchemaFromJSONValue(false, ctx)
	assert.NoError(err)
	err = ValidateValue(1, falseRoot, ctx)
	var verr *Error
	assert.ErrorAs(err, &verr)
	assert.Equal(BoolSchemaFalse, verr.Kind)
}
