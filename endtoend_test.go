package jsonschema

import (
	"strconv"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndPersonSchema(t *testing.T) {
	schemaJSON := `{
		"$id": "x",
		"type": "object",
		"properties": {
			"firstName": {"type": "string"},
			"lastName": {"type": "string"},
			"age": {"type": "integer", "minimum": 21}
		}
	}`
	ctx := NewContext(8)
	root, err := ParseSchemaFromString([]byte(schemaJSON), ctx)
	require.NoError(t, err)

	assert.NoError(t, ValidateString([]byte(`{"firstName":"John","lastName":"Doe","age":21}`), root, ctx))

	err = ValidateString([]byte(`{"firstName":"John","lastName":"Doe","age":20}`), root, ctx)
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MinimumValidationFailed, verr.Kind)
}

func TestEndToEndNestedPropertiesAreNotImplicitlyRequired(t *testing.T) {
	schemaJSON := `{
		"type": "object",
		"properties": {
			"name": {
				"type": "object",
				"properties": {"first": {"type": "string"}}
			}
		}
	}`
	ctx := NewContext(8)
	root, err := ParseSchemaFromString([]byte(schemaJSON), ctx)
	require.NoError(t, err)
	assert.NoError(t, ValidateString([]byte(`{}`), root, ctx))
}

func TestEndToEndContainsMinMax(t *testing.T) {
	ctx := NewContext(8)
	root, err := ParseSchemaFromString([]byte(`{"contains":{"type":"integer"},"minContains":2,"maxContains":3}`), ctx)
	require.NoError(t, err)

	assert.NoError(t, ValidateString([]byte(`[1,"a",2]`), root, ctx))

	err = ValidateString([]byte(`[1]`), root, ctx)
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MinContainsValidationFailed, verr.Kind)

	err = ValidateString([]byte(`[1,2,3,4]`), root, ctx)
	require.Error(t, err)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MaxContainsValidationFailed, verr.Kind)
}

func TestEndToEndIfThenElse(t *testing.T) {
	ctx := NewContext(8)
	root, err := ParseSchemaFromString([]byte(`{"if":{"type":"integer"},"then":{"minimum":0},"else":{"type":"string"}}`), ctx)
	require.NoError(t, err)

	assert.NoError(t, ValidateValue(jsonNumber(5), root, ctx))

	err = ValidateValue(jsonNumber(-1), root, ctx)
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, IfThenValidationFailed, verr.Kind)

	assert.NoError(t, ValidateValue("hi", root, ctx))

	err = ValidateValue(true, root, ctx)
	require.Error(t, err)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, IfElseValidationFailed, verr.Kind)
}

func jsonNumber(n int) any {
	return json.Number(strconv.Itoa(n))
}
