package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefResolvesThroughNestedDefsContainer(t *testing.T) {
	schemaJSON := `{
		"$defs": {
			"personal": {
				"address": {"type": "object", "properties": {"street": {"type": "string"}}}
			}
		},
		"properties": {"home": {"$ref": "#/$defs/personal/address"}}
	}`

	ctx := NewContext(8)
	root, err := ParseSchemaFromString([]byte(schemaJSON), ctx)
	require.NoError(t, err)

	assert.NoError(t, ValidateString([]byte(`{"home":{"street":"Main"}}`), root, ctx))

	err = ValidateString([]byte(`{"home":{"street":42}}`), root, ctx)
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, TypeValidationFailed, verr.Kind)
}

func TestRefToRootFragmentIsANoOp(t *testing.T) {
	ctx := NewContext(4)
	root, err := ParseSchemaFromString([]byte(`{"$ref": "#"}`), ctx)
	require.NoError(t, err)
	assert.NoError(t, ValidateValue("anything", root, ctx))
}

func TestRefToUnknownDefsKeyFails(t *testing.T) {
	ctx := NewContext(4)
	_, err := ParseSchemaFromString([]byte(`{"$defs":{"a":true},"$ref":"#/$defs/b"}`), ctx)
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, RefPathNotFoundInDefs, verr.Kind)
}

func TestRefToNonDefsContainerIsRejected(t *testing.T) {
	ctx := NewContext(4)
	_, err := ParseSchemaFromString([]byte(`{"$ref": "#/properties/name"}`), ctx)
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, RefNonSchema, verr.Kind)
}
