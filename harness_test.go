package jsonschema

import (
	"bytes"
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// testCase and testGroup mirror spec §4.8's test-group shape: a JSON file
// holding an array of {schema, description, tests:[{description,data,valid}]}
// entries, grounded on the teacher's testJSONSchemaTestSuiteWithFilePath
// (tests/utils.go).
type testCase struct {
	Description string `json:"description"`
	Data        any    `json:"data"`
	Valid       bool   `json:"valid"`
}

type testGroup struct {
	Description string     `json:"description"`
	Schema      any        `json:"schema"`
	Tests       []testCase `json:"tests"`
}

// runGroupFile loads testdata/name, compiles each group's schema once, and
// asserts every nested test's validate outcome matches its "valid" flag.
// Decoding goes through a json.Number-aware decoder, same as decodeJSON,
// so integer/fractional distinction survives into the test data.
func runGroupFile(t *testing.T, name string) {
	t.Helper()

	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var groups []testGroup
	require.NoError(t, dec.Decode(&groups))

	for _, group := range groups {
		group := group
		t.Run(group.Description, func(t *testing.T) {
			ctx := NewContext(8)
			root, err := ParseSchemaFromJSONValue(group.Schema, ctx)
			require.NoError(t, err, "parsing schema for group %q", group.Description)

			for _, tc := range group.Tests {
				tc := tc
				t.Run(tc.Description, func(t *testing.T) {
					err := ValidateValue(tc.Data, root, ctx)
					if tc.Valid {
						require.NoError(t, err, "expected instance to validate")
					} else {
						require.Error(t, err, "expected instance to fail validation")
					}
				})
			}
		})
	}
}
