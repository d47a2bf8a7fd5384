package jsonschema

import "testing"

func TestNumeric(t *testing.T) {
	runGroupFile(t, "numeric.json")
}
