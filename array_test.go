package jsonschema

import "testing"

func TestArray(t *testing.T) {
	runGroupFile(t, "array.json")
}
