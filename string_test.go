package jsonschema

import "testing"

func TestString(t *testing.T) {
	runGroupFile(t, "string.json")
}
