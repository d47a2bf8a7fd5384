package jsonschema

import "testing"

func TestType(t *testing.T) {
	runGroupFile(t, "type.json")
}
