package jsonschema

import "testing"

func TestObject(t *testing.T) {
	runGroupFile(t, "object.json")
}
