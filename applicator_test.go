package jsonschema

import "testing"

func TestApplicator(t *testing.T) {
	runGroupFile(t, "applicator.json")
}
