package jsonschema

import "testing"

func TestEnumConst(t *testing.T) {
	runGroupFile(t, "enum_const.json")
}
