package jsonschema

import (
	"math/big"
	"regexp"
)

// SchemaIndex is an opaque handle into a Context's arena. Indices are
// never owning references — a Schema record holds only integers, which is
// how spec §4.1/§9 breaks the ownership cycle that $ref introduces.
type SchemaIndex int

const invalidIndex SchemaIndex = -1

// patternChild pairs one compiled patternProperties regex with the index
// of its subschema; holding both in one element keeps each regex paired
// with its subschema by construction (parseKeywordPatternProperties).
type patternChild struct {
	regex  *regexp.Regexp
	schema SchemaIndex
}

// namedChild is a subschema paired with the key or property name that
// addressed it — used for propertiesChildren and dependentSchemas, where
// the validator needs the originating name back.
type namedChild struct {
	name   string
	schema SchemaIndex
}

// Schema is one arena record. Every index-typed field is a pool index into
// the owning Context's arena, valid for the life of that Context (spec §3
// invariants). A record is either a boolean-literal schema (isBoolSchema
// set, every other field meaningless) or a normal object-schema record.
type Schema struct {
	// Identity.
	schemaURI   string
	id          string
	title       string
	comment     string
	description string
	ref         string
	defs        map[string]SchemaIndex
	name        string // not assigned by the parser; property and dependentSchemas names are kept in namedChild

	// Form flags.
	isBoolSchema   bool
	boolSchemaVal  bool
	isEmptyContainer bool

	// Keyword set: validationFlags[K] is set iff keyword K's parse handler
	// ran successfully on this record. The validator consults only this
	// bit-set, never re-deriving it from the dispatch table.
	validationFlags KeywordFlags

	// Applicator storage.
	propertiesChildren   []namedChild
	patternProperties    []patternChild
	additionalProperties SchemaIndex
	propertyNames        SchemaIndex
	contains             SchemaIndex
	items                SchemaIndex
	ifSchema             SchemaIndex
	thenSchema           SchemaIndex
	elseSchema           SchemaIndex
	notSchema            SchemaIndex
	allOf                []SchemaIndex
	anyOf                []SchemaIndex
	oneOf                []SchemaIndex
	prefixItems          []SchemaIndex
	dependentSchemas     []namedChild
	unevaluatedItems     SchemaIndex
	unevaluatedProperties SchemaIndex

	// Validator storage. Presence of each optional keyword is tracked
	// solely by validationFlags, not by a parallel "Set" bool per field —
	// the bit is already guaranteed set before any validate handler sees
	// the record.
	types             []InstanceType // declared "type"; len==1 for the single-string form
	constValue        any
	enums             []any
	minLength         int
	maxLength         int
	maxItems          int
	minItems          int
	maxProperties     int
	minProperties     int
	maxContains       int
	minContains       int
	minimum           *big.Rat
	maximum           *big.Rat
	exclusiveMinimum  *big.Rat
	exclusiveMaximum  *big.Rat
	multipleOf        *big.Rat
	required          []string
	dependentRequired map[string][]string
	uniqueItems       bool
	pattern           *regexp.Regexp
	patternSource     string

	// Metadata (parse-only, kept for introspection; never consulted by the
	// validator).
	defaultValue any
	defaultSet   bool
	deprecated   bool
	examples     []any
	readOnly     bool
	writeOnly    bool

	// Other: unrecognized top-level keys, parsed recursively so $ref paths
	// can descend through arbitrary containers nested inside $defs
	// (spec §4.3 step 3).
	otherKeys map[string]SchemaIndex
}

func newEmptySchema() *Schema {
	return &Schema{
		additionalProperties:  invalidIndex,
		propertyNames:         invalidIndex,
		contains:              invalidIndex,
		items:                 invalidIndex,
		ifSchema:              invalidIndex,
		thenSchema:            invalidIndex,
		elseSchema:            invalidIndex,
		notSchema:             invalidIndex,
		unevaluatedItems:      invalidIndex,
		unevaluatedProperties: invalidIndex,
	}
}
