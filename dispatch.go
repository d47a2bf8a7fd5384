package jsonschema

// ParseFunc populates idx's record from the keyword's raw JSON value. It
// may recurse into parseSubschema for nested schemas. Returning an error
// aborts the whole parse (spec §4.3: "the parser returns the first error
// and stops").
type ParseFunc func(ctx *Context, idx SchemaIndex, raw any) error

// ValidateFunc checks instance against idx's record for one keyword,
// returning nil on success or the first failure. path is the
// JSON-pointer-style location of instance, threaded through purely for
// *Error.Path context.
type ValidateFunc func(ctx *Context, idx SchemaIndex, instance any, path string) *Error

// keywordEntry binds a keyword's JSON name to its enum variant and its two
// handlers, exactly as spec §4.2 describes: "the single source of truth
// that binds the textual keyword name, the keyword enum variant, and the
// two handlers." Either handler may be nil.
type keywordEntry struct {
	name     string
	keyword  SchemaKeyword
	parse    ParseFunc
	validate ValidateFunc
}

// dispatchTable is the constant sequence every parse walks in order (which
// keywords observe the input first) and every validator's priority derives
// from (which keyword reports the failure when several would fail).
// validateAt walks this whole table for every record and runs only the
// entries whose bit is set in the record's validationFlags; it does not
// iterate the bit-set directly, so every entry is visited whether or not
// the record uses that keyword.
var dispatchTable = []keywordEntry{
	// --- Core ---
	{"$id", KeywordID, parseKeywordID, nil},
	{"$schema", KeywordSchema, parseKeywordSchema, nil},
	{"$ref", KeywordRef, parseKeywordRef, nil},
	{"$comment", KeywordComment, parseKeywordComment, nil},
	{"$defs", KeywordDefs, parseKeywordDefs, nil},
	{"$anchor", KeywordAnchor, nil, nil},
	{"$dynamicAnchor", KeywordDynamicAnchor, nil, nil},
	{"$dynamicRef", KeywordDynamicRef, nil, nil},
	{"$vocabulary", KeywordVocabulary, nil, nil},

	// --- Applicators ---
	{"allOf", KeywordAllOf, parseKeywordAllOf, validateKeywordAllOf},
	{"anyOf", KeywordAnyOf, parseKeywordAnyOf, validateKeywordAnyOf},
	{"oneOf", KeywordOneOf, parseKeywordOneOf, validateKeywordOneOf},
	{"if", KeywordIf, parseKeywordIf, validateKeywordIf},
	{"then", KeywordThen, parseKeywordThen, nil},
	{"else", KeywordElse, parseKeywordElse, nil},
	{"not", KeywordNot, parseKeywordNot, validateKeywordNot},
	{"properties", KeywordProperties, parseKeywordProperties, validateKeywordProperties},
	{"additionalProperties", KeywordAdditionalProperties, parseKeywordAdditionalProperties, validateKeywordAdditionalProperties},
	{"patternProperties", KeywordPatternProperties, parseKeywordPatternProperties, validateKeywordPatternProperties},
	{"dependentSchemas", KeywordDependentSchemas, parseKeywordDependentSchemas, validateKeywordDependentSchemas},
	{"propertyNames", KeywordPropertyNames, parseKeywordPropertyNames, validateKeywordPropertyNames},
	{"contains", KeywordContains, parseKeywordContains, validateKeywordContains},
	{"items", KeywordItems, parseKeywordItems, validateKeywordItems},
	{"prefixItems", KeywordPrefixItems, parseKeywordPrefixItems, validateKeywordPrefixItems},

	// --- Validators ---
	{"type", KeywordType, parseKeywordType, validateKeywordType},
	{"enum", KeywordEnum, parseKeywordEnum, validateKeywordEnum},
	{"const", KeywordConst, parseKeywordConst, validateKeywordConst},
	{"maxLength", KeywordMaxLength, parseKeywordMaxLength, validateKeywordMaxLength},
	{"minLength", KeywordMinLength, parseKeywordMinLength, validateKeywordMinLength},
	{"pattern", KeywordPattern, parseKeywordPattern, validateKeywordPattern},
	{"exclusiveMaximum", KeywordExclusiveMaximum, parseKeywordExclusiveMaximum, validateKeywordExclusiveMaximum},
	{"exclusiveMinimum", KeywordExclusiveMinimum, parseKeywordExclusiveMinimum, validateKeywordExclusiveMinimum},
	{"maximum", KeywordMaximum, parseKeywordMaximum, validateKeywordMaximum},
	{"minimum", KeywordMinimum, parseKeywordMinimum, validateKeywordMinimum},
	{"multipleOf", KeywordMultipleOf, parseKeywordMultipleOf, validateKeywordMultipleOf},
	{"dependentRequired", KeywordDependentRequired, parseKeywordDependentRequired, validateKeywordDependentRequired},
	{"maxProperties", KeywordMaxProperties, parseKeywordMaxProperties, validateKeywordMaxProperties},
	{"minProperties", KeywordMinProperties, parseKeywordMinProperties, validateKeywordMinProperties},
	{"required", KeywordRequired, parseKeywordRequired, validateKeywordRequired},
	{"maxItems", KeywordMaxItems, parseKeywordMaxItems, validateKeywordMaxItems},
	{"minItems", KeywordMinItems, parseKeywordMinItems, validateKeywordMinItems},
	{"maxContains", KeywordMaxContains, parseKeywordMaxContains, nil},
	{"minContains", KeywordMinContains, parseKeywordMinContains, nil},
	{"uniqueItems", KeywordUniqueItems, parseKeywordUniqueItems, validateKeywordUniqueItems},

	// --- Metadata (parse-only) ---
	{"title", KeywordTitle, parseKeywordTitle, nil},
	{"description", KeywordDescription, parseKeywordDescription, nil},
	{"default", KeywordDefault, parseKeywordDefault, nil},
	{"deprecated", KeywordDeprecated, parseKeywordDeprecated, nil},
	{"examples", KeywordExamples, parseKeywordExamples, nil},
	{"readOnly", KeywordReadOnly, parseKeywordReadOnly, nil},
	{"writeOnly", KeywordWriteOnly, parseKeywordWriteOnly, nil},

	// --- Unevaluated (parsed only, never validated; see DESIGN.md) ---
	{"unevaluatedItems", KeywordUnevaluatedItems, parseKeywordUnevaluatedItems, nil},
	{"unevaluatedProperties", KeywordUnevaluatedProperties, parseKeywordUnevaluatedProperties, nil},
}

// dispatchTableNames is built once for parse.go's O(1) "does this key match
// a table entry" check in step 3 of the algorithm (spec §4.3).
var dispatchTableNames = func() map[string]struct{} {
	names := make(map[string]struct{}, len(dispatchTable))
	for _, e := range dispatchTable {
		names[e.name] = struct{}{}
	}
	return names
}()
