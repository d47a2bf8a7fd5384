package jsonschema

// InstanceType identifies the runtime kind of a decoded JSON value.
type InstanceType int

const (
	// TypeInvalid marks a value whose kind could not be determined; it
	// never satisfies any schema's "type" constraint.
	TypeInvalid InstanceType = iota
	TypeNull
	TypeBoolean
	TypeObject
	TypeArray
	TypeNumber
	TypeInteger
	TypeString
)

// String renders the InstanceType using the JSON Schema vocabulary name,
// so it can be used directly in error context and in schema "type" values.
func (t InstanceType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	case TypeString:
		return "string"
	default:
		return "invalid"
	}
}

// parseInstanceType maps a "type" keyword string to its InstanceType.
// Unknown names return TypeInvalid so the caller can reject the schema.
func parseInstanceType(name string) InstanceType {
	switch name {
	case "null":
		return TypeNull
	case "boolean":
		return TypeBoolean
	case "object":
		return TypeObject
	case "array":
		return TypeArray
	case "number":
		return TypeNumber
	case "integer":
		return TypeInteger
	case "string":
		return TypeString
	default:
		return TypeInvalid
	}
}

// SchemaKeyword enumerates every keyword the dispatch table recognizes,
// grouped the way spec §3 groups them: core, applicators, validators,
// metadata, unevaluated. The numeric value doubles as the bit index into a
// Schema record's validationFlags bit-set, so the order here must stay
// stable — append new keywords at the end, never renumber existing ones.
type SchemaKeyword int

const (
	// Core keywords.
	KeywordID SchemaKeyword = iota
	KeywordSchema
	KeywordRef
	KeywordComment
	KeywordDefs
	KeywordAnchor
	KeywordDynamicAnchor
	KeywordDynamicRef
	KeywordVocabulary

	// Applicator keywords.
	KeywordAllOf
	KeywordAnyOf
	KeywordOneOf
	KeywordIf
	KeywordThen
	KeywordElse
	KeywordNot
	KeywordProperties
	KeywordAdditionalProperties
	KeywordPatternProperties
	KeywordDependentSchemas
	KeywordPropertyNames
	KeywordContains
	KeywordItems
	KeywordPrefixItems

	// Validator keywords.
	KeywordType
	KeywordEnum
	KeywordConst
	KeywordMaxLength
	KeywordMinLength
	KeywordPattern
	KeywordExclusiveMaximum
	KeywordExclusiveMinimum
	KeywordMaximum
	KeywordMinimum
	KeywordMultipleOf
	KeywordDependentRequired
	KeywordMaxProperties
	KeywordMinProperties
	KeywordRequired
	KeywordMaxItems
	KeywordMinItems
	KeywordMaxContains
	KeywordMinContains
	KeywordUniqueItems

	// Metadata keywords (parse-only; no validate handler).
	KeywordTitle
	KeywordDescription
	KeywordDefault
	KeywordDeprecated
	KeywordExamples
	KeywordReadOnly
	KeywordWriteOnly

	// Unevaluated keywords (parsed only, never validated; see
	// DESIGN.md "unevaluatedItems / unevaluatedProperties").
	KeywordUnevaluatedItems
	KeywordUnevaluatedProperties

	numKeywords
)

// KeywordFlags is a bit-set of SchemaKeyword values, one bit per keyword
// recognized during parse. The validator runs a keyword's handler only when
// its bit is set; it still walks the whole dispatch table to find them.
type KeywordFlags uint64

func (f KeywordFlags) has(k SchemaKeyword) bool {
	return f&(1<<uint(k)) != 0
}

func (f *KeywordFlags) set(k SchemaKeyword) {
	*f |= 1 << uint(k)
}

func init() {
	if numKeywords > 64 {
		panic("jsonschema: KeywordFlags bit-set overflowed uint64")
	}
}
