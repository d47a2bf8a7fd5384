package jsonschema

import "fmt"

// ErrorKind is the flat, grouped enumeration of everything that can go
// wrong while parsing a schema or validating an instance against one.
// Grouping follows the teacher's errors.go convention of commented
// var (...) blocks by origin, collapsed here into a single typed
// enumeration because the spec calls for "one flat enumeration of error
// kinds" rather than a family of sentinel error values.
type ErrorKind int

const (
	// === Parse / decode errors ===
	JSONParseError ErrorKind = iota

	// === Schema shape errors (wrong JSON kind for a keyword's value) ===
	InvalidInstanceType
	InvalidNumberType
	InvalidIntegerType
	InvalidObjectType
	InvalidStringType
	InvalidArrayType
	InvalidEnumType
	ExpectedArrayOrString

	// === Regex compilation errors ===
	RegexCreationFailed
	RegexParserError
	RegexCompilerError

	// === Validation failures, one per keyword ===
	TypeValidationFailed
	EnumValidationFailed
	ConstValidationFailed
	MinLengthValidationFailed
	MaxLengthValidationFailed
	PatternValidationFailed
	MinimumValidationFailed
	MaximumValidationFailed
	ExclusiveMinValidationFailed
	ExclusiveMaxValidationFailed
	MultipleOfValidationFailed
	RequiredValidationFailed
	MinPropertiesValidationFailed
	MaxPropertiesValidationFailed
	MinItemsValidationFailed
	MaxItemsValidationFailed
	MinContainsValidationFailed
	MaxContainsValidationFailed
	PropertiesValidationFailed
	ItemsValidationFailed
	PrefixItemsValidationFailed
	AllOfValidationFailed
	AnyOfValidationFailed
	OneOfValidationFailed
	IfThenValidationFailed
	IfElseValidationFailed
	NotValidationFailed
	DependentSchemasValidationFailed
	DependentRequiredValidationFailed
	UniqueItemsValidationFailed
	AdditionalPropertiesValidationFailed
	PropertyNamesValidationFailed
	PatternPropertiesValidationFailed
	ContainsValidationFailed

	// === Boolean-literal schemas ===
	BoolSchemaFalse

	// === $ref resolution errors ===
	RefNonSchema
	RefSchemaNotFound
	RefPathNotFoundInDefs

	// === Allocation ===
	AllocationError
)

var errorKindNames = map[ErrorKind]string{
	JSONParseError:                       "json_parse_error",
	InvalidInstanceType:                  "invalid_instance_type",
	InvalidNumberType:                    "invalid_number_type",
	InvalidIntegerType:                   "invalid_integer_type",
	InvalidObjectType:                    "invalid_object_type",
	InvalidStringType:                    "invalid_string_type",
	InvalidArrayType:                     "invalid_array_type",
	InvalidEnumType:                      "invalid_enum_type",
	ExpectedArrayOrString:                "expected_array_or_string",
	RegexCreationFailed:                  "regex_creation_failed",
	RegexParserError:                     "regex_parser_error",
	RegexCompilerError:                   "regex_compiler_error",
	TypeValidationFailed:                 "type_validation_failed",
	EnumValidationFailed:                 "enum_validation_failed",
	ConstValidationFailed:                "const_validation_failed",
	MinLengthValidationFailed:            "min_length_validation_failed",
	MaxLengthValidationFailed:            "max_length_validation_failed",
	PatternValidationFailed:              "pattern_validation_failed",
	MinimumValidationFailed:              "minimum_validation_failed",
	MaximumValidationFailed:              "maximum_validation_failed",
	ExclusiveMinValidationFailed:         "exclusive_min_validation_failed",
	ExclusiveMaxValidationFailed:         "exclusive_max_validation_failed",
	MultipleOfValidationFailed:           "multiple_of_validation_failed",
	RequiredValidationFailed:             "required_validation_failed",
	MinPropertiesValidationFailed:        "min_properties_validation_failed",
	MaxPropertiesValidationFailed:        "max_properties_validation_failed",
	MinItemsValidationFailed:             "min_items_validation_failed",
	MaxItemsValidationFailed:             "max_items_validation_failed",
	MinContainsValidationFailed:          "min_contains_validation_failed",
	MaxContainsValidationFailed:          "max_contains_validation_failed",
	PropertiesValidationFailed:           "properties_validation_failed",
	ItemsValidationFailed:                "items_validation_failed",
	PrefixItemsValidationFailed:          "prefix_items_validation_failed",
	AllOfValidationFailed:                "all_of_validation_failed",
	AnyOfValidationFailed:                "any_of_validation_failed",
	OneOfValidationFailed:                "one_of_validation_failed",
	IfThenValidationFailed:               "if_then_validation_failed",
	IfElseValidationFailed:               "if_else_validation_failed",
	NotValidationFailed:                  "not_validation_failed",
	DependentSchemasValidationFailed:     "dependent_schemas_validation_failed",
	DependentRequiredValidationFailed:    "dependent_required_validation_failed",
	UniqueItemsValidationFailed:          "unique_items_validation_failed",
	AdditionalPropertiesValidationFailed: "additional_properties_validation_failed",
	PropertyNamesValidationFailed:        "property_names_validation_failed",
	PatternPropertiesValidationFailed:    "pattern_properties_validation_failed",
	ContainsValidationFailed:             "contains_validation_failed",
	BoolSchemaFalse:                      "bool_schema_false",
	RefNonSchema:                         "ref_non_schema",
	RefSchemaNotFound:                    "ref_schema_not_found",
	RefPathNotFoundInDefs:                "ref_path_not_found_in_defs",
	AllocationError:                      "allocation_error",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown_error"
}

// Error wraps an ErrorKind with the schema/instance-pointer context that
// produced it. Handlers return *Error rather than a bare sentinel so a
// caller can still recover the ErrorKind while getting a human-readable
// Error() string, mirroring the teacher's NewEvaluationError(keyword,
// code, message, params) shape without carrying a full localization
// bundle (see SPEC_FULL.md §9/§10 for why go-i18n was not wired here).
type Error struct {
	Kind    ErrorKind
	Keyword string // textual keyword name, empty for non-keyword errors
	Path    string // JSON-pointer-ish path to the offending schema or instance node
}

func newError(kind ErrorKind, keyword, path string) *Error {
	return &Error{Kind: kind, Keyword: keyword, Path: path}
}

func (e *Error) Error() string {
	if e.Keyword == "" {
		return fmt.Sprintf("%s at %s", e.Kind, pathOrRoot(e.Path))
	}
	return fmt.Sprintf("%s: keyword %q at %s", e.Kind, e.Keyword, pathOrRoot(e.Path))
}

// Is lets errors.Is(err, target) compare by ErrorKind rather than by
// identity, so callers can match with errors.Is(err, &Error{Kind: ...})
// without needing the exact Keyword/Path populated.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func pathOrRoot(path string) string {
	if path == "" {
		return "#"
	}
	return path
}
