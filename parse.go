package jsonschema

import "log"

// ParseSchemaFromString decodes text as JSON and parses it as the root
// schema of ctx, per spec §6's parse_schema_from_string.
func ParseSchemaFromString(text []byte, ctx *Context) (SchemaIndex, error) {
	value, err := decodeJSON(text)
	if err != nil {
		return invalidIndex, err
	}
	return ParseSchemaFromJSONValue(value, ctx)
}

// ParseSchemaFromJSONValue parses an already-decoded JSON value as the
// root schema of ctx, then runs resolveRefs, matching spec §3's lifecycle:
// "parse_schema_from_json_value... appends... and records any $ref paths
// that need resolving. resolve_refs rewrites each referring schema."
func ParseSchemaFromJSONValue(value any, ctx *Context) (SchemaIndex, error) {
	idx, err := parseSubschema(ctx, value)
	if err != nil {
		return invalidIndex, err
	}
	ctx.root = idx
	if err := resolveRefs(ctx, idx); err != nil {
		return invalidIndex, err
	}
	return idx, nil
}

// parseSubschema implements the parser algorithm of spec §4.3. It is the
// single recursion point every applicator's parse handler calls to parse
// a nested schema value.
func parseSubschema(ctx *Context, value any) (SchemaIndex, error) {
	switch v := value.(type) {
	case bool:
		idx := ctx.alloc()
		s := ctx.get(idx)
		s.isBoolSchema = true
		s.boolSchemaVal = v
		return idx, nil
	case map[string]any:
		return parseSchemaObject(ctx, v)
	default:
		return invalidIndex, newError(InvalidObjectType, "", "#")
	}
}

func parseSchemaObject(ctx *Context, obj map[string]any) (SchemaIndex, error) {
	idx := ctx.alloc()
	matched := false

	for _, entry := range dispatchTable {
		raw, present := obj[entry.name]
		if !present {
			continue
		}
		matched = true
		if entry.parse == nil {
			log.Printf("jsonschema: keyword %q has no parse handler, ignoring", entry.name)
			continue
		}
		if err := entry.parse(ctx, idx, raw); err != nil {
			return invalidIndex, err
		}
		ctx.get(idx).validationFlags.set(entry.keyword)
	}

	// Step 3: any key not in the dispatch table is parsed recursively as a
	// subschema and stashed in otherKeys, so $ref paths like
	// "#/$defs/personal/address" can descend through non-vocabulary
	// containers nested inside $defs (spec §4.3 step 3, §4.4 step 3).
	for key, raw := range obj {
		if _, known := dispatchTableNames[key]; known {
			continue
		}
		child, err := parseSubschema(ctx, raw)
		if err != nil {
			return invalidIndex, err
		}
		s := ctx.get(idx)
		if s.otherKeys == nil {
			s.otherKeys = make(map[string]SchemaIndex)
		}
		s.otherKeys[key] = child
		matched = true
	}

	if !matched {
		ctx.get(idx).isEmptyContainer = true
	}

	return idx, nil
}

// --- shared type-assertion helpers used by parse handlers ---

func asString(raw any) (string, bool) {
	s, ok := raw.(string)
	return s, ok
}

func asObject(raw any) (map[string]any, bool) {
	m, ok := raw.(map[string]any)
	return m, ok
}

func asArray(raw any) ([]any, bool) {
	a, ok := raw.([]any)
	return a, ok
}

// asNonNegInt accepts a JSON number whose fractional part is exactly zero
// and is >= 0, per spec §4.3's contract for maxLength/minLength/maxItems/
// minItems/maxProperties/minProperties/maxContains/minContains.
func asNonNegInt(raw any) (int, bool) {
	if !classifyNumeric(raw) {
		return 0, false
	}
	r, ok := toRat(raw)
	if !ok || !r.IsInt() || r.Sign() < 0 {
		return 0, false
	}
	return int(r.Num().Int64()), true
}

func classifyNumeric(raw any) bool {
	t := classifyType(raw)
	return t == TypeInteger || t == TypeNumber
}
