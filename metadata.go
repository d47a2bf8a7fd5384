package jsonschema

// The metadata keywords never affect validation; their parse handlers only
// capture the value for callers that want to introspect a parsed schema
// (title, description, examples, and the rest of spec §3's metadata group).

// parseKeywordTitle is lenient: a non-string value leaves title empty
// rather than aborting the parse (spec §4.3).
func parseKeywordTitle(ctx *Context, idx SchemaIndex, raw any) error {
	s, ok := asString(raw)
	if !ok {
		return nil
	}
	ctx.get(idx).title = s
	return nil
}

func parseKeywordDescription(ctx *Context, idx SchemaIndex, raw any) error {
	s, ok := asString(raw)
	if !ok {
		return nil
	}
	ctx.get(idx).description = s
	return nil
}

func parseKeywordDefault(ctx *Context, idx SchemaIndex, raw any) error {
	s := ctx.get(idx)
	s.defaultValue = raw
	s.defaultSet = true
	return nil
}

func parseKeywordDeprecated(ctx *Context, idx SchemaIndex, raw any) error {
	b, ok := raw.(bool)
	if !ok {
		return newError(InvalidInstanceType, "deprecated", "#")
	}
	ctx.get(idx).deprecated = b
	return nil
}

func parseKeywordExamples(ctx *Context, idx SchemaIndex, raw any) error {
	arr, ok := asArray(raw)
	if !ok {
		return newError(InvalidArrayType, "examples", "#")
	}
	ctx.get(idx).examples = arr
	return nil
}

func parseKeywordReadOnly(ctx *Context, idx SchemaIndex, raw any) error {
	b, ok := raw.(bool)
	if !ok {
		return newError(InvalidInstanceType, "readOnly", "#")
	}
	ctx.get(idx).readOnly = b
	return nil
}

func parseKeywordWriteOnly(ctx *Context, idx SchemaIndex, raw any) error {
	b, ok := raw.(bool)
	if !ok {
		return newError(InvalidInstanceType, "writeOnly", "#")
	}
	ctx.get(idx).writeOnly = b
	return nil
}

// parseKeywordUnevaluatedItems/Properties parse their value as a subschema
// and store its index, so a malformed value fails the parse and any $ref
// inside it is recorded and resolved. Neither gets a validate handler, and
// $ref paths do not descend into the stored subschema — see DESIGN.md
// "unevaluatedItems / unevaluatedProperties".
func parseKeywordUnevaluatedItems(ctx *Context, idx SchemaIndex, raw any) error {
	child, err := parseSubschema(ctx, raw)
	if err != nil {
		return err
	}
	ctx.get(idx).unevaluatedItems = child
	return nil
}

func parseKeywordUnevaluatedProperties(ctx *Context, idx SchemaIndex, raw any) error {
	child, err := parseSubschema(ctx, raw)
	if err != nil {
		return err
	}
	ctx.get(idx).unevaluatedProperties = child
	return nil
}
