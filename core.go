package jsonschema

// parseKeywordID stores "$id" for introspection. Since only relative
// "#/$defs/..." fragment refs are resolved (spec §4.4), $id never
// participates in ref resolution here — it is carried purely as metadata.
// parseKeywordID is lenient: a non-string value leaves id empty rather than
// aborting the parse (spec §4.3 lists $id among the keywords that only copy
// the value when it's a string).
func parseKeywordID(ctx *Context, idx SchemaIndex, raw any) error {
	s, ok := asString(raw)
	if !ok {
		return nil
	}
	ctx.get(idx).id = s
	return nil
}

func parseKeywordSchema(ctx *Context, idx SchemaIndex, raw any) error {
	s, ok := asString(raw)
	if !ok {
		return nil
	}
	ctx.get(idx).schemaURI = s
	return nil
}

// parseKeywordRef records the $ref string for later resolution and pushes
// a pending entry onto ctx so resolveRefs can fuse the referrer with its
// target once every schema in the document has been parsed (spec §4.3: a
// schema with $ref present is parsed by copying the string, then
// push (referrer=current_index, ref=string) onto pending-refs).
func parseKeywordRef(ctx *Context, idx SchemaIndex, raw any) error {
	s, ok := asString(raw)
	if !ok {
		return newError(InvalidStringType, "$ref", "#")
	}
	ctx.get(idx).ref = s
	ctx.recordPendingRef(idx, s)
	return nil
}

func parseKeywordComment(ctx *Context, idx SchemaIndex, raw any) error {
	s, ok := asString(raw)
	if !ok {
		return nil
	}
	ctx.get(idx).comment = s
	return nil
}

// parseKeywordDefs parses every entry of "$defs" as a subschema and
// records its index under the entry's key, so $ref paths of the shape
// "#/$defs/<key>/..." can find their target (spec §4.3 step 2, §4.4).
func parseKeywordDefs(ctx *Context, idx SchemaIndex, raw any) error {
	obj, ok := asObject(raw)
	if !ok {
		return newError(InvalidObjectType, "$defs", "#")
	}
	defs := make(map[string]SchemaIndex, len(obj))
	for key, value := range obj {
		child, err := parseSubschema(ctx, value)
		if err != nil {
			return err
		}
		defs[key] = child
	}
	ctx.get(idx).defs = defs
	return nil
}
