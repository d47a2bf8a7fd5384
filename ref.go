package jsonschema

import (
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// resolveRefs runs once after the root schema is parsed, rewriting every
// pending $ref referrer in place with its target's fields (spec §4.4).
// Only relative fragment pointers of the shape "#/$defs/..." are
// supported; everything else is rejected, matching the Non-goal that
// excludes full URI-reference resolution.
func resolveRefs(ctx *Context, root SchemaIndex) error {
	for _, pr := range ctx.pendingRef {
		if err := resolveOneRef(ctx, root, pr); err != nil {
			return err
		}
	}
	return nil
}

func resolveOneRef(ctx *Context, root SchemaIndex, pr pendingRef) error {
	if !strings.HasPrefix(pr.path, "#") {
		// Cross-document refs are out of scope (spec §4.4 step 4).
		return newError(RefNonSchema, "$ref", pr.path)
	}

	pointer := strings.TrimPrefix(pr.path, "#")
	if pointer == "" {
		// "#" alone: no further segments, leave the referrer untouched
		// (spec §4.4 step 2).
		return nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return newError(RefNonSchema, "$ref", pr.path)
	}

	// jsonpointer.Parse handles the ~0/~1 token-escaping JSON Pointer
	// requires, which a naive strings.Split(path, "/") would mishandle for
	// $defs keys containing "/" or "~" (SPEC_FULL.md §10).
	segments := jsonpointer.Parse(pointer)
	if len(segments) == 0 {
		return nil
	}
	if segments[0] != "$defs" {
		// Any container other than $defs is out of scope (spec §4.4 step 4).
		return newError(RefNonSchema, "$ref", pr.path)
	}
	if len(segments) < 2 {
		return newError(RefPathNotFoundInDefs, "$ref", pr.path)
	}

	rootSchema := ctx.get(root)
	target, ok := rootSchema.defs[segments[1]]
	if !ok {
		return newError(RefPathNotFoundInDefs, "$ref", pr.path)
	}

	for _, seg := range segments[2:] {
		next, ok := ctx.get(target).otherKeys[seg]
		if !ok {
			return newError(RefPathNotFoundInDefs, "$ref", pr.path)
		}
		target = next
	}

	if target == pr.referrer {
		// Self-reference: fusing would copy a record onto itself, a no-op.
		return nil
	}

	// Fuse: overwrite the referrer's fields with the target's. This is a
	// shallow struct copy (slices/maps are shared, not deep-cloned), which
	// is adequate for acyclic $defs fragments but degenerates on a
	// self-referential cycle — see DESIGN.md "Cyclic schema graphs".
	*ctx.get(pr.referrer) = *ctx.get(target)
	return nil
}
