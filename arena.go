package jsonschema

// pendingRef is one unresolved $ref recorded during parsing: referrer is
// the schema that declared "$ref": path, to be rewritten in place once
// resolveRefs runs (spec §4.4).
type pendingRef struct {
	referrer SchemaIndex
	path     string
}

// Context owns the schema arena, the pending-refs list, and the root
// schema index, exactly as spec §4.1 describes. It is single-threaded
// during parsing (see spec §5); once resolveRefs has completed and no
// further schemas are added, concurrent Validate calls against the same
// Context are safe because validation never mutates arena records.
type Context struct {
	arena      []*Schema
	pendingRef []pendingRef
	root       SchemaIndex
}

// NewContext allocates a Context with its arena pre-sized to capacity
// entries, the way spec §4.1's init(capacity) does. capacity is a hint,
// not a hard limit — alloc appends past it like any growable slice.
func NewContext(capacity int) *Context {
	if capacity < 0 {
		capacity = 0
	}
	return &Context{
		arena:      make([]*Schema, 0, capacity),
		pendingRef: nil,
		root:       invalidIndex,
	}
}

// alloc appends a zero-initialized schema record and returns its index.
// The arena only grows by append (spec §3 invariant): once handed out, an
// index stays valid for the life of the Context even if the backing slice
// is reallocated, because indices are positions, not pointers into the
// slice's current memory.
func (c *Context) alloc() SchemaIndex {
	c.arena = append(c.arena, newEmptySchema())
	return SchemaIndex(len(c.arena) - 1)
}

// get returns the record at idx. Callers within this package only ever
// pass indices returned by alloc on this same Context, so out-of-range
// access indicates a parser bug rather than a condition to recover from.
func (c *Context) get(idx SchemaIndex) *Schema {
	return c.arena[idx]
}

func (c *Context) recordPendingRef(referrer SchemaIndex, path string) {
	c.pendingRef = append(c.pendingRef, pendingRef{referrer: referrer, path: path})
}

// Root returns the index of the root schema set by the most recent
// ParseSchemaFromString/ParseSchemaFromJSONValue call on this Context.
func (c *Context) Root() SchemaIndex {
	return c.root
}

// Len reports how many schema records the arena currently holds, mainly
// useful for tests asserting on parse fan-out.
func (c *Context) Len() int {
	return len(c.arena)
}
