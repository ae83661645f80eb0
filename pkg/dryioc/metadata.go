package dryioc

// Metadata is an opaque payload attached to an export. The model does not
// interpret the value; equality and identity semantics are the payload's
// own. At most one attachment per export site.
type Metadata struct {
	Value any
}
