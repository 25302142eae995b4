package markup

import "fmt"

// Kind constrains the values an attribute accepts. KindAny disables the
// check; scalar kinds cover the usual wire primitives, the remaining kinds
// cover nested nodes, node collections, and late-bound references.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindNode
	KindNodeList
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindNode:
		return "node"
	case KindNodeList:
		return "node list"
	case KindRef:
		return "reference"
	default:
		return "any"
	}
}

func (k Kind) accepts(v any) bool {
	switch k {
	case KindAny:
		return true
	case KindString:
		_, ok := v.(string)
		return ok
	case KindInt:
		switch v.(type) {
		case int, int32, int64:
			return true
		}
		return false
	case KindFloat:
		// Integers promote to floats on the wire, so both are accepted.
		switch v.(type) {
		case float64, float32, int, int32, int64:
			return true
		}
		return false
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindNode:
		// A typed-nil *Node is a non-nil interface value; reject it here so
		// construction fails instead of the serializer.
		n, ok := v.(*Node)
		return ok && n != nil
	case KindNodeList:
		list, ok := v.([]*Node)
		if !ok {
			return false
		}
		for _, item := range list {
			if item == nil {
				return false
			}
		}
		return true
	case KindRef:
		// A plain string is a pre-resolved reference.
		switch v.(type) {
		case *Ref, string:
			return true
		}
		return false
	}
	return false
}

func (k Kind) check(tag, name string, v any) error {
	if k.accepts(v) {
		return nil
	}
	return fmt.Errorf("%w: %s.%s requires %s, got %T", ErrTypeMismatch, tag, name, k, v)
}

// Attr describes one serializable attribute of a node type. Attrs are value
// types and are never mutated after the owning Type is constructed.
type Attr struct {
	// Name is the schema name in snake_case. The emitted attribute name is
	// its PascalCase form (font_weight -> FontWeight).
	Name string

	// Type constrains accepted values. The zero value (KindAny) skips the check.
	Type Kind

	// Default is resolved when the constructor receives no value for Name.
	// Node-list defaults are copied per node; instances are never shared.
	Default any

	// Required makes node construction fail when no value resolves.
	Required bool

	// EmitEmpty forces the attribute onto the output element (as an empty
	// string) even when no value is present.
	EmitEmpty bool
}

// Type describes one node type: its markup tag, its parent type, and the
// attributes the type itself declares. The full schema is merged once at
// construction: ancestor entries first (root-most ancestor leading, deduped
// by name), own entries appended last. Redeclaring an inherited name neither
// duplicates nor reorders it.
type Type struct {
	tag    string
	parent *Type
	schema []Attr
}

// NewType builds a type descriptor and computes its merged schema.
// It fails with ErrDuplicateAttr if own lists the same name twice.
func NewType(tag string, parent *Type, own ...Attr) (*Type, error) {
	t := &Type{tag: tag, parent: parent}
	seen := make(map[string]bool)
	if parent != nil {
		t.schema = append(t.schema, parent.schema...)
		for _, a := range parent.schema {
			seen[a.Name] = true
		}
	}
	declared := make(map[string]bool, len(own))
	for _, a := range own {
		if declared[a.Name] {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateAttr, tag, a.Name)
		}
		declared[a.Name] = true
		if seen[a.Name] {
			// Inherited entry wins; its position in the schema is stable.
			continue
		}
		t.schema = append(t.schema, a)
	}
	return t, nil
}

// MustType is NewType that panics on error. Intended for package-level type
// declarations, where a failure is an authoring bug.
func MustType(tag string, parent *Type, own ...Attr) *Type {
	t, err := NewType(tag, parent, own...)
	if err != nil {
		panic(err)
	}
	return t
}

// Tag returns the markup tag emitted for nodes of this type.
func (t *Type) Tag() string { return t.tag }

// Parent returns the parent type, or nil for a root type.
func (t *Type) Parent() *Type { return t.parent }

// Schema returns the merged attribute list in emission order.
// The returned slice is shared; callers must not modify it.
func (t *Type) Schema() []Attr { return t.schema }
