package markup

import "fmt"

// Values carries constructor input: schema names mapped to raw values.
type Values map[string]any

// Node is a generic, schema-typed tree node. It stores resolved attribute
// values keyed by schema name plus an ordered list of structural children.
// A Node is not safe for concurrent mutation; independent node graphs may be
// serialized from separate goroutines.
type Node struct {
	typ      *Type
	values   map[string]any
	children []*Node
}

// NewNode constructs a node of type t, resolving each schema attribute from
// values or the attribute default. It fails with ErrMissingAttr when a
// required attribute resolves to nothing and with ErrTypeMismatch when a
// present value violates the attribute kind. On failure no node is returned.
func NewNode(t *Type, values Values) (*Node, error) {
	n := &Node{typ: t, values: make(map[string]any, len(t.schema))}
	for _, a := range t.schema {
		v, ok := values[a.Name]
		if !ok || v == nil {
			v = resolveDefault(a)
		}
		if v == nil {
			if a.Required {
				return nil, fmt.Errorf("%w: %s.%s", ErrMissingAttr, t.tag, a.Name)
			}
			continue
		}
		if err := a.Type.check(t.tag, a.Name, v); err != nil {
			return nil, err
		}
		n.values[a.Name] = v
	}
	return n, nil
}

// MustNode is NewNode that panics on error. Intended for call sites whose
// typed signature already guarantees required attributes and kinds.
func MustNode(t *Type, values Values) *Node {
	n, err := NewNode(t, values)
	if err != nil {
		panic(err)
	}
	return n
}

// resolveDefault produces the effective default for an absent attribute.
// Node-list attributes always get a freshly allocated slice so no two nodes
// ever share one collection instance.
func resolveDefault(a Attr) any {
	if list, ok := a.Default.([]*Node); ok {
		fresh := make([]*Node, len(list))
		copy(fresh, list)
		return fresh
	}
	if a.Default == nil && a.Type == KindNodeList {
		return []*Node{}
	}
	return a.Default
}

// Type returns the node's type descriptor.
func (n *Node) Type() *Type { return n.typ }

// Tag returns the markup tag for this node.
func (n *Node) Tag() string { return n.typ.tag }

// Get returns the value stored under name, or nil when absent.
func (n *Node) Get(name string) any { return n.values[name] }

// Set stores a value under name. Setting nil clears the value. Names outside
// the schema are accepted and readable through Get, but serialization only
// ever emits schema-declared names.
func (n *Node) Set(name string, v any) {
	if v == nil {
		delete(n.values, name)
		return
	}
	n.values[name] = v
}

// AppendList appends items to a list-valued attribute, creating the list
// when absent.
func (n *Node) AppendList(name string, items ...*Node) {
	cur, _ := n.values[name].([]*Node)
	n.values[name] = append(cur, items...)
}

// Append adds structural children, preserving call order. Children are
// emitted after all schema-derived output.
func (n *Node) Append(children ...*Node) {
	n.children = append(n.children, children...)
}

// Children returns the structural child list.
// The returned slice is shared; callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

// DeclaredNames returns, in schema order, the names whose value is present.
func (n *Node) DeclaredNames() []string {
	names := make([]string, 0, len(n.values))
	for _, a := range n.typ.schema {
		if n.values[a.Name] != nil {
			names = append(names, a.Name)
		}
	}
	return names
}
