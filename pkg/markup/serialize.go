package markup

import "fmt"

// Serialize converts a node graph into an element tree with a single
// depth-first walk. For each node it emits, in schema order: scalar and
// reference values as string attributes; nested nodes inside a wrapper
// element named "{Tag}.{AttrName}" holding the nested node as its sole
// child; node collections inside one wrapper holding every item as a direct
// sibling. Empty collections are omitted entirely. Structural children
// follow all schema-derived output, unwrapped.
//
// The walk is pure with respect to its input: serializing the same
// unmutated graph twice yields identical trees.
func Serialize(n *Node) (*Element, error) {
	return serialize(n, nil)
}

func serialize(n *Node, parent *Element) (*Element, error) {
	el := &Element{Tag: n.Tag()}
	if parent != nil {
		parent.Add(el)
	}
	for _, a := range n.typ.schema {
		v := n.Get(a.Name)
		name := PascalCase(a.Name)
		if v == nil {
			if a.EmitEmpty {
				el.SetAttr(name, "")
			}
			continue
		}
		switch x := v.(type) {
		case *Node:
			// Set bypasses the construction kind check, so a nil node can
			// still reach this point; fail instead of dereferencing it.
			if x == nil {
				return nil, fmt.Errorf("%w: %s.%s holds a nil node", ErrTypeMismatch, n.Tag(), a.Name)
			}
			wrap := &Element{Tag: n.Tag() + "." + name}
			el.Add(wrap)
			if _, err := serialize(x, wrap); err != nil {
				return nil, err
			}
		case []*Node:
			if len(x) == 0 {
				continue
			}
			wrap := &Element{Tag: n.Tag() + "." + name}
			el.Add(wrap)
			for _, item := range x {
				if item == nil {
					return nil, fmt.Errorf("%w: %s.%s holds a nil node", ErrTypeMismatch, n.Tag(), a.Name)
				}
				if _, err := serialize(item, wrap); err != nil {
					return nil, err
				}
			}
		case *Ref:
			s, err := x.Resolve()
			if err != nil {
				return nil, err
			}
			el.SetAttr(name, s)
		default:
			el.SetAttr(name, formatScalar(v))
		}
	}
	for _, c := range n.children {
		if _, err := serialize(c, el); err != nil {
			return nil, err
		}
	}
	return el, nil
}
