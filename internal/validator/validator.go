// Package validator checks a composition tree before it is serialized.
package validator

import (
	"errors"
	"fmt"

	"github.com/gtgfx/gtgraphics/pkg/markup"
)

var (
	// ErrDuplicateName reports two named objects sharing one name.
	ErrDuplicateName = errors.New("duplicate object name")
	// ErrDanglingRef reports a reference whose target is not part of the tree.
	ErrDanglingRef = errors.New("dangling reference")
	// ErrUnnamedRefTarget reports a reference to a node without a name.
	ErrUnnamedRefTarget = errors.New("reference target has no name")
)

// Validate walks the tree under root and aggregates every problem found:
// duplicate object names, references pointing outside the tree, and
// references to unnamed nodes. A nil error means the tree serializes to a
// consistent document.
func Validate(root *markup.Node) error {
	w := &walker{
		inTree: map[*markup.Node]bool{},
		names:  map[string]bool{},
	}
	w.collect(root)
	for _, r := range w.refs {
		w.checkRef(r)
	}
	return errors.Join(w.errs...)
}

type walker struct {
	inTree map[*markup.Node]bool
	names  map[string]bool
	refs   []*markup.Ref
	errs   []error
}

func (w *walker) collect(n *markup.Node) {
	if n == nil || w.inTree[n] {
		return
	}
	w.inTree[n] = true

	if name, ok := n.Get("name").(string); ok && name != "" {
		if w.names[name] {
			w.errs = append(w.errs, fmt.Errorf("%w: %q", ErrDuplicateName, name))
		}
		w.names[name] = true
	}

	for _, attr := range n.DeclaredNames() {
		switch v := n.Get(attr).(type) {
		case *markup.Node:
			w.collect(v)
		case []*markup.Node:
			for _, item := range v {
				w.collect(item)
			}
		case *markup.Ref:
			w.refs = append(w.refs, v)
		}
	}
	for _, c := range n.Children() {
		w.collect(c)
	}
}

func (w *walker) checkRef(r *markup.Ref) {
	if r.Target == nil || !w.inTree[r.Target] {
		w.errs = append(w.errs, fmt.Errorf("%w: target %s", ErrDanglingRef, describe(r.Target)))
		return
	}
	if name, _ := r.Target.Get(r.Key).(string); name == "" {
		w.errs = append(w.errs, fmt.Errorf("%w: %s", ErrUnnamedRefTarget, describe(r.Target)))
	}
}

func describe(n *markup.Node) string {
	if n == nil {
		return "<nil>"
	}
	if name, ok := n.Get("name").(string); ok && name != "" {
		return fmt.Sprintf("%s %q", n.Tag(), name)
	}
	return n.Tag()
}
