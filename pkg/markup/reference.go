package markup

import "fmt"

// Ref is a non-owning pointer from one node to another node's identity.
// It renders as the target's current value for Key, read at resolution time
// rather than at construction, so renaming the target before serialization
// is reflected in the emitted text. A Ref never caches.
type Ref struct {
	Target *Node
	Key    string
}

// NewRef points at target's "name" attribute.
func NewRef(target *Node) *Ref {
	return &Ref{Target: target, Key: "name"}
}

// Resolve reads the target's key and returns its canonical string form.
// It fails with ErrUnresolvedRef when the key is absent.
func (r *Ref) Resolve() (string, error) {
	if r.Target == nil {
		return "", fmt.Errorf("%w: nil target", ErrUnresolvedRef)
	}
	v := r.Target.Get(r.Key)
	if v == nil {
		return "", fmt.Errorf("%w: %s[%q]", ErrUnresolvedRef, r.Target.Tag(), r.Key)
	}
	return formatScalar(v), nil
}

// String implements fmt.Stringer for logging; resolution errors render as
// an empty string here and surface properly during serialization.
func (r *Ref) String() string {
	s, _ := r.Resolve()
	return s
}
