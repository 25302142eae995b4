package markup

import "errors"

// ErrMissingAttr is returned when a required schema attribute has no
// resolvable value at construction time.
var ErrMissingAttr = errors.New("missing required attribute")

// ErrTypeMismatch is returned when a supplied value does not satisfy the
// attribute's declared kind.
var ErrTypeMismatch = errors.New("attribute type mismatch")

// ErrUnresolvedRef is returned when a reference target lacks the expected
// key at resolution time.
var ErrUnresolvedRef = errors.New("unresolved reference")

// ErrDuplicateAttr is returned when a type declares the same attribute name
// twice in its own attribute list.
var ErrDuplicateAttr = errors.New("duplicate attribute declaration")
