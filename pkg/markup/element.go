package markup

// Attribute is one emitted name/value pair. Attribute order on an element
// equals schema order and is significant to downstream consumers.
type Attribute struct {
	Name  string
	Value string
}

// Element is the serializer's output: a tag, ordered string attributes, and
// ordered child elements. It carries no behavior beyond tree assembly; a
// downstream writer turns it into text.
type Element struct {
	Tag      string
	Attrs    []Attribute
	Children []*Element
}

// SetAttr appends or replaces a string attribute, preserving first-set order.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attribute{Name: name, Value: value})
}

// Attr returns the value of a named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Add appends child elements in call order.
func (e *Element) Add(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// Find returns the first direct child with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}
