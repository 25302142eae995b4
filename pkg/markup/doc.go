// Package markup is a small schema-driven serialization engine for tagged
// markup trees.
//
// Heterogeneous node types declare their serializable attributes through
// [Type] descriptors; a descriptor merges its ancestors' declarations into a
// deterministic, inheritance-aware schema order. [Node] instances store
// values for those attributes (scalars, nested nodes, node collections, or
// late-bound [Ref] values) plus structural children, and [Serialize] turns a
// node graph into an [Element] tree ready for a text writer.
//
// The engine is write-only: it never reconstructs nodes from markup.
package markup
