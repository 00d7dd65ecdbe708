package mustacheusage

// A frame is one entry in the enclosing-scope stack. The outermost
// frame (and any caller-seeded parent context) wraps a bare Usage
// mapping; every other frame wraps the variable record whose section
// body is being walked. The stack is threaded explicitly, root first,
// and extended by value on every descent so that scans seeded with
// pre-existing parent contexts behave identically to a full scan.
type frame struct {
	vars Usage
	rec  *Variable
}

// leaf reports whether the frame's context is proven scalar- or
// array-valued and so cannot own loosely nested names.
func (f *frame) leaf() bool {
	return f.rec != nil && (f.rec.Scalar || f.rec.Array)
}

// hasNested reports whether the frame already owns its own nested
// record for name. A bare mapping's own entries play the nested role.
func (f *frame) hasNested(name string) bool {
	if f.rec == nil {
		_, exists := f.vars[name]
		return exists
	}
	_, exists := f.rec.Nested[name]
	return exists
}

// nested returns the mapping the frame's loosely nested names resolve
// against, creating it on first access.
func (f *frame) nested() Usage {
	if f.rec == nil {
		return f.vars
	}
	if f.rec.Nested == nil {
		f.rec.Nested = make(Usage)
	}
	return f.rec.Nested
}

// members returns the frame's dotted-member mapping, creating it on
// first access. Only record frames resolve members.
func (f *frame) members() Usage {
	if f.rec.Members == nil {
		f.rec.Members = make(Usage)
	}
	return f.rec.Members
}

// findName searches the enclosing scopes, innermost first, for an
// existing record of a bare name, so that repeated use of the same
// name across section bodies converges on one record. Record scopes
// are searched members first, then nested; bare mappings are searched
// directly. Returns the containing mapping, or nil when no scope holds
// the name.
func findName(parents []*frame, name string) Usage {
	for i := len(parents) - 1; i >= 0; i-- {
		f := parents[i]
		if f.rec == nil {
			if _, exists := f.vars[name]; exists {
				return f.vars
			}
			continue
		}
		if _, exists := f.rec.Members[name]; exists {
			return f.rec.Members
		}
		if _, exists := f.rec.Nested[name]; exists {
			return f.rec.Nested
		}
	}
	return nil
}

// lift restores the rule that scalar and array records carry no nested
// names. When a record is freshly proven to be a leaf value, any names
// already recorded beneath it are merged into the nearest enclosing
// scope that can still own them, and cleared from the record. The
// outermost mapping has no nested indirection; its own entries receive
// the lifted names.
func lift(v *Variable, parents []*frame) {
	if len(v.Nested) == 0 {
		return
	}
	for i := len(parents) - 1; i >= 0; i-- {
		f := parents[i]
		if f.leaf() {
			continue
		}
		f.nested().merge(v.Nested)
		v.Nested = nil
		return
	}
}
