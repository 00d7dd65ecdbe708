package mustacheusage

// Usage maps variable names to the record describing each variable's
// use. It serves both as the top-level result of an analysis and,
// nested, as the Members and Nested mappings of a Variable.
type Usage map[string]*Variable

// Variable describes every way one variable reference is used within a
// template. Flags accumulate across uses: a name referenced both as a
// substitution and as a section condition carries both sets of flags.
type Variable struct {
	Name        string `json:"name,omitempty"`
	Scalar      bool   `json:"scalar,omitempty"`
	Escaped     bool   `json:"escaped,omitempty"`
	Unescaped   bool   `json:"unescaped,omitempty"`
	Section     bool   `json:"section,omitempty"`
	NonInverted bool   `json:"noninverted,omitempty"`
	Inverted    bool   `json:"inverted,omitempty"`
	Partial     bool   `json:"partial,omitempty"`
	Array       bool   `json:"array,omitempty"`

	// Members holds sub-references proven by dotted syntax to belong
	// to this variable. Elements holds the record for references made
	// via the dot convention inside an array section. Nested holds
	// names that occur lexically inside this variable's section but
	// may belong to an enclosing scope.
	Members  Usage     `json:"members,omitempty"`
	Elements *Variable `json:"elements,omitempty"`
	Nested   Usage     `json:"nested,omitempty"`
}

// variable fetches the record for name, creating it on first access.
func (u Usage) variable(name string) *Variable {
	if v, exists := u[name]; exists {
		return v
	}
	v := &Variable{}
	u[name] = v
	return v
}

// merge deep-unions src into u. New names adopt the source record;
// matching names merge recursively with the destination taking
// precedence where the two conflict.
func (u Usage) merge(src Usage) {
	for name, variable := range src {
		if existing, exists := u[name]; exists {
			existing.merge(variable)
			continue
		}
		u[name] = variable
	}
}

func (v *Variable) merge(src *Variable) {
	if v.Name == "" {
		v.Name = src.Name
	}
	v.Scalar = v.Scalar || src.Scalar
	v.Escaped = v.Escaped || src.Escaped
	v.Unescaped = v.Unescaped || src.Unescaped
	v.Section = v.Section || src.Section
	v.NonInverted = v.NonInverted || src.NonInverted
	v.Inverted = v.Inverted || src.Inverted
	v.Partial = v.Partial || src.Partial
	v.Array = v.Array || src.Array
	if src.Members != nil {
		if v.Members == nil {
			v.Members = src.Members
		} else {
			v.Members.merge(src.Members)
		}
	}
	if src.Nested != nil {
		if v.Nested == nil {
			v.Nested = src.Nested
		} else {
			v.Nested.merge(src.Nested)
		}
	}
	if src.Elements != nil {
		if v.Elements == nil {
			v.Elements = src.Elements
		} else {
			v.Elements.merge(src.Elements)
		}
	}
}
