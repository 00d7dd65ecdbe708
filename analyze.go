package mustacheusage

const defaultLengthMember = "length"

// Option configures an analysis.
type Option func(*analysis)

// ArrayLengthMember sets the member name read as an array-length
// marker. An access like x.length is taken as proof that x is
// array-valued and that the member is a numeric leaf. Defaults to
// "length".
func ArrayLengthMember(name string) Option {
	return func(a *analysis) {
		a.lengthMember = name
	}
}

// KeepNestedNames records every bare name in the scope where it
// occurs, instead of reusing a matching record from an enclosing
// scope. By default identical names across nested scopes are assumed
// to denote the same variable and collapse onto one record.
func KeepNestedNames() Option {
	return func(a *analysis) {
		a.collapse = false
	}
}

// IncludeNames stamps each record's Name field with its own key.
func IncludeNames() Option {
	return func(a *analysis) {
		a.includeName = true
	}
}

// analysis holds the configuration and root accumulator for one scan.
type analysis struct {
	root         Usage
	lengthMember string
	collapse     bool
	includeName  bool
}

// Analyze walks a template's token tree and returns a fresh Usage
// describing every variable reference found. The analysis never fails:
// unrecognized tags are ignored and any reference name, however deep,
// produces a record.
func Analyze(tokens []*Token, opts ...Option) Usage {
	return AnalyzeInto(tokens, nil, nil, opts...)
}

// AnalyzeInto walks a template's token tree, populating context in
// place and returning it. A nil context is replaced with a fresh
// mapping. parents seeds the enclosing-scope stack, root first, so a
// scan of part of a template composes with the scan that produced the
// seeded contexts. Partial references are always recorded on the
// outermost context.
func AnalyzeInto(tokens []*Token, context Usage, parents []Usage, opts ...Option) Usage {
	if context == nil {
		context = make(Usage)
	}
	a := &analysis{
		root:         context,
		lengthMember: defaultLengthMember,
		collapse:     true,
	}
	for _, opt := range opts {
		opt(a)
	}

	stack := make([]*frame, 0, len(parents))
	for _, parent := range parents {
		stack = append(stack, &frame{vars: parent})
	}
	if len(parents) > 0 {
		a.root = parents[0]
	}

	a.walk(tokens, &frame{vars: context}, stack)
	return context
}

func (a *analysis) walk(tokens []*Token, cur *frame, parents []*frame) {
	for _, token := range tokens {
		r, isRef := classify(token.Tag)
		if !isRef {
			// Text, comments and end markers carry no reference;
			// grouping tokens still walk their children in place.
			if len(token.Children) > 0 {
				a.walk(token.Children, cur, parents)
			}
			continue
		}

		if r.partial {
			// Partials name other templates, not values in the data
			// model, and resolve against the outermost mapping no
			// matter how deeply the reference sits.
			a.root.variable(token.Name).Partial = true
			continue
		}

		target, extended := a.resolve(token.Name, cur, parents)
		if target == nil {
			continue
		}

		record := target.rec
		if r.scalar && !record.Scalar {
			record.Scalar = true
			lift(record, extended)
		}
		if r.escaped {
			record.Escaped = true
		}
		if r.unescaped {
			record.Unescaped = true
		}
		if r.section {
			record.Section = true
			if r.noninverted {
				record.NonInverted = true
			}
			if r.inverted {
				record.Inverted = true
			}
		}

		if len(token.Children) > 0 {
			a.walk(token.Children, target, extended)
		}
	}
}
