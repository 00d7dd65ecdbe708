package mustacheusage

// Tag identifies the syntactic kind of a template token.
type Tag int

const (
	TagText       Tag = iota // literal template text
	TagComment               // {{! comment }}
	TagEscaped               // {{name}}
	TagTriple                // {{{name}}}
	TagAmp                   // {{&name}}
	TagSection               // {{#name}} ... {{/name}}
	TagInverted              // {{^name}} ... {{/name}}
	TagSectionEnd            // {{/name}}
	TagPartial               // {{>name}}
	TagSetDelims             // {{=<% %>=}}
	TagBlock                 // grouping node holding child tokens
)

// Token is one parsed unit of a Mustache template. Name carries the
// possibly dotted reference for tokens that denote a variable; Text
// carries raw content for text and comment tokens; Children carries
// the body of sections, inverted sections and grouping blocks.
type Token struct {
	Tag      Tag
	Name     string
	Text     string
	Children []*Token
}

// roles captures the syntactic parts a single reference plays.
type roles struct {
	scalar      bool
	escaped     bool
	unescaped   bool
	section     bool
	noninverted bool
	inverted    bool
	partial     bool
}

// classify reports the roles implied by a token's tag, and whether the
// tag denotes a variable reference at all. Unrecognized tags are not
// references.
func classify(tag Tag) (roles, bool) {
	switch tag {
	case TagEscaped:
		return roles{scalar: true, escaped: true}, true
	case TagTriple, TagAmp:
		return roles{scalar: true, unescaped: true}, true
	case TagSection:
		return roles{section: true, noninverted: true}, true
	case TagInverted:
		return roles{section: true, inverted: true}, true
	case TagPartial:
		return roles{partial: true}, true
	default:
		return roles{}, false
	}
}
