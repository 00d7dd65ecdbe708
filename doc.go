// Package mustacheusage analyzes parsed Mustache templates to determine
// how the template uses its variables.
//
// The token tree for a template is walked, and a tree of variable
// records is constructed describing the syntactic roles each variable
// appears in (substitution, section condition, partial inclusion, array
// iteration), along with the members, elements and loosely nested names
// referenced beneath it. The analysis describes usage only; it does not
// check that any of the variables exist in a data model.
package mustacheusage
