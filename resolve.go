package mustacheusage

import "strings"

// resolve maps a reference name to the record it denotes, creating
// intermediate records as needed. It returns the resolved record's
// frame together with the enclosing-scope stack a section body under
// that record walks with. A nil frame means the name resolves to
// nothing (a dot reference at the true top level).
func (a *analysis) resolve(name string, cur *frame, parents []*frame) (*frame, []*frame) {
	parents = append([]*frame(nil), parents...)

	// The dot convention: "." names the current element of an array
	// section, proving the enclosing section is array-valued.
	if name == "." {
		if cur.rec == nil {
			return nil, parents
		}
		if !cur.rec.Array {
			cur.rec.Array = true
			lift(cur.rec, parents)
		}
		if cur.rec.Elements == nil {
			cur.rec.Elements = &Variable{}
		}
		return &frame{rec: cur.rec.Elements}, append(parents, cur)
	}

	segments := strings.Split(name, ".")

	// A bare reference to the array-length member inside a context
	// already proven array-valued reads as that context's own length.
	bareLength := len(segments) == 1 && segments[0] == a.lengthMember &&
		cur.rec != nil && cur.rec.Array

	// A scalar or array context cannot host members or nested names;
	// resolution starts from the nearest enclosing context that can.
	if !bareLength {
		for cur.leaf() && len(parents) > 0 {
			cur = parents[len(parents)-1]
			parents = parents[:len(parents)-1]
		}
	}

	for i, segment := range segments {
		last := i == len(segments)-1
		lengthMember := last && segment == a.lengthMember && (i > 0 || bareLength)

		var container Usage
		switch {
		case i > 0 || lengthMember:
			if lengthMember && !cur.rec.Array {
				cur.rec.Array = true
				lift(cur.rec, parents)
			}
			container = cur.members()
		case len(parents) > 0:
			if a.collapse && !cur.hasNested(segment) {
				container = findName(parents, segment)
			}
			if container == nil {
				container = cur.nested()
			}
		default:
			container = cur.nested()
		}

		record := container.variable(segment)
		if a.includeName {
			record.Name = segment
		}

		parents = append(parents, cur)
		cur = &frame{rec: record}

		if lengthMember && !record.Scalar {
			record.Scalar = true
			lift(record, parents)
		}
	}

	return cur, parents
}
