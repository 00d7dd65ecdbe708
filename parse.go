package mustacheusage

import "strings"

const (
	defaultOpenDelim  = "{{"
	defaultCloseDelim = "}}"
)

// Parse scans a Mustache template into the token tree consumed by
// Analyze. Sections and inverted sections nest and must be closed by a
// matching end tag; set-delimiter tags are honored for the remainder
// of the template. Errors carry the line and column of the offending
// tag.
//
// Any parser producing Token values works as input to Analyze; this
// one covers the standard tag forms.
func Parse(template string) ([]*Token, error) {
	p := &parser{
		input: template,
		open:  defaultOpenDelim,
		close: defaultCloseDelim,
		line:  1,
		col:   1,
	}
	return p.parseBlock("", false, 0, 0)
}

type parser struct {
	input string
	pos   int
	line  int
	col   int
	open  string
	close string
}

// advance consumes n bytes of input, tracking line and column.
func (p *parser) advance(n int) {
	for _, c := range p.input[p.pos : p.pos+n] {
		if c == '\n' {
			p.line++
			p.col = 1
		} else {
			p.col++
		}
	}
	p.pos += n
}

// parseBlock scans tokens until the end of input or, inside a section,
// the section's close tag.
func (p *parser) parseBlock(section string, inSection bool, sectionLine, sectionCol int) ([]*Token, error) {
	var tokens []*Token
	for {
		start := strings.Index(p.input[p.pos:], p.open)
		if start < 0 {
			if text := p.input[p.pos:]; text != "" {
				tokens = append(tokens, &Token{Tag: TagText, Text: text})
				p.advance(len(text))
			}
			if inSection {
				return nil, newParseErrorf(sectionLine, sectionCol, "section %q is never closed", section)
			}
			return tokens, nil
		}
		if start > 0 {
			tokens = append(tokens, &Token{Tag: TagText, Text: p.input[p.pos : p.pos+start]})
			p.advance(start)
		}

		tagLine, tagCol := p.line, p.col
		p.advance(len(p.open))
		rest := p.input[p.pos:]
		if rest == "" {
			return nil, newParseErrorf(tagLine, tagCol, "tag is never closed")
		}

		switch rest[0] {
		case '{':
			end := strings.Index(rest, "}"+p.close)
			if end < 0 {
				return nil, newParseErrorf(tagLine, tagCol, "tag is never closed")
			}
			tokens = append(tokens, &Token{Tag: TagTriple, Name: strings.TrimSpace(rest[1:end])})
			p.advance(end + 1 + len(p.close))
		case '=':
			end := strings.Index(rest, "="+p.close)
			if end < 0 {
				return nil, newParseErrorf(tagLine, tagCol, "tag is never closed")
			}
			delims := strings.Fields(rest[1:end])
			if len(delims) != 2 {
				return nil, newParseErrorf(tagLine, tagCol, "malformed set-delimiter tag")
			}
			tokens = append(tokens, &Token{Tag: TagSetDelims, Text: strings.TrimSpace(rest[1:end])})
			p.advance(end + 1 + len(p.close))
			p.open, p.close = delims[0], delims[1]
		default:
			end := strings.Index(rest, p.close)
			if end < 0 {
				return nil, newParseErrorf(tagLine, tagCol, "tag is never closed")
			}
			content := rest[:end]
			p.advance(end + len(p.close))

			switch {
			case strings.HasPrefix(content, "!"):
				tokens = append(tokens, &Token{Tag: TagComment, Text: strings.TrimSpace(content[1:])})
			case strings.HasPrefix(content, "#"), strings.HasPrefix(content, "^"):
				name := strings.TrimSpace(content[1:])
				children, err := p.parseBlock(name, true, tagLine, tagCol)
				if err != nil {
					return nil, err
				}
				tag := TagSection
				if content[0] == '^' {
					tag = TagInverted
				}
				tokens = append(tokens, &Token{Tag: tag, Name: name, Children: children})
			case strings.HasPrefix(content, "/"):
				name := strings.TrimSpace(content[1:])
				if !inSection {
					return nil, newParseErrorf(tagLine, tagCol, "unexpected close tag %q", name)
				}
				if name != section {
					return nil, newParseErrorf(tagLine, tagCol, "close tag %q does not match open section %q", name, section)
				}
				return tokens, nil
			case strings.HasPrefix(content, ">"):
				tokens = append(tokens, &Token{Tag: TagPartial, Name: strings.TrimSpace(content[1:])})
			case strings.HasPrefix(content, "&"):
				tokens = append(tokens, &Token{Tag: TagAmp, Name: strings.TrimSpace(content[1:])})
			default:
				tokens = append(tokens, &Token{Tag: TagEscaped, Name: strings.TrimSpace(content)})
			}
		}
	}
}
