package parser

import (
	"sort"
	"strings"

	"github.com/viant/dslx/ast"
	"github.com/viant/parsly"
)

// Parser parses module level structure of DSLX source: imports, top level members and
// qualified alias::name references. Function bodies are not interpreted.
type Parser struct{}

// New creates a parser
func New() *Parser {
	return &Parser{}
}

// Parse parses module source; name is fully qualified module name, path is used for diagnostics.
func (p *Parser) Parse(name, path string, contents []byte) (*ast.Module, error) {
	state := &parser{
		name:   name,
		path:   path,
		cursor: parsly.NewCursor(path, contents, 0),
		lines:  newLineIndex(contents),
	}
	if err := state.parse(); err != nil {
		return nil, err
	}
	return ast.NewModule(name, path, state.imports, state.members, state.references), nil
}

type parser struct {
	name       string
	path       string
	cursor     *parsly.Cursor
	lines      lineIndex
	imports    []ast.Import
	members    []ast.Member
	references []ast.Reference
}

func (p *parser) parse() error {
	cursor := p.cursor
	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAfterOptional(whitespaceMatcher,
			lineCommentMatcher,
			commentBlockMatcher,
			attributeMatcher,
			identifierMatcher,
		)
		switch matched.Code {
		case lineCommentToken, commentBlockToken, attributeToken:
			continue
		case identifierToken:
			if err := p.parseStatement(matched.Text(cursor), matched.Offset); err != nil {
				return err
			}
		case parsly.EOF:
			return nil
		default:
			return p.errorf(cursor.Pos, "unexpected %q at module level", p.peek())
		}
	}
	return nil
}

func (p *parser) parseStatement(keyword string, offset int) error {
	public := false
	if keyword == "pub" {
		public = true
		matched := p.cursor.MatchAfterOptional(whitespaceMatcher, identifierMatcher)
		if matched.Code != identifierToken {
			return p.errorf(p.cursor.Pos, "expected definition after pub")
		}
		keyword = matched.Text(p.cursor)
	}
	switch keyword {
	case "import":
		if public {
			return p.errorf(offset, "import cannot be public")
		}
		return p.parseImport(offset)
	case string(ast.KindFunction), string(ast.KindProc), string(ast.KindStruct), string(ast.KindEnum):
		return p.parseMember(ast.Kind(keyword), public, offset, true)
	case string(ast.KindConst), string(ast.KindType):
		return p.parseMember(ast.Kind(keyword), public, offset, false)
	}
	return p.errorf(offset, "unexpected %q at module level", keyword)
}

func (p *parser) parseImport(offset int) error {
	cursor := p.cursor
	subject := cursor.MatchAfterOptional(whitespaceMatcher, dottedNameMatcher)
	if subject.Code != dottedNameToken {
		return p.errorf(cursor.Pos, "expected module name after import")
	}
	anImport := ast.Import{Subject: subject.Text(cursor), Pos: p.lines.position(offset)}
	end := cursor.Pos
	next := cursor.MatchAfterOptional(whitespaceMatcher, semicolonMatcher, identifierMatcher)
	if next.Code == identifierToken && next.Text(cursor) == "as" {
		alias := cursor.MatchAfterOptional(whitespaceMatcher, identifierMatcher)
		if alias.Code != identifierToken {
			return p.errorf(cursor.Pos, "expected alias after as")
		}
		anImport.Alias = alias.Text(cursor)
		end = cursor.Pos
		next = cursor.MatchAfterOptional(whitespaceMatcher, semicolonMatcher)
	}
	if next.Code != semicolonToken {
		return p.errorf(end, "expected ';' after import %v", anImport.Subject)
	}
	p.imports = append(p.imports, anImport)
	return nil
}

func (p *parser) parseMember(kind ast.Kind, public bool, offset int, hasBody bool) error {
	cursor := p.cursor
	name := cursor.MatchAfterOptional(whitespaceMatcher, identifierMatcher)
	if name.Code != identifierToken {
		return p.errorf(cursor.Pos, "expected %v name", kind)
	}
	member := ast.Member{Kind: kind, Name: name.Text(cursor), Public: public, Pos: p.lines.position(offset)}
	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAfterOptional(whitespaceMatcher,
			lineCommentMatcher,
			commentBlockMatcher,
			doubleQuotedMatcher,
			scopeBlockMatcher,
			parenthesesBlockMatcher,
			squareBlockMatcher,
			referenceMatcher,
			identifierMatcher,
			semicolonMatcher,
			anyMatcher,
		)
		switch matched.Code {
		case scopeBlockToken, parenthesesBlockToken, squareBlockToken:
			p.collectReferences(member.Name, matched.Text(cursor), matched.Offset)
			if matched.Code == scopeBlockToken && hasBody {
				p.members = append(p.members, member)
				return nil
			}
		case referenceToken:
			p.addReference(member.Name, matched.Text(cursor), matched.Offset)
		case semicolonToken:
			if !hasBody {
				p.members = append(p.members, member)
				return nil
			}
			return p.errorf(matched.Offset, "unexpected ';' in %v %v, expected body", kind, member.Name)
		}
	}
	if hasBody {
		return p.errorf(offset, "%v %v has no body or body is not terminated", kind, member.Name)
	}
	return p.errorf(offset, "expected ';' after %v %v", kind, member.Name)
}

func (p *parser) collectReferences(member string, text string, baseOffset int) {
	cursor := parsly.NewCursor(p.path, []byte(text), 0)
	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAfterOptional(whitespaceMatcher,
			lineCommentMatcher,
			commentBlockMatcher,
			doubleQuotedMatcher,
			referenceMatcher,
			identifierMatcher,
			anyMatcher,
		)
		switch matched.Code {
		case referenceToken:
			p.addReference(member, matched.Text(cursor), baseOffset+matched.Offset)
		case parsly.EOF:
			return
		}
	}
}

func (p *parser) addReference(member string, text string, offset int) {
	index := strings.Index(text, "::")
	if index == -1 {
		return
	}
	p.references = append(p.references, ast.Reference{
		Alias:  text[:index],
		Name:   text[index+2:],
		Member: member,
		Pos:    p.lines.position(offset),
	})
}

func (p *parser) peek() string {
	if p.cursor.Pos >= p.cursor.InputSize {
		return "EOF"
	}
	return string(p.cursor.Input[p.cursor.Pos])
}

func (p *parser) errorf(offset int, format string, args ...interface{}) error {
	return newSyntaxError(p.name, p.path, p.lines.position(offset), format, args...)
}

type lineIndex []int

func newLineIndex(input []byte) lineIndex {
	var result = lineIndex{0}
	for i, b := range input {
		if b == '\n' {
			result = append(result, i+1)
		}
	}
	return result
}

func (l lineIndex) position(offset int) ast.Position {
	line := sort.Search(len(l), func(i int) bool {
		return l[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	return ast.Position{Offset: offset, Line: line + 1, Column: offset - l[line] + 1}
}
