package parser

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	lineCommentToken
	commentBlockToken
	attributeToken
	doubleQuotedToken
	parenthesesBlockToken
	squareBlockToken
	scopeBlockToken
	referenceToken
	dottedNameToken
	identifierToken
	semicolonToken
	anyToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
var lineCommentMatcher = parsly.NewToken(lineCommentToken, "LineComment", &lineCommentMatch{})
var commentBlockMatcher = parsly.NewToken(commentBlockToken, "CommentBlock", matcher.NewSeqBlock("/*", "*/"))
var attributeMatcher = parsly.NewToken(attributeToken, "Attribute", &attributeMatch{})
var doubleQuotedMatcher = parsly.NewToken(doubleQuotedToken, "DoubleQuote", &stringMatch{})
var parenthesesBlockMatcher = parsly.NewToken(parenthesesBlockToken, "Parentheses", &blockMatch{begin: '(', end: ')'})
var squareBlockMatcher = parsly.NewToken(squareBlockToken, "SquareBrackets", &blockMatch{begin: '[', end: ']'})
var scopeBlockMatcher = parsly.NewToken(scopeBlockToken, "{ .... }", &blockMatch{begin: '{', end: '}'})
var referenceMatcher = parsly.NewToken(referenceToken, "Reference", &referenceMatch{})
var dottedNameMatcher = parsly.NewToken(dottedNameToken, "ModuleName", &dottedNameMatch{})
var identifierMatcher = parsly.NewToken(identifierToken, "Identifier", &identifierMatch{})
var semicolonMatcher = parsly.NewToken(semicolonToken, ";", matcher.NewByte(';'))
var anyMatcher = parsly.NewToken(anyToken, "Any", &anyMatch{})

type anyMatch struct{}

func (a *anyMatch) Match(cursor *parsly.Cursor) int {
	if cursor.Pos < cursor.InputSize {
		return 1
	}
	return 0
}

type lineCommentMatch struct{}

func (l *lineCommentMatch) Match(cursor *parsly.Cursor) int {
	pos := cursor.Pos
	if !hasPrefix(cursor.Input, pos, cursor.InputSize, '/', '/') {
		return 0
	}
	return skipLineComment(cursor.Input, pos, cursor.InputSize) - pos
}

type stringMatch struct{}

func (s *stringMatch) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize || cursor.Input[cursor.Pos] != '"' {
		return 0
	}
	end := skipString(cursor.Input, cursor.Pos, cursor.InputSize)
	if end == -1 {
		return 0
	}
	return end - cursor.Pos
}

// blockMatch matches balanced block, brackets inside comments and string literals are ignored
type blockMatch struct {
	begin byte
	end   byte
}

func (b *blockMatch) Match(cursor *parsly.Cursor) int {
	input, size := cursor.Input, cursor.InputSize
	pos := cursor.Pos
	if pos >= size || input[pos] != b.begin {
		return 0
	}
	depth := 0
	for pos < size {
		switch {
		case hasPrefix(input, pos, size, '/', '/'):
			pos = skipLineComment(input, pos, size)
			continue
		case hasPrefix(input, pos, size, '/', '*'):
			if pos = skipBlockComment(input, pos, size); pos == -1 {
				return 0
			}
			continue
		case input[pos] == '"':
			if pos = skipString(input, pos, size); pos == -1 {
				return 0
			}
			continue
		case input[pos] == b.begin:
			depth++
		case input[pos] == b.end:
			if depth--; depth == 0 {
				return pos + 1 - cursor.Pos
			}
		}
		pos++
	}
	return 0
}

func hasPrefix(input []byte, pos, size int, first, second byte) bool {
	return pos+1 < size && input[pos] == first && input[pos+1] == second
}

// skipLineComment returns position of the line end
func skipLineComment(input []byte, pos, size int) int {
	for pos < size && input[pos] != '\n' {
		pos++
	}
	return pos
}

// skipBlockComment returns position after closing */ or -1
func skipBlockComment(input []byte, pos, size int) int {
	for pos += 2; pos < size; pos++ {
		if hasPrefix(input, pos, size, '*', '/') {
			return pos + 2
		}
	}
	return -1
}

// skipString returns position after closing quote or -1
func skipString(input []byte, pos, size int) int {
	for pos++; pos < size; pos++ {
		switch input[pos] {
		case '\\':
			pos++
		case '"':
			return pos + 1
		}
	}
	return -1
}

// attributeMatch matches #[...] and #![...]
type attributeMatch struct{}

func (a *attributeMatch) Match(cursor *parsly.Cursor) int {
	pos := cursor.Pos
	if pos >= cursor.InputSize || cursor.Input[pos] != '#' {
		return 0
	}
	pos++
	if pos < cursor.InputSize && cursor.Input[pos] == '!' {
		pos++
	}
	if pos >= cursor.InputSize || cursor.Input[pos] != '[' {
		return 0
	}
	depth := 0
	for ; pos < cursor.InputSize; pos++ {
		switch cursor.Input[pos] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return pos + 1 - cursor.Pos
			}
		}
	}
	return 0
}

type identifierMatch struct{}

func (i *identifierMatch) Match(cursor *parsly.Cursor) int {
	return matchIdentifier(cursor.Input, cursor.Pos, cursor.InputSize)
}

// referenceMatch matches alias::name
type referenceMatch struct{}

func (r *referenceMatch) Match(cursor *parsly.Cursor) int {
	size := matchIdentifier(cursor.Input, cursor.Pos, cursor.InputSize)
	if size == 0 {
		return 0
	}
	pos := cursor.Pos + size
	if pos+1 >= cursor.InputSize || cursor.Input[pos] != ':' || cursor.Input[pos+1] != ':' {
		return 0
	}
	pos += 2
	name := matchIdentifier(cursor.Input, pos, cursor.InputSize)
	if name == 0 {
		return 0
	}
	return pos + name - cursor.Pos
}

// dottedNameMatch matches foo.bar.baz
type dottedNameMatch struct{}

func (d *dottedNameMatch) Match(cursor *parsly.Cursor) int {
	pos := cursor.Pos
	for {
		size := matchIdentifier(cursor.Input, pos, cursor.InputSize)
		if size == 0 {
			return 0
		}
		pos += size
		if pos+1 < cursor.InputSize && cursor.Input[pos] == '.' && isIdentifierStart(cursor.Input[pos+1]) {
			pos++
			continue
		}
		return pos - cursor.Pos
	}
}

func matchIdentifier(input []byte, pos, size int) int {
	if pos >= size || !isIdentifierStart(input[pos]) {
		return 0
	}
	end := pos + 1
	for end < size && isIdentifierPart(input[end]) {
		end++
	}
	return end - pos
}

func isIdentifierStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentifierPart(b byte) bool {
	return isIdentifierStart(b) || (b >= '0' && b <= '9')
}
