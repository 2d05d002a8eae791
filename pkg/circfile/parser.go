// Package circfile parses the textual circuit description format (.otc)
// used by the command-line tools to load circuits for inspection. It is a
// developer-facing interchange format, not the product persistence backend.
package circfile

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses circuit description files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds a parser instance. Building compiles the grammar once; a
// parser is safe to reuse.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(CircuitLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("circfile: build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse reads a circuit description from r.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("circfile: parse: %w", err)
	}
	return file, nil
}

// ParseString parses a circuit description from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("circfile: parse: %w", err)
	}
	return file, nil
}

// ParseFile parses a circuit description from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("circfile: open %s: %w", filename, err)
	}
	defer f.Close()
	return p.Parse(f)
}
