package circfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CircuitLexer defines the lexical structure for .otc circuit description
// files. The format is keyword-driven; comments run from "--" to end of line.
var CircuitLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords (must precede Ident)
	{Name: "KwCircuit", Pattern: `(?i)\bCIRCUIT\b`},
	{Name: "KwComponent", Pattern: `(?i)\bCOMPONENT\b`},
	{Name: "KwWire", Pattern: `(?i)\bWIRE\b`},
	{Name: "KwAt", Pattern: `(?i)\bAT\b`},
	{Name: "KwVariant", Pattern: `(?i)\bVARIANT\b`},
	{Name: "KwRotate", Pattern: `(?i)\bROTATE\b`},
	{Name: "KwFlipX", Pattern: `(?i)\bFLIPX\b`},
	{Name: "KwFlipY", Pattern: `(?i)\bFLIPY\b`},
	{Name: "KwProp", Pattern: `(?i)\bPROP\b`},
	{Name: "KwFrom", Pattern: `(?i)\bFROM\b`},
	{Name: "KwTo", Pattern: `(?i)\bTO\b`},
	{Name: "KwPin", Pattern: `(?i)\bPIN\b`},
	{Name: "KwColor", Pattern: `(?i)\bCOLOR\b`},
	{Name: "KwTrue", Pattern: `(?i)\bTRUE\b`},
	{Name: "KwFalse", Pattern: `(?i)\bFALSE\b`},

	{Name: "Equals", Pattern: `=`},
	{Name: "Comma", Pattern: `,`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Real", Pattern: `[-+]?[0-9]+\.[0-9]+`},
	{Name: "Integer", Pattern: `[-+]?[0-9]+`},

	// Identifiers cover component ids, type names and most pin ids; pin ids
	// that start with a digit (e.g. "1.l") are written as quoted strings.
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_.+\-]*`},
})
