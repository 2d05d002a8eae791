package circfile

import "strings"

// File is the AST root for a circuit description file.
//
// Example:
//
//	circuit "blink"
//
//	component R1 resistor at (100, 200)
//	component LED1 led at (300, 200) rotate 90 flipx
//	component SW1 switch variant spdt at (500, 100)
//	component MCU1 mcu at (100, 400) prop board = "uno"
//
//	wire W1 from R1 pin b to LED1 pin A color "green"
//	wire W2 from MCU1 pin "GND.1" to LED1 pin C
type File struct {
	Name       *Name        `parser:"(KwCircuit @String)?"`
	Statements []*Statement `parser:"@@*"`
}

// Statement is one top-level declaration.
type Statement struct {
	Component *ComponentStmt `parser:"  @@"`
	Wire      *WireStmt      `parser:"| @@"`
}

// ComponentStmt places one component.
type ComponentStmt struct {
	ID      Name               `parser:"KwComponent @(Ident | String)"`
	Type    Name               `parser:"@(Ident | String)"`
	Clauses []*ComponentClause `parser:"@@*"`
}

// ComponentClause is one optional attribute of a component statement. The
// clauses may appear in any order.
type ComponentClause struct {
	At      *Coord      `parser:"  KwAt @@"`
	Variant *Name       `parser:"| KwVariant @(Ident | String)"`
	Rotate  *int        `parser:"| KwRotate @Integer"`
	FlipX   bool        `parser:"| @KwFlipX"`
	FlipY   bool        `parser:"| @KwFlipY"`
	Prop    *PropClause `parser:"| @@"`
}

// Coord is a parenthesized coordinate pair.
type Coord struct {
	X float64 `parser:"LParen @(Real | Integer) Comma"`
	Y float64 `parser:"@(Real | Integer) RParen"`
}

// PropClause sets one type-specific component attribute.
type PropClause struct {
	Key   Name       `parser:"KwProp @(Ident | String) Equals"`
	Value *PropValue `parser:"@@"`
}

// PropValue is a string, number or boolean literal.
type PropValue struct {
	Str   *string  `parser:"  @String"`
	Num   *float64 `parser:"| @(Real | Integer)"`
	True  bool     `parser:"| @KwTrue"`
	False bool     `parser:"| @KwFalse"`
}

// Interface returns the literal as a plain Go value.
func (v *PropValue) Interface() any {
	switch {
	case v.Str != nil:
		return unquote(*v.Str)
	case v.Num != nil:
		return *v.Num
	case v.True:
		return true
	case v.False:
		return false
	}
	return nil
}

// WireStmt connects two pins.
type WireStmt struct {
	ID       Name  `parser:"KwWire @(Ident | String)"`
	FromComp Name  `parser:"KwFrom @(Ident | String)"`
	FromPin  Name  `parser:"KwPin @(Ident | String)"`
	ToComp   Name  `parser:"KwTo @(Ident | String)"`
	ToPin    Name  `parser:"KwPin @(Ident | String)"`
	Color    *Name `parser:"(KwColor @String)?"`
}

// Name is an identifier that may be written bare or as a quoted string.
type Name string

// Capture strips quotes from string-form names.
func (n *Name) Capture(values []string) error {
	*n = Name(unquote(values[0]))
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
		s = strings.ReplaceAll(s, `\"`, `"`)
		s = strings.ReplaceAll(s, `\\`, `\`)
	}
	return s
}
