// Package prolog_tool parses Prolog-style terms: atoms, variables,
// integers, compounds and lists. It backs the "Prolog-facts" graph
// ingestion format (model.ParsePrologFacts); programs sent to the
// embedded interpreter in prolog.go are not parsed with it.
package prolog_tool

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Term interface {
	term()
}

type Var struct {
	Value string `@Var`
}

type Atom struct {
	Value string `@Atom`
}

// Number is a bare integer literal, as used for vertex indices and
// link counts in fact files — the underlying Prolog interpreter has
// no opinion on this, but the grammar needs a token for it.
type Number struct {
	Value int `@Number`
}

type Compound struct {
	Value string `@Atom`
	Args  []Term `"(" @@ ( "," @@)*  ")"`
}

type List struct {
	Values []Term `"[" (@@ ( "," @@)*  ("|" Var)?)? "]"`
}

type Formula struct {
	Formula Term `@@`
}

func (Var) term()      {}
func (Atom) term()     {}
func (Number) term()   {}
func (List) term()     {}
func (Compound) term() {}

var termLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Atom", Pattern: `[a-z]+[a-zA-Z_0-9]*`},
	{Name: "Var", Pattern: `[A-Z_][a-zA-Z_0-9]*`},
	{Name: "Punct", Pattern: `[-[!@#$%^&*()+={}\|:;"'<,>.?/]|]`},
})

var termParser = participle.MustBuild[Formula](
	participle.Union[Term](Compound{}, Var{}, Number{}, Atom{}, List{}),
	participle.Lexer(termLexer),
	participle.Elide("Whitespace"))

// ParseTerm parses a single term from s.
func ParseTerm(s string) (Term, error) {
	g, e := termParser.ParseString("", s)
	return g.Formula, e
}
