// Package expr parses the query expression language accepted by
// QueryBuilder.Expr:
//
//	Position, !Frozen, ?Health, [in] Velocity, [none] game.Player
//
// A term is a component name, optionally qualified with a package path
// (github.com/acme/game.Player), prefixed by an access annotation and an
// operator.
package expr

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/rotisserie/eris"
)

// Oper is a term operator.
type Oper int

const (
	And Oper = iota
	Not
	Optional
)

var operMap = map[string]Oper{"!": Not, "?": Optional}

func (o *Oper) Capture(s []string) error {
	*o = operMap[s[0]]
	return nil
}

func (o Oper) String() string {
	switch o {
	case Not:
		return "!"
	case Optional:
		return "?"
	}
	return ""
}

type exprTerm struct {
	Access string `( "[" @( "inout" | "in" | "out" | "none" ) "]" )?`
	Oper   Oper   `@( "!" | "?" )?`
	Name   string `@Ident`
}

type expression struct {
	Terms []*exprTerm `@@ ( "," @@ )*`
}

// Idents swallow the path separators of a qualified Go type name.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_./\-]*`},
	{Name: "Punct", Pattern: `[\[\]!?,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[expression](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)

// Term is one parsed term. Access is "", "in", "out", "inout" or "none".
type Term struct {
	Name   string
	Oper   Oper
	Access string
}

func (t Term) String() string {
	var sb strings.Builder
	if t.Access != "" {
		sb.WriteString("[" + t.Access + "] ")
	}
	sb.WriteString(t.Oper.String())
	sb.WriteString(t.Name)
	return sb.String()
}

// Parse parses s into its terms, in order.
func Parse(s string) ([]Term, error) {
	if strings.TrimSpace(s) == "" {
		return nil, eris.New("empty query expression")
	}
	ast, err := parser.ParseString("", s)
	if err != nil {
		return nil, eris.Wrap(err, "parse query expression")
	}
	terms := make([]Term, len(ast.Terms))
	for i, t := range ast.Terms {
		access := t.Access
		if access == "inout" {
			access = ""
		}
		terms[i] = Term{
			Name:   t.Name,
			Oper:   t.Oper,
			Access: access,
		}
	}
	return terms, nil
}

// Format renders terms back into expression syntax.
func Format(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
