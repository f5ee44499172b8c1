// Command generate writes the arity-indexed builder families:
// dispatch_generated.go, query_generated.go, system_generated.go and
// observer_generated.go.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const maxArity = 8

type arity struct {
	N int
}

func (a arity) each(f func(i int) string) string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = f(i)
	}
	return strings.Join(parts, ", ")
}

func (a arity) TypeParams() string {
	return a.each(func(i int) string { return fmt.Sprintf("T%d any", i+1) })
}

func (a arity) TypeArgs() string {
	return a.each(func(i int) string { return fmt.Sprintf("T%d", i+1) })
}

func (a arity) List() string {
	if a.N == 1 {
		return "T1"
	}
	names := strings.Split(a.TypeArgs(), ", ")
	return strings.Join(names[:a.N-1], ", ") + " and " + names[a.N-1]
}

func (a arity) Fields() string {
	return a.each(func(i int) string { return fmt.Sprintf("Field[T%d]", i+1) })
}

// Results is the result list of Fields, parenthesized when there are
// several.
func (a arity) Results() string {
	if a.N == 1 {
		return a.Fields()
	}
	return "(" + a.Fields() + ")"
}

func (a arity) Spans() string {
	return a.each(func(i int) string { return fmt.Sprintf("[]T%d", i+1) })
}

func (a arity) Ptrs() string {
	return a.each(func(int) string { return "unsafe.Pointer" })
}

func (a arity) Stars() string {
	return a.each(func(i int) string { return fmt.Sprintf("*T%d", i+1) })
}

func (a arity) Infos() string {
	return a.each(func(i int) string { return fmt.Sprintf("TypeOf[T%d]()", i+1) })
}

func (a arity) CallFields() string {
	return a.each(func(i int) string { return fmt.Sprintf("FieldOf[T%d](it, %d)", i+1, i) })
}

func (a arity) CallSpans() string {
	return a.each(func(i int) string { return fmt.Sprintf("SpanOf[T%d](it, %d)", i+1, i) })
}

func (a arity) CallPtrs() string {
	return a.each(func(i int) string { return fmt.Sprintf("PointerOf(it, %d)", i) })
}

func (a arity) RowTyped() string {
	return a.each(func(i int) string { return fmt.Sprintf("(*T%d)(it.ptr(%d, i))", i+1, i) })
}

func (a arity) RowPtrs() string {
	return a.each(func(i int) string { return fmt.Sprintf("it.ptr(%d, i)", i) })
}

type forward struct {
	Name   string
	Params string
	Call   string
	Doc    string
}

var queryForwards = []forward{
	{"Name", "name string", "Name(name)", "sets the name used in logs and errors."},
	{"With", "ids ...ComponentID", "With(ids...)", "adds a required term for each of ids."},
	{"Without", "ids ...ComponentID", "Without(ids...)", "excludes entities holding any of ids."},
	{"Optional", "ids ...ComponentID", "Optional(ids...)", "adds an optional term for each of ids."},
	{"In", "", "In()", "marks the last term read-only."},
	{"Out", "", "Out()", "marks the last term write-only."},
	{"InOutNone", "", "InOutNone()", "marks the last term as a filter that produces no field."},
	{"Expr", "s string", "Expr(s)", "appends the terms of a query expression."},
	{"Cached", "", "Cached()", "keeps the matched table list between iterations."},
	{"GroupBy", "fn GroupByFunc", "GroupBy(fn)", "orders iteration by the group fn assigns to each table."},
}

var systemForwards = append(append([]forward(nil), queryForwards...),
	forward{"Kind", "p Phase", "Kind(p)", "sets the pipeline phase."},
	forward{"Interval", "seconds float64", "Interval(seconds)", "runs the system at most once per seconds of accumulated time."},
	forward{"Rate", "n int", "Rate(n)", "runs the system every n-th Progress call."},
	forward{"MultiThreaded", "multi bool", "MultiThreaded(multi)", "spreads batches over the world's worker threads."},
)

var observerForwards = append(append([]forward(nil), queryForwards...),
	forward{"Event", "ev EventID", "Event(ev)", "adds ev to the events the observer listens for."},
	forward{"YieldExisting", "", "YieldExisting()", "replays OnAdd and OnSet for entities that already match."},
)

type file struct {
	name string
	tmpl string
}

var files = []file{
	{"dispatch_generated.go", dispatchTmpl},
	{"query_generated.go", queryTmpl},
	{"system_generated.go", systemTmpl},
	{"observer_generated.go", observerTmpl},
}

func main() {
	out := flag.String("out", ".", "output directory")
	flag.Parse()
	arities := make([]arity, maxArity)
	for i := range arities {
		arities[i] = arity{N: i + 1}
	}
	funcs := template.FuncMap{
		"dict": func(kv ...any) map[string]any {
			m := make(map[string]any, len(kv)/2)
			for i := 0; i+1 < len(kv); i += 2 {
				m[kv[i].(string)] = kv[i+1]
			}
			return m
		},
		"queryForwards":    func() []forward { return queryForwards },
		"systemForwards":   func() []forward { return systemForwards },
		"observerForwards": func() []forward { return observerForwards },
	}
	for _, f := range files {
		t := template.Must(template.New(f.name).Funcs(funcs).Parse(shapesTmpl + forwardTmpl + f.tmpl))
		var buf bytes.Buffer
		if err := t.Execute(&buf, arities); err != nil {
			fmt.Fprintf(os.Stderr, "generate %s: %v\n", f.name, err)
			os.Exit(1)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			fmt.Fprintf(os.Stderr, "format %s: %v\n%s", f.name, err, buf.Bytes())
			os.Exit(1)
		}
		if err := os.WriteFile(filepath.Join(*out, f.name), src, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", f.name, err)
			os.Exit(1)
		}
	}
}
