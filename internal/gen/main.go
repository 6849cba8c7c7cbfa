// Command gen renders the per-operation Go sources of the dispatch layer
// from api.toml.
//
// It is run by go generate from the module root:
//
//	go run ./internal/gen
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
)

// API is the decoded operation description.
type API struct {
	Version int  `toml:"version"`
	Ops     []Op `toml:"op"`
}

// Op is one dispatch slot.
type Op struct {
	Name     string   `toml:"name"`
	Params   []string `toml:"params"`
	Result   string   `toml:"result"`
	Listable bool     `toml:"listable"`

	Index int     `toml:"-"`
	Param []Param `toml:"-"`
}

// Param is one parsed "name type" parameter.
type Param struct {
	Name string
	Type string
}

type packageFile struct {
	Name     string
	Template *template.Template
}

var packageFiles []packageFile

func main() {
	apiPath := flag.String("api", "internal/gen/api.toml", "operation description")
	outDir := flag.String("out", ".", "module root to write generated files into")
	flag.Parse()

	api, err := load(*apiPath)
	if err != nil {
		log.Fatalf("gen: %v", err)
	}
	for _, pf := range packageFiles {
		if err := render(pf, api, *outDir); err != nil {
			log.Fatalf("gen: %v", err)
		}
	}
}

func load(path string) (*API, error) {
	var api API
	if _, err := toml.DecodeFile(path, &api); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(api.Ops) == 0 {
		return nil, fmt.Errorf("%s: no operations", path)
	}

	seen := make(map[string]bool, len(api.Ops))
	for i := range api.Ops {
		op := &api.Ops[i]
		if seen[op.Name] {
			return nil, fmt.Errorf("%s: duplicate operation %s", path, op.Name)
		}
		seen[op.Name] = true
		op.Index = i
		for _, p := range op.Params {
			name, typ, ok := strings.Cut(p, " ")
			if !ok {
				return nil, fmt.Errorf("%s: %s: malformed parameter %q", path, op.Name, p)
			}
			op.Param = append(op.Param, Param{Name: name, Type: strings.TrimSpace(typ)})
		}
	}
	return &api, nil
}

func render(pf packageFile, api *API, outDir string) error {
	var buf bytes.Buffer
	if err := pf.Template.Execute(&buf, api); err != nil {
		return fmt.Errorf("execute %s: %w", pf.Name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w\n%s", pf.Name, err, buf.Bytes())
	}
	path := filepath.Join(outDir, pf.Name)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// qualify prefixes the glapi-defined types for use outside the package.
func qualify(typ string) string {
	switch typ {
	case "Enum", "Bitfield":
		return "glapi." + typ
	}
	return typ
}

func params(op Op, qualified bool) string {
	parts := make([]string, len(op.Param))
	for i, p := range op.Param {
		typ := p.Type
		if qualified {
			typ = qualify(typ)
		}
		parts[i] = p.Name + " " + typ
	}
	return strings.Join(parts, ", ")
}

func types(op Op) string {
	parts := make([]string, len(op.Param))
	for i, p := range op.Param {
		parts[i] = p.Type
	}
	return strings.Join(parts, ", ")
}

func args(op Op) string {
	parts := make([]string, len(op.Param))
	for i, p := range op.Param {
		parts[i] = p.Name
	}
	return strings.Join(parts, ", ")
}

func result(op Op, qualified bool) string {
	if op.Result == "" {
		return ""
	}
	if qualified {
		return " " + qualify(op.Result)
	}
	return " " + op.Result
}

func zero(typ string) string {
	switch typ {
	case "bool":
		return "false"
	case "string":
		return `""`
	}
	return "0"
}

// attr returns the slog attribute expression used to trace a parameter.
func attr(p Param) string {
	switch p.Type {
	case "[]byte":
		return fmt.Sprintf("slog.Int(%q, len(%s))", p.Name, p.Name)
	case "Enum", "Bitfield":
		return fmt.Sprintf("slog.String(%q, hex(uint32(%s)))", p.Name, p.Name)
	case "int32":
		return fmt.Sprintf("slog.Int(%q, int(%s))", p.Name, p.Name)
	case "uint8", "uint32":
		return fmt.Sprintf("slog.Uint64(%q, uint64(%s))", p.Name, p.Name)
	case "float32":
		return fmt.Sprintf("slog.Float64(%q, float64(%s))", p.Name, p.Name)
	case "bool":
		return fmt.Sprintf("slog.Bool(%q, %s)", p.Name, p.Name)
	}
	return fmt.Sprintf("slog.Any(%q, %s)", p.Name, p.Name)
}

func attrs(op Op) string {
	var b strings.Builder
	for _, p := range op.Param {
		b.WriteString(", ")
		b.WriteString(attr(p))
	}
	return b.String()
}

func buildTemplate(name, content string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(content))
}

var funcs = template.FuncMap{
	"params":  func(op Op) string { return params(op, false) },
	"qparams": func(op Op) string { return params(op, true) },
	"types":   types,
	"args":    args,
	"result":  func(op Op) string { return result(op, false) },
	"qresult": func(op Op) string { return result(op, true) },
	"zero":    zero,
	"attrs":   attrs,
}

func init() {
	packageFiles = []packageFile{
		{"ops_gen.go", buildTemplate("ops_gen.go", tmplOps)},
		{"table_gen.go", buildTemplate("table_gen.go", tmplTable)},
		{"noop_gen.go", buildTemplate("noop_gen.go", tmplNoop)},
		{"entry_gen.go", buildTemplate("entry_gen.go", tmplEntry)},
		{filepath.Join("backend", "trace", "trace_gen.go"), buildTemplate("trace_gen.go", tmplTrace)},
	}
}

const header = `// Code generated by internal/gen from api.toml. DO NOT EDIT.
`

var tmplOps = header + `
package glapi

// Operation slots in table order.
const (
{{- range .Ops}}
	Op{{.Name}} Op = {{.Index}}
{{- end}}

	// NumOps is the number of slots in every Table.
	NumOps = {{len .Ops}}
)

// APIVersion is the version of the operation description the table layout
// was generated from.
const APIVersion = {{.Version}}

var opNames = [NumOps]string{
{{- range .Ops}}
	"{{.Name}}",
{{- end}}
}

var opListable = [NumOps]bool{
{{- range .Ops}}{{if .Listable}}
	Op{{.Name}}: true,
{{- end}}{{end}}
}
`

var tmplTable = header + `
package glapi

// Funcs holds one implementation per operation. A nil field means the
// backend does not provide the operation; Build fills it.
type Funcs struct {
{{- range .Ops}}
	{{.Name}} func({{params .}}){{result .}}
{{- end}}
}

// fill sets every nil slot of f from fb and returns the operations it set.
func (f *Funcs) fill(fb *Funcs) []Op {
	var filled []Op
{{- range .Ops}}
	if f.{{.Name}} == nil {
		f.{{.Name}} = fb.{{.Name}}
		filled = append(filled, Op{{.Name}})
	}
{{- end}}
	return filled
}

// unset returns the operations whose slot is nil.
func (f *Funcs) unset() []Op {
	var ops []Op
{{- range .Ops}}
	if f.{{.Name}} == nil {
		ops = append(ops, Op{{.Name}})
	}
{{- end}}
	return ops
}

// slot returns the implementation of op, or nil for an unknown op.
func (f *Funcs) slot(op Op) any {
	switch op {
{{- range .Ops}}
	case Op{{.Name}}:
		return f.{{.Name}}
{{- end}}
	}
	return nil
}

// load sets every slot for which lookup returns a function of the slot's
// type and returns the operations whose value had some other type.
func (f *Funcs) load(lookup func(name string) any) []Op {
	var bad []Op
{{- range .Ops}}
	switch v := lookup("gl{{.Name}}").(type) {
	case nil:
	case func({{types .}}){{result .}}:
		f.{{.Name}} = v
	default:
		bad = append(bad, Op{{.Name}})
	}
{{- end}}
	return bad
}
{{range .Ops}}
// {{.Name}} invokes the {{.Name}} slot.
func (t *Table) {{.Name}}({{params .}}){{result .}} {
	{{if .Result}}return {{end}}t.f.{{.Name}}({{args .}})
}
{{end}}`

var tmplNoop = header + `
package glapi

// stubs is the no-op implementation of every operation. Each stub reports
// the call through diagnose and returns the zero value of its result.
var stubs = Funcs{
{{- range .Ops}}
	{{.Name}}: func({{types .}}){{result .}} {
		diagnose(Op{{.Name}})
		{{- if .Result}}
		return {{zero .Result}}
		{{- end}}
	},
{{- end}}
}
`

var tmplEntry = header + `
package glapi
{{range .Ops}}
// {{.Name}} calls {{.Name}} on the table bound to the calling thread.
func {{.Name}}({{params .}}){{result .}} {
	{{if .Result}}return {{end}}Current().{{.Name}}({{args .}})
}
{{end}}
// entryPoints holds the entry point of every operation in slot order.
var entryPoints = [NumOps]any{
{{- range .Ops}}
	{{.Name}},
{{- end}}
}

// ProcAddress returns the entry point of the operation named name, or nil if
// there is none. Both "Begin" and "glBegin" are accepted. The result has the
// operation's func type, such as func(Enum) for Begin, and resolves the
// current table on every call, so it follows later bindings.
func ProcAddress(name string) any {
	op, ok := OpByName(name)
	if !ok {
		return nil
	}
	return entryPoints[op]
}
`

var tmplTrace = header + `
package trace

import (
	"context"
	"log/slog"

	"github.com/gogpu/glapi"
)

// funcs returns implementations that log each call and forward it to in.
func funcs(in *glapi.Table, l *slog.Logger) glapi.Funcs {
	return glapi.Funcs{
{{- range .Ops}}
		{{.Name}}: func({{qparams .}}){{qresult .}} {
		{{- if .Result}}
			r := in.{{.Name}}({{args .}})
			if l.Enabled(context.Background(), slog.LevelDebug) {
				l.LogAttrs(context.Background(), slog.LevelDebug, "gl{{.Name}}"{{attrs .}}, slog.Any("result", r))
			}
			return r
		{{- else}}
			if l.Enabled(context.Background(), slog.LevelDebug) {
				l.LogAttrs(context.Background(), slog.LevelDebug, "gl{{.Name}}"{{attrs .}})
			}
			in.{{.Name}}({{args .}})
		{{- end}}
		},
{{- end}}
	}
}
`
