package render

import (
	"bytes"
	"context"
	"html/template"
)

var htmlTemplate = template.Must(template.New("document").Funcs(template.FuncMap{
	"cell": func(cells []string, i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	},
	"indent": func(level int) int {
		if level <= 1 {
			return 0
		}
		return (level - 1) * 16
	},
	"align": func(a Align) string {
		if a == AlignRight {
			return "right"
		}
		return "left"
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 16px; }
th { background: #e6e6e6; border-bottom: 1px solid #999; padding: 4px; }
td { padding: 4px; }
tr.total td { font-weight: bold; border-top: 1px solid #999; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Header}}<div>{{.}}</div>
{{end}}
{{- $cols := .Columns}}
{{range .Sections}}
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<table>
<thead><tr>{{range $cols}}<th style="text-align: {{align .Align}}">{{.Label}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}{{$row := .}}<tr{{if .Emphasis}} class="total"{{end}}>{{range $i, $c := $cols}}<td style="text-align: {{align $c.Align}}{{if eq $i 0}}; padding-left: {{indent $row.Level}}px{{end}}">{{cell $row.Cells $i}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{end}}
{{if .Footer}}<footer>{{.Footer}}</footer>{{end}}
</body>
</html>
`))

type htmlEngine struct{}

// NewHTMLEngine returns an engine producing a standalone HTML page.
func NewHTMLEngine() Engine {
	return htmlEngine{}
}

func (htmlEngine) Name() string { return "html" }

func (htmlEngine) Supports(f Format) bool { return f == FormatHTML }

func (htmlEngine) Export(ctx context.Context, doc Document, f Format) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.String(), nil
}
