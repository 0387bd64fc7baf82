// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"fmt"
	"io"
	"math"

	"github.com/google/safehtml/template"
)

var htmlTmpl = template.Must(template.New("results").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.results { border-collapse: collapse; }
.results th, .results td { border: 1px solid #ccc; padding: 0.25em 0.75em; }
.results td { text-align: right; }
.results td.nodata { text-align: center; color: #999; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table class="results">
<tr><th>conf</th>{{range .Modes}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows -}}
<tr><th>{{.Conf}}</th>{{range .Cells}}{{if .NoData}}<td class="nodata">&mdash;</td>{{else}}<td>{{.Text}}</td>{{end}}{{end}}</tr>
{{end -}}
</table>
</body>
</html>
`))

type htmlCell struct {
	Text   string
	NoData bool
}

type htmlRow struct {
	Conf  string
	Cells []htmlCell
}

type htmlReport struct {
	Title string
	Modes []string
	Rows  []htmlRow
}

// FormatHTML writes t as a standalone HTML table, configurations as
// rows and modes as columns. Missing combinations render as a dash.
func FormatHTML(w io.Writer, t *Table, title string) error {
	rep := htmlReport{Title: title, Modes: t.Modes}
	for _, conf := range t.Confs {
		row := htmlRow{Conf: conf}
		for _, mode := range t.Modes {
			v := t.Value(mode, conf)
			if math.IsNaN(v) {
				row.Cells = append(row.Cells, htmlCell{NoData: true})
			} else {
				row.Cells = append(row.Cells, htmlCell{Text: fmt.Sprintf("%.2f", v)})
			}
		}
		rep.Rows = append(rep.Rows, row)
	}
	return htmlTmpl.Execute(w, rep)
}
