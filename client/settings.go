// collapse.go - a wave-function-collapse Sudoku solver.
// Copyright (C) 2026 Ben Jurewicz.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package client

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

const (
	brandName               = "collapse"
	applicationVersion      = "1.0"
	templatePageSuffix      = "Page.tmpl.html"
	templateDirectoryEnvVar = "TEMPLATE_DIRECTORY"
)

/*

find and parse templates

The pages ship compiled into the binary, so a bare install needs
no template files on disk.  Setting TEMPLATE_DIRECTORY overrides
a built-in page with <name>Page.tmpl.html from that directory,
which is how the pages get reskinned without a rebuild.

*/

// loadedTemplates is the cache of already-parsed templates
var loadedTemplates = make(map[string]*template.Template)

// loadPageTemplate finds and parses the named page template,
// preferring an on-disk override to the built-in page.
func loadPageTemplate(name string) (*template.Template, error) {
	if tmpl, ok := loadedTemplates[name]; ok {
		return tmpl, nil
	}
	if dir := os.Getenv(templateDirectoryEnvVar); dir != "" {
		fp := filepath.Join(dir, name+templatePageSuffix)
		if _, err := os.Stat(fp); err == nil {
			tmpl, err := template.ParseFiles(fp)
			if err != nil {
				return nil, fmt.Errorf("Couldn't parse template file %q: %v", fp, err)
			}
			loadedTemplates[name] = tmpl
			return tmpl, nil
		}
	}
	text, ok := builtinPages[name]
	if !ok {
		return nil, fmt.Errorf("No template for page %q", name)
	}
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("Couldn't parse built-in template %q: %v", name, err)
	}
	loadedTemplates[name] = tmpl
	return tmpl, nil
}

// applicationFooter renders the page footer
func applicationFooter() string {
	return fmt.Sprintf("%s v%s", brandName, applicationVersion)
}

/*

built-in pages

*/

var builtinPages = map[string]string{
	"solver": solverPageText,
	"error":  errorPageText,
}

const solverPageText = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table.puzzle { border-collapse: collapse; }
table.puzzle td {
  width: 2em; height: 2em; text-align: center;
  border: 1px solid #999; font-size: 1.2em;
}
td.darker { background: #e8e8e8; }
td.lighter { background: #ffffff; }
td.top { border-top: 2px solid #333; }
td.bottom { border-bottom: 2px solid #333; }
td.left { border-left: 2px solid #333; }
td.right { border-right: 2px solid #333; }
footer { margin-top: 2em; color: #777; font-size: 0.8em; }
</style>
</head>
<body>
<h1>{{.TopHead}}</h1>
<table class="puzzle">
{{range .Puzzle}}<tr>
{{range .}}<td id="c{{.Index}}" class="{{.Shade}} {{.HBorder}} {{.VBorder}}">{{.Value}}</td>
{{end}}</tr>
{{end}}</table>
{{if .Solved}}<p>Solved in {{.Stats.Collapses}} collapses with {{.Stats.Backtracks}} backtracks.</p>{{end}}
{{if .Signature}}<p class="signature">puzzle {{.Signature}}</p>{{end}}
<form method="POST" action="/solver/">
<textarea name="puzzle" rows="9" cols="24" placeholder="81 digits, 0 or . for blanks"></textarea>
<br><input type="submit" value="Solve">
</form>
<footer>{{.ApplicationFooter}}</footer>
</body>
</html>
`

const errorPageText = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>Something went wrong</h1>
<p>{{.Message}}</p>
<footer>{{.ApplicationFooter}}</footer>
</body>
</html>
`
