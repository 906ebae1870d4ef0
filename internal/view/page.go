package view

import "html/template"

// PageData feeds the board layout template; Sections carries the four
// containers' current markup in page order.
type PageData struct {
	Title    string
	Sections []template.HTML
}

var pageTmpl = template.Must(template.New("board.html").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, serif; background: #f7f4ec; color: #2b2b2b; margin: 0; }
  h1 { text-align: center; padding: 1rem 0 0; }
  .board { display: flex; flex-wrap: wrap; gap: 1rem; padding: 1rem; justify-content: center; }
  .card { background: #fff; border: 1px solid #d8d2c2; border-radius: 6px; padding: 1rem 1.5rem; min-width: 18rem; }
  .card h2 { margin-top: 0; border-bottom: 2px solid #8a7b52; padding-bottom: .3rem; }
  .card .label { font-weight: bold; margin-right: .5rem; }
  .card.pending p { color: #8a7b52; font-style: italic; }
  .hebrew { font-size: 1.1em; margin-left: .5rem; }
  .reading-date { color: #6b6352; }
  ul { list-style: none; padding-left: 0; }
  li { margin: .35rem 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<main class="board">
{{- range .Sections}}
{{.}}
{{- end}}
</main>
</body>
</html>`))

// PageTemplate returns the board layout for gin's HTML renderer.
func PageTemplate() *template.Template {
	return pageTmpl
}
