package main

import (
	"html/template"

	"github.com/luachboard/luach/internal/view"
)

// LoadTemplates returns the HTML templates for the board page
func LoadTemplates() *template.Template {
	return view.PageTemplate()
}
