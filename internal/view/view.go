package view

import (
	"html/template"
	"sync"
)

// Target is anything a rendered section can be written into. Keeping the
// render side behind this interface lets the refresh logic run against a
// plain in-memory slot in tests.
type Target interface {
	SetHTML(h template.HTML)
}

// Container is a Target holding the current markup for one dashboard
// section. Writes replace the previous content wholesale; a section that
// never rendered serves its placeholder.
type Container struct {
	mu   sync.RWMutex
	html template.HTML
}

// NewContainer returns a container pre-filled with placeholder markup.
func NewContainer(placeholder template.HTML) *Container {
	return &Container{html: placeholder}
}

// SetHTML replaces the container's content.
func (c *Container) SetHTML(h template.HTML) {
	c.mu.Lock()
	c.html = h
	c.mu.Unlock()
}

// HTML returns the container's current content.
func (c *Container) HTML() template.HTML {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.html
}
