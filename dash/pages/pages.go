// Package pages names the top-level screens and owns the page cursor.
package pages

// Page is the screen currently rendered.
type Page uint8

const (
	Dashboard Page = iota
	Debug
	Logs

	pageCount
)

// Next returns the cyclic successor.
func (p Page) Next() Page { return (p + 1) % pageCount }

// Title is the header text for the page.
func (p Page) Title() string {
	switch p {
	case Dashboard:
		return "OBD DASHBOARD"
	case Debug:
		return "DEBUG"
	case Logs:
		return "LOGS"
	}
	return "?"
}

// Controller tracks the visible page.
type Controller struct {
	current Page
}

// Current returns the visible page.
func (c *Controller) Current() Page { return c.current }

// Advance moves to the next page and returns it.
func (c *Controller) Advance() Page {
	c.current = c.current.Next()
	return c.current
}
