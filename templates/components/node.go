// Package components holds the small rendering helpers shared by the layout
// and the page sections.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Templ adapts a gomponents node to a templ component.
func Templ(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Node adapts a templ component to a gomponents node rendered with ctx.
func Node(ctx context.Context, c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}
