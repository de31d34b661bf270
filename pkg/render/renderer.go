package render

import (
	"context"
)

// Renderer turns a parameter form into a byte representation (HTML, terminal
// transcript, JSON payload).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options RenderOptions) ([]byte, error)
}
