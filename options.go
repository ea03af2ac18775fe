package gltfgen

import "fmt"

// defaultMaxDepth bounds recursive descent through nested schemas. glTF's own
// tree is a handful of levels deep; the limit exists for robustness, not
// because hostile input is expected.
const defaultMaxDepth = 64

// Options controls compilation behavior.
type Options struct {
	// MaxDepth overrides the recursion depth limit; 0 means the default.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return defaultMaxDepth
}

// Diag carries non-fatal warnings produced during compilation and emission.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
