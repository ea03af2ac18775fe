package gltfgen

import (
	"io/fs"
	"os"

	"github.com/karitora/gltfgen/internal/gen"
	"github.com/karitora/gltfgen/internal/ir"
)

// Compilation is the result of one compilation run: every struct and enum
// definition reachable from the entry schema, in discovery order.
type Compilation struct {
	reg  *ir.Registry
	diag *simpleDiag
}

// Compile resolves the entry schema under fsys and normalizes the whole
// reachable schema graph. All errors are fatal; there is no partial result.
func Compile(fsys fs.FS, entry string, opts Options) (*Compilation, Diag, error) {
	c := newCompiler(newLoader(fsys), opts)
	if _, err := c.normalizeFile(entry, 0); err != nil {
		return nil, c.diag, err
	}
	return &Compilation{reg: c.reg, diag: c.diag}, c.diag, nil
}

// CompileDir is a convenience wrapper over Compile rooted at a directory
// path.
func CompileDir(dir, entry string, opts Options) (*Compilation, Diag, error) {
	return Compile(os.DirFS(dir), entry, opts)
}

// Generate emits the compiled definitions as one gofmt-formatted Go source
// file in package pkg. Opaque passthrough fields produce non-fatal
// diagnostics, never an error.
func (c *Compilation) Generate(pkg string) ([]byte, Diag, error) {
	d := &simpleDiag{}
	src, warnings, err := gen.Render(pkg, c.reg)
	for _, w := range warnings {
		d.warnf("%s", w)
	}
	if err != nil {
		return nil, d, err
	}
	return src, d, nil
}

// NumStructs reports how many struct definitions were registered.
func (c *Compilation) NumStructs() int { return len(c.reg.Structs()) }

// NumEnums reports how many enum definitions were registered.
func (c *Compilation) NumEnums() int { return len(c.reg.Enums()) }
