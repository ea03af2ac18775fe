// Command gltfgen compiles a directory of glTF JSON-Schema files into a
// single Go source file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/karitora/gltfgen"
)

var cli struct {
	Config   string      `short:"c" default:"gltfgen.yaml" help:"Manifest file. Flags override its values."`
	Verbose  bool        `short:"v" help:"Enable debug logging."`
	Generate generateCmd `cmd:"" default:"withargs" help:"Compile a schema directory into a Go source file."`
}

type generateCmd struct {
	SchemaDir string `short:"d" help:"Directory holding the schema files." type:"existingdir"`
	Entry     string `short:"e" help:"Entry schema file, relative to the schema directory."`
	Package   string `short:"p" help:"Package name for the emitted file."`
	Out       string `short:"o" help:"Output path. Defaults to <package>.go in the working directory."`
	MaxDepth  int    `help:"Nesting depth limit while normalizing."`
}

// manifest mirrors the generate flags so projects can commit their
// generation settings next to the schemas.
type manifest struct {
	SchemaDir string `yaml:"schema_dir"`
	Entry     string `yaml:"entry"`
	Package   string `yaml:"package"`
	Out       string `yaml:"out"`
	MaxDepth  int    `yaml:"max_depth"`
}

func loadManifest(path string) (manifest, error) {
	var m manifest
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// merge fills unset flags from the manifest and applies the remaining
// defaults.
func (c *generateCmd) merge(m manifest) {
	if c.SchemaDir == "" {
		c.SchemaDir = m.SchemaDir
	}
	if c.Entry == "" {
		c.Entry = m.Entry
	}
	if c.Package == "" {
		c.Package = m.Package
	}
	if c.Out == "" {
		c.Out = m.Out
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = m.MaxDepth
	}
	if c.SchemaDir == "" {
		c.SchemaDir = "."
	}
	if c.Entry == "" {
		c.Entry = "glTF.schema.json"
	}
	if c.Package == "" {
		c.Package = "gltf"
	}
	if c.Out == "" {
		c.Out = c.Package + ".go"
	}
}

func (c *generateCmd) Run(log zerolog.Logger) error {
	start := time.Now()
	log.Info().
		Str("schema_dir", c.SchemaDir).
		Str("entry", c.Entry).
		Str("package", c.Package).
		Msg("compiling schema graph")

	comp, diag, err := gltfgen.CompileDir(c.SchemaDir, c.Entry, gltfgen.Options{MaxDepth: c.MaxDepth})
	logWarnings(log, diag)
	if err != nil {
		return err
	}
	log.Debug().
		Int("structs", comp.NumStructs()).
		Int("enums", comp.NumEnums()).
		Msg("schema graph compiled")

	src, diag, err := comp.Generate(c.Package)
	logWarnings(log, diag)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, src, 0o644); err != nil {
		return err
	}
	log.Info().
		Str("out", c.Out).
		Int("bytes", len(src)).
		Dur("elapsed", time.Since(start)).
		Msg("wrote generated file")
	return nil
}

func logWarnings(log zerolog.Logger, diag gltfgen.Diag) {
	if diag == nil || !diag.HasWarnings() {
		return
	}
	for _, w := range diag.Warnings() {
		log.Warn().Msg(w)
	}
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("gltfgen"),
		kong.Description("Compile glTF 2.0 JSON-Schema files into a typed Go data model."),
		kong.UsageOnError(),
	)

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	m, err := loadManifest(cli.Config)
	if err != nil {
		log.Fatal().Err(err).Msg("manifest")
	}
	cli.Generate.merge(m)

	if err := ctx.Run(log); err != nil {
		log.Fatal().Err(err).Msg("generate failed")
	}
}
