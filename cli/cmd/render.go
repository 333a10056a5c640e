package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/storax/envmatrix/log"
	"github.com/storax/envmatrix/render"
)

// Render projects the expanded matrix through template files to produce CI
// configuration outputs.
type Render struct {
	Templates []string `arg:""          help:"Template file(s) to render."                      name:"template" type:"existingfile"`
	Output    string   `default:"."     help:"Output directory."                                short:"o"       type:"existingdir"`
	Suffix    string   `default:".tpl"  help:"Template suffix stripped from output file names."`
	Select    string   `                help:"Keep only combinations matching this expression." short:"e"`
	YAML      bool     `name:"yaml"     help:"Parse spec input as a YAML document."`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	mat, err := loadMatrix(ctx, r.YAML, r.Select)
	if err != nil {
		return err
	}

	for _, tpl := range r.Templates {
		out := filepath.Join(r.Output, r.outputName(tpl))

		err := render.File(ctx, tpl, out, mat,
			render.WithLogger(log.Default()),
		)
		if err != nil {
			return err
		}

		log.InfoContext(ctx, "rendered template",
			slog.String("template", tpl),
			slog.String("output", out),
		)
	}

	return nil
}

// outputName derives the output file name from a template path by stripping
// the configured suffix. A template named "tox.ini.tpl" renders to "tox.ini".
func (r *Render) outputName(tpl string) string {
	name := filepath.Base(tpl)
	if r.Suffix != "" {
		name = strings.TrimSuffix(name, r.Suffix)
	}

	return name
}
