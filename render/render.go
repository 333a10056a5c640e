package render

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/goccy/go-yaml"

	"github.com/storax/envmatrix/log"
	"github.com/storax/envmatrix/matrix"
)

// Errors reported by this package. Each carries the template or file path
// as structured attributes.
var (
	ErrTemplateParse   = matrix.NewError("failed to parse template")
	ErrTemplateExecute = matrix.NewError("failed to execute template")
	ErrTemplateRead    = matrix.NewError("failed to read template")
	ErrOutputWrite     = matrix.NewError("failed to write output")
)

// Context is the root object visible to a template. Environments holds the
// expanded combinations in generation order.
type Context struct {
	Environments matrix.Matrix
}

// Option configures a render operation.
type Option func(*settings)

type settings struct {
	log   log.Logger
	funcs template.FuncMap
}

// WithLogger routes render diagnostics to the given logger.
func WithLogger(l log.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithFuncs merges additional template functions over the defaults.
// User-supplied functions shadow defaults of the same name.
func WithFuncs(funcs template.FuncMap) Option {
	return func(s *settings) {
		for name, fn := range funcs {
			s.funcs[name] = fn
		}
	}
}

func makeSettings(ctx context.Context, opts []Option) *settings {
	s := &settings{
		log:   log.Default(),
		funcs: Funcs(ctx),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Funcs returns the default template function map: "yaml" and "json" marshal
// a value to its serialized form, "join" concatenates strings with a
// separator, and "indent" prefixes every line of a block.
func Funcs(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"yaml": func(v any) (string, error) {
			b, err := yaml.MarshalContext(ctx, v)
			if err != nil {
				return "", err
			}
			return strings.TrimRight(string(b), "\n"), nil
		},
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
		"join": func(sep string, elem []string) string {
			return strings.Join(elem, sep)
		},
		"indent": func(width int, s string) string {
			pad := strings.Repeat(" ", width)
			return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
		},
	}
}

// Execute parses src as a template and renders the matrix into it, returning
// the rendered bytes. The template body sees a [Context] as its data.
func Execute(ctx context.Context, name, src string, mat matrix.Matrix, opts ...Option) ([]byte, error) {
	s := makeSettings(ctx, opts)
	tpl, err := template.New(name).Funcs(s.funcs).Parse(src)
	if err != nil {
		return nil, ErrTemplateParse.Wrap(err).With(
			slog.String("template", name),
		)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, Context{Environments: mat}); err != nil {
		return nil, ErrTemplateExecute.Wrap(err).With(
			slog.String("template", name),
		)
	}
	s.log.TraceContext(ctx, "rendered template",
		slog.String("template", name),
		slog.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

// File reads a template from tplPath, renders the matrix into it, and writes
// the result to outPath. The output directory must already exist.
func File(ctx context.Context, tplPath, outPath string, mat matrix.Matrix, opts ...Option) error {
	src, err := os.ReadFile(tplPath)
	if err != nil {
		return ErrTemplateRead.Wrap(err).With(
			slog.String("path", tplPath),
		)
	}
	out, err := Execute(ctx, filepath.Base(tplPath), string(src), mat, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return ErrOutputWrite.Wrap(err).With(
			slog.String("path", outPath),
		)
	}
	return nil
}
