package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/storax/envmatrix/log"
)

// starterSpec is the spec file written by the init command. It demonstrates
// the block syntax: group headers, aliased entries, and exclusion rules.
const starterSpec = `# Build matrix spec.
#
# Each unindented "name:" line opens a variable group. Indented lines are the
# group's entries: an optional alias before ':', the value, then any number of
# exclusion (!group[pattern]) or inclusion (&group[pattern]) rules. Use '-'
# for an intentionally empty value.

python_versions:
    2.7
    3.6
    3.7 !environments[staging*]

environments:
    production
    staging

coverage_flags:
    cover: true
    nocov: false !environments[production]
`

// Init writes a starter matrix spec file.
type Init struct {
	Path  string `arg:"" default:"envmatrix.spec" help:"Spec file to create." optional:""`
	Force bool   `       help:"Overwrite an existing file."                   short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	// Check if file exists and force not set
	_, err = os.Stat(i.Path)
	if err == nil && !i.Force {
		return ErrWriteSpec.
			With(slog.String("file", i.Path)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	err = os.WriteFile(i.Path, []byte(starterSpec), 0o644)
	if err != nil {
		return ErrWriteSpec.
			With(slog.String("file", i.Path)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized spec file",
		slog.String("path", i.Path),
	)

	return nil
}
