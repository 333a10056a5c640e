package cmd

import (
	"context"

	"github.com/storax/envmatrix/cli/cmd/browse"
	"github.com/storax/envmatrix/log"
)

// Browse opens an interactive terminal browser over the expanded matrix.
type Browse struct {
	Select string `            help:"Keep only combinations matching this expression." short:"e"`
	YAML   bool   `name:"yaml" help:"Parse spec input as a YAML document."`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	mat, err := loadMatrix(ctx, b.YAML, b.Select)
	if err != nil {
		return err
	}

	return browse.Run(ctx, mat, log.Default())
}
