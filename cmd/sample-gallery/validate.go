package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/sample-gallery/internal/catalog"
)

func newValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that a catalog file is valid JSON",
		Long: `Parses a catalog file and reports the first syntax error with its
line, the offending text and a caret under the failing column.

Defaults to ` + catalog.DefaultPath + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := catalog.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}

			if err := catalog.ValidateFile(path, cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
				c.logger.Debug("catalog validation failed", zap.String("path", path), zap.Error(err))
				return &reportedError{err: err}
			}
			return nil
		},
	}
}
