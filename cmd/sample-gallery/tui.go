package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/sample-gallery/internal/tui"
)

func newTUICmd(c *cli) *cobra.Command {
	var markdownStyle string

	cmd := &cobra.Command{
		Use:   "tui [query...]",
		Short: "Open the interactive terminal gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			// the alternate screen owns the terminal; log only when sent to a file
			logger := c.logger
			if c.logFile == "" {
				logger = zap.NewNop()
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			loader := c.newLoader()
			m := tui.New(ctx, loader,
				tui.WithLogger(logger),
				tui.WithOptions(c.options),
				tui.WithMarkdownStyle(markdownStyle),
				tui.WithQuery(strings.Join(args, " ")),
			)
			return tui.Run(ctx, m)
		},
	}

	cmd.Flags().StringVar(&markdownStyle, "style", "dark", "Detail pane style: dark, light, notty")

	return cmd
}
