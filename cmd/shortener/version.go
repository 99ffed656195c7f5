package main

import (
	"github.com/spf13/cobra"

	"github.com/fsdevblog/shortlinks/internal/bmeta"
)

func newVersionCmd(meta bmeta.Info) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version, date and commit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return meta.Print(cmd.OutOrStdout()) //nolint:wrapcheck
		},
	}
}
