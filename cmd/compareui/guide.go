package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-compareui/pkg/provider"
)

func newGuideCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "guide <provider>",
		Short: "Print the install and setup guide of a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags, "show guide")
			if err != nil {
				return err
			}
			id, err := provider.Parse(args[0])
			if err != nil {
				return newCommandError("show guide", "resolving provider", err, "Run compareui providers to list provider ids.")
			}
			guide, err := a.studio.Guide(id)
			if err != nil {
				return newCommandError("show guide", "rendering guide", err, "")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), guide)
			return err
		},
	}
}
