package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"number-converter/internal/converter"
)

func modesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the supported conversion modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, m := range converter.Modes() {
				fmt.Fprintf(w, "%s\t%s\tmax %d chars\n", m.ShortName(), m.String(), m.MaxLength())
			}
			return w.Flush()
		},
	}
}
