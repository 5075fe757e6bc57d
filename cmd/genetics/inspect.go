package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"genetics/pkg/schemas"
)

func newInspectCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "inspect <schema.json>",
		Short: "Print each model's output name and the kind inferred for every attribute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sch, err := schemas.FromJSONFile(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if raw {
				fmt.Fprintln(w, sch.String())
				return sch.CheckOutputNames()
			}

			for i, m := range sch.Models() {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s -> %s\n", m.ID(), m.OutputName())
				for _, na := range m.Attributes() {
					optional := ""
					if na.Attribute.Optional() {
						optional = ", optional"
					}
					fmt.Fprintf(w, "\t %s: %s (%s%s)\n", na.Name, na.Attribute, na.Attribute.Kind(), optional)
				}
			}
			return sch.CheckOutputNames()
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print attributes with their raw tokens only")
	return cmd
}
