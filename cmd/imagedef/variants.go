package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func variantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "Inspect variants",
	}
	cmd.AddCommand(variantsListCmd())
	return cmd
}

func variantsListCmd() *cobra.Command {
	var archID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			variants, err := apiClient().listVariants(cmd.Context(), archID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tARCHITECTURE\tBUILD CONFIG KEYS")
			for _, v := range variants {
				keys := len(v.BuildConfig)
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", v.ID, v.Name, v.ArchitectureID, keys)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&archID, "architecture", "a", "", "filter by architecture id")
	return cmd
}
