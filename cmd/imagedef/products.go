package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage products",
	}
	cmd.AddCommand(productsListCmd(), productsCreateCmd())
	return cmd
}

func productsListCmd() *cobra.Command {
	var groupID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := apiClient().listProducts(cmd.Context(), groupID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tVERSION\tGROUP")
			for _, p := range products {
				version := ""
				if p.Version != nil {
					version = *p.Version
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, version, p.ProductGroupID)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&groupID, "group", "g", "", "filter by product group id")
	return cmd
}

func productsCreateCmd() *cobra.Command {
	var groupID, version string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a product in a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if groupID == "" {
				return fmt.Errorf("--group is required")
			}
			var v *string
			if version != "" {
				v = &version
			}
			product, err := apiClient().createProduct(cmd.Context(), args[0], groupID, v)
			if err != nil {
				return err
			}
			fmt.Printf("Created product %s (%s)\n", product.Name, product.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&groupID, "group", "g", "", "product group id (required)")
	cmd.Flags().StringVar(&version, "version", "", "product version")
	return cmd
}
