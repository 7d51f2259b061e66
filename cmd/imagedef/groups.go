package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage product groups",
	}
	cmd.AddCommand(groupsListCmd(), groupsCreateCmd(), groupsDeleteCmd())
	return cmd
}

func groupsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List product groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := apiClient().listGroups(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tCREATED")
			for _, g := range groups {
				desc := ""
				if g.Description != nil {
					desc = *g.Description
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", g.ID, g.Name, desc, g.CreatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
}

func groupsCreateCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a product group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var desc *string
			if description != "" {
				desc = &description
			}
			group, err := apiClient().createGroup(cmd.Context(), args[0], desc)
			if err != nil {
				return err
			}
			fmt.Printf("Created product group %s (%s)\n", group.Name, group.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "group description")
	return cmd
}

func groupsDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product group and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Delete product group %s and all of its products, architectures, variants, and artifacts?", args[0]),
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}
			if err := apiClient().deleteGroup(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}
