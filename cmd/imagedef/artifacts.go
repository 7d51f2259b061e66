package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func artifactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artifacts",
		Short: "Inspect artifacts",
	}
	cmd.AddCommand(artifactsListCmd(), artifactsStatsCmd())
	return cmd
}

func artifactsListCmd() *cobra.Command {
	var variantID, artifactType, status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			artifacts, err := apiClient().listArtifacts(cmd.Context(), variantID, artifactType, status)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tREGION\tSIZE")
			for _, a := range artifacts {
				region := ""
				if a.Region != nil {
					region = *a.Region
				}
				size := ""
				if a.SizeBytes != nil {
					size = fmt.Sprintf("%d", *a.SizeBytes)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.ArtifactType, a.Status, region, size)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&variantID, "variant", "", "filter by variant id")
	cmd.Flags().StringVar(&artifactType, "type", "", "filter by artifact type")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	return cmd
}

func artifactsStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show artifact statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := apiClient().artifactStats(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BY TYPE")
			for t, n := range stats.ByType {
				fmt.Fprintf(w, "  %s\t%d\n", t, n)
			}
			fmt.Fprintln(w, "BY STATUS")
			for s, n := range stats.ByStatus {
				fmt.Fprintf(w, "  %s\t%d\n", s, n)
			}
			fmt.Fprintf(w, "TOTAL SIZE\t%d bytes\n", stats.TotalSizeBytes)
			return w.Flush()
		},
	}
}
