package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/osimagekit/image-definitions/internal/config"
	"github.com/osimagekit/image-definitions/internal/infra/database"
	"github.com/osimagekit/image-definitions/internal/infra/logger"
	"github.com/osimagekit/image-definitions/internal/modules/service"
)

var (
	flagConfig    string
	flagForce     bool
	flagPreview   bool
	flagVerbose   bool
	flagBlacklist []string
)

func main() {
	root := &cobra.Command{
		Use:   "bootstrap",
		Short: "Import a unified-config YAML into the image-definitions catalog",
		RunE:  run,
	}
	root.Flags().StringVarP(&flagConfig, "config", "c", "unified-config.yml", "unified config file to import")
	root.Flags().BoolVarP(&flagForce, "force", "f", false, "skip the confirmation prompt")
	root.Flags().BoolVarP(&flagPreview, "preview", "p", false, "parse and summarize without touching the database")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	root.Flags().StringSliceVar(&flagBlacklist, "blacklist", nil, "group names to skip (repeatable; overrides the default list)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagVerbose {
		cfg.Log.Debug = true
		cfg.Log.Level = "debug"
	}
	if flagConfig == "unified-config.yml" && cfg.Bootstrap.ConfigPath != "" {
		flagConfig = cfg.Bootstrap.ConfigPath
	}

	blacklist := flagBlacklist
	if blacklist == nil && len(cfg.Bootstrap.Blacklist) > 0 {
		blacklist = cfg.Bootstrap.Blacklist
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	bootstrapper := service.NewBootstrapper(nil, log, blacklist)
	unified, err := bootstrapper.LoadConfig(flagConfig)
	if err != nil {
		return err
	}

	printPreview(unified, blacklist)
	if flagPreview {
		return nil
	}

	if !flagForce {
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Import %d product groups into %s?", len(unified.ProductGroups), cfg.Database.URL),
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	db, err := database.New(cfg, log)
	if err != nil {
		return err
	}

	bootstrapper = service.NewBootstrapper(db, log, blacklist)
	stats, err := bootstrapper.Run(context.Background(), unified)
	if err != nil {
		return err
	}

	printStats(stats)
	return nil
}

func printPreview(cfg *service.UnifiedConfig, blacklist []string) {
	banned := make(map[string]struct{}, len(blacklist))
	if blacklist == nil {
		blacklist = service.DefaultBlacklist
	}
	for _, name := range blacklist {
		banned[strings.ToLower(name)] = struct{}{}
	}

	names := make([]string, 0, len(cfg.ProductGroups))
	for name := range cfg.ProductGroups {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tPRODUCTS\tNOTE")
	for _, name := range names {
		note := ""
		if _, skip := banned[strings.ToLower(name)]; skip {
			note = "blacklisted"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(cfg.ProductGroups[name].Products), note)
	}
	w.Flush()
	fmt.Println()
}

func printStats(stats *service.BootstrapStats) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Product groups created\t", stats.ProductGroupsCreated)
	fmt.Fprintln(w, "Products created\t", stats.ProductsCreated)
	fmt.Fprintln(w, "Variants created\t", stats.VariantsCreated)
	fmt.Fprintln(w, "Skipped (already present)\t", stats.Skipped)
	fmt.Fprintln(w, "Errors\t", stats.Errors)
	w.Flush()

	if stats.Errors > 0 {
		fmt.Println("\nCompleted with errors; see the log for details.")
	} else {
		fmt.Printf("\nDone: %d entities created.\n", stats.TotalCreated())
	}
}
