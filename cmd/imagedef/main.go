package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

const (
	defaultAddr   = "http://localhost:8000"
	defaultPrefix = "/api"
)

var (
	flagAddr   string
	flagPrefix string
)

// fileConfig is the optional ~/.imagedef.toml.
type fileConfig struct {
	Addr   string `toml:"addr"`
	Prefix string `toml:"prefix"`
}

func loadFileConfig() fileConfig {
	var cfg fileConfig
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	raw, err := os.ReadFile(filepath.Join(home, ".imagedef.toml"))
	if err != nil {
		return cfg
	}
	_ = toml.Unmarshal(raw, &cfg)
	return cfg
}

// resolveAddr picks the server address: flag, then IMAGEDEF_ADDR, then
// ~/.imagedef.toml, then the default.
func resolveAddr() string {
	if flagAddr != "" {
		return flagAddr
	}
	if env := os.Getenv("IMAGEDEF_ADDR"); env != "" {
		return env
	}
	if cfg := loadFileConfig(); cfg.Addr != "" {
		return cfg.Addr
	}
	return defaultAddr
}

// resolvePrefix picks the server's API prefix the same way, so a server run
// with a custom server.api_prefix stays reachable.
func resolvePrefix() string {
	if flagPrefix != "" {
		return flagPrefix
	}
	if env := os.Getenv("IMAGEDEF_PREFIX"); env != "" {
		return env
	}
	if cfg := loadFileConfig(); cfg.Prefix != "" {
		return cfg.Prefix
	}
	return defaultPrefix
}

func apiClient() *client {
	return newClient(resolveAddr(), resolvePrefix())
}

func main() {
	root := &cobra.Command{
		Use:   "imagedef",
		Short: "Client for the image-definitions catalog API",
	}
	root.PersistentFlags().StringVar(&flagAddr, "addr", "", "server address (default from IMAGEDEF_ADDR or ~/.imagedef.toml)")
	root.PersistentFlags().StringVar(&flagPrefix, "prefix", "", "server API prefix (default from IMAGEDEF_PREFIX or ~/.imagedef.toml, falls back to /api)")

	root.AddCommand(groupsCmd())
	root.AddCommand(productsCmd())
	root.AddCommand(variantsCmd())
	root.AddCommand(artifactsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
