// Command pokedex serves and queries the filtered PokeAPI catalog.
package main

import (
	"fmt"
	"os"

	"github.com/Sternrassler/pokeapi-catalog/internal/config"
	"github.com/Sternrassler/pokeapi-catalog/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	prettyLogs bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Filtered PokeAPI catalog",
	Long: `pokedex fetches filtered, paginated pages of Pokémon from PokeAPI.

Configuration is read from config.yaml (or --config) and POKEDEX_* environment
variables, e.g. POKEDEX_CACHE_BACKEND=redis.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		loaded.Log.Level = logLevel
	}
	if cmd.Flags().Changed("pretty") {
		loaded.Log.Pretty = prettyLogs
	}

	logging.Setup(logging.Config{
		Level:   logging.LogLevel(loaded.Log.Level),
		Pretty:  loaded.Log.Pretty,
		Output:  cmd.ErrOrStderr(),
		Service: "pokedex",
	})

	cfg = loaded
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&prettyLogs, "pretty", false, "Human-readable console logs")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
