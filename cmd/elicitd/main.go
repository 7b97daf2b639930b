// elicitd: an MCP server that creates user profiles and job postings,
// asking the user for whatever the calling assistant left out.
//
// Usage:
//
//	elicitd serve      # Start MCP server (stdio transport)
//	elicitd version    # Print the version
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/HendryAvila/elicitd/internal/config"
	elicitserver "github.com/HendryAvila/elicitd/internal/server"
)

// flagKeys binds persistent flags to configuration keys.
var flagKeys = map[string]string{
	"store-driver": "store.driver",
	"store-path":   "store.path",
	"seed":         "store.seed",
	"timeout":      "elicitation.timeout",
	"log-level":    "log.level",
}

type rootFlags struct {
	configFile string
	debug      bool
	cfg        config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "elicitd",
		Short:         "MCP server for user profiles and job postings with elicitation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags.configFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			flags.cfg = cfg
			setupLogging(cmd.ErrOrStderr(), cfg.Log.Level, flags.debug)
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "path to a YAML config file")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.String("store-driver", config.DriverMemory, "record store: memory or sqlite")
	pf.String("store-path", "", "SQLite database file (empty: in-memory)")
	pf.Bool("seed", false, "add the demo user profile to an empty store")
	pf.Duration("timeout", config.Default().Elicitation.Timeout, "how long to wait for the user to answer a form")
	pf.String("log-level", "info", "log level: debug, info, warn, error")

	cmd.AddCommand(newServeCmd(&flags), newVersionCmd())
	return cmd
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := elicitserver.New(flags.cfg)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			defer cleanup()

			slog.Info("serving on stdio", "version", elicitserver.Version)
			return server.ServeStdio(s)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "elicitd v%s\n", elicitserver.Version)
			return err
		},
	}
}

// loadConfig layers flags that were set explicitly over the file,
// environment, and defaults.
func loadConfig(file string, fs *pflag.FlagSet) (config.Config, error) {
	v, err := config.NewViper(file)
	if err != nil {
		return config.Config{}, err
	}
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return config.Config{}, fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return config.Load(v)
}

// setupLogging installs a text logger on w, which must not be stdout:
// the stdio transport owns it.
func setupLogging(w io.Writer, level string, debug bool) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	if debug {
		lvl = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
}
