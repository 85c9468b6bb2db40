package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/recetas/internal/app"
	"github.com/five82/recetas/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "recetas: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "recetas",
		Short: "Browse and search recipes in the terminal",
		Long: `recetas lists recipes, filters them by title as you type and
shows ingredients and steps for the selected recipe.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/recetas/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "prefs file (default ~/.config/recetas/prefs.toml)")
	flags.StringVar(&opts.Theme, "theme", "", "color theme ("+strings.Join(ui.ThemeNames(), ", ")+")")
	flags.StringVarP(&opts.Query, "query", "q", "", "initial search text")
	flags.StringVar(&opts.LogFile, "log-file", "", "write logs to this file")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newSearchCmd(), newShowCmd())
	return cmd
}
