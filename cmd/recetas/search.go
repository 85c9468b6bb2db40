package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/recetas/internal/recipe"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Print recipes whose title contains the query",
		Long: `Print one "id<TAB>title" line per matching recipe, in catalog order.
Matching ignores case. With no query every recipe is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			return printSearch(cmd, recipe.Default(), query)
		},
	}
}

func printSearch(cmd *cobra.Command, store *recipe.Store, query string) error {
	var b strings.Builder
	for _, r := range recipe.Filter(query, store.All()) {
		fmt.Fprintf(&b, "%s\t%s\n", r.ID, r.Title)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}
