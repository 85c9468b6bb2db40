package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/five82/recetas/internal/recipe"
)

const markdownWidth = 80

func newShowCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a recipe's ingredients and steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRecipe(cmd, recipe.Default(), args[0], plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print plain text instead of rendered markdown")
	return cmd
}

func printRecipe(cmd *cobra.Command, store *recipe.Store, id string, plain bool) error {
	r, ok := store.ByID(id)
	if !ok {
		return fmt.Errorf("recipe %q: %w", id, recipe.ErrNotFound)
	}

	out := recipe.PlainText(r) + "\n"
	if !plain {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(markdownWidth),
		)
		if err != nil {
			return fmt.Errorf("init markdown renderer: %w", err)
		}
		out, err = renderer.Render(recipe.Markdown(r))
		if err != nil {
			return fmt.Errorf("render recipe: %w", err)
		}
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
