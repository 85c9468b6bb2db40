// Package config loads the recetas configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/recetas/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or blank, keep the defaults
//
// # TOML Format
//
//	theme = "Kanagawa"
//	log_file = "~/.local/state/recetas/recetas.log"
//	placeholder = "Buscar receta..."
//	show_empty_hint = true
//
// Every field is optional. A theme set here overrides the saved preference
// (see package prefs); the --theme flag overrides both. An empty log_file
// disables logging.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
