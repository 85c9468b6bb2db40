// Package app is the composition root for recetas.
//
// Run loads the config file, opens the prefs file, builds the logger and
// hands the default recipe store to the UI:
//
//	Run()
//	  ├─> config.Load()        theme, log file, placeholder, empty hint
//	  ├─> prefs.Open().Load()  saved theme
//	  ├─> logging.New()        zap logger (no-op without a log file)
//	  └─> ui.Run()             TUI (blocks)
//
// Theme precedence is the Theme option, then the config file, then the saved
// prefs. A LogFile option replaces log_file from the config file.
package app
