// Package ui implements the recetas terminal interface with Bubble Tea.
//
// # Screens
//
// The root Model owns a nav.Stack with two routes:
//
//   - List (nav.Home): a focused search field above the recipe titles. Every
//     edit recomputes the visible rows with recipe.Filter. Printable keys
//     always go to the search field; the list moves with the arrow keys,
//     ctrl+p/ctrl+n and pgup/pgdown.
//   - Detail (nav.Details): the recipe carried by the route, rendered from
//     recipe.Lines into a scrollable viewport. esc, backspace, left or q
//     return to the list with the search text untouched.
//
// # Event Flow
//
//  1. Run builds the Model from Options and starts the program.
//  2. Update is the only place state changes: key, mouse and resize
//     messages update the search field, selection or route.
//  3. View renders header, body and footer from the current route.
//
// Theme changes (ctrl+t) are saved to the prefs file in a command so the
// write never blocks the event loop.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:       ctx,
//		Store:         recipe.Default(),
//		Logger:        logger,
//		ThemeName:     "Nightfox",
//		ShowEmptyHint: true,
//	})
package ui
