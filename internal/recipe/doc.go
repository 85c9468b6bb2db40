// Package recipe holds the recipe catalog and the pure operations over it.
//
// # Overview
//
// The catalog is a small literal table compiled into the binary. It is turned
// into a Store once, when the package is initialised, and is read-only from
// then on. Nothing in the application adds, edits or removes recipes.
//
// # Core Types
//
// Recipe:
//   - ID: unique, stable identifier used as a list key
//   - Title: display name, the only searchable field
//   - Ingredients: ordered, may be empty, duplicates allowed
//   - Steps: ordered, may be empty
//
// Store:
//   - Built by NewStore, which rejects blank and duplicate IDs
//   - All returns copies in catalog order
//   - ByID is for command-line lookups; the detail screen never calls it
//
// # Search
//
// Filter is a linear scan keeping every recipe whose lower-cased title
// contains the lower-cased query:
//
//	recipe.Filter("PASTA", store.All()) // → [Pasta al Pesto]
//	recipe.Filter("", store.All())      // → every recipe, catalog order
//	recipe.Filter("xyz", store.All())   // → empty, never nil
//
// Lowering uses golang.org/x/text/cases with the undetermined language tag, so
// "CÉSAR" and "césar" match the same titles. Accents are not folded: "cesar"
// does not match "César".
//
// # Detail Layout
//
// Lines produces the document every front end draws:
//
//	Ensalada César
//	Ingredientes:
//	• Lechuga
//	• Pollo
//	Pasos:
//	1. Lavar y cortar la lechuga
//	2. Cocinar el pollo
//
// Markdown produces the same content for the glamour renderer used by the
// show command.
package recipe
