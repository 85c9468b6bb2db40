// Package nav implements the typed screen stack that moves the UI between the
// recipe list and a recipe's detail page.
//
// Routes form a closed set: Home is always at the bottom of the stack and
// Details carries the full recipe it should render. The destination screen
// reads its parameter from the route and never looks anything up.
package nav

import "github.com/five82/recetas/internal/recipe"

// Screen identifies which screen a route shows.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenDetails
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenDetails:
		return "Details"
	default:
		return "Unknown"
	}
}

// Route is a stack entry together with its parameters.
type Route interface {
	Screen() Screen
	Title() string
	route()
}

// Home is the recipe list.
type Home struct{}

func (Home) Screen() Screen { return ScreenHome }
func (Home) Title() string  { return "Recetas" }
func (Home) route()         {}

// Details shows one recipe.
type Details struct {
	Recipe recipe.Recipe
}

func (Details) Screen() Screen { return ScreenDetails }
func (Details) Title() string  { return "Detalle de receta" }
func (Details) route()         {}

// Stack is an immutable navigation stack. Push and Pop return new stacks and
// leave the receiver untouched.
type Stack struct {
	routes []Route
}

// New returns a stack holding only the Home route.
func New() Stack {
	return Stack{routes: []Route{Home{}}}
}

// Push returns a stack with r on top.
func (s Stack) Push(r Route) Stack {
	routes := make([]Route, len(s.routes), len(s.routes)+1)
	copy(routes, s.routes)
	return Stack{routes: append(routes, r)}
}

// Pop removes the top route. The root route is never removed; ok is false
// when there was nothing to pop.
func (s Stack) Pop() (Stack, bool) {
	if !s.CanGoBack() {
		return s, false
	}
	routes := make([]Route, len(s.routes)-1)
	copy(routes, s.routes)
	return Stack{routes: routes}, true
}

// Current returns the top route, Home for a zero stack.
func (s Stack) Current() Route {
	if len(s.routes) == 0 {
		return Home{}
	}
	return s.routes[len(s.routes)-1]
}

// Depth is the number of routes on the stack.
func (s Stack) Depth() int {
	if len(s.routes) == 0 {
		return 1
	}
	return len(s.routes)
}

// CanGoBack reports whether there is a route below the current one.
func (s Stack) CanGoBack() bool {
	return len(s.routes) > 1
}
