package recipe

// catalog is the literal table the default store is built from.
var catalog = []Recipe{
	{
		ID:          "1",
		Title:       "Ensalada César",
		Ingredients: []string{"Lechuga", "Pollo", "Queso parmesano", "Aderezo César"},
		Steps:       []string{"Lavar y cortar la lechuga", "Cocinar el pollo", "Mezclar todo con el aderezo", "Servir y disfrutar"},
	},
	{
		ID:          "2",
		Title:       "Pasta al Pesto",
		Ingredients: []string{"Pasta", "Pesto", "Queso rallado", "Aceite de oliva"},
		Steps:       []string{"Cocer la pasta", "Agregar el pesto", "Mezclar bien", "Servir con queso rallado"},
	},
}

var defaultStore = mustStore(catalog...)

// Default returns the process-wide store built from the bundled catalog.
func Default() *Store {
	return defaultStore
}

func mustStore(recipes ...Recipe) *Store {
	s, err := NewStore(recipes...)
	if err != nil {
		panic("recipe: invalid catalog: " + err.Error())
	}
	return s
}
