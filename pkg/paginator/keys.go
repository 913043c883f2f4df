package paginator

import "github.com/macropower/turner/pkg/keys"

// KeyBinds holds the navigation bindings of the widget. Digit keys 1-9 are
// always bound to direct page jumps and are not configurable.
type KeyBinds struct {
	Prev  *keys.KeyBind `json:"prev,omitempty"  jsonschema:"title=Previous Page"`
	Next  *keys.KeyBind `json:"next,omitempty"  jsonschema:"title=Next Page"`
	First *keys.KeyBind `json:"first,omitempty" jsonschema:"title=First Page"`
	Last  *keys.KeyBind `json:"last,omitempty"  jsonschema:"title=Last Page"`
}

func (kb *KeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.Prev,
		keys.NewBind("previous page",
			keys.New("left", keys.WithAlias("←")),
			keys.New("h"),
		))
	keys.SetDefaultBind(&kb.Next,
		keys.NewBind("next page",
			keys.New("right", keys.WithAlias("→")),
			keys.New("l"),
		))
	keys.SetDefaultBind(&kb.First,
		keys.NewBind("first page",
			keys.New("home"),
		))
	keys.SetDefaultBind(&kb.Last,
		keys.NewBind("last page",
			keys.New("end"),
		))
}

func (kb *KeyBinds) GetKeyBinds() []keys.KeyBind {
	return []keys.KeyBind{
		*kb.Prev,
		*kb.Next,
		*kb.First,
		*kb.Last,
	}
}
