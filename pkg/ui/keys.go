package ui

import "github.com/macropower/turner/pkg/keys"

// CommonKeyBinds are the bindings shared by every browser screen.
type CommonKeyBinds struct {
	Quit    *keys.KeyBind `json:"quit,omitempty"    jsonschema:"title=Quit"`
	Suspend *keys.KeyBind `json:"suspend,omitempty" jsonschema:"title=Suspend"`
	Reload  *keys.KeyBind `json:"reload,omitempty"  jsonschema:"title=Reload"`
	Help    *keys.KeyBind `json:"help,omitempty"    jsonschema:"title=Toggle Help"`
	Escape  *keys.KeyBind `json:"escape,omitempty"  jsonschema:"title=Go Back"`
	Copy    *keys.KeyBind `json:"copy,omitempty"    jsonschema:"title=Copy Page"`
	GoTo    *keys.KeyBind `json:"goto,omitempty"    jsonschema:"title=Go To Page"`
}

func (kb *CommonKeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.Quit, keys.NewBind("quit", keys.New("q")))
	// Always ensure that ctrl+c is bound to quit.
	kb.Quit.AddKey(keys.New("ctrl+c", keys.WithAlias("⌃c"), keys.Hidden()))

	keys.SetDefaultBind(&kb.Suspend,
		keys.NewBind("suspend",
			keys.New("ctrl+z", keys.WithAlias("⌃z"), keys.Hidden()),
		))
	keys.SetDefaultBind(&kb.Reload,
		keys.NewBind("reload",
			keys.New("r"),
		))
	keys.SetDefaultBind(&kb.Help,
		keys.NewBind("toggle help",
			keys.New("?"),
		))
	keys.SetDefaultBind(&kb.Escape,
		keys.NewBind("go back",
			keys.New("esc"),
		))
	keys.SetDefaultBind(&kb.Copy,
		keys.NewBind("copy page",
			keys.New("c"),
		))
	keys.SetDefaultBind(&kb.GoTo,
		keys.NewBind("go to page",
			keys.New("g"),
		))
}

func (kb *CommonKeyBinds) GetKeyBinds() []keys.KeyBind {
	return []keys.KeyBind{
		*kb.Quit,
		*kb.Suspend,
		*kb.Reload,
		*kb.Help,
		*kb.Escape,
		*kb.Copy,
		*kb.GoTo,
	}
}
