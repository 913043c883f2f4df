// Package keys models configurable key bindings and renders them as help
// text.
package keys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
)

// Key represents a keyboard key with an optional display alias.
type Key struct {
	// Code is the key code identifier, as reported by Bubble Tea.
	Code string `json:"code" jsonschema:"title=Code"`
	// Alias is an alternative display name for the key.
	Alias string `json:"alias,omitempty" jsonschema:"title=Alias"`
	// Hidden hides the key from help output.
	Hidden bool `json:"hidden,omitempty" jsonschema:"title=Hidden"`
}

type KeyOpt func(k *Key)

func New(code string, opts ...KeyOpt) Key {
	k := &Key{Code: code}
	for _, opt := range opts {
		opt(k)
	}

	return *k
}

func WithAlias(alias string) KeyOpt {
	return func(k *Key) {
		k.Alias = alias
	}
}

func Hidden() KeyOpt {
	return func(k *Key) {
		k.Hidden = true
	}
}

func (k Key) String() string {
	if k.Alias != "" {
		return k.Alias
	}

	return k.Code
}

// KeyBind is a set of keys that trigger one action.
type KeyBind struct {
	// Description says what the binding does, for help output.
	Description string `json:"description" jsonschema:"title=Description"`
	// Keys lists the keys that trigger this binding.
	Keys []Key `json:"keys" jsonschema:"title=Keys"`
}

func NewBind(description string, keys ...Key) KeyBind {
	return KeyBind{
		Description: description,
		Keys:        keys,
	}
}

// Match reports whether the given key code triggers this binding. A nil
// binding matches nothing, so optional binds can be checked directly.
func (kb *KeyBind) Match(key string) bool {
	if kb == nil {
		return false
	}

	for _, k := range kb.Keys {
		if k.Code == key {
			return true
		}
	}

	return false
}

func (kb *KeyBind) String() string {
	visible := []string{}
	for _, k := range kb.Keys {
		if k.Hidden {
			continue
		}

		visible = append(visible, k.String())
	}

	return strings.Join(visible, "/")
}

// StringRow renders "keys  description" padded to the given widths.
func (kb *KeyBind) StringRow(keyWidth, descWidth int) string {
	ks := kb.String()
	if ks == "" {
		return "" // All keys hidden.
	}

	keyPad := strings.Repeat(" ", max(0, keyWidth-ansi.PrintableRuneWidth(ks)))
	descPad := strings.Repeat(" ", max(0, descWidth-ansi.PrintableRuneWidth(kb.Description)))

	return fmt.Sprintf("%s%s  %s%s", ks, keyPad, kb.Description, descPad)
}

// AddKey appends key to the binding unless its code is already bound.
func (kb *KeyBind) AddKey(key Key) {
	if kb == nil {
		return
	}

	for _, k := range kb.Keys {
		if k.Code == key.Code {
			return // Key already exists, do not add again.
		}
	}

	kb.Keys = append(kb.Keys, key)
}

// SetDefaultBind fills in a binding that was left unset (or partially set)
// by external configuration.
func SetDefaultBind(kb **KeyBind, defaultKb KeyBind) {
	if *kb == nil {
		*kb = &defaultKb

		return
	}

	if len((*kb).Keys) == 0 {
		(*kb).Keys = defaultKb.Keys
	}

	if (*kb).Description == "" {
		(*kb).Description = defaultKb.Description
	}
}

// ValidateBinds reports an error for every key code bound more than once
// across the given binding sets.
func ValidateBinds(kbs ...[]KeyBind) error {
	var errs []error

	seen := make(map[string]bool)
	for _, set := range kbs {
		for _, kb := range set {
			for _, k := range kb.Keys {
				if seen[k.Code] {
					errs = append(errs, fmt.Errorf("duplicate key binding found: %s", k.Code))
				}

				seen[k.Code] = true
			}
		}
	}

	return errors.Join(errs...)
}

// KeyBindRenderer renders bindings as columns of help rows.
type KeyBindRenderer struct {
	columns [][]KeyBind
}

func (r *KeyBindRenderer) AddColumn(kbs ...KeyBind) {
	if len(kbs) == 0 {
		return
	}

	r.columns = append(r.columns, kbs)
}

// Render lays the columns out side by side within the given total width.
func (r *KeyBindRenderer) Render(width int) string {
	numCols := len(r.columns)
	if numCols == 0 {
		return ""
	}

	colWidth := max(6, width/numCols-2)

	colRows := make([][]string, numCols)
	maxRows := 0

	for i, col := range r.columns {
		colRows[i] = columnRows(colWidth, col)
		maxRows = max(maxRows, len(colRows[i]))
	}

	var sb strings.Builder
	for row := range maxRows {
		for col := range colRows {
			content := strings.Repeat(" ", colWidth)
			if row < len(colRows[col]) {
				content = colRows[col][row]
			}

			sb.WriteString(" " + content + " ")
		}

		if row < maxRows-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func columnRows(width int, kbs []KeyBind) []string {
	maxKeyWidth := 0
	for _, kb := range kbs {
		maxKeyWidth = max(maxKeyWidth, ansi.PrintableRuneWidth(kb.String()))
	}

	rows := []string{}
	for _, kb := range kbs {
		row := kb.StringRow(maxKeyWidth, width-maxKeyWidth-2)
		if row != "" {
			rows = append(rows, row)
		}
	}

	return rows
}
