package keys_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/turner/pkg/keys"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		code     string
		opts     []keys.KeyOpt
		expected keys.Key
	}{
		"basic key creation": {
			code: "ctrl+c",
			expected: keys.Key{
				Code: "ctrl+c",
			},
		},
		"key with alias": {
			code: "left",
			opts: []keys.KeyOpt{keys.WithAlias("←")},
			expected: keys.Key{
				Code:  "left",
				Alias: "←",
			},
		},
		"hidden key": {
			code: "esc",
			opts: []keys.KeyOpt{keys.Hidden()},
			expected: keys.Key{
				Code:   "esc",
				Hidden: true,
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, keys.New(tc.code, tc.opts...))
		})
	}
}

func TestKeyBindMatch(t *testing.T) {
	t.Parallel()

	kb := keys.NewBind("next page",
		keys.New("right", keys.WithAlias("→")),
		keys.New("l"),
	)

	assert.True(t, kb.Match("right"))
	assert.True(t, kb.Match("l"))
	assert.False(t, kb.Match("→"), "aliases are display-only")
	assert.False(t, kb.Match("left"))

	var nilBind *keys.KeyBind
	assert.False(t, nilBind.Match("right"), "nil binds match nothing")
}

func TestKeyBindString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		bind     keys.KeyBind
		expected string
	}{
		"joins visible keys": {
			bind: keys.NewBind("previous page",
				keys.New("left", keys.WithAlias("←")),
				keys.New("h"),
			),
			expected: "←/h",
		},
		"skips hidden keys": {
			bind: keys.NewBind("quit",
				keys.New("q"),
				keys.New("ctrl+c", keys.Hidden()),
			),
			expected: "q",
		},
		"all hidden": {
			bind: keys.NewBind("quit",
				keys.New("ctrl+c", keys.Hidden()),
			),
			expected: "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.bind.String())
		})
	}
}

func TestSetDefaultBind(t *testing.T) {
	t.Parallel()

	defaultBind := keys.NewBind("next page", keys.New("right"))

	t.Run("nil bind gets default", func(t *testing.T) {
		t.Parallel()

		var kb *keys.KeyBind
		keys.SetDefaultBind(&kb, defaultBind)

		require.NotNil(t, kb)
		assert.Equal(t, defaultBind, *kb)
	})

	t.Run("existing keys are preserved", func(t *testing.T) {
		t.Parallel()

		kb := &keys.KeyBind{Keys: []keys.Key{keys.New("n")}}
		keys.SetDefaultBind(&kb, defaultBind)

		assert.True(t, kb.Match("n"))
		assert.False(t, kb.Match("right"))
		assert.Equal(t, "next page", kb.Description, "missing description is filled in")
	})
}

func TestValidateBinds(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		binds   [][]keys.KeyBind
		wantErr string
	}{
		"no duplicates": {
			binds: [][]keys.KeyBind{
				{keys.NewBind("prev", keys.New("left"))},
				{keys.NewBind("next", keys.New("right"))},
			},
		},
		"duplicate across sets": {
			binds: [][]keys.KeyBind{
				{keys.NewBind("prev", keys.New("h"))},
				{keys.NewBind("help", keys.New("h"))},
			},
			wantErr: "duplicate key binding found: h",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := keys.ValidateBinds(tc.binds...)
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestKeyBindRendererRender(t *testing.T) {
	t.Parallel()

	r := &keys.KeyBindRenderer{}
	r.AddColumn(
		keys.NewBind("previous page", keys.New("left", keys.WithAlias("←"))),
		keys.NewBind("next page", keys.New("right", keys.WithAlias("→"))),
	)
	r.AddColumn(
		keys.NewBind("quit", keys.New("q")),
	)

	out := r.Render(60)

	assert.Contains(t, out, "previous page")
	assert.Contains(t, out, "next page")
	assert.Contains(t, out, "quit")

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2, "row count follows the tallest column")
}

func TestKeyBindRendererEmpty(t *testing.T) {
	t.Parallel()

	r := &keys.KeyBindRenderer{}
	assert.Empty(t, r.Render(80))
}

func TestKeyBindAddKey(t *testing.T) {
	t.Parallel()

	t.Run("appends a new key", func(t *testing.T) {
		t.Parallel()

		kb := keys.NewBind("quit", keys.New("q"))
		kb.AddKey(keys.New("ctrl+c", keys.Hidden()))

		assert.Len(t, kb.Keys, 2)
		assert.True(t, kb.Match("ctrl+c"))
	})

	t.Run("ignores duplicate codes", func(t *testing.T) {
		t.Parallel()

		kb := keys.NewBind("quit", keys.New("q"))
		kb.AddKey(keys.New("q", keys.WithAlias("Q")))

		assert.Len(t, kb.Keys, 1)
	})

	t.Run("nil receiver is a no-op", func(t *testing.T) {
		t.Parallel()

		var kb *keys.KeyBind

		assert.NotPanics(t, func() {
			kb.AddKey(keys.New("q"))
		})
	})
}
