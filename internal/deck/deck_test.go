package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/eventtarot/internal/card"
	"github.com/arcanaland/eventtarot/internal/config"
)

func TestLoadDeck_DefaultCatalog(t *testing.T) {
	d, err := LoadDeck("", card.Suits...)
	require.NoError(t, err)

	assert.Equal(t, 78, d.Len())
	assert.Equal(t, "ivent_taro_full_deck", d.Name)
	assert.Len(t, d.ByCategory(card.MajorArcana), MajorArcanaCount)

	for _, suit := range card.Suits {
		eligible := d.Eligible(suit)
		require.NotEmpty(t, eligible, "suit %s", suit)
		assert.Len(t, eligible, MajorArcanaCount+14, "suit %s", suit)
		for _, c := range eligible {
			assert.Contains(t, []card.Category{suit, card.MajorArcana}, c.Category())
		}
	}
}

func TestLoadDeck_DefaultCatalogCardKinds(t *testing.T) {
	d, err := LoadDeck("")
	require.NoError(t, err)

	var majors, numbered, courts int
	for _, c := range d.Cards() {
		switch c.(type) {
		case card.Major:
			majors++
		case card.Numbered:
			numbered++
		case card.Court:
			courts++
		}
	}
	assert.Equal(t, 22, majors)
	assert.Equal(t, 40, numbered)
	assert.Equal(t, 16, courts)
}

func TestLoadDeck_JSON(t *testing.T) {
	path := writeCatalog(t, "deck.json", `[
		{"name": "The Fool", "suit": "Старший Аркан", "number": 0, "upright": "u0", "reversed": "r0"},
		{"name": "Seven of Cups", "suit": "Кубки", "number": 7, "upright": "u7", "reversed": "r7"},
		{"name": "Page of Swords", "suit": "Мечи", "upright": "up", "reversed": "rp"}
	]`)

	d, err := LoadDeck(path, card.Cups, card.Swords)
	require.NoError(t, err)

	cards := d.Cards()
	require.Len(t, cards, 3)
	assert.Equal(t, card.Major{Title: "The Fool", Number: 0, Meanings: card.Meanings{Upright: "u0", Reversed: "r0"}}, cards[0])
	assert.Equal(t, card.Numbered{Title: "Seven of Cups", Suit: card.Cups, Number: 7, Meanings: card.Meanings{Upright: "u7", Reversed: "r7"}}, cards[1])
	assert.Equal(t, card.Court{Title: "Page of Swords", Suit: card.Swords, Meanings: card.Meanings{Upright: "up", Reversed: "rp"}}, cards[2])

	// Wands only has the fool
	wands := d.Eligible(card.Wands)
	require.Len(t, wands, 1)
	assert.Equal(t, "The Fool", wands[0].Name())
}

func TestLoadDeck_TOML(t *testing.T) {
	path := writeCatalog(t, "deck.toml", `
[[card]]
name = "The Sun"
suit = "Старший Аркан"
number = 19
upright = "радость"
reversed = "усталость"

[[card]]
name = "King of Pentacles"
suit = "Пентакли"
upright = "инвестор"
reversed = "скупость"
`)

	d, err := LoadDeck(path, card.Suits...)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "deck", d.Name)
	assert.Len(t, d.Eligible(card.Pentacles), 2)
	assert.Len(t, d.Eligible(card.Cups), 1)
}

func TestLoadDeck_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		required []card.Category
		wantErr  string
	}{
		{
			name:    "unparseable json",
			file:    "deck.json",
			content: `[{"name": `,
			wantErr: "error parsing catalog",
		},
		{
			name:    "empty catalog",
			file:    "deck.json",
			content: `[]`,
			wantErr: "catalog has no cards",
		},
		{
			name:    "missing meaning",
			file:    "deck.json",
			content: `[{"name": "Ace of Cups", "suit": "Кубки", "number": 1, "upright": "u"}]`,
			wantErr: "reversed is required",
		},
		{
			name:    "unknown suit",
			file:    "deck.json",
			content: `[{"name": "Ace of Coins", "suit": "Монеты", "number": 1, "upright": "u", "reversed": "r"}]`,
			wantErr: `unknown suit "Монеты"`,
		},
		{
			name:    "major arcana without number",
			file:    "deck.json",
			content: `[{"name": "The Fool", "suit": "Старший Аркан", "upright": "u", "reversed": "r"}]`,
			wantErr: "has no number",
		},
		{
			name: "duplicate name in category",
			file: "deck.json",
			content: `[
				{"name": "Ace of Cups", "suit": "Кубки", "number": 1, "upright": "u", "reversed": "r"},
				{"name": "Ace of Cups", "suit": "Кубки", "number": 1, "upright": "u", "reversed": "r"}
			]`,
			wantErr: "duplicate card",
		},
		{
			name:     "required suit without cards",
			file:     "deck.json",
			content:  `[{"name": "Ace of Cups", "suit": "Кубки", "number": 1, "upright": "u", "reversed": "r"}]`,
			required: []card.Category{card.Cups, card.Wands},
			wantErr:  "no cards eligible for Жезлы",
		},
		{
			name:    "unparseable toml",
			file:    "deck.toml",
			content: `[[card]`,
			wantErr: "error parsing catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, tt.file, tt.content)

			_, err := LoadDeck(path, tt.required...)
			require.Error(t, err)

			var cfgErr *config.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, path, cfgErr.Source)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDeck_MissingFile(t *testing.T) {
	_, err := LoadDeck(filepath.Join(t.TempDir(), "missing.json"))

	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeck_EligibleReturnsCopy(t *testing.T) {
	d, err := LoadDeck("")
	require.NoError(t, err)

	first := d.Eligible(card.Cups)
	first[0] = nil

	assert.NotNil(t, d.Eligible(card.Cups)[0])
}

func TestDefaultMajorArcanaName(t *testing.T) {
	assert.Equal(t, "The Fool", DefaultMajorArcanaName(0))
	assert.Equal(t, "Wheel of Fortune", DefaultMajorArcanaName(10))
	assert.Equal(t, "Major Arcana 22", DefaultMajorArcanaName(22))
}

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
