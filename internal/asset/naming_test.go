package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/eventtarot/internal/card"
	"github.com/arcanaland/eventtarot/internal/deck"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		card card.Card
		want string
	}{
		{
			name: "major arcana",
			card: card.Major{Title: "The Fool", Number: 0},
			want: "0_The_Fool.png",
		},
		{
			name: "major arcana is title cased",
			card: card.Major{Title: "wheel of fortune", Number: 10},
			want: "10_Wheel_Of_Fortune.png",
		},
		{
			name: "major arcana single word",
			card: card.Major{Title: "Strength", Number: 8},
			want: "8_Strength.png",
		},
		{
			name: "numbered cups",
			card: card.Numbered{Title: "Seven of Cups", Suit: card.Cups, Number: 7},
			want: "7_Кубков.png",
		},
		{
			name: "numbered wands",
			card: card.Numbered{Title: "Ace of Wands", Suit: card.Wands, Number: 1},
			want: "1_Жезлов.png",
		},
		{
			name: "numbered swords",
			card: card.Numbered{Title: "Ten of Swords", Suit: card.Swords, Number: 10},
			want: "10_Мечей.png",
		},
		{
			name: "numbered pentacles",
			card: card.Numbered{Title: "Three of Pentacles", Suit: card.Pentacles, Number: 3},
			want: "3_Пентаклей.png",
		},
		{
			name: "court card keeps its name",
			card: card.Court{Title: "Page of Swords", Suit: card.Swords},
			want: "Page of Swords.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.card))
			// pure: same input, same output
			assert.Equal(t, FileName(tt.card), FileName(tt.card))
		})
	}
}

func TestFileName_DefaultCatalogIsUniquePerCard(t *testing.T) {
	d, err := deck.LoadDeck("")
	require.NoError(t, err)

	seen := map[string]string{}
	for _, c := range d.Cards() {
		name := FileName(c)
		if other, ok := seen[name]; ok {
			t.Errorf("%s and %s both resolve to %s", other, c.Name(), name)
		}
		seen[name] = c.Name()
	}
}

func TestDeclinedSuit(t *testing.T) {
	assert.Equal(t, "Кубков", DeclinedSuit(card.Cups))
	assert.Equal(t, "Старший Аркан", DeclinedSuit(card.MajorArcana))
}
