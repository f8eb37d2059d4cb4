package spread

import "github.com/arcanaland/eventtarot/internal/card"

// Position is one fixed slot of the spread
type Position struct {
	Label string
	Suit  card.Category
}

// Positions are the four slots of an event reading, in delivery order
var Positions = []Position{
	{Label: "🥂 Атмосфера и гости", Suit: card.Cups},
	{Label: "🎤 Как пройдут шоу на сцене", Suit: card.Wands},
	{Label: "⚙️ Техника и организация", Suit: card.Swords},
	{Label: "💰 Финансы и подрядчики", Suit: card.Pentacles},
}

// Categories returns the target category of every position
func Categories(positions []Position) []card.Category {
	out := make([]card.Category, 0, len(positions))
	for _, p := range positions {
		out = append(out, p.Suit)
	}
	return out
}
