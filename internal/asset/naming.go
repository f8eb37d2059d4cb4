package asset

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arcanaland/eventtarot/internal/card"
)

// Extension is the file extension of every remote card image
const Extension = ".png"

// declinedSuits holds the genitive form of each suit used in numbered card
// file names ("7_Кубков.png"). The remote files cannot be renamed.
var declinedSuits = map[card.Category]string{
	card.Cups:      "Кубков",
	card.Wands:     "Жезлов",
	card.Swords:    "Мечей",
	card.Pentacles: "Пентаклей",
}

// DeclinedSuit returns the genitive form of a suit, or the suit itself if it
// has none.
func DeclinedSuit(c card.Category) string {
	if s, ok := declinedSuits[c]; ok {
		return s
	}
	return string(c)
}

// FileName returns the remote file name of a card's image:
//
//	major arcana:  {number}_{Title_Cased_Name}.png
//	numbered card: {number}_{declined suit}.png
//	court card:    {name}.png
func FileName(c card.Card) string {
	switch c := c.(type) {
	case card.Major:
		// Casers carry state, so one per call
		title := cases.Title(language.English).String(c.Title)
		return strconv.Itoa(c.Number) + "_" + strings.ReplaceAll(title, " ", "_") + Extension
	case card.Numbered:
		return strconv.Itoa(c.Number) + "_" + DeclinedSuit(c.Suit) + Extension
	default:
		return c.Name() + Extension
	}
}
