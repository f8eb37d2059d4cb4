package card

// Category is the group a card belongs to: one of the four suits or the
// major arcana, which is eligible for every position.
type Category string

const (
	Cups        Category = "Кубки"
	Wands       Category = "Жезлы"
	Swords      Category = "Мечи"
	Pentacles   Category = "Пентакли"
	MajorArcana Category = "Старший Аркан"
)

// Suits lists the four suit categories
var Suits = []Category{Cups, Wands, Swords, Pentacles}

// IsSuit reports whether c is one of the four suits
func (c Category) IsSuit() bool {
	switch c {
	case Cups, Wands, Swords, Pentacles:
		return true
	}
	return false
}

// IsValid reports whether c is a suit or the major arcana
func (c Category) IsValid() bool {
	return c == MajorArcana || c.IsSuit()
}

// Card represents a tarot card. It is implemented by Major, Numbered and
// Court; use a type switch to get at the kind-specific fields.
type Card interface {
	Name() string
	Category() Category
	Meaning(reversed bool) string
	isCard()
}

// Meanings holds the interpretation text for both orientations
type Meanings struct {
	Upright  string
	Reversed string
}

// Meaning returns the text for the given orientation
func (m Meanings) Meaning(reversed bool) string {
	if reversed {
		return m.Reversed
	}
	return m.Upright
}

// Major is a major arcana card (e.g. 00 The Fool)
type Major struct {
	Title  string
	Number int
	Meanings
}

func (c Major) Name() string { return c.Title }
func (c Major) Category() Category { return MajorArcana }
func (Major) isCard() {}

// Numbered is a suit card carrying a sequence number (ace through ten)
type Numbered struct {
	Title  string
	Suit   Category
	Number int
	Meanings
}

func (c Numbered) Name() string { return c.Title }
func (c Numbered) Category() Category { return c.Suit }
func (Numbered) isCard() {}

// Court is a suit card identified by name alone (page, knight, queen, king)
type Court struct {
	Title string
	Suit  Category
	Meanings
}

func (c Court) Name() string { return c.Title }
func (c Court) Category() Category { return c.Suit }
func (Court) isCard() {}
