package deck

import "fmt"

// MajorArcanaCount is the number of cards in a complete major arcana (0-21)
const MajorArcanaCount = 22

var majorArcanaNames = map[int]string{
	0:  "The Fool",
	1:  "The Magician",
	2:  "The High Priestess",
	3:  "The Empress",
	4:  "The Emperor",
	5:  "The Hierophant",
	6:  "The Lovers",
	7:  "The Chariot",
	8:  "Strength",
	9:  "The Hermit",
	10: "Wheel of Fortune",
	11: "Justice",
	12: "The Hanged Man",
	13: "Death",
	14: "Temperance",
	15: "The Devil",
	16: "The Tower",
	17: "The Star",
	18: "The Moon",
	19: "The Sun",
	20: "Judgement",
	21: "The World",
}

// DefaultMajorArcanaName returns the conventional name for a major arcana number
func DefaultMajorArcanaName(number int) string {
	if name, ok := majorArcanaNames[number]; ok {
		return name
	}

	return fmt.Sprintf("Major Arcana %02d", number)
}

// CourtRanks are the name-only ranks of every suit
var CourtRanks = []string{"Page", "Knight", "Queen", "King"}
