package deck

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arcanaland/eventtarot/internal/card"
	"github.com/arcanaland/eventtarot/internal/config"
)

// DefaultCatalogName is the file name of the catalog compiled into the binary
const DefaultCatalogName = "ivent_taro_full_deck.json"

//go:embed catalog/ivent_taro_full_deck.json
var defaultCatalog []byte

// Deck represents a loaded card catalog. It is read-only once built and safe
// for concurrent use.
type Deck struct {
	Name string
	Path string

	cards    []card.Card
	eligible map[card.Category][]card.Card
}

// LoadDeck loads a catalog file and checks that every required category has
// at least one eligible card. An empty path loads the built-in catalog.
// All failures are *config.ConfigError.
func LoadDeck(catalogPath string, required ...card.Category) (*Deck, error) {
	if catalogPath == "" {
		return LoadBytes(DefaultCatalogName, defaultCatalog, required...)
	}

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return nil, &config.ConfigError{Source: catalogPath, Err: fmt.Errorf("error reading catalog: %w", err)}
	}

	return LoadBytes(catalogPath, data, required...)
}

// LoadBytes builds a deck from catalog data. name selects the format by
// extension and is used in error messages.
func LoadBytes(name string, data []byte, required ...card.Category) (*Deck, error) {
	entries, err := decodeCatalog(name, data)
	if err != nil {
		return nil, &config.ConfigError{Source: name, Err: err}
	}

	cards := make([]card.Card, 0, len(entries))
	for i, e := range entries {
		c, err := e.Card()
		if err != nil {
			return nil, &config.ConfigError{Source: name, Err: fmt.Errorf("entry %d: %w", i, err)}
		}
		cards = append(cards, c)
	}

	d, err := New(cards, required...)
	if err != nil {
		return nil, &config.ConfigError{Source: name, Err: err}
	}

	d.Path = name
	d.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return d, nil
}

// New builds a deck from cards. Names must be unique within a category and
// every required category must end up with at least one eligible card.
func New(cards []card.Card, required ...card.Category) (*Deck, error) {
	seen := make(map[card.Category]map[string]bool)
	for _, c := range cards {
		if !c.Category().IsValid() {
			return nil, fmt.Errorf("card %q has unknown category %q", c.Name(), c.Category())
		}
		names, ok := seen[c.Category()]
		if !ok {
			names = make(map[string]bool)
			seen[c.Category()] = names
		}
		if names[c.Name()] {
			return nil, fmt.Errorf("duplicate card %q in %s", c.Name(), c.Category())
		}
		names[c.Name()] = true
	}

	d := &Deck{
		cards:    slices.Clone(cards),
		eligible: make(map[card.Category][]card.Card),
	}

	// Major arcana cards are eligible for every suit
	for _, c := range d.cards {
		cat := c.Category()
		if cat == card.MajorArcana {
			for _, suit := range card.Suits {
				d.eligible[suit] = append(d.eligible[suit], c)
			}
		}
		d.eligible[cat] = append(d.eligible[cat], c)
	}

	for _, cat := range required {
		if len(d.eligible[cat]) == 0 {
			return nil, fmt.Errorf("no cards eligible for %s", cat)
		}
	}

	return d, nil
}

// Eligible returns every card whose category is c or the major arcana, in
// catalog order.
func (d *Deck) Eligible(c card.Category) []card.Card {
	return slices.Clone(d.eligible[c])
}

// Cards returns all cards in catalog order
func (d *Deck) Cards() []card.Card {
	return slices.Clone(d.cards)
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// ByCategory returns the cards that belong to exactly category c
func (d *Deck) ByCategory(c card.Category) []card.Card {
	var out []card.Card
	for _, cc := range d.cards {
		if cc.Category() == c {
			out = append(out, cc)
		}
	}
	return out
}
