package validator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arcanaland/eventtarot/internal/asset"
	"github.com/arcanaland/eventtarot/internal/card"
	"github.com/arcanaland/eventtarot/internal/deck"
)

// DefaultConcurrency is the number of parallel asset lookups in CheckAssets
const DefaultConcurrency = 4

// ValidationResults holds the problems found in a catalog. Errors make the
// catalog unusable, warnings do not.
type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Locator is the part of asset.Locator the remote check needs
type Locator interface {
	Locate(ctx context.Context, fileName string) (string, error)
}

// Validator represents a check of one deck, collecting results across runs
type Validator struct {
	Deck    *deck.Deck
	Results ValidationResults

	mu sync.Mutex
}

// NewValidator creates a validator for d
func NewValidator(d *deck.Deck) *Validator {
	return &Validator{
		Deck:    d,
		Results: ValidationResults{},
	}
}

// Validate checks the catalog for gaps and file name clashes. It never
// touches the network.
func (v *Validator) Validate() ValidationResults {
	v.validateFileNames()
	v.validateMajorArcana()
	v.validateSuits()

	return v.Results
}

// CheckAssets looks up every card's file in the remote store. Missing files
// are errors; failed lookups are warnings since they may be transient.
func (v *Validator) CheckAssets(ctx context.Context, locator Locator, concurrency int) (ValidationResults, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, c := range v.Deck.Cards() {
		fileName := asset.FileName(c)
		g.Go(func() error {
			_, err := locator.Locate(ctx, fileName)
			switch {
			case err == nil:
			case errors.Is(err, asset.ErrNotFound):
				v.addError(fmt.Sprintf("missing asset %s for card %s (%s)", fileName, c.Name(), c.Category()))
			case errors.Is(err, asset.ErrLookupFailed):
				v.addWarning(fmt.Sprintf("could not look up %s for card %s: %v", fileName, c.Name(), err))
			default:
				return err
			}
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return v.Results, fmt.Errorf("asset check aborted: %w", err)
	}

	// goroutines finish in any order
	sort.Strings(v.Results.Errors)
	sort.Strings(v.Results.Warnings)
	return v.Results, nil
}

// validateFileNames reports cards that would share one remote file
func (v *Validator) validateFileNames() {
	owners := make(map[string][]string)
	var order []string
	for _, c := range v.Deck.Cards() {
		name := asset.FileName(c)
		if _, ok := owners[name]; !ok {
			order = append(order, name)
		}
		owners[name] = append(owners[name], c.Name())
	}

	for _, name := range order {
		if cards := owners[name]; len(cards) > 1 {
			v.addError(fmt.Sprintf("cards %s share the asset file name %s", strings.Join(cards, ", "), name))
		}
	}
}

// validateMajorArcana checks that all 22 major arcana cards are present
func (v *Validator) validateMajorArcana() {
	present := make(map[int]bool)
	for _, c := range v.Deck.ByCategory(card.MajorArcana) {
		if m, ok := c.(card.Major); ok {
			if m.Number >= deck.MajorArcanaCount {
				v.addWarning(fmt.Sprintf("major arcana card %s has non-standard number %d", m.Title, m.Number))
			}
			present[m.Number] = true
		}
	}

	missingCards := []string{}
	for i := 0; i < deck.MajorArcanaCount; i++ {
		if !present[i] {
			missingCards = append(missingCards, fmt.Sprintf("%02d (%s)", i, deck.DefaultMajorArcanaName(i)))
		}
	}

	if len(missingCards) > 0 {
		v.addWarning(fmt.Sprintf("missing major arcana cards: %s", strings.Join(missingCards, ", ")))
	}
}

// validateSuits checks each suit for ace through ten and the four court cards
func (v *Validator) validateSuits() {
	for _, suit := range card.Suits {
		cards := v.Deck.ByCategory(suit)
		if len(cards) == 0 {
			v.addWarning(fmt.Sprintf("suit %s has no cards of its own, only major arcana will be drawn", suit))
			continue
		}

		numbers := make(map[int]bool)
		courts := make(map[string]bool)
		for _, c := range cards {
			switch c := c.(type) {
			case card.Numbered:
				if c.Number < 1 || c.Number > 10 {
					v.addWarning(fmt.Sprintf("card %s has non-standard number %d", c.Title, c.Number))
				}
				numbers[c.Number] = true
			case card.Court:
				for _, rank := range deck.CourtRanks {
					if strings.HasPrefix(c.Title, rank) {
						courts[rank] = true
					}
				}
			}
		}

		missingCards := []string{}
		for i := 1; i <= 10; i++ {
			if !numbers[i] {
				missingCards = append(missingCards, fmt.Sprintf("%d", i))
			}
		}
		for _, rank := range deck.CourtRanks {
			if !courts[rank] {
				missingCards = append(missingCards, rank)
			}
		}

		if len(missingCards) > 0 {
			v.addWarning(fmt.Sprintf("missing cards in %s suit: %s", suit, strings.Join(missingCards, ", ")))
		}
	}
}

func (v *Validator) addError(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Results.Errors = append(v.Results.Errors, msg)
}

func (v *Validator) addWarning(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Results.Warnings = append(v.Results.Warnings, msg)
}
