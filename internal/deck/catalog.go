package deck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/arcanaland/eventtarot/internal/card"
)

// Entry is one record of the card catalog as stored on disk.
// JSON catalogs are a top-level array of entries; TOML catalogs use
// an array of [[card]] tables.
type Entry struct {
	Name     string `json:"name" toml:"name" validate:"required"`
	Suit     string `json:"suit" toml:"suit" validate:"required,category"`
	Number   *int   `json:"number,omitempty" toml:"number" validate:"omitempty,min=0"`
	Upright  string `json:"upright" toml:"upright" validate:"required"`
	Reversed string `json:"reversed" toml:"reversed" validate:"required"`
}

type tomlCatalog struct {
	Cards []Entry `toml:"card"`
}

// Card converts the entry into its card kind: major arcana entries must carry
// a number, suit entries with a number are numbered cards and the rest are
// court cards.
func (e Entry) Card() (card.Card, error) {
	meanings := card.Meanings{Upright: e.Upright, Reversed: e.Reversed}
	category := card.Category(e.Suit)

	switch {
	case category == card.MajorArcana:
		if e.Number == nil {
			return nil, fmt.Errorf("major arcana card %q has no number", e.Name)
		}
		return card.Major{Title: e.Name, Number: *e.Number, Meanings: meanings}, nil
	case e.Number != nil:
		return card.Numbered{Title: e.Name, Suit: category, Number: *e.Number, Meanings: meanings}, nil
	default:
		return card.Court{Title: e.Name, Suit: category, Meanings: meanings}, nil
	}
}

// decodeCatalog parses catalog data, picking the format from the file extension
func decodeCatalog(name string, data []byte) ([]Entry, error) {
	var entries []Entry

	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		var c tomlCatalog
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&c); err != nil {
			return nil, fmt.Errorf("error parsing catalog: %w", err)
		}
		entries = c.Cards
	default:
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("error parsing catalog: %w", err)
		}
	}

	if len(entries) == 0 {
		return nil, errors.New("catalog has no cards")
	}

	validate, err := newEntryValidator()
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("entry %d (%q): %s", i, e.Name, describeValidation(err))
		}
	}

	return entries, nil
}

func newEntryValidator() (*validator.Validate, error) {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return card.Category(fl.Field().String()).IsValid()
	}); err != nil {
		return nil, fmt.Errorf("failed to register category validation: %w", err)
	}
	return validate, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "category":
			msgs = append(msgs, fmt.Sprintf("unknown suit %q", fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
