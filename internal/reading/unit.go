package reading

import (
	"errors"
	"fmt"

	"github.com/arcanaland/eventtarot/internal/asset"
	"github.com/arcanaland/eventtarot/internal/spread"
)

// Unit is the output for one position: an image with its interpretation, or
// an error naming the card and the file that could not be delivered.
type Unit struct {
	Position spread.Position
	CardName string
	Reversed bool
	Meaning  string
	FileName string
	Image    []byte
	Err      error
}

// Failed reports whether the unit carries an error instead of an image
func (u Unit) Failed() bool {
	return u.Err != nil
}

// OrientationLabel returns the human readable orientation
func (u Unit) OrientationLabel() string {
	if u.Reversed {
		return ReversedLabel
	}
	return UprightLabel
}

// Caption is the text sent along with the image
func (u Unit) Caption() string {
	return fmt.Sprintf("%s:\n%s (%s)\n➡️ %s", u.Position.Label, u.CardName, u.OrientationLabel(), u.Meaning)
}

// ErrorText is the text sent in place of the image of a failed unit
func (u Unit) ErrorText() string {
	var msg string
	switch {
	case errors.Is(u.Err, asset.ErrAcquisition):
		msg = fmt.Sprintf("⚠️ Ошибка загрузки изображения %s", u.CardName)
	case errors.Is(u.Err, asset.ErrNotFound), errors.Is(u.Err, asset.ErrLookupFailed):
		msg = fmt.Sprintf("⚠️ Карта %s не найдена.", u.CardName)
	case u.CardName != "":
		msg = fmt.Sprintf("⚠️ Не удалось показать карту %s", u.CardName)
	default:
		msg = "⚠️ Не удалось вытянуть карту"
	}

	text := u.Position.Label + ":\n" + msg
	if u.FileName != "" {
		text += "\nФайл: " + u.FileName
	}
	return text
}

// Text returns the caption of a delivered unit or the error text of a failed one
func (u Unit) Text() string {
	if u.Failed() {
		return u.ErrorText()
	}
	return u.Caption()
}
