package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validate checks the settings every command uses, plus the credential
// groups named by needs. All problems are reported together in one
// ConfigError.
func (c *Config) Validate(needs ...Need) error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}

	targets := []any{c.Deck, c.Remote, c.Log}
	for _, n := range needs {
		switch n {
		case NeedDrive:
			targets = append(targets, c.Google)
		case NeedTelegram:
			targets = append(targets, c.Telegram)
		}
	}

	var problems []string
	for _, target := range targets {
		if err := validate.Struct(target); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return &ConfigError{Source: c.Source, Err: err}
			}
			for _, fe := range verrs {
				problems = append(problems, fe.Translate(trans))
			}
		}
	}

	if len(problems) > 0 {
		return &ConfigError{Source: c.Source, Err: errors.New(strings.Join(problems, "; "))}
	}
	return nil
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	// secrets are named after their environment variable, the rest after the
	// config key
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if env := fld.Tag.Get("env"); env != "" {
			return env
		}
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("file", isFileReadable); err != nil {
		return nil, nil, fmt.Errorf("failed to register file validation: %w", err)
	}
	if err := validate.RegisterTranslation("file", trans, func(ut ut.Translator) error {
		return ut.Add("file", "{0} must be an existing and readable file", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("file", fe.Field())
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register file translation: %w", err)
	}

	return validate, trans, nil
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	// owner read bit
	return info.Mode().Perm()&0400 != 0
}
