package allocation

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/etnz/allocation/currency"
	"gopkg.in/yaml.v3"
)

// Settings are the user preferences, persisted as YAML.
type Settings struct {
	AccountName      string           `yaml:"accountName"`
	DecimalSeparator string           `yaml:"decimalSeparator"`
	Currency         CurrencySettings `yaml:"currency"`
}

// CurrencySettings holds the display currency and the fallback rates to it.
type CurrencySettings struct {
	Default string `yaml:"default"`
	// FallbackRates are the rates to Default, Default itself being 1.
	FallbackRates currency.Rates `yaml:"fallbackRates"`
}

// DefaultSettings returns the settings used when none are saved.
func DefaultSettings() Settings {
	return Settings{
		AccountName:      "My Portfolio",
		DecimalSeparator: ".",
		Currency: CurrencySettings{
			Default:       currency.EUR,
			FallbackRates: currency.DefaultRates(),
		},
	}
}

// LoadSettings reads the settings from a YAML file, merged with the defaults:
// any missing field or rate takes its default value.
//
// A missing file is not an error, the defaults are returned.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var saved Settings
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings from %s: %w", path, err)
	}
	return s.merge(saved), nil
}

// merge returns s overridden by every non zero field of 'o'.
func (s Settings) merge(o Settings) Settings {
	if o.AccountName != "" {
		s.AccountName = o.AccountName
	}
	if o.DecimalSeparator != "" {
		s.DecimalSeparator = o.DecimalSeparator
	}
	if o.Currency.Default != "" && o.Currency.Default != s.Currency.Default {
		// default rates must share the pivot of the saved ones
		if rates, err := currency.Rebase(s.Currency.FallbackRates, s.Currency.Default, o.Currency.Default); err == nil {
			s.Currency.FallbackRates = rates
		}
		s.Currency.Default = o.Currency.Default
	}
	rates := s.Currency.FallbackRates.Clone()
	for code, rate := range o.Currency.FallbackRates {
		rates[code] = rate
	}
	s.Currency.FallbackRates = rates
	return s
}

// Save writes the settings as YAML into 'path'.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return nil
}

// Validate returns every problem found in the settings, joined.
func (s Settings) Validate() error {
	var errs []error
	if utf8.RuneCountInString(s.AccountName) > 100 {
		errs = append(errs, errors.New("account name must be 100 characters or less"))
	}
	if s.DecimalSeparator != "." && s.DecimalSeparator != "," {
		errs = append(errs, fmt.Errorf("decimal separator must be \".\" or \",\", got %q", s.DecimalSeparator))
	}
	if err := s.Currency.FallbackRates.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// WithFallbackRate returns a copy of s where the rate of 'code' is 'rate'.
func (s Settings) WithFallbackRate(code string, rate float64) Settings {
	rates := s.Currency.FallbackRates.Clone()
	if rates == nil {
		rates = make(currency.Rates)
	}
	rates[code] = rate
	s.Currency.FallbackRates = rates
	return s
}

// WithCurrency returns a copy of s displayed in 'code', the fallback rates
// rebased on it.
func (s Settings) WithCurrency(code string) (Settings, error) {
	rates, err := currency.Rebase(s.Currency.FallbackRates, s.Currency.Default, code)
	if err != nil {
		return s, err
	}
	s.Currency.Default, s.Currency.FallbackRates = code, rates
	return s, nil
}
