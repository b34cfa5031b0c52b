package config

import (
	"errors"
	"fmt"
)

// Validate checks the structural validity of a Config. It verifies that the
// page budget leaves room for content after headroom is reserved and that
// page-break delimiters are usable. All problems are reported together.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Pagify.PageLength <= 0 {
		errs = append(errs, fmt.Errorf("config: pagify.page_length must be positive, got %d", cfg.Pagify.PageLength))
	}
	if cfg.Pagify.ShortenBy < 0 {
		errs = append(errs, fmt.Errorf("config: pagify.shorten_by must not be negative, got %d", cfg.Pagify.ShortenBy))
	}
	if cfg.Pagify.PageLength > 0 && cfg.Pagify.PageLength <= cfg.Pagify.ShortenBy {
		errs = append(errs, fmt.Errorf(
			"config: pagify.shorten_by (%d) leaves no room in pagify.page_length (%d)",
			cfg.Pagify.ShortenBy, cfg.Pagify.PageLength))
	}

	if len(cfg.Pagify.Delimiters) == 0 {
		errs = append(errs, errors.New("config: pagify.delimiters must list at least one delimiter"))
	}
	for i, d := range cfg.Pagify.Delimiters {
		if d == "" {
			errs = append(errs, fmt.Errorf("config: pagify.delimiters[%d] is empty", i))
		}
	}

	return errors.Join(errs...)
}
