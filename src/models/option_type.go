package models

import "fmt"

type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

// Validate rejects anything outside the closed call/put set. Unrecognized
// values must never fall through to put pricing.
func (o OptionType) Validate() error {
	if o != OptionTypeCall && o != OptionTypePut {
		return fmt.Errorf("OptionType: Validate: %w: %s", ErrUnsupportedOptionType, o)
	}

	return nil
}
