package models

import "fmt"

type ModelType string

const (
	ModelTypeBlackScholes ModelType = "BS"
)

func (m ModelType) Validate() error {
	if m != ModelTypeBlackScholes {
		return fmt.Errorf("ModelType: Validate: unsupported pricing model: %s", m)
	}

	return nil
}
