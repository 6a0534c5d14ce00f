package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quantgrove/option-pricer/src/models"
)

// LoadPricerConfig reads pricer.yaml from the given path. A missing file is
// not an error; the built-in defaults apply.
func LoadPricerConfig(path string) (*models.PricerConfigYAML, error) {
	config := models.DefaultPricerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("LoadPricerConfig: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("LoadPricerConfig: failed to unmarshal %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("LoadPricerConfig: %w", err)
	}

	return config, nil
}
