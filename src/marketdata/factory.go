package marketdata

import (
	"fmt"

	"github.com/quantgrove/option-pricer/src/models"
	"github.com/quantgrove/option-pricer/src/utils"
)

// NewServiceFromConfig builds the data provider named in the config. Vendor
// credentials come from the environment.
func NewServiceFromConfig(config *models.PricerConfigYAML) (Service, error) {
	switch config.DataProvider {
	case "polygon":
		apiKey, err := utils.GetEnv("POLYGON_API_KEY")
		if err != nil {
			return nil, fmt.Errorf("NewServiceFromConfig: %w", err)
		}

		return NewPolygonService(apiKey), nil

	case "tradier":
		baseURL, err := utils.GetEnv("TRADIER_QUOTES_HISTORY_URL")
		if err != nil {
			return nil, fmt.Errorf("NewServiceFromConfig: %w", err)
		}

		bearerToken, err := utils.GetEnv("TRADIER_BEARER_TOKEN")
		if err != nil {
			return nil, fmt.Errorf("NewServiceFromConfig: %w", err)
		}

		return NewTradierService(baseURL, bearerToken), nil

	case "csv":
		dir, err := utils.GetEnv("CSV_DATA_DIR")
		if err != nil {
			return nil, fmt.Errorf("NewServiceFromConfig: %w", err)
		}

		return NewCsvService(dir), nil

	default:
		return nil, fmt.Errorf("NewServiceFromConfig: unknown data provider: %s", config.DataProvider)
	}
}
