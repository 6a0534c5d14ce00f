package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/quantgrove/option-pricer/src/models"
)

type TradierService struct {
	BaseURL     string
	BearerToken string
}

func NewTradierService(baseURL, bearerToken string) *TradierService {
	return &TradierService{
		BaseURL:     baseURL,
		BearerToken: bearerToken,
	}
}

func (s *TradierService) FetchCandles(ctx context.Context, symbol models.StockSymbol, from, to time.Time) (*models.PriceSeries, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("TradierService: FetchCandles: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("symbol", symbol.String())
	q.Add("interval", "daily")
	q.Add("start", from.Format("2006-01-02"))
	q.Add("end", to.Format("2006-01-02"))

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", s.BearerToken))

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TradierService: FetchCandles: failed to fetch daily history: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TradierService: FetchCandles: failed to fetch daily history, http code %v", res.Status)
	}

	var dto models.TradierMarketsHistoryResponseDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("TradierService: FetchCandles: failed to decode json: %w", err)
	}

	if len(dto.History.Day) == 0 {
		return nil, fmt.Errorf("TradierService: FetchCandles: %w: %s", models.ErrNoDataFound, symbol)
	}

	candles := make([]*models.Candle, 0, len(dto.History.Day))
	for _, day := range dto.History.Day {
		candle, err := day.ToModel()
		if err != nil {
			return nil, fmt.Errorf("TradierService: FetchCandles: %w", err)
		}

		candles = append(candles, candle)
	}

	series := &models.PriceSeries{
		Symbol:  symbol,
		Candles: candles,
	}

	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("TradierService: FetchCandles: %w", err)
	}

	return series, nil
}
