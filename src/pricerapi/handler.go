package pricerapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"github.com/quantgrove/option-pricer/src/models"
	"github.com/quantgrove/option-pricer/src/services"
)

var pricingService *services.PricingService

// package-level so gorilla/schema reuses its struct metadata cache
var queryDecoder = schema.NewDecoder()

type PriceOptionQueryDTO struct {
	Ticker       string  `schema:"ticker,required"`
	Strike       float64 `schema:"strike,required"`
	Expiry       string  `schema:"expiry,required"`
	OptionType   string  `schema:"option_type,required"`
	RiskFreeRate float64 `schema:"risk_free_rate"`
	Model        string  `schema:"model"`
}

type errorResponse struct {
	Type string `json:"type"`
	Msg  string `json:"message"`
}

func setResponse(response interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("setResponse: encode: %w", err)
	}

	return nil
}

func setErrorResponse(errType string, statusCode int, err error, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := &errorResponse{
		Type: errType,
		Msg:  err.Error(),
	}

	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		return encodeErr
	}

	return nil
}

func statusCodeFor(err error) (string, int) {
	switch {
	case errors.Is(err, models.ErrNoDataFound):
		return "no_data_found", 404
	case errors.Is(err, models.ErrInvalidExpiry):
		return "invalid_expiry", 400
	case errors.Is(err, models.ErrInsufficientData):
		return "insufficient_data", 422
	case errors.Is(err, models.ErrInvalidInput):
		return "invalid_input", 400
	case errors.Is(err, models.ErrUnsupportedOptionType):
		return "unsupported_option_type", 400
	default:
		return "pricing", 500
	}
}

func handlePriceOption(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(404)
		return
	}

	requestID := uuid.New()

	var dto PriceOptionQueryDTO
	if err := queryDecoder.Decode(&dto, r.URL.Query()); err != nil {
		log.Errorf("handlePriceOption [%s]: failed to decode query: %v", requestID, err)
		if respErr := setErrorResponse("validation", 400, err, w); respErr != nil {
			log.Errorf("handlePriceOption [%s]: failed to set error response: %v", requestID, respErr)
		}
		return
	}

	if !r.URL.Query().Has("risk_free_rate") {
		dto.RiskFreeRate = pricingService.Config().RiskFreeRate
	}

	result, err := pricingService.PriceOption(r.Context(), services.PriceOptionRequest{
		Ticker:       dto.Ticker,
		Strike:       dto.Strike,
		Expiry:       dto.Expiry,
		OptionType:   models.OptionType(dto.OptionType),
		RiskFreeRate: dto.RiskFreeRate,
		Model:        models.ModelType(dto.Model),
	})

	if err != nil {
		errType, statusCode := statusCodeFor(err)
		log.Errorf("handlePriceOption [%s]: %v", requestID, err)
		if respErr := setErrorResponse(errType, statusCode, err, w); respErr != nil {
			log.Errorf("handlePriceOption [%s]: failed to set error response: %v", requestID, respErr)
		}
		return
	}

	if err := setResponse(result, w); err != nil {
		// the 200 header is already out at this point, nothing left to do but log
		log.Errorf("handlePriceOption [%s]: failed to set response: %v", requestID, err)
	}
}

func SetupHandler(router *mux.Router, service *services.PricingService) {
	pricingService = service

	router.HandleFunc("/price", handlePriceOption)
}
