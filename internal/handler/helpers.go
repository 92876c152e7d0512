package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ziadsupplies/storefront/internal/order"
)

// respondWithError sends a JSON error body.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("handler: failed to write JSON response")
	}
}

// cartErrorMessage translates a cart validation failure into the message
// shown to the customer, or "" if err is not a cart failure.
func cartErrorMessage(err error) string {
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		return "Cart is empty."
	case errors.Is(err, order.ErrUnknownProduct):
		return "One or more products do not exist."
	case errors.Is(err, order.ErrInvalidQuantity):
		return "Quantities must be greater than zero."
	default:
		return ""
	}
}
