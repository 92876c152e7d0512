package handler

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ziadsupplies/storefront/internal/catalog"
)

// CatalogHandler serves the read-only catalog projection.
type CatalogHandler struct {
	store catalog.Repository
}

func NewCatalogHandler(store catalog.Repository) *CatalogHandler {
	return &CatalogHandler{store: store}
}

type catalogResponse struct {
	Categories []catalog.CategoryView `json:"categories"`
}

// GetCatalog handles GET /api/catalog. Retrieval failures yield a 500 and
// never a partial catalog.
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.GetCatalog(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to load catalog")
		respondWithError(w, http.StatusInternalServerError, "Failed to load catalog.")
		return
	}

	respondWithJSON(w, http.StatusOK, catalogResponse{Categories: categories})
}
