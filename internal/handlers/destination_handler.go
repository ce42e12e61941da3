package handlers

import (
	"net/http"

	"github.com/Madiyar4565/Travel_Scheduler/internal/models"
	"github.com/Madiyar4565/Travel_Scheduler/internal/services"
)

// DestinationHandler serves the read-only destination catalog.
type DestinationHandler struct {
	Service *services.DestinationService
}

func NewDestinationHandler(service *services.DestinationService) *DestinationHandler {
	return &DestinationHandler{Service: service}
}

// GetDestinationsHandler returns the whole catalog as a JSON array.
func (h *DestinationHandler) GetDestinationsHandler(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.Service.GetAllDestinations(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch destinations")
		return
	}

	if destinations == nil {
		destinations = []models.Destination{}
	}
	respondJSON(w, http.StatusOK, destinations)
}
