package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madiyar4565/Travel_Scheduler/internal/handlers"
	"github.com/Madiyar4565/Travel_Scheduler/internal/models"
	"github.com/Madiyar4565/Travel_Scheduler/internal/services"
)

type destinationStoreStub struct {
	destinations []models.Destination
}

func (s *destinationStoreStub) GetAllDestinations(ctx context.Context) ([]models.Destination, error) {
	return s.destinations, nil
}

func (s *destinationStoreStub) CountDestinations(ctx context.Context) (int64, error) {
	return int64(len(s.destinations)), nil
}

func (s *destinationStoreStub) InsertDestinations(ctx context.Context, destinations []models.Destination) error {
	s.destinations = append(s.destinations, destinations...)
	return nil
}

var _ services.DestinationStore = (*destinationStoreStub)(nil)

func newDestinationRouter(store services.DestinationStore) http.Handler {
	h := handlers.NewDestinationHandler(services.NewDestinationService(store))

	router := mux.NewRouter()
	router.HandleFunc("/api/destinations", h.GetDestinationsHandler).Methods("GET")
	return router
}

func TestGetDestinations_ReturnsCatalog(t *testing.T) {
	router := newDestinationRouter(&destinationStoreStub{destinations: models.DefaultDestinations})

	req := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var destinations []models.Destination
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&destinations))
	require.Len(t, destinations, len(models.DefaultDestinations))
	assert.Equal(t, "Space Needle", destinations[0].Name)
	assert.Equal(t, "space-needle.jpeg", destinations[0].MainImage)
}

func TestGetDestinations_EmptyCatalog(t *testing.T) {
	router := newDestinationRouter(&destinationStoreStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
