package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flamesblue/internal/bookings/repository"
	"flamesblue/internal/bookings/service"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/store"
	"flamesblue/pkg/validator"
)

func newRouter() *httprouter.Router {
	log := logger.NewNop()
	svc := service.NewBookingService(repository.NewBookingRepository(store.NewMemoryStore()), validator.NewRecordValidator(log), log)
	router := httprouter.New()
	NewBookingHandler(svc, log).RegisterRoutes(router)
	return router
}

func TestCreateThenList(t *testing.T) {
	router := newRouter()

	body := `{"user_id":"u1","vehicle_id":"v1","start_date":"2025-06-01","end_date":"2025-06-02","instant_delivery":true,"subscription":"weekly"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"_id":"`)
	assert.Contains(t, rec.Body.String(), `"instant_delivery":true`)
	assert.Contains(t, rec.Body.String(), `"subscription":"weekly"`)
}

func TestCreate_MissingEndDate(t *testing.T) {
	router := newRouter()

	body := `{"user_id":"u1","vehicle_id":"v1","start_date":"2025-06-01"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"end_date"`)
}

func TestCreate_MalformedJSON(t *testing.T) {
	router := newRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"user_id":`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestList_Empty(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
