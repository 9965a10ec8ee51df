package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dustbinbackend/core"
	"dustbinbackend/models"
	"dustbinbackend/services"
	dustbinssvc "dustbinbackend/services/dustbins"
	"dustbinbackend/testutils"
)

func setupDustbinsRouter(t *testing.T) (*mux.Router, *dustbinssvc.MockDustbinsService) {
	t.Helper()
	mockService := new(dustbinssvc.MockDustbinsService)
	handler := NewDustbinsHTTPHandler(mockService)
	router := mux.NewRouter()
	handler.SetupEndpoints(router)
	return router, mockService
}

func doJSONRequest(router *mux.Router, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleListDustbins(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	dustbins := []*models.Dustbin{testutils.NewTestDustbin(1), testutils.NewTestDustbin(2)}
	mockService.On("ListDustbins", mock.Anything, mo.None[string]()).Return(dustbins, nil)

	rec := doJSONRequest(router, http.MethodGet, "/api/dustbins", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count    int `json:"count"`
		Dustbins []struct {
			ID        int     `json:"id"`
			Latitude  float64 `json:"latitude"`
			Status    string  `json:"status"`
		} `json:"dustbins"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Dustbins, 2)
	assert.Equal(t, 1, body.Dustbins[0].ID)
	assert.InDelta(t, 12.9, body.Dustbins[0].Latitude, 1e-9)
	assert.Equal(t, "active", body.Dustbins[0].Status)
	mockService.AssertExpectations(t)
}

func TestHandleListDustbins_StatusFilter(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	mockService.On("ListDustbins", mock.Anything, mo.Some("full")).
		Return([]*models.Dustbin{}, nil)

	rec := doJSONRequest(router, http.MethodGet, "/api/dustbins?status=full", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Count)
	mockService.AssertExpectations(t)
}

func TestHandleListDustbins_DatabaseError(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	mockService.On("ListDustbins", mock.Anything, mo.None[string]()).
		Return(nil, assert.AnError)

	rec := doJSONRequest(router, http.MethodGet, "/api/dustbins", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Database error", body["error"])
	assert.Equal(t, "Failed to fetch dustbins", body["message"])
}

func TestHandleGetDustbin(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	dustbin := testutils.NewTestDustbin(5)
	mockService.On("GetDustbinByID", mock.Anything, 5).Return(mo.Some(dustbin), nil)

	rec := doJSONRequest(router, http.MethodGet, "/api/dustbins/5", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 5, body.ID)
	assert.Equal(t, "active", body.Status)
}

func TestHandleGetDustbin_NotFound(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	mockService.On("GetDustbinByID", mock.Anything, 999).
		Return(mo.None[*models.Dustbin](), nil)

	rec := doJSONRequest(router, http.MethodGet, "/api/dustbins/999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Dustbin not found", body["error"])
	assert.Equal(t, float64(999), body["id"])
}

func TestHandleGetDustbin_NonNumericID(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	rec := doJSONRequest(router, http.MethodGet, "/api/dustbins/abc", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockService.AssertNotCalled(t, "GetDustbinByID")
}

func TestHandleCreateDustbin(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	created := testutils.NewTestDustbin(1)
	mockService.On("CreateDustbin", mock.Anything, services.CreateDustbinParams{
		Latitude:  12.9,
		Longitude: 77.6,
		Address:   testutils.Ptr("MG Road"),
	}).Return(created, nil)

	payload := []byte(`{"latitude": 12.9, "longitude": 77.6, "address": "MG Road"}`)
	rec := doJSONRequest(router, http.MethodPost, "/api/dustbins", payload)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.ID)
	mockService.AssertExpectations(t)
}

func TestHandleCreateDustbin_MissingCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty body", payload: `{}`},
		{name: "missing longitude", payload: `{"latitude": 12.9}`},
		{name: "missing latitude", payload: `{"longitude": 77.6}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupDustbinsRouter(t)

			rec := doJSONRequest(router, http.MethodPost, "/api/dustbins", []byte(tt.payload))

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Missing required fields", body["error"])
			assert.Equal(t, "latitude and longitude are required", body["details"])
			mockService.AssertNotCalled(t, "CreateDustbin")
		})
	}
}

func TestHandleCreateDustbin_NonNumericCoordinates(t *testing.T) {
	tests := []struct {
		name            string
		payload         string
		expectedDetails string
	}{
		{
			name:            "string latitude",
			payload:         `{"latitude": "12.9", "longitude": 77.6}`,
			expectedDetails: "Latitude must be a valid number",
		},
		{
			name:            "boolean longitude",
			payload:         `{"latitude": 12.9, "longitude": true}`,
			expectedDetails: "Longitude must be a valid number",
		},
		{
			name:            "null latitude",
			payload:         `{"latitude": null, "longitude": 77.6}`,
			expectedDetails: "Latitude must be a valid number",
		},
		{
			name:            "latitude checked before longitude",
			payload:         `{"latitude": "north", "longitude": "east"}`,
			expectedDetails: "Latitude must be a valid number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupDustbinsRouter(t)

			rec := doJSONRequest(router, http.MethodPost, "/api/dustbins", []byte(tt.payload))

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Invalid coordinates", body["error"])
			assert.Equal(t, tt.expectedDetails, body["details"])
			mockService.AssertNotCalled(t, "CreateDustbin")
		})
	}
}

func TestHandleCreateDustbin_NonStringAddress(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	payload := []byte(`{"latitude": 12.9, "longitude": 77.6, "address": 42}`)
	rec := doJSONRequest(router, http.MethodPost, "/api/dustbins", payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid address", body["error"])
	assert.Equal(t, "Address must be a string", body["details"])
	mockService.AssertNotCalled(t, "CreateDustbin")
}

func TestHandleCreateDustbin_InvalidBody(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	rec := doJSONRequest(router, http.MethodPost, "/api/dustbins", []byte(`{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request body", body["error"])
	mockService.AssertNotCalled(t, "CreateDustbin")
}

func TestHandleCreateDustbin_ValidationError(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	mockService.On("CreateDustbin", mock.Anything, mock.Anything).
		Return(nil, core.NewValidationError("Invalid coordinates", "Latitude must be between -90 and 90"))

	payload := []byte(`{"latitude": 100, "longitude": 77.6}`)
	rec := doJSONRequest(router, http.MethodPost, "/api/dustbins", payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid coordinates", body["error"])
	assert.Equal(t, "Latitude must be between -90 and 90", body["details"])
}

func TestHandleUpdateDustbin(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	updated := testutils.NewTestDustbin(5)
	updated.Status = models.DustbinStatusFull
	mockService.On("UpdateDustbin", mock.Anything, 5, services.UpdateDustbinParams{
		Status: mo.Some("full"),
	}).Return(mo.Some(updated), nil)

	rec := doJSONRequest(router, http.MethodPut, "/api/dustbins/5", []byte(`{"status": "full"}`))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 5, body.ID)
	assert.Equal(t, "full", body.Status)
	mockService.AssertExpectations(t)
}

func TestHandleUpdateDustbin_NullAddressClearsField(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	updated := testutils.NewTestDustbin(5)
	mockService.On("UpdateDustbin", mock.Anything, 5, services.UpdateDustbinParams{
		Address: mo.Some[*string](nil),
	}).Return(mo.Some(updated), nil)

	rec := doJSONRequest(router, http.MethodPut, "/api/dustbins/5", []byte(`{"address": null}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestHandleUpdateDustbin_NonNumericLatitude(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "string latitude", payload: `{"latitude": "north"}`},
		{name: "null latitude", payload: `{"latitude": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupDustbinsRouter(t)

			rec := doJSONRequest(router, http.MethodPut, "/api/dustbins/5", []byte(tt.payload))

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Invalid coordinates", body["error"])
			assert.Equal(t, "Latitude must be a valid number", body["details"])
			mockService.AssertNotCalled(t, "UpdateDustbin")
		})
	}
}

func TestHandleUpdateDustbin_ValidationError(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	mockService.On("UpdateDustbin", mock.Anything, 5, services.UpdateDustbinParams{
		Status: mo.Some("fullish"),
	}).Return(
		mo.None[*models.Dustbin](),
		core.NewValidationError("Invalid status", "Status must be one of: active, full, damaged, removed"),
	)

	rec := doJSONRequest(router, http.MethodPut, "/api/dustbins/5", []byte(`{"status": "fullish"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid status", body["error"])
	assert.Equal(t, "Status must be one of: active, full, damaged, removed", body["details"])
}

func TestHandleUpdateDustbin_NotFound(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	mockService.On("UpdateDustbin", mock.Anything, 999, services.UpdateDustbinParams{
		Status: mo.Some("full"),
	}).Return(mo.None[*models.Dustbin](), nil)

	rec := doJSONRequest(router, http.MethodPut, "/api/dustbins/999", []byte(`{"status": "full"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Dustbin not found", body["error"])
	assert.Equal(t, float64(999), body["id"])
}

func TestHandleDeleteDustbin(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	mockService.On("DeleteDustbin", mock.Anything, 5).Return(true, nil)

	rec := doJSONRequest(router, http.MethodDelete, "/api/dustbins/5", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestHandleDeleteDustbin_NotFound(t *testing.T) {
	router, mockService := setupDustbinsRouter(t)

	mockService.On("DeleteDustbin", mock.Anything, 999).Return(false, nil)

	rec := doJSONRequest(router, http.MethodDelete, "/api/dustbins/999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Dustbin not found", body["error"])
}
