package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/samber/mo"

	"dustbinbackend/core"
	"dustbinbackend/models/api"
	"dustbinbackend/services"
)

type DustbinsHTTPHandler struct {
	dustbinsService services.DustbinsService
}

func NewDustbinsHTTPHandler(dustbinsService services.DustbinsService) *DustbinsHTTPHandler {
	return &DustbinsHTTPHandler{dustbinsService: dustbinsService}
}

// SetupEndpoints registers the dustbin CRUD routes. The id segment is
// constrained to digits so non-numeric ids fall through to a 404.
func (h *DustbinsHTTPHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/api/dustbins", h.HandleListDustbins).Methods(http.MethodGet)
	router.HandleFunc("/api/dustbins", h.HandleCreateDustbin).Methods(http.MethodPost)
	router.HandleFunc("/api/dustbins/{id:[0-9]+}", h.HandleGetDustbin).Methods(http.MethodGet)
	router.HandleFunc("/api/dustbins/{id:[0-9]+}", h.HandleUpdateDustbin).Methods(http.MethodPut)
	router.HandleFunc("/api/dustbins/{id:[0-9]+}", h.HandleDeleteDustbin).Methods(http.MethodDelete)
}

func (h *DustbinsHTTPHandler) HandleListDustbins(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 List dustbins request received from %s", r.RemoteAddr)

	status := mo.None[string]()
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status = mo.Some(statusParam)
	}

	dustbins, err := h.dustbinsService.ListDustbins(r.Context(), status)
	if err != nil {
		log.Printf("❌ Failed to list dustbins: %v", err)
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   "Database error",
			"message": "Failed to fetch dustbins",
		})
		return
	}

	apiDustbins := api.DomainDustbinsToAPIDustbins(dustbins)
	writeJSONResponse(w, http.StatusOK, api.DustbinListModel{
		Count:    len(apiDustbins),
		Dustbins: apiDustbins,
	})
}

func (h *DustbinsHTTPHandler) HandleGetDustbin(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	log.Printf("📋 Get dustbin request received for ID: %d", id)

	maybeDustbin, err := h.dustbinsService.GetDustbinByID(r.Context(), id)
	if err != nil {
		log.Printf("❌ Failed to get dustbin: %v", err)
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   "Database error",
			"message": "Failed to fetch dustbin",
		})
		return
	}

	dustbin, ok := maybeDustbin.Get()
	if !ok {
		writeJSONResponse(w, http.StatusNotFound, map[string]any{
			"error": "Dustbin not found",
			"id":    id,
		})
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainDustbinToAPIDustbin(dustbin))
}

func (h *DustbinsHTTPHandler) HandleCreateDustbin(w http.ResponseWriter, r *http.Request) {
	log.Printf("➕ Create dustbin request received from %s", r.RemoteAddr)

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Printf("❌ Failed to parse request body: %v", err)
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
		return
	}

	rawLatitude, hasLatitude := body["latitude"]
	rawLongitude, hasLongitude := body["longitude"]
	if !hasLatitude || !hasLongitude {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{
			"error":   "Missing required fields",
			"details": "latitude and longitude are required",
		})
		return
	}

	params, verr := parseCreateParams(rawLatitude, rawLongitude, body)
	if verr != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{
			"error":   verr.Category,
			"details": verr.Details,
		})
		return
	}

	dustbin, err := h.dustbinsService.CreateDustbin(r.Context(), params)
	if err != nil {
		if verr, ok := core.AsValidationError(err); ok {
			writeJSONResponse(w, http.StatusBadRequest, map[string]string{
				"error":   verr.Category,
				"details": verr.Details,
			})
			return
		}
		log.Printf("❌ Failed to create dustbin: %v", err)
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   "Database error",
			"message": "Failed to create dustbin",
		})
		return
	}

	writeJSONResponse(w, http.StatusCreated, api.DomainDustbinToAPIDustbin(dustbin))
}

func (h *DustbinsHTTPHandler) HandleUpdateDustbin(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	log.Printf("✏️ Update dustbin request received for ID: %d", id)

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Printf("❌ Failed to parse request body: %v", err)
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
		return
	}

	params, verr := parseUpdateParams(body)
	if verr != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{
			"error":   verr.Category,
			"details": verr.Details,
		})
		return
	}

	maybeDustbin, err := h.dustbinsService.UpdateDustbin(r.Context(), id, params)
	if err != nil {
		if verr, ok := core.AsValidationError(err); ok {
			writeJSONResponse(w, http.StatusBadRequest, map[string]string{
				"error":   verr.Category,
				"details": verr.Details,
			})
			return
		}
		log.Printf("❌ Failed to update dustbin: %v", err)
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   "Database error",
			"message": "Failed to update dustbin",
		})
		return
	}

	dustbin, ok := maybeDustbin.Get()
	if !ok {
		writeJSONResponse(w, http.StatusNotFound, map[string]any{
			"error": "Dustbin not found",
			"id":    id,
		})
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainDustbinToAPIDustbin(dustbin))
}

// parseNumber accepts only a JSON number. Null and every other type are
// rejected the same way.
func parseNumber(raw json.RawMessage) (float64, bool) {
	var value *float64
	if err := json.Unmarshal(raw, &value); err != nil || value == nil {
		return 0, false
	}
	return *value, true
}

// parseNullableString accepts a JSON string or null; null maps to a nil
// pointer.
func parseNullableString(raw json.RawMessage) (*string, bool) {
	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false
	}
	return value, true
}

// parseCreateParams type-checks the create body field by field. Type errors
// are reported before any range check, latitude before longitude.
func parseCreateParams(
	rawLatitude, rawLongitude json.RawMessage,
	body map[string]json.RawMessage,
) (services.CreateDustbinParams, *core.ValidationError) {
	params := services.CreateDustbinParams{}

	latitude, ok := parseNumber(rawLatitude)
	if !ok {
		return params, core.NewValidationError("Invalid coordinates", "Latitude must be a valid number")
	}
	params.Latitude = latitude

	longitude, ok := parseNumber(rawLongitude)
	if !ok {
		return params, core.NewValidationError("Invalid coordinates", "Longitude must be a valid number")
	}
	params.Longitude = longitude

	if raw, ok := body["address"]; ok {
		address, ok := parseNullableString(raw)
		if !ok {
			return params, core.NewValidationError("Invalid address", "Address must be a string")
		}
		params.Address = address
	}

	if raw, ok := body["description"]; ok {
		description, ok := parseNullableString(raw)
		if !ok {
			return params, core.NewValidationError("Invalid description", "Description must be a string")
		}
		params.Description = description
	}

	if raw, ok := body["reportedBy"]; ok {
		reportedBy, ok := parseNullableString(raw)
		if !ok {
			return params, core.NewValidationError("Invalid reportedBy", "reportedBy must be a string")
		}
		params.ReportedBy = reportedBy
	}

	return params, nil
}

// parseUpdateParams turns the raw request body into a sparse patch,
// recording for each field whether it was present at all.
func parseUpdateParams(body map[string]json.RawMessage) (services.UpdateDustbinParams, *core.ValidationError) {
	params := services.UpdateDustbinParams{}

	if raw, ok := body["latitude"]; ok {
		latitude, ok := parseNumber(raw)
		if !ok {
			return params, core.NewValidationError("Invalid coordinates", "Latitude must be a valid number")
		}
		params.Latitude = mo.Some(latitude)
	}

	if raw, ok := body["longitude"]; ok {
		longitude, ok := parseNumber(raw)
		if !ok {
			return params, core.NewValidationError("Invalid coordinates", "Longitude must be a valid number")
		}
		params.Longitude = mo.Some(longitude)
	}

	if raw, ok := body["address"]; ok {
		address, ok := parseNullableString(raw)
		if !ok {
			return params, core.NewValidationError("Invalid address", "Address must be a string")
		}
		params.Address = mo.Some(address)
	}

	if raw, ok := body["description"]; ok {
		description, ok := parseNullableString(raw)
		if !ok {
			return params, core.NewValidationError("Invalid description", "Description must be a string")
		}
		params.Description = mo.Some(description)
	}

	if raw, ok := body["status"]; ok {
		var status string
		// A non-string status falls through as "" and is rejected by the
		// service with the list of valid values.
		_ = json.Unmarshal(raw, &status)
		params.Status = mo.Some(status)
	}

	return params, nil
}

func (h *DustbinsHTTPHandler) HandleDeleteDustbin(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	log.Printf("🗑️ Delete dustbin request received for ID: %d", id)

	deleted, err := h.dustbinsService.DeleteDustbin(r.Context(), id)
	if err != nil {
		log.Printf("❌ Failed to delete dustbin: %v", err)
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   "Database error",
			"message": "Failed to delete dustbin",
		})
		return
	}

	if !deleted {
		writeJSONResponse(w, http.StatusNotFound, map[string]any{
			"error": "Dustbin not found",
			"id":    id,
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
