package postalcode

import (
	"encoding/json"
	"errors"
	"net/http"

	"postalform/internal/adapters/http/response"
	"postalform/internal/core/domain/postalcode"
	httpErrors "postalform/internal/platform/http"
	"postalform/internal/platform/logger"
	"postalform/internal/platform/validator"
)

type Handler struct {
	manager  Manager
	validate validator.Validator
}

func NewHandler(manager Manager, validate validator.Validator) *Handler {
	return &Handler{
		manager:  manager,
		validate: validate,
	}
}

// ValidateRequest is one form submission. Touched lists the fields the user
// has interacted with; when present, only their errors are reported.
type ValidateRequest struct {
	Name    string   `json:"name"`
	ZipCode string   `json:"zipCode"`
	Touched []string `json:"touched,omitempty" validate:"omitempty,dive,oneof=name zipCode"`
}

type ValidateResponse struct {
	Valid   bool                  `json:"valid"`
	Cleaned *postalcode.FormInput `json:"cleaned,omitempty"`
	Errors  map[string][]string   `json:"errors,omitempty"`
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) error {
	contextLogger := logger.FromContext(r.Context())

	var req ValidateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return httpErrors.NewRequestTooLarge("request body too large", err)
		}
		return httpErrors.NewBadRequest("invalid request payload", err)
	}

	if err := h.validate.Validate(req); err != nil {
		var validationErr validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Warn("Request validation failed",
				logger.Strings("fields", validationErr.Fields()),
				logger.Error(err))
			response.RespondJSON(w, http.StatusBadRequest, validationErr)
			return nil
		}
		contextLogger.Error("Unexpected validation error", logger.Error(err))
		return httpErrors.NewBadRequest("invalid request data", err)
	}

	result := h.manager.Validate(r.Context(), postalcode.FormInput{
		Name:    req.Name,
		ZipCode: req.ZipCode,
	})

	if result.Valid() {
		cleaned := result.Cleaned
		response.RespondJSON(w, http.StatusOK, ValidateResponse{Valid: true, Cleaned: &cleaned})
		return nil
	}

	errs := result.Errors()
	if req.Touched != nil {
		errs = result.ErrorsFor(req.Touched...)
	}

	response.RespondJSON(w, http.StatusUnprocessableEntity, ValidateResponse{Valid: false, Errors: errs})
	return nil
}

func (h *Handler) Formats(w http.ResponseWriter, r *http.Request) error {
	response.RespondJSON(w, http.StatusOK, h.manager.Formats(r.Context()))
	return nil
}
