package restapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"eldview.openfreight.org/internal/logging"
	"eldview.openfreight.org/internal/models"
	"eldview.openfreight.org/internal/utils"
)

var validate = validator.New()

// decodeTripPayload reads the request body into a Trip. The second return
// value is false when a response has already been written.
//
// An empty or "null" body decodes to a nil trip, which is a legal input:
// the renderers degrade to their placeholder output. A body that is present
// but not valid JSON, or a trip that fails field validation, is a 400.
func (api *RestAPI) decodeTripPayload(w http.ResponseWriter, r *http.Request) (*models.Trip, bool) {
	defer logging.SafeCloseWithLogging(r.Body, api.Logger, "trip_payload_body")

	var trip *models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, true
		}
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"request body must be a JSON trip document"},
		})
		return nil, false
	}
	if trip == nil {
		return nil, true
	}

	fieldErrors := make(map[string][]string)
	var validationErrors validator.ValidationErrors
	if err := validate.Struct(trip); errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			field := strings.ToLower(fieldError.Field())
			fieldErrors[field] = append(fieldErrors[field],
				"failed validation on rule "+fieldError.Tag())
		}
	} else if err := utils.ValidateID(trip.ID); err != nil {
		fieldErrors["id"] = append(fieldErrors["id"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return nil, false
	}

	return trip, true
}

// tripIDForLog names the trip in log output, tolerating nil.
func tripIDForLog(trip *models.Trip) string {
	if trip == nil {
		return models.UnknownValue
	}
	return trip.ID
}
