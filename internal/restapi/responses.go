package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"eldview.openfreight.org/internal/logging"
	"eldview.openfreight.org/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

// sendSVG writes a rendered document with the SVG media type and logs what
// was produced.
func (api *RestAPI) sendSVG(w http.ResponseWriter, r *http.Request, document, tripID, svg string) {
	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	if _, err := w.Write([]byte(svg)); err != nil {
		logging.LogError(api.Logger, "failed to write rendered document", err,
			slog.String("document", document))
		return
	}
	logging.LogRender(api.Logger, document, tripID, len(svg))
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	setJSONResponseType(&w)
	w.WriteHeader(http.StatusNotFound)

	response := models.ResponseModel{
		Code:        http.StatusNotFound,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "resource not found",
		Version:     2,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
