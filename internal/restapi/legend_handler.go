package restapi

import (
	"net/http"

	"eldview.openfreight.org/internal/models"
)

// legendHandler returns the active style's color and row contracts so
// consumers can build map legends and sheet keys that match the rendered
// documents.
func (api *RestAPI) legendHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(api.Style.Legend()))
}
