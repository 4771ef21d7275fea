package restapi

import (
	"net/http"

	"eldview.openfreight.org/internal/models"
	"eldview.openfreight.org/internal/render"
)

// logDatesHandler returns the sorted distinct log dates of the posted
// trip's duty logs: one render target per multi-day sheet.
func (api *RestAPI) logDatesHandler(w http.ResponseWriter, r *http.Request) {
	trip, ok := api.decodeTripPayload(w, r)
	if !ok {
		return
	}

	var entries []models.DutyLogEntry
	if trip != nil {
		entries = trip.EldLogs
	}

	api.sendResponse(w, r, models.NewListResponse(render.PartitionLogDates(entries)))
}
