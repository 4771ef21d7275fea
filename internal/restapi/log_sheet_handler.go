package restapi

import (
	"net/http"

	"eldview.openfreight.org/internal/render"
	"eldview.openfreight.org/internal/svg"
	"eldview.openfreight.org/internal/utils"
)

// logSheetHandler renders the posted trip's duty-status sheet for the date
// in the URL. The date addresses one calendar day of the trip's duty logs;
// a day with no entries still renders a complete, empty sheet.
func (api *RestAPI) logSheetHandler(w http.ResponseWriter, r *http.Request) {
	date := utils.ExtractIDFromParams(r, "date")
	if err := utils.ValidateDate(date); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"date": {err.Error()},
		})
		return
	}

	trip, ok := api.decodeTripPayload(w, r)
	if !ok {
		return
	}

	canvas := svg.New(api.Style.Sheet.Width, api.Style.Sheet.Height)
	if err := render.LogSheet(trip, date, canvas, api.Style); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendSVG(w, r, "log_sheet", tripIDForLog(trip), canvas.String())
}
