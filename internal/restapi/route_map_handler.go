package restapi

import (
	"net/http"

	"eldview.openfreight.org/internal/models"
	"eldview.openfreight.org/internal/render"
	"eldview.openfreight.org/internal/svg"
	"eldview.openfreight.org/internal/utils"
)

// routeMapHandler renders the posted trip's route map.
// The response is a complete SVG document; a trip without route data yields
// the placeholder document rather than an error.
func (api *RestAPI) routeMapHandler(w http.ResponseWriter, r *http.Request) {
	trip, ok := api.decodeTripPayload(w, r)
	if !ok {
		return
	}
	api.warnOnImplausibleCoordinates(trip)

	canvas := svg.New(api.Style.Map.Width, api.Style.Map.Height)
	if err := render.RouteMap(trip, canvas, api.Style); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendSVG(w, r, "route_map", tripIDForLog(trip), canvas.String())
}

// warnOnImplausibleCoordinates logs fixed locations outside WGS84 bounds.
// Rendering still proceeds: the projection is bounds-fit and handles any
// finite value.
func (api *RestAPI) warnOnImplausibleCoordinates(trip *models.Trip) {
	if trip == nil {
		return
	}
	locations := map[string]models.GeoPoint{
		"current": trip.CurrentLocation,
		"pickup":  trip.PickupLocation,
		"dropoff": trip.DropoffLocation,
	}
	for name, point := range locations {
		if !point.Finite() {
			continue
		}
		if err := utils.ValidateLatitude(point.Lat); err != nil {
			api.Logger.Warn("implausible coordinate", "location", name, "trip_id", trip.ID, "error", err.Error())
			continue
		}
		if err := utils.ValidateLongitude(point.Lng); err != nil {
			api.Logger.Warn("implausible coordinate", "location", name, "trip_id", trip.ID, "error", err.Error())
		}
	}
}
