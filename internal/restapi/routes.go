package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodPost, "/api/render/route-map.svg", validateAPIKey(api, api.routeMapHandler))
	router.Handler(http.MethodPost, "/api/render/log-sheet/:date", validateAPIKey(api, api.logSheetHandler))
	router.Handler(http.MethodPost, "/api/render/log-dates.json", validateAPIKey(api, api.logDatesHandler))
	router.Handler(http.MethodGet, "/api/render/legend.json", validateAPIKey(api, api.legendHandler))
	router.NotFound = http.HandlerFunc(api.sendNotFound)
}
