package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"eldview.openfreight.org/internal/app"
	"eldview.openfreight.org/internal/logging"
	"eldview.openfreight.org/internal/models"
	"eldview.openfreight.org/internal/render"
)

// tripPayload is a small two-day trip used across the handler tests.
const tripPayload = `{
	"id": "trip-42",
	"status": "planned",
	"current_location": {"lat": 6.5, "lng": 3.4, "address": "Lagos"},
	"pickup_location": {"lat": 6.9, "lng": 3.6},
	"dropoff_location": {"lat": 7.3, "lng": 3.9},
	"route_coordinates": [[6.5, 3.4], [6.9, 3.6], [7.3, 3.9]],
	"rest_stops": [
		{"id": "rs-1", "stop_type": "break", "location": {"lat": 6.7, "lng": 3.5}}
	],
	"eld_logs": [
		{"id": "e1", "log_date": "2025-06-01", "duty_status": "driving", "start_time": "08:00", "end_time": "10:30", "duration_hours": 2.5},
		{"id": "e2", "log_date": "2025-06-02", "duty_status": "off_duty", "start_time": "00:00", "end_time": "08:00", "duration_hours": 8, "remarks": "overnight"},
		{"id": "e3", "log_date": "2025-06-01", "duty_status": "on_duty", "start_time": "07:00", "end_time": "08:00", "duration_hours": 1}
	],
	"driver_info": {"full_name": "R. Carter", "license_number": "D1234567"}
}`

// createTestApi creates a RestAPI instance with the default style and a
// discard logger for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	application := &app.Application{
		Config: app.Config{
			Env:       "test",
			ApiKeys:   []string{"TEST"},
			RateLimit: -1,
		},
		Logger: logging.NewStructuredLogger(io.Discard, slog.LevelInfo),
		Style:  render.DefaultStyle(),
	}
	return NewRestAPI(application)
}

// serveApi sets up a test server over the routed API without the outer
// middleware chain; middleware has its own tests.
func serveApi(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func postTrip(t *testing.T, server *httptest.Server, endpoint, payload string) *http.Response {
	t.Helper()
	resp, err := http.Post(server.URL+endpoint, "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func getEndpoint(t *testing.T, server *httptest.Server, endpoint string) *http.Response {
	t.Helper()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func decodeEnvelope(t *testing.T, resp *http.Response) models.ResponseModel {
	t.Helper()
	var response models.ResponseModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	return response
}
