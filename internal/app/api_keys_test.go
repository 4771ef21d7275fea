package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testApp() *Application {
	return &Application{
		Config: Config{
			ApiKeys: []string{"key"},
		},
	}
}

func TestBlankKeyIsInvalid(t *testing.T) {
	assert.True(t, testApp().IsInvalidAPIKey(""))
}

func TestUnknownKeyIsInvalid(t *testing.T) {
	assert.True(t, testApp().IsInvalidAPIKey("other"))
}

func TestConfiguredKeyIsValid(t *testing.T) {
	assert.False(t, testApp().IsInvalidAPIKey("key"))
}

func TestRequestKeyExtraction(t *testing.T) {
	app := testApp()

	r := httptest.NewRequest("GET", "/api/render/legend.json?key=key", nil)
	assert.False(t, app.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/render/legend.json", nil)
	assert.True(t, app.RequestHasInvalidAPIKey(r))
}
