package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"webcabinet/internal/gateway"
	"webcabinet/internal/models"
	"webcabinet/internal/services"
)

func countryRouter(sessions services.SessionService, upstream string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	gw := gateway.NewClient(upstream, false)
	h := NewCountryHandler(services.NewCountryService(gw), sessions)
	r.GET("/countries", h.List)
	return r
}

func TestCountriesUsesMirroredCredentials(t *testing.T) {
	var got http.Header
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{"countries":[{"code_id":1,"name_ru":"Казахстан","code":"+7","flag":"🇰🇿","length":10}]}`))
	}))
	defer upstream.Close()

	// пара идёт из зеркала, а не из cookie запроса
	r := countryRouter(&fakeSessions{mirror: &models.Credentials{SessionID: "S1", UserID: "42"}}, upstream.URL)

	w := getJSON(r, "/countries")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "S1", got.Get(gateway.HeaderSessionID))
	require.Equal(t, "42", got.Get(gateway.HeaderUserID))

	var resp map[string][]models.Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp["countries"], 1)
}

func TestCountriesWithoutSessionGoesAnonymous(t *testing.T) {
	var got http.Header
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{"countries":[{"code_id":1,"name_ru":"Казахстан","code":"+7","flag":"🇰🇿","length":10}]}`))
	}))
	defer upstream.Close()

	r := countryRouter(&fakeSessions{}, upstream.URL)

	w := getJSON(r, "/countries")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, got.Get(gateway.HeaderSessionID))
	require.Empty(t, got.Get(gateway.HeaderUserID))
}
