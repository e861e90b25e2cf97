package nominatimclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visita360-api/internal/config"
)

func newTestClient(serverURL string) Client {
	return NewClient(&config.Config{
		Geocoder: config.Geocoder{
			SearchURL:  serverURL + "/search",
			ReverseURL: serverURL + "/reverse",
			UserAgent:  "Visita360 Test",
			Timeout:    2 * time.Second,
		},
	})
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Visita360 Test", r.Header.Get("User-Agent"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "Rua A, 100, Brasil", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"place_id":1,"lat":"-23.5","lon":"-46.6","display_name":"Rua A","boundingbox":["1","2","3","4"],"class":"highway","type":"residential"}]`))
	}))
	defer server.Close()

	places, err := newTestClient(server.URL).Search(context.Background(), "Rua A, 100, Brasil")

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "-23.5", places[0].Lat)
	assert.Equal(t, "-46.6", places[0].Lon)
	assert.Equal(t, "Rua A", places[0].DisplayName)
}

func TestSearchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), "Rua A")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
}

func TestReverse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "-23.5", r.URL.Query().Get("lat"))
		assert.Equal(t, "-46.6", r.URL.Query().Get("lon"))

		w.Write([]byte(`{"lat":"-23.5","lon":"-46.6","display_name":"Rua A, São Paulo"}`))
	}))
	defer server.Close()

	place, err := newTestClient(server.URL).Reverse(context.Background(), -23.5, -46.6)

	require.NoError(t, err)
	assert.Equal(t, "Rua A, São Paulo", place.DisplayName)
}
