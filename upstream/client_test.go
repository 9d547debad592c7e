package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestFetchBareArray(t *testing.T) {
	c := serve(t, http.StatusOK, `[
		{"id": 1, "name": "Trattoria", "cuisine_type": "Italian", "neighborhood": "Downtown", "latlng": {"lat": 40.7, "lng": -73.9}},
		{"id": 2, "name": "Baan Thai", "cuisine_type": "Thai", "neighborhood": "Uptown", "latlng": {"lat": 40.8, "lng": -73.9}}
	]`)

	list, err := c.FetchRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Trattoria", list[0].Name)
	assert.Equal(t, "Thai", list[1].CuisineType)
	assert.Equal(t, 40.8, list[1].LatLng.Lat)
}

func TestFetchWrappedObject(t *testing.T) {
	c := serve(t, http.StatusOK, `{"restaurants": [
		{"id": 1, "name": "Trattoria", "cuisine_type": "Italian", "neighborhood": "Downtown"}
	]}`)

	list, err := c.FetchRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].ID)
}

func TestFetchAPIError(t *testing.T) {
	c := serve(t, http.StatusInternalServerError, `oops`)

	list, err := c.FetchRestaurants(context.Background())
	assert.Nil(t, list)
	assert.ErrorContains(t, err, "restaurant list API error: 500")
}

func TestFetchUnexpectedShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "object without restaurants key", body: `{"data": 1}`},
		{name: "scalar", body: `42`},
		{name: "not json", body: `<html></html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := serve(t, http.StatusOK, tt.body)
			list, err := c.FetchRestaurants(context.Background())
			assert.Nil(t, list)
			assert.ErrorContains(t, err, "unexpected restaurant list format")
		})
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url)
	list, err := c.FetchRestaurants(context.Background())
	assert.Nil(t, list)
	assert.ErrorContains(t, err, "restaurant list request")
}
