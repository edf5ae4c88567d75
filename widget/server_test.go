// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jcodagnone/invitemap/ack"
	"github.com/jcodagnone/invitemap/invite"
	"github.com/jcodagnone/invitemap/places"
	"github.com/jcodagnone/invitemap/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecords = []invite.Record{
	{Name: "X", Location: "Thane"},
	{Name: "Y", Location: "Thane"},
	{Name: "W", Location: "Kurla"},
	{Name: "Z", Location: "Nowhere"},
	{Name: "V", Location: "mira road"},
}

// setupServerTest initializes a router over a file-backed state in a temp dir.
func setupServerTest(t *testing.T, initial ack.Map) (*gin.Engine, *ack.FileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := ack.NewFileStore(filepath.Join(t.TempDir(), "checked.json"))
	if initial != nil {
		require.NoError(t, store.Save(context.Background(), initial))
	}

	groups := invite.Aggregate(places.Default(), testRecords)
	server := NewServer(groups, ack.Open(context.Background(), store), places.Default())

	return server.Router(), store
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestListClustersAPI(t *testing.T) {
	router, _ := setupServerTest(t, ack.Map{"W": true, "X": true})

	w := doRequest(router, http.MethodGet, "/api/clusters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var clusters []ClusterView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clusters))
	require.Len(t, clusters, 2)

	thane := clusters[0]
	assert.Equal(t, "19.2183,72.9781", thane.Key)
	assert.Equal(t, spatial.Point{Lat: 19.2183, Lng: 72.9781}, thane.Point)
	assert.Equal(t, []NameView{{Name: "X", Acknowledged: true}, {Name: "Y"}}, thane.Names)
	assert.False(t, thane.AllAcknowledged)
	assert.Equal(t, MarkerPending, thane.Marker)
	assert.NotEmpty(t, thane.Cell)

	kurla := clusters[1]
	assert.True(t, kurla.AllAcknowledged)
	assert.Equal(t, MarkerVisited, kurla.Marker)
}

func TestToggleAckAPI(t *testing.T) {
	router, store := setupServerTest(t, ack.Map{"X": true})

	w := doRequest(router, http.MethodPost, "/api/acks/toggle", gin.H{"name": "Y"})
	require.Equal(t, http.StatusOK, w.Code)

	var got NameView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, NameView{Name: "Y", Acknowledged: true}, got)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ack.Map{"X": true, "Y": true}, saved)

	w = doRequest(router, http.MethodGet, "/api/clusters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var clusters []ClusterView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clusters))
	assert.Equal(t, MarkerVisited, clusters[0].Marker)

	w = doRequest(router, http.MethodPost, "/api/acks/toggle", gin.H{"name": "Y"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(t, got.Acknowledged)
}

func TestToggleAckAPIRejectsBadRequests(t *testing.T) {
	router, _ := setupServerTest(t, nil)

	tests := []struct {
		name string
		body any
		want int
	}{
		{"missing name", gin.H{}, http.StatusBadRequest},
		{"blank name", gin.H{"name": "  "}, http.StatusBadRequest},
		{"not json", "not json", http.StatusBadRequest},
		{"unresolved invitee", gin.H{"name": "Z"}, http.StatusNotFound},
		{"stranger", gin.H{"name": "Q"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/acks/toggle", tt.body)
			assert.Equal(t, tt.want, w.Code)
		})
	}

	w := doRequest(router, http.MethodGet, "/api/acks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

// failingStore loads fine but refuses every save.
type failingStore struct{}

func (failingStore) Load(_ context.Context) (ack.Map, error) { return ack.Map{}, nil }
func (failingStore) Save(_ context.Context, _ ack.Map) error { return errors.New("read-only") }

func TestToggleAckAPISaveFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	groups := invite.Aggregate(places.Default(), testRecords)
	state := ack.Open(context.Background(), failingStore{})
	router := NewServer(groups, state, nil).Router()

	w := doRequest(router, http.MethodPost, "/api/acks/toggle", gin.H{"name": "X"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, state.Acknowledged("X"))
}

func TestListUnresolvedAPI(t *testing.T) {
	router, _ := setupServerTest(t, nil)

	w := doRequest(router, http.MethodGet, "/api/unresolved", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []UnresolvedView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []UnresolvedView{
		{Name: "Z", Location: "Nowhere"},
		{Name: "V", Location: "mira road", Suggestion: "MiraRoad"},
	}, got)
}

func TestViewpointAPI(t *testing.T) {
	router, _ := setupServerTest(t, nil)

	w := doRequest(router, http.MethodGet, "/api/viewpoint", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, View{Center: DefaultCenter, Zoom: DefaultZoom}, view)

	w = doRequest(router, http.MethodGet, "/api/viewpoint?lat=19.07&lng=72.88", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, spatial.Point{Lat: 19.07, Lng: 72.88}, view.Center)
	assert.Equal(t, PositionZoom, view.Zoom)
	assert.Equal(t, "19.0731,72.8786", view.Nearest)
	assert.Positive(t, view.DistanceM)

	for _, q := range []string{"?lat=abc&lng=72", "?lat=19", "?lat=95&lng=72"} {
		w = doRequest(router, http.MethodGet, "/api/viewpoint"+q, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, DefaultZoom, view.Zoom, q)
	}
}

func TestViewpointWithoutClusters(t *testing.T) {
	view := Viewpoint(invite.Aggregate(places.Default(), nil), &spatial.Point{Lat: 1, Lng: 2})

	assert.Equal(t, PositionZoom, view.Zoom)
	assert.Empty(t, view.Nearest)
	assert.Zero(t, view.DistanceM)
}

func TestMapView(t *testing.T) {
	router, _ := setupServerTest(t, nil)

	w := doRequest(router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "leaflet")
	assert.Contains(t, w.Body.String(), "/api/clusters")
}
