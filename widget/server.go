// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

// Package widget serves the invite map: a Leaflet page and the JSON API it
// reads clusters and acknowledgments from.
package widget

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jcodagnone/invitemap/ack"
	"github.com/jcodagnone/invitemap/invite"
	"github.com/jcodagnone/invitemap/spatial"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Marker appearance for a cluster.
const (
	MarkerVisited = "visited"
	MarkerPending = "pending"
)

// Suggester proposes a known place name for one that did not resolve.
type Suggester interface {
	Suggest(place string) (string, bool)
}

type Server struct {
	groups    *invite.Groups
	state     *ack.State
	suggester Suggester
	known     map[string]struct{}
}

// NewServer creates a server over the session's clusters and acknowledgment
// state. suggester may be nil.
func NewServer(groups *invite.Groups, state *ack.State, suggester Suggester) *Server {
	known := make(map[string]struct{})

	for _, c := range groups.List() {
		for _, name := range c.Names {
			known[name] = struct{}{}
		}
	}

	return &Server{
		groups:    groups,
		state:     state,
		suggester: suggester,
		known:     known,
	}
}

// Router registers every route on a new engine.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", s.mapView)
	r.GET("/api/clusters", s.listClusters)
	r.GET("/api/unresolved", s.listUnresolved)
	r.GET("/api/acks", s.listAcks)
	r.POST("/api/acks/toggle", s.toggleAck)
	r.GET("/api/viewpoint", s.viewpoint)

	return r
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) mapView(ctx *gin.Context) {
	view := Viewpoint(s.groups, nil)
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"Lat":  view.Center.Lat,
		"Lng":  view.Center.Lng,
		"Zoom": view.Zoom,
	})
}

// NameView is one invitee inside a cluster popup.
type NameView struct {
	Name         string `json:"name"`
	Acknowledged bool   `json:"acknowledged"`
}

// ClusterView is what the page needs to draw one marker.
type ClusterView struct {
	Key             string        `json:"key"`
	Point           spatial.Point `json:"point"`
	Cell            string        `json:"cell"`
	Names           []NameView    `json:"names"`
	AllAcknowledged bool          `json:"all_acknowledged"`
	Marker          string        `json:"marker"`
}

// BuildClusterViews pairs every cluster with its acknowledgment state, in
// first-seen order.
func BuildClusterViews(groups *invite.Groups, acks ack.Map) []ClusterView {
	views := make([]ClusterView, 0, groups.Len())

	for _, c := range groups.List() {
		names := make([]NameView, 0, len(c.Names))
		for _, name := range c.Names {
			names = append(names, NameView{Name: name, Acknowledged: acks[name]})
		}

		all := ack.AllAcknowledged(c.Names, acks)

		marker := MarkerPending
		if all {
			marker = MarkerVisited
		}

		cell := ""
		if c.Cell != 0 {
			cell = c.Cell.String()
		}

		views = append(views, ClusterView{
			Key:             c.Key,
			Point:           c.Point,
			Cell:            cell,
			Names:           names,
			AllAcknowledged: all,
			Marker:          marker,
		})
	}

	return views
}

func (s *Server) listClusters(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, BuildClusterViews(s.groups, s.state.Snapshot()))
}

// UnresolvedView is a record left off the map.
type UnresolvedView struct {
	Name       string `json:"name"`
	Location   string `json:"location"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (s *Server) listUnresolved(ctx *gin.Context) {
	views := make([]UnresolvedView, 0, len(s.groups.Unresolved))

	for _, r := range s.groups.Unresolved {
		view := UnresolvedView{Name: r.Name, Location: r.Location}
		if s.suggester != nil {
			view.Suggestion, _ = s.suggester.Suggest(r.Location)
		}

		views = append(views, view)
	}

	ctx.JSON(http.StatusOK, views)
}

func (s *Server) listAcks(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.state.Snapshot())
}

type toggleRequest struct {
	Name string `json:"name"`
}

func (s *Server) toggleAck(ctx *gin.Context) {
	var req toggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	if strings.TrimSpace(req.Name) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})

		return
	}

	if _, ok := s.known[req.Name]; !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "unknown invitee"})

		return
	}

	value, err := s.state.Toggle(ctx.Request.Context(), req.Name)
	if err != nil {
		log.Printf("toggle %q: %v", req.Name, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save acknowledgment"})

		return
	}

	ctx.JSON(http.StatusOK, NameView{Name: req.Name, Acknowledged: value})
}

func (s *Server) viewpoint(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, Viewpoint(s.groups, parsePosition(ctx.Query("lat"), ctx.Query("lng"))))
}

func parsePosition(latStr, lngStr string) *spatial.Point {
	if latStr == "" || lngStr == "" {
		return nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil
	}

	p := &spatial.Point{Lat: lat, Lng: lng}
	if !p.Valid() {
		return nil
	}

	return p
}
