// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"math"

	"github.com/jcodagnone/invitemap/invite"
	"github.com/jcodagnone/invitemap/spatial"
)

// Map framing when the browser gives no position, and when it does.
const (
	DefaultZoom  = 10
	PositionZoom = 13
)

// DefaultCenter is where the map opens without a user position.
var DefaultCenter = spatial.Point{Lat: 19.076, Lng: 72.8777}

// View is the initial framing of the map.
type View struct {
	Center    spatial.Point `json:"center"`
	Zoom      int           `json:"zoom"`
	Nearest   string        `json:"nearest,omitempty"`
	DistanceM float64       `json:"distance_m,omitempty"`
}

// Viewpoint frames the map around position, or the default center when
// position is nil. With a position the closest cluster is reported too.
func Viewpoint(groups *invite.Groups, position *spatial.Point) View {
	if position == nil {
		return View{Center: DefaultCenter, Zoom: DefaultZoom}
	}

	view := View{Center: *position, Zoom: PositionZoom}
	best := math.Inf(1)

	for _, c := range groups.List() {
		d := position.HaversineDistance(&c.Point)
		if d < best {
			best = d
			view.Nearest = c.Key
		}
	}

	if view.Nearest != "" {
		view.DistanceM = math.Round(best)
	}

	return view
}
