// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

// Package invite loads the invite list and groups invitees by the coordinate
// their location resolves to.
package invite

import (
	"fmt"
	"log"
	"sort"

	"github.com/jcodagnone/invitemap/spatial"
	"github.com/uber/h3-go/v4"
)

// CellResolution is the H3 resolution stored on every cluster.
const CellResolution = 8

// Record is one invitee as it appears in the invite list.
type Record struct {
	Name     string `json:"Name"`
	Location string `json:"Location"`
}

// Resolver maps a place name to its coordinate.
type Resolver interface {
	Resolve(place string) (spatial.Point, bool)
}

// Cluster groups the invitees whose location resolves to the same point.
type Cluster struct {
	Key   string        `json:"key"`
	Point spatial.Point `json:"point"`
	Names []string      `json:"names"`
	Cell  h3.Cell       `json:"-"`
}

// Groups is the result of Aggregate.
type Groups struct {
	// Clusters maps a point key to its cluster.
	Clusters map[string]*Cluster
	// Keys lists cluster keys in the order they were first seen.
	Keys []string
	// Unresolved holds the records that were left out because their location
	// is unknown.
	Unresolved []Record
}

// Lookup resolves place and reports an unknown name as a LocationNotFound error.
func Lookup(resolver Resolver, place string) (spatial.Point, error) {
	p, ok := resolver.Resolve(place)
	if !ok {
		return spatial.Point{}, NewError(ErrorTypeLocationNotFound, fmt.Sprintf("unknown location %q", place), nil)
	}

	return p, nil
}

// Aggregate groups records by resolved coordinate. Names are appended in input
// order, duplicates included. Records that do not resolve are skipped and
// listed in Groups.Unresolved; Aggregate never fails.
func Aggregate(resolver Resolver, records []Record) *Groups {
	groups := &Groups{
		Clusters: make(map[string]*Cluster),
	}

	for _, record := range records {
		point, ok := resolver.Resolve(record.Location)
		if !ok {
			groups.Unresolved = append(groups.Unresolved, record)

			continue
		}

		key := point.Key()

		cluster, found := groups.Clusters[key]
		if !found {
			cluster = &Cluster{
				Key:   key,
				Point: point,
				Names: []string{},
				Cell:  cellFor(point, CellResolution),
			}
			groups.Clusters[key] = cluster
			groups.Keys = append(groups.Keys, key)
		}

		cluster.Names = append(cluster.Names, record.Name)
	}

	return groups
}

func cellFor(point spatial.Point, res int) h3.Cell {
	cell, err := h3.LatLngToCell(h3.NewLatLng(point.Lat, point.Lng), res)
	if err != nil {
		log.Printf("⚠️  no h3 cell for %s at res %d: %v", point.Key(), res, err)

		return 0
	}

	return cell
}

// List returns the clusters in first-seen order.
func (g *Groups) List() []*Cluster {
	clusters := make([]*Cluster, 0, len(g.Keys))
	for _, key := range g.Keys {
		clusters = append(clusters, g.Clusters[key])
	}

	return clusters
}

// Len returns the number of clusters.
func (g *Groups) Len() int {
	return len(g.Keys)
}

// Region is the set of clusters that fall in one H3 cell.
type Region struct {
	Cell     h3.Cell
	Clusters []*Cluster
	Invitees int
}

// Regions rolls clusters up into H3 cells at the given resolution. Regions
// are ordered by invitee count, largest first, then by cell.
func (g *Groups) Regions(res int) ([]*Region, error) {
	byCell := make(map[h3.Cell]*Region)

	var regions []*Region

	for _, cluster := range g.List() {
		cell, err := h3.LatLngToCell(h3.NewLatLng(cluster.Point.Lat, cluster.Point.Lng), res)
		if err != nil {
			return nil, fmt.Errorf("converting %s to h3 cell at res %d: %w", cluster.Key, res, err)
		}

		region, ok := byCell[cell]
		if !ok {
			region = &Region{Cell: cell}
			byCell[cell] = region
			regions = append(regions, region)
		}

		region.Clusters = append(region.Clusters, cluster)
		region.Invitees += len(cluster.Names)
	}

	sort.SliceStable(regions, func(i, j int) bool {
		if regions[i].Invitees != regions[j].Invitees {
			return regions[i].Invitees > regions[j].Invitees
		}

		return regions[i].Cell < regions[j].Cell
	})

	return regions, nil
}
