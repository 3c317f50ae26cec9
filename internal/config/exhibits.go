// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package config

import "github.com/tomtom215/rfidrelay/internal/exhibit"

// DefaultExhibits returns the museum's built-in catalog. Read points are the
// zone names configured in the tracking provider.
func DefaultExhibits() []exhibit.Exhibit {
	return []exhibit.Exhibit{
		{ID: "ex_tundra", Title: "Tundra", ReadPoint: "Tundra"},
		{ID: "ex_skeletons", Title: "Skeletons", ReadPoint: "Skeletons"},
		{ID: "ex_boreal", Title: "Boreal forest", ReadPoint: "Boreal Forest"},
		{ID: "ex_alpine", Title: "Alpine", ReadPoint: "Alpine/Montane"},
		{ID: "ex_skulls", Title: "Dinosaur Skulls", ReadPoint: "Skulls"},
		{ID: "ex_casts", Title: "Casts", ReadPoint: "Casts"},
		{ID: "ex_east_entry", Title: "Habitat Hall", ReadPoint: "East Entrance"},
		{ID: "ex_west_entry", Title: "Habitat Hall", ReadPoint: "West Entrance"},
		{ID: "ex_desert", Title: "Desert", ReadPoint: "Desert"},
		{ID: "ex_grassland", Title: "Grassland", ReadPoint: "Grassland"},
		{ID: "ex_rainforest", Title: "Rainforest", ReadPoint: "Tropical Rain Forest"},
		{ID: "ex_deciduous", Title: "Deciduous", ReadPoint: "Eastern Deciduous"},
	}
}
