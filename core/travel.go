package core

import "prospector/worldgen"

// travelEffect moves the ship across neighbor slot k, consuming the edge's
// fuel cost and returning the edge's travel time as dt plus the edge's true
// threat level for the passive hazard/pirate step that follows (spec.md
// §4.5: "travel also applies per-tick edge hazards ... as part of the
// primary effect").
func travelEffect(w *worldgen.World, ship *Ship, k int) (dt int, edgeThreatTrue float64) {
	slot := w.Neighbors[ship.Node][k]
	ship.Node = slot.Neighbor
	ship.Fuel -= slot.FuelCost
	return slot.TravelTime, slot.ThreatTrue
}

// emergencyBurnEffect force-returns the ship directly to the station at a
// heavy fuel and heat cost, bypassing the normal edge graph.
func emergencyBurnEffect(ship *Ship) {
	ship.Node = 0
	ship.Fuel -= emergencyBurnFuelCost
	ship.Heat += emergencyBurnHeatGain
	ship.EscapeBuffTicks = escapeBuffTicks
}
