package reference

const (
	actHold          int16 = 6
	actEmergencyBurn int16 = 7
	actScanWide      int16 = 8
	actScanFocused   int16 = 9
	actScanDeep      int16 = 10
	actListen        int16 = 11
	actDock          int16 = 42
	actCashOut       int16 = 68
)

const numActions = 69

// normalizeAction maps any id outside [0,69) to hold, matching the fast
// core's resolved-action-id convention.
func normalizeAction(a int) int16 {
	if a < 0 || a >= numActions {
		return actHold
	}
	return int16(a)
}

// applyPrimary dispatches a resolved action id to its effect, returning the
// tick cost, the edge's true threat level when the action was travel, and
// whether the action was valid. This is a plain switch over ranges rather
// than a decoded struct — the reference favors clarity over the fast
// core's enum dispatch.
func (e *Episode) applyPrimary(action int16) (dt int, edgeThreatTrue float64, wasTravel bool, ok bool) {
	s := &e.ship
	w := &e.world

	// mining_active describes only the current step's action, so clear it
	// here and let the mining case below re-set it on success.
	s.MiningActive = false

	switch {
	case action >= 0 && action <= 5:
		k := int(action)
		slot := w.Neighbors[s.Node][k]
		if !slot.Valid {
			return 0, 0, false, false
		}
		s.Node = slot.Neighbor
		s.Fuel -= slot.FuelCost
		return slot.TravelTime, slot.ThreatTrue, true, true

	case action == actHold:
		return 1, 0, false, true

	case action == actEmergencyBurn:
		if s.Node == 0 {
			return 0, 0, false, false
		}
		s.Node = 0
		s.Fuel -= emergencyBurnFuelCost
		s.Heat += emergencyBurnHeatGain
		s.EscapeBuffTicks = escapeBuffTicks
		return 1, 0, false, true

	case action == actScanWide:
		for a := 0; a < len(w.Asteroids[s.Node]); a++ {
			slot := &w.Asteroids[s.Node][a]
			if slot.Valid {
				e.scan(slot, scanWide)
			}
		}
		e.counters.ScanCount += 2
		return 2, 0, false, true

	case action == actScanFocused:
		if !e.hasSelection() {
			return 0, 0, false, false
		}
		e.scan(&w.Asteroids[s.Node][s.SelectedAst], scanFocused)
		e.counters.ScanCount += 2
		return 2, 0, false, true

	case action == actScanDeep:
		if !e.hasSelection() {
			return 0, 0, false, false
		}
		e.scan(&w.Asteroids[s.Node][s.SelectedAst], scanDeep)
		e.counters.ScanCount += 4
		return 4, 0, false, true

	case action == actListen:
		return 1, 0, false, true

	case action >= 12 && action <= 27:
		idx := int(action) - 12
		if !w.Asteroids[s.Node][idx].Valid {
			return 0, 0, false, false
		}
		s.SelectedAst = idx
		return 1, 0, false, true

	case action >= 28 && action <= 30:
		if !e.hasSelection() {
			return 0, 0, false, false
		}
		slot := &w.Asteroids[s.Node][s.SelectedAst]
		if slot.Depletion >= 1 {
			return 0, 0, false, false
		}
		s.MiningActive = true
		e.mine(slot, int(action)-28)
		e.counters.MiningTicks++
		return 1, 0, false, true

	case action == 31:
		if !e.hasSelection() {
			return 0, 0, false, false
		}
		if s.Stabilizers > 0 {
			s.Stabilizers--
			s.StabilizeBuffTicks[s.SelectedAst] = stabilizeBuffTicks
		}
		return 2, 0, false, true

	case action == 32:
		for c := 0; c < len(s.Cargo); c++ {
			converted := s.Cargo[c] * refineRate
			s.Cargo[c] -= converted
			s.Credits += converted * refineCreditsPerUnit
		}
		s.Heat += 4
		return 3, 0, false, true

	case action == 33:
		s.Heat = maxf(0, s.Heat-cooldownHeatRelief)
		return 2, 0, false, true

	case action == 34:
		s.Tool = clampf(s.Tool+toolMaintenanceRestore, 0, toolMax)
		return 3, 0, false, true

	case action == 35:
		if s.RepairKits > 0 {
			s.RepairKits--
			s.Hull = clampf(s.Hull+repairKitHullRestore, 0, hullMax)
		} else {
			s.Hull = clampf(s.Hull+hullPatchRestore, 0, hullMax)
		}
		return 4, 0, false, true

	case action >= 36 && action <= 41:
		s.Cargo[int(action)-36] = 0
		return 1, 0, false, true

	case action == actDock:
		if s.Node != 0 {
			return 0, 0, false, false
		}
		s.Alert = maxf(0, s.Alert-dockAlertRelief)
		return 1, 0, false, true

	case action >= 43 && action <= 60:
		if s.Node != 0 {
			return 0, 0, false, false
		}
		idx := int(action) - 43
		commodity := idx / 3
		bucket := [3]float64{0.25, 0.5, 1.0}[idx%3]
		e.sell(commodity, bucket)
		return 1, 0, false, true

	case action >= 61 && action <= 63:
		if s.Node != 0 {
			return 0, 0, false, false
		}
		e.buyFuel(int(action) - 61)
		return 1, 0, false, true

	case action == 64:
		if s.Node != 0 {
			return 0, 0, false, false
		}
		e.buyConsumable(repairKitPrice, repairKitCap, &s.RepairKits)
		return 1, 0, false, true

	case action == 65:
		if s.Node != 0 {
			return 0, 0, false, false
		}
		e.buyConsumable(stabilizerPrice, stabilizerCap, &s.Stabilizers)
		return 1, 0, false, true

	case action == 66:
		if s.Node != 0 {
			return 0, 0, false, false
		}
		e.buyConsumable(decoyPrice, decoyCap, &s.Decoys)
		return 1, 0, false, true

	case action == 67:
		if s.Node != 0 {
			return 0, 0, false, false
		}
		if s.Credits >= overhaulPrice {
			s.Credits -= overhaulPrice
			e.counters.TotalSpend += overhaulPrice
			s.Hull = hullMax
			s.Tool = toolMax
		}
		return 6, 0, false, true

	case action == actCashOut:
		e.terminated = true
		return 1, 0, false, true
	}

	return 0, 0, false, false
}

func (e *Episode) hasSelection() bool {
	s := &e.ship
	if s.SelectedAst < 0 || s.SelectedAst >= len(e.world.Asteroids[s.Node]) {
		return false
	}
	return e.world.Asteroids[s.Node][s.SelectedAst].Valid
}
