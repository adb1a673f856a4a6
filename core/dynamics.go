package core

import (
	"math"

	"prospector/internal/limits"
)

// applyPrimary executes the decoded action's primary effect against the
// episode state, returning its time cost and whether its precondition was
// satisfied. Travel additionally reports the edge's true threat level,
// blended into the post-action hazard/pirate roll (spec.md §4.5 step 5).
// When ok is false the caller runs the hold body instead (step 3) without
// any rollback: every effect function here is checked for its precondition
// BEFORE it mutates state, so a failed action has changed nothing except
// clearing MiningActive.
func (e *Episode) applyPrimary(decoded DecodedAction) (dt int, edgeThreatTrue float64, ok bool) {
	s := &e.ship
	w := &e.world

	// mining_active (obs[18]) describes the current step's action, not
	// episode history, so it is cleared here and only re-set by a
	// successful mine below.
	s.MiningActive = false

	switch decoded.Kind {
	case KindTravel:
		slot := w.Neighbors[s.Node][decoded.Slot]
		if !slot.Valid {
			return 0, 0, false
		}
		dt, edgeThreatTrue = travelEffect(w, s, decoded.Slot)
		e.events.push(EventTravel)
		return dt, edgeThreatTrue, true

	case KindHold:
		return dtHold, 0, true

	case KindEmergencyBurn:
		if s.Node == 0 {
			return 0, 0, false
		}
		emergencyBurnEffect(s)
		return dtEmergencyBurn, 0, true

	case KindScanWide:
		scanNode(w, &e.rng, s.Node, scanWideProfile)
		e.counters.ScanCount += dtScanWide
		e.events.push(EventScan)
		return dtScanWide, 0, true

	case KindScanFocused:
		if !e.hasValidSelection() {
			return 0, 0, false
		}
		scanAsteroid(&w.Asteroids[s.Node][s.SelectedAst], &e.rng, scanFocusedProfile)
		e.counters.ScanCount += dtScanFocused
		e.events.push(EventScan)
		return dtScanFocused, 0, true

	case KindScanDeep:
		if !e.hasValidSelection() {
			return 0, 0, false
		}
		scanAsteroid(&w.Asteroids[s.Node][s.SelectedAst], &e.rng, scanDeepProfile)
		e.counters.ScanCount += dtScanDeep
		e.events.push(EventScan)
		return dtScanDeep, 0, true

	case KindListen:
		return dtListen, 0, true

	case KindSelect:
		if !w.Asteroids[s.Node][decoded.Slot].Valid {
			return 0, 0, false
		}
		selectEffect(s, decoded.Slot)
		return dtSelect, 0, true

	case KindMine:
		if !e.hasValidSelection() {
			return 0, 0, false
		}
		slot := &w.Asteroids[s.Node][s.SelectedAst]
		if slot.Depletion >= 1 {
			return 0, 0, false
		}
		s.MiningActive = true
		extracted := mineAsteroid(s, slot, &e.rng, decoded.MineMode)
		e.counters.MiningTicks += dtMine
		if extracted > 0 {
			e.events.push(EventMined)
		}
		fractureRoll(w, s, s.Node, s.SelectedAst, &e.rng, decoded.MineMode)
		if slot.Depletion >= 1 {
			e.events.push(EventFracture)
		}
		return dtMine, 0, true

	case KindStabilize:
		if !e.hasValidSelection() {
			return 0, 0, false
		}
		stabilizeEffect(s, s.SelectedAst)
		return dtStabilize, 0, true

	case KindRefine:
		refineEffect(s)
		return dtRefine, 0, true

	case KindCooldown:
		cooldownEffect(s)
		return dtCooldown, 0, true

	case KindToolMaintenance:
		toolMaintenanceEffect(s, &e.counters)
		return dtToolMaintenance, 0, true

	case KindHullPatch:
		hullPatchEffect(s, &e.counters)
		return dtHullPatch, 0, true

	case KindJettison:
		jettisonEffect(s, decoded.Slot)
		return dtJettison, 0, true

	case KindDock:
		if s.Node != 0 {
			return 0, 0, false
		}
		dockEffect(s)
		e.events.push(EventDock)
		return dtDock, 0, true

	case KindSell:
		if s.Node != 0 {
			return 0, 0, false
		}
		sellEffect(s, &w.Market, &e.counters, decoded.Slot, decoded.SellBucket)
		e.events.push(EventSell)
		return dtSell, 0, true

	case KindBuyFuel:
		if s.Node != 0 {
			return 0, 0, false
		}
		buyFuelEffect(s, &e.counters, decoded.BuySize)
		e.events.push(EventBuy)
		return dtBuyFuel, 0, true

	case KindBuyRepairKit:
		if s.Node != 0 {
			return 0, 0, false
		}
		buyConsumableEffect(s, &e.counters, repairKitPrice, repairKitCap, &s.RepairKits)
		e.events.push(EventBuy)
		return dtBuyConsumable, 0, true

	case KindBuyStabilizer:
		if s.Node != 0 {
			return 0, 0, false
		}
		buyConsumableEffect(s, &e.counters, stabilizerPrice, stabilizerCap, &s.Stabilizers)
		e.events.push(EventBuy)
		return dtBuyConsumable, 0, true

	case KindBuyDecoy:
		if s.Node != 0 {
			return 0, 0, false
		}
		buyConsumableEffect(s, &e.counters, decoyPrice, decoyCap, &s.Decoys)
		e.events.push(EventBuy)
		return dtBuyConsumable, 0, true

	case KindOverhaul:
		if s.Node != 0 {
			return 0, 0, false
		}
		overhaulEffect(s, &e.counters)
		return dtOverhaul, 0, true

	case KindCashOut:
		e.terminated = true
		e.events.push(EventCashOut)
		return dtCashOut, 0, true
	}

	return 0, 0, false
}

func (e *Episode) hasValidSelection() bool {
	s := &e.ship
	if s.SelectedAst < 0 || s.SelectedAst >= limits.MaxAsteroidsPerCluster {
		return false
	}
	return e.world.Asteroids[s.Node][s.SelectedAst].Valid
}

// applyPassive runs the dt-scaled global dynamics of spec.md §4.5 step 4:
// time, heat dissipation, buff countdowns, overheat damage.
func (e *Episode) applyPassive(dt int) {
	s := &e.ship
	c := &e.counters
	fdt := float64(dt)

	e.timeRemaining -= fdt
	e.ticksElapsed += fdt

	s.Heat = maxf(0, s.Heat-2.5*fdt)

	if s.EscapeBuffTicks > 0 {
		s.EscapeBuffTicks -= dt
		if s.EscapeBuffTicks < 0 {
			s.EscapeBuffTicks = 0
		}
	}
	for a := 0; a < limits.MaxAsteroidsPerCluster; a++ {
		if s.StabilizeBuffTicks[a] > 0 {
			s.StabilizeBuffTicks[a] -= dt
			if s.StabilizeBuffTicks[a] < 0 {
				s.StabilizeBuffTicks[a] = 0
			}
		}
	}

	if s.Heat > limits.HeatMax {
		damage := 1.25 * (s.Heat - limits.HeatMax)
		s.Hull -= damage
		s.Heat = limits.HeatMax
		c.OverheatTicks += fdt
		e.events.push(EventOverheat)
	}
}

// applyNodeHazards runs §4.5 step 5: node hazard damage and the pirate
// encounter roll, only when the ship is away from the station.
func (e *Episode) applyNodeHazards(dt int, edgeThreatTrue float64, wasTravel bool) {
	s := &e.ship
	w := &e.world
	c := &e.counters

	if s.Node == 0 {
		return
	}
	fdt := float64(dt)

	nodeHazard := w.NodeHazard[s.Node]
	if wasTravel {
		nodeHazard = clamp01(nodeHazard + 0.5*edgeThreatTrue)
	}

	jitter := e.rng.Uniform(-0.15, 0.15)
	exposure := clamp01(nodeHazard + jitter)
	s.Hull -= exposure * 3.0 * fdt
	s.Heat += exposure * 4.0 * fdt
	s.Alert += exposure * 2.0 * fdt

	escapeBuff := 0.0
	if s.EscapeBuffTicks > 0 {
		escapeBuff = 1.0
	}
	logit := 2.2*w.NodePirate[s.Node] + 1.3*(s.Alert/limits.AlertMax) +
		0.9*math.Log1p(e.estimatedCargoValue()/1000.0) - 2.5*escapeBuff - 2.0
	p := logistic(logit)
	pHit := 1 - math.Pow(1-p, fdt)

	if e.rng.Uniform(0, 1) >= pHit {
		return
	}

	c.PirateEncounters++
	e.events.push(EventPirateHit)

	loss := e.rng.Uniform(0.08, 0.20)
	if s.Decoys > 0 && e.rng.Uniform(0, 1) < 0.60 {
		s.Decoys--
		loss *= 0.30
	}

	before := e.estimatedCargoValue()
	for i := range s.Cargo {
		s.Cargo[i] *= 1 - loss
	}
	after := e.estimatedCargoValue()
	c.ValueLostToPirates += maxf(0, before-after)

	s.Hull -= e.rng.Uniform(1, 4)
	s.Alert = clampf(s.Alert+5, 0, limits.AlertMax)
}

// clampAndAccumulate runs §4.5 step 7: bound every ship scalar, renormalize
// cargo overflow, and accumulate the cargo-utilization running average.
func (e *Episode) clampAndAccumulate(dt int) {
	s := &e.ship
	c := &e.counters

	s.Fuel = clampf(s.Fuel, 0, limits.FuelMax)
	s.Hull = clampf(s.Hull, 0, limits.HullMax)
	s.Heat = clampf(s.Heat, 0, limits.HeatMax)
	s.Tool = clampf(s.Tool, 0, limits.ToolMax)
	s.Alert = clampf(s.Alert, 0, limits.AlertMax)
	s.Credits = maxf(0, s.Credits)

	total := s.CargoTotal()
	if total > limits.CargoMax && total > 0 {
		scale := limits.CargoMax / total
		for i := range s.Cargo {
			s.Cargo[i] *= scale
		}
		total = limits.CargoMax
	}
	for i := range s.Cargo {
		if s.Cargo[i] < 0 {
			s.Cargo[i] = 0
		}
	}

	util := clamp01(total/limits.CargoMax) * float64(dt)
	c.CargoUtilSum += util
	c.CargoUtilCount += float64(dt)
}

// detectTerminal runs §4.5 step 8.
func (e *Episode) detectTerminal(resolvedAction int16) (destroyed, stranded bool) {
	s := &e.ship

	destroyed = s.Hull <= 0
	stranded = s.Fuel <= 0 && s.Node != 0

	if destroyed {
		e.events.push(EventDestroyed)
	}
	if stranded {
		e.events.push(EventStranded)
	}

	if destroyed || stranded {
		e.terminated = true
	}
	if resolvedAction == actCashOut {
		e.terminated = true
	}
	if !e.terminated && e.timeRemaining <= 0 {
		e.truncated = true
	}
	return destroyed, stranded
}
