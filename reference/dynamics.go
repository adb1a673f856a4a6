package reference

import (
	"math"

	"prospector/core"
	"prospector/internal/limits"
	"prospector/worldgen"
)

func (e *Episode) scan(slot *worldgen.AsteroidSlot, mode scanMode) {
	sigma := slot.NoiseProfile * (1 - slot.ScanConf + 0.1) * mode.noiseMult

	sample := make([]float64, limits.NumCommodities)
	sum := 0.0
	for c := range sample {
		v := slot.TrueComp[c] + e.rng.Normal(0, sigma)
		if v < 1e-8 {
			v = 1e-8
		}
		sample[c] = v
		sum += v
	}
	for c := range sample {
		sample[c] /= sum
	}

	blended := 0.0
	for c := range sample {
		slot.CompEst[c] = mode.blend*sample[c] + (1-mode.blend)*slot.CompEst[c]
		blended += slot.CompEst[c]
	}
	if blended > 0 {
		for c := range slot.CompEst {
			slot.CompEst[c] /= blended
		}
	}

	noisyStability := clamp01(slot.StabilityTrue + e.rng.Normal(0, sigma))
	slot.StabilityEst = mode.blend*noisyStability + (1-mode.blend)*slot.StabilityEst
	slot.ScanConf = clamp01(slot.ScanConf + mode.confGain)
}

func effTool(tool float64) float64 { return 0.4 + 0.6*(tool/toolMax) }

func effHeat(heatFrac float64) float64 {
	if heatFrac <= 0.7 {
		return 1.0
	}
	return 1.0 - (heatFrac-0.7)/0.3*0.9
}

func (e *Episode) mine(slot *worldgen.AsteroidSlot, mode int) {
	s := &e.ship
	prof := mineModes[mode]

	heatFrac := s.Heat / heatMax
	base := slot.Richness * (1 - slot.Depletion) * effTool(s.Tool) * effHeat(heatFrac) * prof.yield
	noise := math.Exp(e.rng.Normal(0, 0.15*prof.noise))

	extracted := make([]float64, limits.NumCommodities)
	total := 0.0
	for c := range extracted {
		v := base * noise * slot.TrueComp[c]
		if v < 0 {
			v = 0
		}
		extracted[c] = v
		total += v
	}

	room := maxf(0, cargoMax-s.CargoTotal())
	if total > room && total > 0 {
		scale := room / total
		for c := range extracted {
			extracted[c] *= scale
		}
		total = room
	}
	for c := range extracted {
		s.Cargo[c] += extracted[c]
	}
	slot.Depletion = clamp01(slot.Depletion + 0.01*total)

	s.Heat += 6.0 * prof.heat
	s.Tool -= 2.0 * prof.wear
	s.Alert += 0.8 * prof.alert

	aggression := prof.yield - 1.0
	heatExcess := maxf(0, s.Heat/heatMax-0.7)
	toolFrac := s.Tool / toolMax
	stabilizeBuff := 0.0
	if s.StabilizeBuffTicks[s.SelectedAst] > 0 {
		stabilizeBuff = 1.0
	}
	logit := 1.4*aggression + 1.6*(1-slot.StabilityTrue) + 2.0*heatExcess + 0.8*(1-toolFrac) - 2.2*stabilizeBuff - 2.5
	if e.rng.Uniform(0, 1) < logistic(logit) {
		severity := clampf(e.rng.Uniform(0.3, 1.0), 0, 1)
		s.Hull -= 12.0 * severity
		slot.Depletion = 1.0
		e.world.NodeHazard[s.Node] = clamp01(e.world.NodeHazard[s.Node] + 0.1)
	}
}

func (e *Episode) sell(commodity int, bucket float64) {
	s := &e.ship
	m := &e.world.Market

	q := s.Cargo[commodity] * bucket
	if q <= 0 {
		return
	}
	r := q / maxf(1, m.StationInventory[commodity]+q)
	slip := clampf(0.25*r+0.2*math.Sqrt(r), 0, 0.70)
	price := m.Price[commodity] * (1 - slip)

	s.Cargo[commodity] -= q
	s.Credits += price * q
	m.StationInventory[commodity] += q
	m.RecentSales[commodity] += q
}

func (e *Episode) buyFuel(size int) {
	s := &e.ship
	amount := buyFuelAmounts[size]
	cost := amount * fuelPricePerUnit
	if s.Credits < cost {
		amount = s.Credits / fuelPricePerUnit
		cost = s.Credits
	}
	s.Fuel = clampf(s.Fuel+amount, 0, fuelMax)
	s.Credits -= cost
	e.counters.TotalSpend += cost
}

func (e *Episode) buyConsumable(price float64, cap int, count *int) {
	s := &e.ship
	if *count >= cap || s.Credits < price {
		return
	}
	s.Credits -= price
	e.counters.TotalSpend += price
	*count++
}

func (e *Episode) applyPassive(dt int) {
	s := &e.ship
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
	for a := range s.StabilizeBuffTicks {
		if s.StabilizeBuffTicks[a] > 0 {
			s.StabilizeBuffTicks[a] -= dt
			if s.StabilizeBuffTicks[a] < 0 {
				s.StabilizeBuffTicks[a] = 0
			}
		}
	}

	if s.Heat > heatMax {
		s.Hull -= 1.25 * (s.Heat - heatMax)
		s.Heat = heatMax
		e.counters.OverheatTicks += fdt
	}
}

func (e *Episode) applyHazards(dt int, edgeThreatTrue float64, wasTravel bool) {
	s := &e.ship
	w := &e.world
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
	logit := 2.2*w.NodePirate[s.Node] + 1.3*(s.Alert/alertMax) +
		0.9*math.Log1p(e.cargoValue()/1000.0) - 2.5*escapeBuff - 2.0
	p := logistic(logit)
	pHit := 1 - math.Pow(1-p, fdt)
	if e.rng.Uniform(0, 1) >= pHit {
		return
	}

	e.counters.PirateEncounters++
	loss := e.rng.Uniform(0.08, 0.20)
	if s.Decoys > 0 && e.rng.Uniform(0, 1) < 0.60 {
		s.Decoys--
		loss *= 0.30
	}
	before := e.cargoValue()
	for i := range s.Cargo {
		s.Cargo[i] *= 1 - loss
	}
	after := e.cargoValue()
	e.counters.ValueLostToPirates += maxf(0, before-after)

	s.Hull -= e.rng.Uniform(1, 4)
	s.Alert = clampf(s.Alert+5, 0, alertMax)
}

func (e *Episode) tickMarket(dt int) {
	m := &e.world.Market
	fdt := float64(dt)
	sqrtDt := math.Sqrt(fdt)

	for c := 0; c < limits.NumCommodities; c++ {
		m.PrevPrice[c] = m.Price[c]
		mean := worldgen.BasePrice[c] +
			m.Amplitude[c]*math.Sin(2*math.Pi*e.ticksElapsed/m.Period[c]+m.Phase[c]) -
			0.04*m.StationInventory[c] - 0.05*m.RecentSales[c]
		noise := e.rng.Normal(0, 0.03*worldgen.BasePrice[c]*sqrtDt)
		m.Price[c] = clampf(mean+noise, worldgen.MinPrice[c], worldgen.MaxPrice[c])

		m.RecentSales[c] *= math.Exp(-fdt / 14.0)
		m.StationInventory[c] *= math.Pow(0.998, fdt)
	}
}

func (e *Episode) clamp(dt int) {
	s := &e.ship
	s.Fuel = clampf(s.Fuel, 0, fuelMax)
	s.Hull = clampf(s.Hull, 0, hullMax)
	s.Heat = clampf(s.Heat, 0, heatMax)
	s.Tool = clampf(s.Tool, 0, toolMax)
	s.Alert = clampf(s.Alert, 0, alertMax)
	s.Credits = maxf(0, s.Credits)

	total := s.CargoTotal()
	if total > cargoMax && total > 0 {
		scale := cargoMax / total
		for i := range s.Cargo {
			s.Cargo[i] *= scale
		}
		total = cargoMax
	}
	for i := range s.Cargo {
		if s.Cargo[i] < 0 {
			s.Cargo[i] = 0
		}
	}

	util := clamp01(total/cargoMax) * float64(dt)
	e.counters.CargoUtilSum += util
	e.counters.CargoUtilCount += float64(dt)
}

func (e *Episode) reward(preCredits, preFuel, preHull, preTool, preCargoValue, preValueLost float64, dt int, invalid, isScan, destroyed, stranded bool) float64 {
	s := &e.ship

	rSell := (s.Credits - preCredits) / 1000.0
	rExtract := 0.02 * maxf(0, e.cargoValue()-preCargoValue) / 1000.0
	rFuel := -0.10 * maxf(0, preFuel-s.Fuel) / 100.0
	rTime := -0.001 * float64(dt)
	rWear := -0.05 * maxf(0, preTool-s.Tool) / 10.0
	rDamage := -1.00 * maxf(0, preHull-s.Hull) / 10.0

	heatExcess := maxf(0, s.Heat-0.7*heatMax) / heatMax
	rHeat := -0.20 * heatExcess * heatExcess

	rScan := 0.0
	if !invalid && isScan {
		rScan = -0.005
	}
	rInvalid := 0.0
	if invalid {
		rInvalid = -e.cfg.InvalidActionPenalty
	}
	rPirate := -1.00 * (e.counters.ValueLostToPirates - preValueLost) / 1000.0

	rTerminal := 0.0
	done := destroyed || stranded || e.terminated || e.truncated
	switch {
	case destroyed:
		rTerminal = -100
	case stranded:
		rTerminal = -50
	case done:
		// Clean done: cash-out or running out the time budget without
		// being destroyed or stranded.
		rTerminal = 0.002 * s.Credits / 1000.0
	}

	return rSell + rExtract + rFuel + rTime + rWear + rDamage + rHeat + rScan + rInvalid + rPirate + rTerminal
}

func (e *Episode) metrics(destroyed, stranded bool) core.StepMetrics {
	c := &e.counters
	s := &e.ship

	netProfit := s.Credits - c.TotalSpend
	survival := 1.0
	if destroyed || stranded {
		survival = 0
	}
	cargoUtilAvg := 0.0
	if c.CargoUtilCount > 0 {
		cargoUtilAvg = clamp01(c.CargoUtilSum / c.CargoUtilCount)
	}

	return core.StepMetrics{
		Credits:            s.Credits,
		NetProfit:          netProfit,
		ProfitPerTick:      netProfit / maxf(1, e.ticksElapsed),
		Survival:           survival,
		OverheatTicks:      c.OverheatTicks,
		PirateEncounters:   c.PirateEncounters,
		ValueLostToPirates: c.ValueLostToPirates,
		FuelUsed:           maxf(0, c.FuelStart-s.Fuel),
		HullDamage:         maxf(0, c.HullStart-s.Hull),
		ToolWear:           maxf(0, c.ToolStart-s.Tool),
		ScanCount:          c.ScanCount,
		MiningTicks:        c.MiningTicks,
		CargoUtilAvg:       cargoUtilAvg,
	}
}
