package core

// StepMetrics is the fixed thirteen-scalar record emitted by every step
// (spec.md §4.8).
type StepMetrics struct {
	Credits            float64
	NetProfit          float64
	ProfitPerTick      float64
	Survival           float64
	OverheatTicks      float64
	PirateEncounters   float64
	ValueLostToPirates float64
	FuelUsed           float64
	HullDamage         float64
	ToolWear           float64
	ScanCount          float64
	MiningTicks        float64
	CargoUtilAvg       float64
}

func (e *Episode) computeMetrics(destroyed, stranded bool) StepMetrics {
	c := &e.counters
	s := &e.ship

	netProfit := s.Credits - c.TotalSpend
	survival := 1.0
	if destroyed || stranded {
		survival = 0
	}
	profitPerTick := netProfit / maxf(1, e.ticksElapsed)

	cargoUtilAvg := 0.0
	if c.CargoUtilCount > 0 {
		cargoUtilAvg = clamp01(c.CargoUtilSum / c.CargoUtilCount)
	}

	return StepMetrics{
		Credits:            s.Credits,
		NetProfit:          netProfit,
		ProfitPerTick:      profitPerTick,
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
