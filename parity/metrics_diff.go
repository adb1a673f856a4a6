package parity

import "prospector/core"

// diffMetrics compares the thirteen step metrics. credits/net_profit/
// value_lost_to_pirates are cumulative counters and get the looser
// cumulativeAbsTol; everything else uses the standard abs-or-relative
// tolerance (spec.md §4.10).
func diffMetrics(fast, ref core.StepMetrics) []FieldDiff {
	var diffs []FieldDiff

	check := func(name string, a, b float64, cumulative bool) {
		ok := closeEnough(a, b, absTol)
		if cumulative {
			ok = cumulativeClose(a, b)
		}
		if !ok {
			diffs = append(diffs, FieldDiff{name, a, b})
		}
	}

	check("metrics.credits", fast.Credits, ref.Credits, true)
	check("metrics.net_profit", fast.NetProfit, ref.NetProfit, true)
	check("metrics.profit_per_tick", fast.ProfitPerTick, ref.ProfitPerTick, false)
	check("metrics.survival", fast.Survival, ref.Survival, false)
	check("metrics.overheat_ticks", fast.OverheatTicks, ref.OverheatTicks, false)
	check("metrics.pirate_encounters", fast.PirateEncounters, ref.PirateEncounters, false)
	check("metrics.value_lost_to_pirates", fast.ValueLostToPirates, ref.ValueLostToPirates, true)
	check("metrics.fuel_used", fast.FuelUsed, ref.FuelUsed, false)
	check("metrics.hull_damage", fast.HullDamage, ref.HullDamage, false)
	check("metrics.tool_wear", fast.ToolWear, ref.ToolWear, false)
	check("metrics.scan_count", fast.ScanCount, ref.ScanCount, false)
	check("metrics.mining_ticks", fast.MiningTicks, ref.MiningTicks, false)
	check("metrics.cargo_utilization_avg", fast.CargoUtilAvg, ref.CargoUtilAvg, false)

	return diffs
}
