package core

import (
	"math"

	"prospector/internal/limits"
	"prospector/rng"
	"prospector/worldgen"
)

// tickMarket advances the market regime by dt ticks at elapsed time t
// (spec.md §4.5 step 6). prev_price mirrors the pre-tick price; price is
// the mean-reverting sinusoid clamped to the commodity's bounds, then
// station inventory and recent sales decay.
func tickMarket(m *worldgen.MarketRegime, r *rng.Rng, t float64, dt int) {
	fdt := float64(dt)
	sqrtDt := math.Sqrt(fdt)

	for c := 0; c < limits.NumCommodities; c++ {
		m.PrevPrice[c] = m.Price[c]

		mean := worldgen.BasePrice[c] +
			m.Amplitude[c]*math.Sin(2*math.Pi*t/m.Period[c]+m.Phase[c]) -
			0.04*m.StationInventory[c] -
			0.05*m.RecentSales[c]
		noise := r.Normal(0, 0.03*worldgen.BasePrice[c]*sqrtDt)

		m.Price[c] = clampf(mean+noise, worldgen.MinPrice[c], worldgen.MaxPrice[c])

		m.RecentSales[c] *= math.Exp(-fdt / 14.0)
		m.StationInventory[c] *= math.Pow(0.998, fdt)
	}
}

// sellSlippage is the fraction of price lost to market impact when selling
// quantity q into a station inventory of inv (spec.md §4.5 Selling).
func sellSlippage(q, inv float64) float64 {
	r := q / maxf(1, inv+q)
	return clampf(0.25*r+0.2*math.Sqrt(r), 0, 0.70)
}
