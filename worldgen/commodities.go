package worldgen

import "prospector/internal/limits"

// BasePrice, MinPrice, and MaxPrice are the fixed, per-commodity constants
// spec.md §3 describes as "base price p0[c] fixed constants" and the
// per-commodity [min,max] clamp range. Indexed by the limits.Iron..Exotics
// commodity constants.
var (
	BasePrice = [limits.NumCommodities]float64{
		limits.Iron:         50,
		limits.WaterIce:     20,
		limits.Pge:          800,
		limits.RareIsotopes: 2500,
		limits.Volatiles:    120,
		limits.Exotics:      5000,
	}
	MinPrice = [limits.NumCommodities]float64{
		limits.Iron:         10,
		limits.WaterIce:     5,
		limits.Pge:          200,
		limits.RareIsotopes: 500,
		limits.Volatiles:    30,
		limits.Exotics:      1000,
	}
	MaxPrice = [limits.NumCommodities]float64{
		limits.Iron:         200,
		limits.WaterIce:     80,
		limits.Pge:          3000,
		limits.RareIsotopes: 9000,
		limits.Volatiles:    400,
		limits.Exotics:      18000,
	}
)
