package core

import (
	"prospector/internal/limits"
	"prospector/worldgen"
)

func selectEffect(ship *Ship, asteroid int) {
	ship.SelectedAst = asteroid
}

func stabilizeEffect(ship *Ship, asteroid int) {
	if ship.Stabilizers <= 0 {
		return
	}
	ship.Stabilizers--
	ship.StabilizeBuffTicks[asteroid] = stabilizeBuffTicks
}

// refineEffect converts a fraction of onboard cargo directly into credits
// at a reduced per-unit rate relative to selling at station.
func refineEffect(ship *Ship) {
	for c := 0; c < limits.NumCommodities; c++ {
		converted := ship.Cargo[c] * refineRate
		ship.Cargo[c] -= converted
		ship.Credits += converted * refineCreditsPerUnit
	}
	ship.Heat += 4.0
}

func cooldownEffect(ship *Ship) {
	ship.Heat = maxf(0, ship.Heat-cooldownHeatRelief)
}

func toolMaintenanceEffect(ship *Ship, counters *Counters) {
	ship.Tool = clampf(ship.Tool+toolMaintenanceRestore, 0, limits.ToolMax)
}

func hullPatchEffect(ship *Ship, counters *Counters) {
	if ship.RepairKits > 0 {
		ship.RepairKits--
		ship.Hull = clampf(ship.Hull+repairKitHullRestore, 0, limits.HullMax)
		return
	}
	ship.Hull = clampf(ship.Hull+hullPatchRestore, 0, limits.HullMax)
}

func jettisonEffect(ship *Ship, commodity int) {
	ship.Cargo[commodity] = 0
}

func dockEffect(ship *Ship) {
	ship.Alert = maxf(0, ship.Alert-dockAlertRelief)
}

// sellEffect sells bucket (a fraction of on-hand cargo) of commodity c at
// the station's current market price, applying slippage and recording the
// sale against the market's recent_sales/inventory state.
func sellEffect(ship *Ship, m *worldgen.MarketRegime, counters *Counters, c int, bucket float64) {
	q := ship.Cargo[c] * bucket
	if q <= 0 {
		return
	}
	slip := sellSlippage(q, m.StationInventory[c])
	price := m.Price[c] * (1 - slip)

	ship.Cargo[c] -= q
	proceeds := price * q
	ship.Credits += proceeds

	m.StationInventory[c] += q
	m.RecentSales[c] += q
}

func buyFuelEffect(ship *Ship, counters *Counters, size BuySize) {
	amount := buyFuelAmount[size]
	cost := amount * fuelPricePerUnit
	if ship.Credits < cost {
		amount = ship.Credits / fuelPricePerUnit
		cost = ship.Credits
	}
	ship.Fuel = clampf(ship.Fuel+amount, 0, limits.FuelMax)
	ship.Credits -= cost
	counters.TotalSpend += cost
}

func buyConsumableEffect(ship *Ship, counters *Counters, price float64, cap int, count *int) {
	if *count >= cap || ship.Credits < price {
		return
	}
	ship.Credits -= price
	counters.TotalSpend += price
	*count++
}

func overhaulEffect(ship *Ship, counters *Counters) {
	if ship.Credits < overhaulPrice {
		return
	}
	ship.Credits -= overhaulPrice
	counters.TotalSpend += overhaulPrice
	ship.Hull = overhaulHullRestore
	ship.Tool = overhaulToolRestore
}
