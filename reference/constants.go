package reference

import "prospector/internal/limits"

const (
	fuelMax  = limits.FuelMax
	hullMax  = limits.HullMax
	heatMax  = limits.HeatMax
	toolMax  = limits.ToolMax
	alertMax = limits.AlertMax
	cargoMax = limits.CargoMax
)

const (
	emergencyBurnFuelCost = 120.0
	emergencyBurnHeatGain = 25.0
	escapeBuffTicks       = 4
	stabilizeBuffTicks    = 6

	refineRate           = 0.6
	refineCreditsPerUnit = 3.0

	cooldownHeatRelief     = 30.0
	toolMaintenanceRestore = 40.0
	repairKitHullRestore   = 35.0
	hullPatchRestore       = 15.0
	dockAlertRelief        = 25.0

	repairKitPrice  = 120.0
	stabilizerPrice = 90.0
	decoyPrice      = 70.0

	repairKitCap  = 5
	stabilizerCap = 5
	decoyCap      = 5

	overhaulPrice = 600.0

	buyFuelSmall     = 150.0
	buyFuelMedium    = 400.0
	buyFuelLarge     = 900.0
	fuelPricePerUnit = 0.6
)

var buyFuelAmounts = [3]float64{buyFuelSmall, buyFuelMedium, buyFuelLarge}

type scanMode struct {
	blend, confGain, noiseMult float64
}

var (
	scanWide    = scanMode{blend: 0.22, confGain: 0.10, noiseMult: 1.35}
	scanFocused = scanMode{blend: 0.42, confGain: 0.20, noiseMult: 1.0}
	scanDeep    = scanMode{blend: 0.80, confGain: 0.45, noiseMult: 0.55}
)

type mineMode struct {
	yield, heat, wear, alert, noise float64
}

var mineModes = [3]mineMode{
	{yield: 0.6, heat: 0.5, wear: 0.5, alert: 0.5, noise: 0.8},
	{yield: 1.0, heat: 1.0, wear: 1.0, alert: 1.0, noise: 1.0},
	{yield: 1.6, heat: 1.8, wear: 1.6, alert: 1.6, noise: 1.3},
}
