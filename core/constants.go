package core

import "prospector/internal/limits"

// Action time costs (dt), in simulation ticks. Travel has a state-dependent
// dt (the edge's travel time) computed at the call site; every other
// action's cost, mining included, is this fixed table. Spec.md §4.5 mandates fixed costs for this group but
// leaves the exact tick counts to the implementation; these values are an
// implementation choice recorded in DESIGN.md, not a frozen contract field.
const (
	dtHold              = 1
	dtEmergencyBurn      = 1
	dtScanWide          = 2
	dtScanFocused       = 2
	dtScanDeep          = 4
	dtListen            = 1
	dtSelect            = 1
	dtMine              = 1
	dtStabilize         = 2
	dtRefine            = 3
	dtCooldown          = 2
	dtToolMaintenance   = 3
	dtHullPatch         = 4
	dtJettison          = 1
	dtDock              = 1
	dtSell              = 1
	dtBuyFuel           = 1
	dtBuyConsumable     = 1
	dtOverhaul          = 6
	dtCashOut           = 1
)

// Mining mode multipliers applied to yield, heat gain, tool wear, alert
// gain, and extraction noise sigma, indexed by MineMode.
type miningProfile struct {
	yield, heat, wear, alert, noise float64
}

var miningProfiles = [3]miningProfile{
	MineConservative: {yield: 0.6, heat: 0.5, wear: 0.5, alert: 0.5, noise: 0.8},
	MineStandard:     {yield: 1.0, heat: 1.0, wear: 1.0, alert: 1.0, noise: 1.0},
	MineAggressive:   {yield: 1.6, heat: 1.8, wear: 1.6, alert: 1.6, noise: 1.3},
}

// Scan mode parameters: blend weight toward the noisy sample, confidence
// gain, and a multiplier on the sampling noise sigma (spec.md §4.5).
type scanProfile struct {
	blend, confGain, noiseMult float64
}

var (
	scanWideProfile    = scanProfile{blend: 0.22, confGain: 0.10, noiseMult: 1.35}
	scanFocusedProfile = scanProfile{blend: 0.42, confGain: 0.20, noiseMult: 1.0}
	scanDeepProfile    = scanProfile{blend: 0.80, confGain: 0.45, noiseMult: 0.55}
)

// Fuel purchase sizes, in fuel units, and their credit price per unit.
const (
	buyFuelSmallUnits  = 150.0
	buyFuelMediumUnits = 400.0
	buyFuelLargeUnits  = 900.0
	fuelPricePerUnit   = 0.6
)

var buyFuelAmount = [3]float64{buyFuelSmallUnits, buyFuelMediumUnits, buyFuelLargeUnits}

const (
	repairKitPrice  = 120.0
	stabilizerPrice = 90.0
	decoyPrice      = 70.0

	repairKitCap  = 5
	stabilizerCap = 5
	decoyCap      = 5

	repairKitHullRestore = 35.0
	hullPatchRestore     = 15.0
	toolMaintenanceRestore = 40.0

	overhaulPrice        = 600.0
	overhaulHullRestore  = limits.HullMax
	overhaulToolRestore  = limits.ToolMax

	dockAlertRelief = 25.0

	cooldownHeatRelief = 30.0

	refineRate   = 0.6 // fraction of cargo mass converted per call
	refineCreditsPerUnit = 3.0

	emergencyBurnFuelCost = 120.0
	emergencyBurnHeatGain = 25.0

	stabilizeBuffTicks = 6
	escapeBuffTicks     = 4
)
