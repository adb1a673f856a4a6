package core

import "prospector/internal/limits"

// Action id ranges, frozen by spec.md §4.4.
const (
	actTravelLo = 0
	actTravelHi = 5

	actHold          = 6
	actEmergencyBurn = 7

	actScanWide     = 8
	actScanFocused  = 9
	actScanDeep     = 10
	actListenPirate = 11

	actSelectLo = 12
	actSelectHi = 27

	actMineLo = 28
	actMineHi = 30

	actStabilize       = 31
	actRefine          = 32
	actCooldown        = 33
	actToolMaintenance = 34
	actHullPatch       = 35

	actJettisonLo = 36
	actJettisonHi = 41

	actDock = 42

	actSellLo = 43
	actSellHi = 60

	actBuyFuelLo = 61
	actBuyFuelHi = 63

	actBuyRepairKit = 64
	actBuyStabilizer = 65
	actBuyDecoy      = 66

	actOverhaul = 67
	actCashOut  = 68
)

// NumActions is the frozen action-space size (spec.md §1: action count = 69).
const NumActions = limits.NumActions

// ActionKind groups actions by the dynamics they trigger (spec.md §9:
// "use a tagged sum / enum with one variant per action group").
type ActionKind uint8

const (
	KindHold ActionKind = iota
	KindTravel
	KindEmergencyBurn
	KindScanWide
	KindScanFocused
	KindScanDeep
	KindListen
	KindSelect
	KindMine
	KindStabilize
	KindRefine
	KindCooldown
	KindToolMaintenance
	KindHullPatch
	KindJettison
	KindDock
	KindSell
	KindBuyFuel
	KindBuyRepairKit
	KindBuyStabilizer
	KindBuyDecoy
	KindOverhaul
	KindCashOut
)

// MineMode indexes the three mining aggressiveness levels.
type MineMode int

const (
	MineConservative MineMode = iota
	MineStandard
	MineAggressive
)

// BuySize indexes the three fuel-purchase sizes.
type BuySize int

const (
	BuySmall BuySize = iota
	BuyMedium
	BuyLarge
)

var sellBuckets = [3]float64{0.25, 0.5, 1.0}

// DecodedAction is the allocation-free result of decoding an action id: a
// tag plus the handful of integer/float parameters the dynamics for that
// tag need.
type DecodedAction struct {
	Kind       ActionKind
	Slot       int // neighbor slot, asteroid index, or commodity index
	SellBucket float64
	MineMode   MineMode
	BuySize    BuySize
}

// normalizeActionID maps any out-of-range action id to 6 (hold), per
// spec.md §8: "Action id >= 69 is treated exactly like action 6 plus
// invalid penalty." In-range ids map to themselves; this is the "resolved
// action id" the parity harness compares exactly.
func normalizeActionID(action int) int16 {
	if action < 0 || action >= NumActions {
		return actHold
	}
	return int16(action)
}

// decodeAction maps a normalized (in-range) action id to its DecodedAction.
// Every integer in [0, NumActions) decodes to exactly one action.
func decodeAction(action int16) DecodedAction {
	a := int(action)
	switch {
	case a >= actTravelLo && a <= actTravelHi:
		return DecodedAction{Kind: KindTravel, Slot: a - actTravelLo}
	case a == actHold:
		return DecodedAction{Kind: KindHold}
	case a == actEmergencyBurn:
		return DecodedAction{Kind: KindEmergencyBurn}
	case a == actScanWide:
		return DecodedAction{Kind: KindScanWide}
	case a == actScanFocused:
		return DecodedAction{Kind: KindScanFocused}
	case a == actScanDeep:
		return DecodedAction{Kind: KindScanDeep}
	case a == actListenPirate:
		return DecodedAction{Kind: KindListen}
	case a >= actSelectLo && a <= actSelectHi:
		return DecodedAction{Kind: KindSelect, Slot: a - actSelectLo}
	case a >= actMineLo && a <= actMineHi:
		return DecodedAction{Kind: KindMine, MineMode: MineMode(a - actMineLo)}
	case a == actStabilize:
		return DecodedAction{Kind: KindStabilize}
	case a == actRefine:
		return DecodedAction{Kind: KindRefine}
	case a == actCooldown:
		return DecodedAction{Kind: KindCooldown}
	case a == actToolMaintenance:
		return DecodedAction{Kind: KindToolMaintenance}
	case a == actHullPatch:
		return DecodedAction{Kind: KindHullPatch}
	case a >= actJettisonLo && a <= actJettisonHi:
		return DecodedAction{Kind: KindJettison, Slot: a - actJettisonLo}
	case a == actDock:
		return DecodedAction{Kind: KindDock}
	case a >= actSellLo && a <= actSellHi:
		idx := a - actSellLo
		return DecodedAction{Kind: KindSell, Slot: idx / 3, SellBucket: sellBuckets[idx%3]}
	case a >= actBuyFuelLo && a <= actBuyFuelHi:
		return DecodedAction{Kind: KindBuyFuel, BuySize: BuySize(a - actBuyFuelLo)}
	case a == actBuyRepairKit:
		return DecodedAction{Kind: KindBuyRepairKit}
	case a == actBuyStabilizer:
		return DecodedAction{Kind: KindBuyStabilizer}
	case a == actBuyDecoy:
		return DecodedAction{Kind: KindBuyDecoy}
	case a == actOverhaul:
		return DecodedAction{Kind: KindOverhaul}
	case a == actCashOut:
		return DecodedAction{Kind: KindCashOut}
	default:
		return DecodedAction{Kind: KindHold}
	}
}
