package core

import "prospector/internal/limits"

// EventCode tags a notable occurrence for the recent-events ring
// (spec.md §6 render-state "recent events list").
type EventCode uint8

const (
	EventNone EventCode = iota
	EventTravel
	EventDock
	EventSell
	EventBuy
	EventMined
	EventFracture
	EventPirateHit
	EventScan
	EventOverheat
	EventDestroyed
	EventStranded
	EventCashOut
)

var eventNames = map[EventCode]string{
	EventNone:      "",
	EventTravel:    "travel",
	EventDock:      "dock",
	EventSell:      "sell",
	EventBuy:       "buy",
	EventMined:     "mined",
	EventFracture:  "fracture",
	EventPirateHit: "pirate_hit",
	EventScan:      "scan",
	EventOverheat:  "overheat",
	EventDestroyed: "destroyed",
	EventStranded:  "stranded",
	EventCashOut:   "cash_out",
}

const eventRingSize = 16

// eventRing is a fixed-capacity, allocation-free circular buffer of recent
// event codes. Rendering to strings happens only in RenderState, never in
// the hot step path.
type eventRing struct {
	codes [eventRingSize]EventCode
	next  int
	count int
}

func (r *eventRing) push(c EventCode) {
	r.codes[r.next] = c
	r.next = (r.next + 1) % eventRingSize
	if r.count < eventRingSize {
		r.count++
	}
}

// ordered returns the ring's contents oldest-first.
func (r *eventRing) ordered() []string {
	out := make([]string, 0, r.count)
	start := (r.next - r.count + eventRingSize) % eventRingSize
	for i := 0; i < r.count; i++ {
		out = append(out, eventNames[r.codes[(start+i)%eventRingSize]])
	}
	return out
}

// NeighborView is the render-state projection of one neighbor slot.
type NeighborView struct {
	Valid      bool    `json:"valid"`
	Neighbor   int     `json:"neighbor"`
	NodeType   int     `json:"node_type"`
	TravelTime int     `json:"travel_time"`
	FuelCost   float64 `json:"fuel_cost"`
	ThreatEst  float64 `json:"threat_est"`
}

// AsteroidView is the render-state projection of one asteroid slot.
type AsteroidView struct {
	Valid        bool                            `json:"valid"`
	CompEst      [limits.NumCommodities]float64  `json:"comp_est"`
	StabilityEst float64                         `json:"stability_est"`
	Depletion    float64                         `json:"depletion"`
	ScanConf     float64                         `json:"scan_conf"`
	Selected     bool                            `json:"selected"`
}

// RenderState is the JSON-serializable external projection of the episode
// state (spec.md §6). It is derivable without RNG draws, so two identical
// episode states always produce identical RenderStates.
type RenderState struct {
	Fuel    float64 `json:"fuel"`
	Hull    float64 `json:"hull"`
	Heat    float64 `json:"heat"`
	Tool    float64 `json:"tool"`
	Alert   float64 `json:"alert"`
	Credits float64 `json:"credits"`

	Cargo [limits.NumCommodities]float64 `json:"cargo"`

	RepairKits  int `json:"repair_kits"`
	Stabilizers int `json:"stabilizers"`
	Decoys      int `json:"decoys"`

	Node         int  `json:"node"`
	NodeType     int  `json:"node_type"`
	SelectedAst  int  `json:"selected_asteroid"`
	MiningActive bool `json:"mining_active"`

	Neighbors [limits.MaxNeighbors]NeighborView         `json:"neighbors"`
	Asteroids [limits.MaxAsteroidsPerCluster]AsteroidView `json:"asteroids"`

	Prices           [limits.NumCommodities]float64 `json:"prices"`
	StationInventory [limits.NumCommodities]float64 `json:"station_inventory"`

	TimeRemaining float64  `json:"time_remaining"`
	Terminated    bool     `json:"terminated"`
	Truncated     bool     `json:"truncated"`
	RecentEvents  []string `json:"recent_events"`
}

// RenderState projects the current episode state into a replay-friendly
// view. It never draws from the Rng.
func (e *Episode) RenderState() RenderState {
	s := &e.ship
	w := &e.world

	rs := RenderState{
		Fuel:    s.Fuel,
		Hull:    s.Hull,
		Heat:    s.Heat,
		Tool:    s.Tool,
		Alert:   s.Alert,
		Credits: s.Credits,

		Cargo: s.Cargo,

		RepairKits:  s.RepairKits,
		Stabilizers: s.Stabilizers,
		Decoys:      s.Decoys,

		Node:         s.Node,
		NodeType:     w.NodeType[s.Node],
		SelectedAst:  s.SelectedAst,
		MiningActive: s.MiningActive,

		Prices:           w.Market.Price,
		StationInventory: w.Market.StationInventory,

		TimeRemaining: e.timeRemaining,
		Terminated:    e.terminated,
		Truncated:     e.truncated,
		RecentEvents:  e.events.ordered(),
	}

	for k := 0; k < limits.MaxNeighbors; k++ {
		slot := w.Neighbors[s.Node][k]
		rs.Neighbors[k] = NeighborView{
			Valid:      slot.Valid,
			Neighbor:   slot.Neighbor,
			NodeType:   w.NodeType[slot.Neighbor],
			TravelTime: slot.TravelTime,
			FuelCost:   slot.FuelCost,
			ThreatEst:  slot.ThreatEst,
		}
	}

	for a := 0; a < limits.MaxAsteroidsPerCluster; a++ {
		slot := &w.Asteroids[s.Node][a]
		rs.Asteroids[a] = AsteroidView{
			Valid:        slot.Valid,
			CompEst:      slot.CompEst,
			StabilityEst: slot.StabilityEst,
			Depletion:    slot.Depletion,
			ScanConf:     slot.ScanConf,
			Selected:     s.SelectedAst == a,
		}
	}

	return rs
}
