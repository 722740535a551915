package engine

// NodeKind tags what a node represents in the generated city. The set is
// closed; passes over the scene switch on it exhaustively.
type NodeKind int

const (
	KindOther NodeKind = iota
	KindGround
	KindRoad
	KindSidewalkStrip
	KindLaneMarking
	KindBuilding
	KindVehicle
	KindLampPost
	KindIsland
	KindSign
)

var kindNames = [...]string{
	KindOther:         "Other",
	KindGround:        "Ground",
	KindRoad:          "Road",
	KindSidewalkStrip: "SidewalkStrip",
	KindLaneMarking:   "LaneMarking",
	KindBuilding:      "Building",
	KindVehicle:       "Vehicle",
	KindLampPost:      "LampPost",
	KindIsland:        "Island",
	KindSign:          "Sign",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}
