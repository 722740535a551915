package observer

import "neoncity/internal/city"

// Version is the observer protocol version.
const Version = "0.1"

// Client -> Server. First message on the WS connection; may be re-sent to
// change the filter.
type SubscribeMsg struct {
	Type            string   `json:"type"`
	ProtocolVersion string   `json:"protocol_version"`
	Every           int      `json:"every,omitempty"` // send every Nth frame
	Lanes           []string `json:"lanes,omitempty"` // empty means all lanes
}

// Server -> Client. Sent once the subscription is live.
type WelcomeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	SessionID       string `json:"session_id"`
}

// Server -> Client. One per delivered frame.
type FrameMsg struct {
	Type            string              `json:"type"`
	ProtocolVersion string              `json:"protocol_version"`
	Frame           uint64              `json:"frame"`
	Elapsed         float64             `json:"elapsed"`
	Vehicles        []city.VehicleState `json:"vehicles"`
	Sign            SignPose            `json:"sign"`
}

type SignPose struct {
	Y   float32 `json:"y"`
	Yaw float32 `json:"yaw"`
}

// HTTP response for GET /v1/layout.
type LayoutResponse struct {
	ProtocolVersion string      `json:"protocol_version"`
	Layout          city.Layout `json:"layout"`
}

func normalizeSubscribe(sub *SubscribeMsg) {
	if sub.Every <= 0 {
		sub.Every = 1
	}
	if sub.Every > 600 {
		sub.Every = 600
	}
}

// frameFor filters a snapshot down to what a subscription asked for.
func frameFor(snap city.FrameSnapshot, sub SubscribeMsg) FrameMsg {
	msg := FrameMsg{
		Type:            "FRAME",
		ProtocolVersion: Version,
		Frame:           snap.Frame,
		Elapsed:         snap.Elapsed,
		Vehicles:        snap.Vehicles,
		Sign:            SignPose{Y: snap.SignY, Yaw: snap.SignYaw},
	}
	if len(sub.Lanes) == 0 {
		return msg
	}
	keep := make(map[string]bool, len(sub.Lanes))
	for _, l := range sub.Lanes {
		keep[l] = true
	}
	msg.Vehicles = make([]city.VehicleState, 0, len(snap.Vehicles))
	for _, v := range snap.Vehicles {
		if keep[v.Lane] {
			msg.Vehicles = append(msg.Vehicles, v)
		}
	}
	return msg
}
