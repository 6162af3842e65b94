package remote

import "github.com/automoto/zoomlens/zoom"

// Message types accepted from clients.
const (
	TypeMousePosition = "mouse_position"
	TypeClearMouse    = "clear_mouse"
	TypeToggleZoom    = "toggle_zoom"
	TypeToggleFollow  = "toggle_follow"
	TypeSetProfile    = "set_profile"
	TypePing          = "ping"
)

// Message types sent to clients.
const (
	TypePong        = "pong"
	TypeStateUpdate = "state_update"
)

// Message is the JSON envelope for client commands. Unused fields are
// left at zero for the command types that do not carry them.
type Message struct {
	Type    string  `json:"type"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Profile string  `json:"profile,omitempty"`
}

// StateUpdate is broadcast to every connected client whenever the zoom
// state changes.
type StateUpdate struct {
	Type string `json:"type"`
	zoom.Status
}

// Handler receives remote commands. Each method maps 1:1 onto a zoom
// controller call at the host; mouse positions received here override
// the live cursor until cleared.
type Handler interface {
	ToggleZoom()
	ToggleFollow()
	SetProfile(name string)
	SetMousePosition(x, y float64)
	ClearMousePosition()
}
