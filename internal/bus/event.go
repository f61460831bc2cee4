package bus

import "time"

// Event is a notification published on the bus. Kind is a dotted name
// such as "screen.posts_loaded"; subscribers filter on its prefix.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}
