package dash

// Event is a one-way notification for the presentation layer.
// The simulation never waits on how an event is handled.
type Event interface {
	dashEvent()
}

// DustEvent is emitted when the player jumps or lands.
type DustEvent struct {
	X, Y    float64
	Landing bool
}

func (DustEvent) dashEvent() {}

// CoinCollectedEvent carries the award of a collected coin.
type CoinCollectedEvent struct {
	Amount int
	X, Y   float64
}

func (CoinCollectedEvent) dashEvent() {}

// PowerUpCollectedEvent is emitted when the shield is picked up.
type PowerUpCollectedEvent struct {
	Amount int
	X, Y   float64
}

func (PowerUpCollectedEvent) dashEvent() {}

// ShieldAbsorbedEvent is emitted when the shield destroys an obstacle.
type ShieldAbsorbedEvent struct {
	X, Y float64
}

func (ShieldAbsorbedEvent) dashEvent() {}

// ShieldExpiredEvent is emitted when the shield countdown runs out.
type ShieldExpiredEvent struct{}

func (ShieldExpiredEvent) dashEvent() {}

// GameOverEvent is emitted on the tick the session ends.
type GameOverEvent struct {
	Score int
}

func (GameOverEvent) dashEvent() {}

// SummaryEvent carries the final stats after the presentation delay.
type SummaryEvent struct {
	Summary Summary
}

func (SummaryEvent) dashEvent() {}

// eventQueue collects events produced between two drains.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) emit(e Event) {
	q.events = append(q.events, e)
}

// drain returns the queued events and empties the queue.
func (q *eventQueue) drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
