package core

import "github.com/1siamBot/snake-engine/engine/maplib"

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload any
}

type EventType uint16

const (
	EvtGameStart      EventType = iota // Payload: session ID
	EvtScoreChanged                    // Payload: int score
	EvtFoodEaten                       // Payload: maplib.Cell
	EvtLevelUp                         // Payload: int level
	EvtObstaclesAdded                  // Payload: int count
	EvtPortal                          // Payload: PortalJump
	EvtDirectionChanged                // Payload: maplib.Direction
	EvtGameOver                        // Payload: GameOverInfo
)

// GameOverInfo is the payload of EvtGameOver
type GameOverInfo struct {
	SessionID  string
	FinalScore int
	Cause      Cause
	Length     int
}

// PortalJump is the payload of EvtPortal
type PortalJump struct {
	Portal, Exit maplib.Cell
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events. Handlers may emit; those events are
// delivered in the same call.
func (eb *EventBus) Dispatch() {
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}
