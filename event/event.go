package event

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Event wraps a body published on a Bus. Listeners subscribe by the body's type.
type Event interface {
	// ID return the id of the event.
	ID() string

	// When return the time of the event.
	When() time.Time

	// Body return the body of the event.
	Body() any

	// Type return the body's reflect.Type of the event.
	Type() reflect.Type
}

type event struct {
	id         string
	body       any
	occurredOn time.Time
}

func (e *event) ID() string {
	return e.id
}

func (e *event) When() time.Time {
	return e.occurredOn
}

func (e *event) Body() any {
	return e.body
}

func (e *event) Type() reflect.Type {
	return reflect.TypeOf(e.body)
}

// New wraps body into an Event.
func New(body any) Event {
	return &event{id: uuid.NewString(), body: body, occurredOn: time.Now()}
}

// LineAdded is published after a factory gained a production line.
type LineAdded struct {
	Factory string
	Lines   int
}

// ProductionFinished is published after a factory ran all of its lines once.
type ProductionFinished struct {
	Factory  string
	Produced int
	Stock    int
}

// Listener handles the events it was registered for.
type Listener interface {
	Handle(event Event) error
}
