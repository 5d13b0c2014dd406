package components

import (
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ColliderData lists the kinds an entity reacts to and what it currently overlaps.
type ColliderData struct {
	Kind     tags.Kind
	Watches  []tags.Kind
	Touching map[donburi.Entity]tags.Kind
}

var Collider = donburi.NewComponentType[ColliderData]()

// ContactEvent reports that Self started or stopped overlapping Other.
type ContactEvent struct {
	Self      donburi.Entity
	SelfKind  tags.Kind
	Other     donburi.Entity
	OtherKind tags.Kind
}

var (
	ContactBegin = events.NewEventType[ContactEvent]()
	ContactEnd   = events.NewEventType[ContactEvent]()
)
