// Package state holds the mutable runtime state of one game.
package state

import (
	"github.com/cory-johannsen/magicruby/internal/game/world"
)

// Flags are the puzzle flags of a game.
type Flags struct {
	// Salted is set once the salt shaker has been emptied into the barrel.
	Salted bool
	// Formulated is set once the bottle has been emptied into the barrel.
	Formulated bool
	// Gloved is set once the rubber gloves are worn.
	Gloved bool
	// Won is set when the player picks up the ruby.
	Won bool
}

// State is the single mutable aggregate of a game: player position, object
// locations, and puzzle flags. It is owned by one goroutine at a time.
type State struct {
	// Here is the player's current room.
	Here world.RoomID
	// Flags holds the puzzle flags.
	Flags Flags

	// positions is indexed by world.ObjectID; index 0 is unused.
	positions []world.Location
}

// New creates the state of a fresh game: the player in the start room and
// every object at its catalog starting location.
//
// Postcondition: Here == world.StartRoom and all flags are false.
func New() *State {
	objs := world.Objects()
	s := &State{
		Here:      world.StartRoom,
		positions: make([]world.Location, len(objs)+1),
	}
	for _, o := range objs {
		s.positions[o.ID] = o.Start
	}
	return s
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := *s
	c.positions = make([]world.Location, len(s.positions))
	copy(c.positions, s.positions)
	return &c
}

// Location returns the current location of object id.
//
// Postcondition: unknown IDs report the Unrevealed location.
func (s *State) Location(id world.ObjectID) world.Location {
	if id <= 0 || int(id) >= len(s.positions) {
		return world.NowhereLocation()
	}
	return s.positions[id]
}

// Place moves object id to loc.
//
// Precondition: id is a catalog object.
func (s *State) Place(id world.ObjectID, loc world.Location) {
	if id <= 0 || int(id) >= len(s.positions) {
		return
	}
	s.positions[id] = loc
}

// Lookup resolves a tag to an object and its current location.
//
// Postcondition: Returns (id, location, true) if the tag names an object,
// or (0, Unrevealed, false) otherwise.
func (s *State) Lookup(tag string) (world.ObjectID, world.Location, bool) {
	o, ok := world.ObjectByTag(tag)
	if !ok {
		return 0, world.NowhereLocation(), false
	}
	return o.ID, s.positions[o.ID], true
}

// IsHere reports whether the object named by tag is accessible: carried, or
// visible in the current room.
func (s *State) IsHere(tag string) bool {
	_, loc, ok := s.Lookup(tag)
	if !ok {
		return false
	}
	return loc.IsCarried() || loc.In(s.Here)
}

// Has reports whether object id is carried.
func (s *State) Has(id world.ObjectID) bool {
	return s.Location(id).IsCarried()
}

// CarriedCount returns the number of objects in the inventory.
func (s *State) CarriedCount() int {
	n := 0
	for _, loc := range s.positions {
		if loc.IsCarried() {
			n++
		}
	}
	return n
}

// Carried returns the carried objects in catalog order.
func (s *State) Carried() []world.ObjectID {
	var ids []world.ObjectID
	for i, loc := range s.positions {
		if loc.IsCarried() {
			ids = append(ids, world.ObjectID(i))
		}
	}
	return ids
}

// ObjectsIn returns the objects visible in room, in catalog order.
func (s *State) ObjectsIn(room world.RoomID) []world.ObjectID {
	var ids []world.ObjectID
	for i, loc := range s.positions {
		if loc.In(room) {
			ids = append(ids, world.ObjectID(i))
		}
	}
	return ids
}
