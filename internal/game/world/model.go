// Package world provides the fixed game world: rooms, exits, directions,
// objects, and object locations.
package world

import "fmt"

// RoomID identifies a room in the catalog. Valid rooms are numbered from 1.
type RoomID uint8

// Reserved room identifiers.
const (
	// NoRoom marks a missing exit.
	NoRoom RoomID = 0
	// Guarded marks an exit that is blocked while the castle guard is present.
	// It lies above every real room ID.
	Guarded RoomID = 128
)

// ObjectID identifies an object in the catalog. Valid objects are numbered from 1.
type ObjectID int

// Direction represents a compass direction, a vertical movement, or boarding
// the boat.
type Direction string

// Movement directions.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
	// Board enters the boat from either river bank.
	Board Direction = "board"
)

// StandardDirections lists the six exit directions in render order.
var StandardDirections = []Direction{
	North, South, East, West, Down, Up,
}

// IsStandard reports whether d is one of the six exit directions.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// Room is an immutable location in the world.
type Room struct {
	// ID uniquely identifies the room.
	ID RoomID
	// Description is the text shown after "YOU ARE".
	Description string

	North RoomID
	South RoomID
	East  RoomID
	West  RoomID
	Up    RoomID
	Down  RoomID
}

// Exit returns the destination in the given direction, or NoRoom.
//
// Postcondition: Board and unknown directions always yield NoRoom.
func (r *Room) Exit(dir Direction) RoomID {
	switch dir {
	case North:
		return r.North
	case South:
		return r.South
	case East:
		return r.East
	case West:
		return r.West
	case Up:
		return r.Up
	case Down:
		return r.Down
	default:
		return NoRoom
	}
}

// Exits returns the directions with a non-zero exit, in render order
// (north, south, east, west, down, up).
func (r *Room) Exits() []Direction {
	var dirs []Direction
	for _, d := range StandardDirections {
		if r.Exit(d) != NoRoom {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// LocationKind discriminates the variants of Location.
type LocationKind uint8

// Location variants.
const (
	// Unrevealed objects are not (or no longer) part of the world.
	Unrevealed LocationKind = iota
	// InRoom objects lie on the floor of a room and can be picked up.
	InRoom
	// Carried objects are in the player's inventory.
	Carried
	// Fixed objects are visible in a room but can never be picked up.
	Fixed
)

// String returns the variant name.
func (k LocationKind) String() string {
	switch k {
	case Unrevealed:
		return "unrevealed"
	case InRoom:
		return "in_room"
	case Carried:
		return "carried"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("LocationKind(%d)", uint8(k))
	}
}

// Location is where an object currently is. The zero value is Unrevealed.
type Location struct {
	kind LocationKind
	room RoomID
}

// NowhereLocation returns the Unrevealed location.
func NowhereLocation() Location { return Location{} }

// CarriedLocation returns the inventory location.
func CarriedLocation() Location { return Location{kind: Carried} }

// FloorOf returns an InRoom location for room id.
//
// Precondition: id is a real room.
func FloorOf(id RoomID) Location { return Location{kind: InRoom, room: id} }

// FixedIn returns a Fixed location for room id.
//
// Precondition: id is a real room.
func FixedIn(id RoomID) Location { return Location{kind: Fixed, room: id} }

// Kind returns the location variant.
func (l Location) Kind() LocationKind { return l.kind }

// Room returns the room for InRoom and Fixed locations, NoRoom otherwise.
func (l Location) Room() RoomID {
	if l.kind == InRoom || l.kind == Fixed {
		return l.room
	}
	return NoRoom
}

// In reports whether the object is visible in room id, either on the floor
// or fixed in place.
func (l Location) In(id RoomID) bool {
	return (l.kind == InRoom || l.kind == Fixed) && l.room == id
}

// IsCarried reports whether the object is in the inventory.
func (l Location) IsCarried() bool { return l.kind == Carried }

// IsFixed reports whether the object is immobile.
func (l Location) IsFixed() bool { return l.kind == Fixed }

// Exists reports whether the object is anywhere in the world.
func (l Location) Exists() bool { return l.kind != Unrevealed }

// String renders the location for logs and test failures.
func (l Location) String() string {
	switch l.kind {
	case InRoom, Fixed:
		return fmt.Sprintf("%s(%d)", l.kind, l.room)
	default:
		return l.kind.String()
	}
}

// Object is the immutable template of an interactive object.
type Object struct {
	// ID uniquely identifies the object.
	ID ObjectID
	// Name is the display text, e.g. "AN OLD DIARY".
	Name string
	// Tag is the 3-character parser key, e.g. "DIA".
	Tag string
	// Start is the location at the beginning of a game.
	Start Location
}
