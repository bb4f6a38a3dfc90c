package world

import (
	"errors"
	"fmt"
	"strings"
)

// Named rooms referenced by puzzle logic.
const (
	LivingRoom   RoomID = 1
	Kitchen      RoomID = 2
	Library      RoomID = 3
	FrontYard    RoomID = 4
	Garage       RoomID = 5
	OpenField    RoomID = 6
	ForestEdge   RoomID = 7
	TreeBranch   RoomID = 8
	SouthBank    RoomID = 12
	BoatInterior RoomID = 13
	NorthBank    RoomID = 14
	CastleGate   RoomID = 16
	NarrowHall   RoomID = 17
	LargeHall    RoomID = 18
	TreeTop      RoomID = 19

	// StartRoom is where every new game begins.
	StartRoom = LivingRoom
)

// Named objects referenced by puzzle logic.
const (
	Diary      ObjectID = 1
	Box        ObjectID = 2
	Cabinet    ObjectID = 3
	Salt       ObjectID = 4
	Dictionary ObjectID = 5
	Barrel     ObjectID = 6
	Bottle     ObjectID = 7
	Ladder     ObjectID = 8
	Shovel     ObjectID = 9
	Tree       ObjectID = 10
	Sword      ObjectID = 11
	Boat       ObjectID = 12
	Fan        ObjectID = 13
	Guard      ObjectID = 14
	Case       ObjectID = 15
	Ruby       ObjectID = 16
	Gloves     ObjectID = 17
)

// MaxCarry is the number of objects the player can hold at once.
const MaxCarry = 5

// TagLength is the number of characters the parser keeps from each word.
const TagLength = 3

// rooms is indexed by RoomID; index 0 is unused.
var rooms = [...]Room{
	{},
	// house
	{ID: 1, Description: "IN YOUR LIVING ROOM.", North: 4, South: 3, East: 2},
	{ID: 2, Description: "IN THE KITCHEN.", West: 1},
	{ID: 3, Description: "IN THE LIBRARY.", North: 1},
	{ID: 4, Description: "IN THE FRONT YARD.", South: 1, West: 5},
	{ID: 5, Description: "IN THE GARAGE.", East: 4},
	// the other world
	{ID: 6, Description: "IN AN OPEN FIELD.", North: 9, South: 7},
	{ID: 7, Description: "AT THE EDGE OF A FOREST.", North: 6},
	{ID: 8, Description: "ON A BRANCH OF A TREE.", Down: 7},
	{ID: 9, Description: "ON A LONG, WINDING ROAD.", South: 6, East: 10},
	{ID: 10, Description: "ON A LONG, WINDING ROAD.", North: 11, West: 9},
	{ID: 11, Description: "ON A LONG, WINDING ROAD.", South: 10, West: 12},
	{ID: 12, Description: "ON THE SOUTH BANK OF A RIVER.", East: 11},
	{ID: 13, Description: "INSIDE THE WOODEN BOAT."},
	{ID: 14, Description: "ON THE NORTH BANK OF A RIVER.", North: 15},
	{ID: 15, Description: "ON A WELL-TRAVELED ROAD.", North: 16, South: 14},
	{ID: 16, Description: "IN FRONT OF A LARGE CASTLE.", North: Guarded, South: 15},
	{ID: 17, Description: "IN A NARROW HALL.", South: 16, Up: 18},
	{ID: 18, Description: "IN A LARGE HALL.", Down: 17},
	{ID: 19, Description: "ON THE TOP OF A TREE.", Down: 8},
}

// objects is indexed by ObjectID; index 0 is unused.
var objects = [...]Object{
	{},
	{ID: Diary, Name: "AN OLD DIARY", Tag: "DIA", Start: FloorOf(LivingRoom)},
	{ID: Box, Name: "A SMALL BOX", Tag: "BOX", Start: FloorOf(LivingRoom)},
	{ID: Cabinet, Name: "A CABINET", Tag: "CAB", Start: FixedIn(Kitchen)},
	{ID: Salt, Name: "A SALT SHAKER", Tag: "SAL"},
	{ID: Dictionary, Name: "A DICTIONARY", Tag: "DIC", Start: FloorOf(Library)},
	{ID: Barrel, Name: "A WOODEN BARREL", Tag: "BAR", Start: FixedIn(Garage)},
	{ID: Bottle, Name: "A SMALL BOTTLE", Tag: "BOT"},
	{ID: Ladder, Name: "A LADDER", Tag: "LAD", Start: FloorOf(FrontYard)},
	{ID: Shovel, Name: "A SHOVEL", Tag: "SHO", Start: FloorOf(Garage)},
	{ID: Tree, Name: "A TREE", Tag: "TRE", Start: FixedIn(ForestEdge)},
	{ID: Sword, Name: "A GOLDEN SWORD", Tag: "SWO"},
	{ID: Boat, Name: "A WOODEN BOAT", Tag: "BOA", Start: FixedIn(SouthBank)},
	{ID: Fan, Name: "A MAGIC FAN", Tag: "FAN", Start: FloorOf(TreeBranch)},
	{ID: Guard, Name: "A NASTY-LOOKING GUARD", Tag: "GUA", Start: FixedIn(CastleGate)},
	{ID: Case, Name: "A GLASS CASE", Tag: "CAS", Start: FixedIn(LargeHall)},
	{ID: Ruby, Name: "A GLOWING RUBY", Tag: "RUB"},
	{ID: Gloves, Name: "A PAIR OF RUBBER GLOVES", Tag: "GLO", Start: FloorOf(TreeTop)},
}

// Synonyms maps alternate words onto canonical object tags.
var Synonyms = map[string]string{
	"SHA": "SAL", // shaker
	"FOR": "BOT", // formula
}

// Canonical returns the canonical tag for tag, applying Synonyms.
//
// Postcondition: tags without a synonym are returned unchanged.
func Canonical(tag string) string {
	if c, ok := Synonyms[tag]; ok {
		return c
	}
	return tag
}

// RoomCount returns the number of real rooms.
func RoomCount() int { return len(rooms) - 1 }

// ObjectCount returns the number of objects.
func ObjectCount() int { return len(objects) - 1 }

// IsRoom reports whether id names a real room.
func IsRoom(id RoomID) bool {
	return id > NoRoom && int(id) < len(rooms)
}

// LookupRoom returns the room with the given ID.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func LookupRoom(id RoomID) (*Room, bool) {
	if !IsRoom(id) {
		return nil, false
	}
	return &rooms[id], true
}

// MustRoom returns the room with the given ID and panics if it does not exist.
//
// Precondition: IsRoom(id).
func MustRoom(id RoomID) *Room {
	r, ok := LookupRoom(id)
	if !ok {
		panic(fmt.Sprintf("world: unknown room %d", id))
	}
	return r
}

// Rooms returns every real room in ID order.
func Rooms() []*Room {
	out := make([]*Room, 0, RoomCount())
	for i := 1; i < len(rooms); i++ {
		out = append(out, &rooms[i])
	}
	return out
}

// LookupObject returns the object with the given ID.
//
// Postcondition: Returns (object, true) if found, or (nil, false) otherwise.
func LookupObject(id ObjectID) (*Object, bool) {
	if id <= 0 || int(id) >= len(objects) {
		return nil, false
	}
	return &objects[id], true
}

// Objects returns every object in ID order.
func Objects() []*Object {
	out := make([]*Object, 0, ObjectCount())
	for i := 1; i < len(objects); i++ {
		out = append(out, &objects[i])
	}
	return out
}

// ObjectByTag resolves an exact canonical tag to an object. Synonyms are not
// applied; see Canonical.
//
// Postcondition: Returns (object, true) if found, or (nil, false) otherwise.
func ObjectByTag(tag string) (*Object, bool) {
	for i := 1; i < len(objects); i++ {
		if objects[i].Tag == tag {
			return &objects[i], true
		}
	}
	return nil, false
}

// Destination resolves the target of moving from room in dir without
// consulting any game state. Boarding yields the boat interior only from
// either river bank.
//
// Precondition: IsRoom(from).
// Postcondition: Returns a real room, Guarded, or NoRoom.
func Destination(from RoomID, dir Direction) RoomID {
	if dir == Board {
		if from == SouthBank || from == NorthBank {
			return BoatInterior
		}
		return NoRoom
	}
	if !dir.IsStandard() {
		return NoRoom
	}
	r, ok := LookupRoom(from)
	if !ok {
		return NoRoom
	}
	return r.Exit(dir)
}

// Validate checks the catalog invariants.
//
// Postcondition: Returns nil if valid, or an error describing every violation.
func Validate() error {
	var errs []string
	if !IsRoom(StartRoom) {
		errs = append(errs, fmt.Sprintf("start room %d does not exist", StartRoom))
	}
	if int(Guarded) < len(rooms) {
		errs = append(errs, fmt.Sprintf("guarded sentinel %d collides with a room ID", Guarded))
	}
	for i, r := range Rooms() {
		if r.ID != RoomID(i+1) {
			errs = append(errs, fmt.Sprintf("room at index %d has ID %d", i+1, r.ID))
		}
		if r.Description == "" {
			errs = append(errs, fmt.Sprintf("room %d: description must not be empty", r.ID))
		}
		for _, d := range StandardDirections {
			dest := r.Exit(d)
			if dest == NoRoom || dest == Guarded {
				continue
			}
			if !IsRoom(dest) {
				errs = append(errs, fmt.Sprintf("room %d: exit %s targets unknown room %d", r.ID, d, dest))
			}
		}
	}
	seen := make(map[string]ObjectID, len(objects))
	for i, o := range Objects() {
		if o.ID != ObjectID(i+1) {
			errs = append(errs, fmt.Sprintf("object at index %d has ID %d", i+1, o.ID))
		}
		if len(o.Tag) != TagLength || strings.ToUpper(o.Tag) != o.Tag {
			errs = append(errs, fmt.Sprintf("object %d: tag %q must be %d upper-case characters", o.ID, o.Tag, TagLength))
		}
		if prev, dup := seen[o.Tag]; dup {
			errs = append(errs, fmt.Sprintf("object %d: tag %q already used by object %d", o.ID, o.Tag, prev))
		}
		seen[o.Tag] = o.ID
		switch o.Start.Kind() {
		case InRoom, Fixed:
			if !IsRoom(o.Start.Room()) {
				errs = append(errs, fmt.Sprintf("object %d: starts in unknown room %d", o.ID, o.Start.Room()))
			}
		case Carried:
			errs = append(errs, fmt.Sprintf("object %d: must not start in the inventory", o.ID))
		}
	}
	for alias, canonical := range Synonyms {
		if _, ok := seen[canonical]; !ok {
			errs = append(errs, fmt.Sprintf("synonym %q targets unknown tag %q", alias, canonical))
		}
		if _, clash := seen[alias]; clash {
			errs = append(errs, fmt.Sprintf("synonym %q shadows an object tag", alias))
		}
	}
	if len(errs) > 0 {
		return errors.New("world validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}
