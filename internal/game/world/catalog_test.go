package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestValidate_Catalog(t *testing.T) {
	require.NoError(t, Validate())
}

func TestCatalog_Counts(t *testing.T) {
	assert.Equal(t, 19, RoomCount())
	assert.Equal(t, 17, ObjectCount())
	assert.Len(t, Rooms(), RoomCount())
	assert.Len(t, Objects(), ObjectCount())
}

func TestLookupRoom(t *testing.T) {
	r, ok := LookupRoom(Kitchen)
	require.True(t, ok)
	assert.Equal(t, "IN THE KITCHEN.", r.Description)

	_, ok = LookupRoom(NoRoom)
	assert.False(t, ok)
	_, ok = LookupRoom(Guarded)
	assert.False(t, ok)
}

func TestMustRoom_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { MustRoom(99) })
}

func TestLookupObject(t *testing.T) {
	o, ok := LookupObject(Ruby)
	require.True(t, ok)
	assert.Equal(t, "RUB", o.Tag)
	assert.False(t, o.Start.Exists())

	_, ok = LookupObject(0)
	assert.False(t, ok)
	_, ok = LookupObject(ObjectID(ObjectCount() + 1))
	assert.False(t, ok)
}

func TestObjectByTag_ExactTagsOnly(t *testing.T) {
	o, ok := ObjectByTag("SAL")
	require.True(t, ok)
	assert.Equal(t, Salt, o.ID)

	for _, tag := range []string{"SHA", "FOR", "XYZ"} {
		_, ok = ObjectByTag(tag)
		assert.False(t, ok, "tag %q", tag)
	}

	o, ok = ObjectByTag(Canonical("FOR"))
	require.True(t, ok)
	assert.Equal(t, Bottle, o.ID)
}

func TestDestination_UnknownDirection(t *testing.T) {
	for _, r := range Rooms() {
		assert.Equal(t, NoRoom, Destination(r.ID, Direction("sideways")), "room %d", r.ID)
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "SAL", Canonical("SHA"))
	assert.Equal(t, "BOT", Canonical("FOR"))
	assert.Equal(t, "DIA", Canonical("DIA"))
}

func TestDestination_Board(t *testing.T) {
	assert.Equal(t, BoatInterior, Destination(SouthBank, Board))
	assert.Equal(t, BoatInterior, Destination(NorthBank, Board))
	assert.Equal(t, NoRoom, Destination(LivingRoom, Board))
	assert.Equal(t, NoRoom, Destination(BoatInterior, Board))
}

func TestDestination_GuardedExit(t *testing.T) {
	assert.Equal(t, Guarded, Destination(CastleGate, North))
}

func TestStartingPositions(t *testing.T) {
	fixed := map[ObjectID]RoomID{
		Cabinet: Kitchen,
		Barrel:  Garage,
		Tree:    ForestEdge,
		Boat:    SouthBank,
		Guard:   CastleGate,
		Case:    LargeHall,
	}
	for id, room := range fixed {
		o, ok := LookupObject(id)
		require.True(t, ok)
		assert.True(t, o.Start.IsFixed(), "object %s should be fixed", o.Tag)
		assert.Equal(t, room, o.Start.Room(), "object %s", o.Tag)
	}
	for _, id := range []ObjectID{Salt, Bottle, Sword, Ruby} {
		o, _ := LookupObject(id)
		assert.False(t, o.Start.Exists(), "object %s should start unrevealed", o.Tag)
	}
}

func TestPropertyEveryExitResolves(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		from := RoomID(rapid.IntRange(1, RoomCount()).Draw(t, "room"))
		dir := rapid.SampledFrom(StandardDirections).Draw(t, "dir")
		dest := Destination(from, dir)
		if dest != NoRoom && dest != Guarded && !IsRoom(dest) {
			t.Fatalf("room %d exit %s leads to unknown room %d", from, dir, dest)
		}
	})
}
