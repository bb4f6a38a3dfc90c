package engine

import (
	"github.com/cory-johannsen/magicruby/internal/game/command"
	"github.com/cory-johannsen/magicruby/internal/game/state"
	"github.com/cory-johannsen/magicruby/internal/game/world"
)

// pour empties the salt or the formula. In the garage the content goes into
// the barrel; once both have been added the player is transported to the
// open field.
func pour(s *state.State, act command.Action) Result {
	var res Result
	if !s.IsHere(act.Object) {
		res.say(msgNotHere)
		return res
	}
	switch {
	case act.Object == "SAL" && s.Flags.Salted:
		res.say("THE SALT SHAKER IS EMPTY.")
	case act.Object == "SAL" && s.Here == world.Garage:
		s.Flags.Salted = true
		res = pouredIntoBarrel(s)
	case act.Object == "BOT" && s.Flags.Formulated:
		res.say("THE BOTTLE IS EMPTY.")
	case act.Object == "BOT" && s.Here == world.Garage:
		s.Flags.Formulated = true
		res = pouredIntoBarrel(s)
	default:
		res.say("YOU CAN'T POUR THAT!")
	}
	return res
}

// pouredIntoBarrel fires the cut-scene when the second substance goes in.
func pouredIntoBarrel(s *state.State) Result {
	var res Result
	res.say("POURED!")
	if s.Flags.Salted && s.Flags.Formulated {
		res.say("THERE IS AN EXPLOSION!",
			"EVERYTHING GOES BLACK!",
			"SUDDENLY YOU ARE. . .",
			". . .SOMEWHERE ELSE!")
		s.Here = world.OpenField
		res.say(describeRoom(s)...)
		res.event(EventCutScene)
	}
	return res
}

func climb(s *state.State, act command.Action) Result {
	var res Result
	switch {
	case act.Object == "TRE" && s.IsHere("TRE"):
		res.say("YOU CAN'T REACH THE BRANCHES!")
	case act.Object == "LAD" && s.IsHere("LAD"):
		if s.Here != world.ForestEdge {
			res.say("WHATEVER FOR?")
			break
		}
		res.say("THE LADDER SINKS UNDER YOUR WEIGHT!",
			"IT DISAPPEARS INTO THE GROUND!")
		s.Place(world.Ladder, world.NowhereLocation())
		res.event(EventLadderSinks)
	default:
		res.say("IT WON'T DO ANY GOOD.")
	}
	return res
}

// dig uncovers the sword buried in the open field.
func dig(s *state.State, act command.Action) Result {
	var res Result
	switch {
	case act.Object != "GRO" && act.Object != "HOL":
		res.say("YOU CAN'T DIG THAT!")
	case !s.IsHere("SHO"):
		res.say("YOU DON'T HAVE A SHOVEL!")
	case s.Here != world.OpenField:
		res.say("YOU DON'T FIND ANYTHING.")
	case s.Location(world.Sword).Exists():
		res.say("THERE'S NOTHING ELSE THERE!")
	default:
		res.say("THERE'S SOMETHING THERE!")
		s.Place(world.Sword, world.FloorOf(world.OpenField))
		res.say(relistItems(s)...)
	}
	return res
}

// wave blows the boat between the two river banks when waved inside it.
func wave(s *state.State, act command.Action) Result {
	var res Result
	switch {
	case act.Object != "FAN":
		res.say("YOU CAN'T WAVE THAT!")
	case !s.IsHere("FAN"):
		res.say("YOU DON'T HAVE A FAN!")
	case s.Here != world.BoatInterior:
		res.say("YOU FEEL A REFRESHING BREEZE!")
	default:
		res.say("A POWERFUL BREEZE PROPELS THE BOAT",
			"TO THE OPPOSITE SHORE!")
		if s.Location(world.Boat).In(world.SouthBank) {
			s.Place(world.Boat, world.FixedIn(world.NorthBank))
		} else {
			s.Place(world.Boat, world.FixedIn(world.SouthBank))
		}
		res.event(EventBoatCrosses)
	}
	return res
}

func fight(s *state.State, act command.Action) Result {
	var res Result
	switch {
	case act.Object != "GUA":
		res.say("YOU CAN'T FIGHT THEM!")
	case !s.IsHere("GUA"):
		res.say("THERE'S NO GUARD HERE!")
	case !s.Has(world.Sword):
		res.say("YOU DON'T HAVE A WEAPON!")
	default:
		res.say("THE GUARD, NOTICING YOUR SWORD,",
			"WISELY RETREATS INTO THE CASTLE.")
		s.Place(world.Guard, world.NowhereLocation())
		res.event(EventGuardRetreats)
	}
	return res
}

// wear puts the gloves on. Worn gloves leave the inventory for good.
func wear(s *state.State, act command.Action) Result {
	var res Result
	switch {
	case act.Object != "GLO":
		res.say("YOU CAN'T WEAR THAT!")
	case s.Flags.Gloved:
		res.say("YOU ARE ALREADY WEARING THE RUBBER GLOVES.")
	case !s.IsHere("GLO"):
		res.say("YOU DON'T HAVE THE GLOVES.")
	default:
		res.say("YOU ARE NOW WEARING THE GLOVES.")
		s.Flags.Gloved = true
		s.Place(world.Gloves, world.NowhereLocation())
		res.event(EventGlovesWorn)
	}
	return res
}
