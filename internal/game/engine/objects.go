package engine

import (
	"github.com/cory-johannsen/magicruby/internal/game/command"
	"github.com/cory-johannsen/magicruby/internal/game/state"
	"github.com/cory-johannsen/magicruby/internal/game/world"
)

const (
	msgNotHere     = "THAT ISN'T HERE!"
	msgCantGet     = "YOU CAN'T GET THAT!"
	msgDontHaveIt  = "YOU DON'T HAVE THAT!"
	msgNothingSeen = "YOU SEE NOTHING UNUSUAL."
)

// pickUp moves a loose object from the current room into the inventory.
// Taking the ruby wins the game on the spot, regardless of how much is
// carried; the ruby itself never enters the inventory.
func pickUp(s *state.State, act command.Action) Result {
	var res Result
	id, loc, ok := s.Lookup(act.Object)
	switch {
	case !ok:
		res.say(msgCantGet)
	case loc.IsCarried():
		res.say("YOU ALREADY HAVE IT!")
	case loc.IsFixed():
		res.say(msgCantGet)
	case !loc.In(s.Here):
		res.say(msgNotHere)
	case id == world.Ruby:
		s.Flags.Won = true
		res.event(EventWon)
	case s.CarriedCount() >= world.MaxCarry:
		res.say("YOU CAN'T CARRY ANY MORE.")
	default:
		s.Place(id, world.CarriedLocation())
		res.say("TAKEN.")
	}
	return res
}

func drop(s *state.State, act command.Action) Result {
	var res Result
	id, loc, ok := s.Lookup(act.Object)
	if !ok || !loc.IsCarried() {
		res.say(msgDontHaveIt)
		return res
	}
	s.Place(id, world.FloorOf(s.Here))
	res.say("DROPPED.")
	return res
}

// examine describes the ground or an accessible object.
func examine(s *state.State, act command.Action) Result {
	var res Result
	if act.Object == "GRO" {
		switch {
		case s.Here != world.OpenField:
			res.say("IT LOOKS LIKE GROUND!")
		case !s.Location(world.Sword).Exists():
			res.say("IT LOOKS LIKE SOMETHING'S BURIED HERE.")
		default:
			res.say("THERE'S A HOLE HERE.")
		}
		return res
	}
	if !s.IsHere(act.Object) {
		res.say(msgNotHere)
		return res
	}
	switch act.Object {
	case "BOT":
		res.say("THERE'S SOMETHING WRITTEN ON IT!")
	case "CAS":
		res.say("THERE'S A JEWEL INSIDE!")
	case "BAR":
		res.say("IT'S FILLED WITH RAINWATER.")
	default:
		res.say(msgNothingSeen)
	}
	return res
}

// open handles the three containers. Each reveals its content exactly once.
func open(s *state.State, act command.Action) Result {
	var res Result
	if !s.IsHere(act.Object) {
		res.say(msgNotHere)
		return res
	}
	switch act.Object {
	case "BOX":
		if s.Location(world.Bottle).Exists() {
			res.say("THE BOX IS ALREADY OPEN.")
			break
		}
		res.say("SOMETHING FELL OUT!")
		s.Place(world.Bottle, world.FloorOf(s.Here))
		res.say(relistItems(s)...)
	case "CAB":
		if s.Location(world.Salt).Exists() {
			res.say("THE CABINET IS ALREADY OPEN.")
			break
		}
		res.say("THERE'S SOMETHING INSIDE!")
		s.Place(world.Salt, world.FloorOf(s.Here))
		res.say(relistItems(s)...)
	case "CAS":
		switch {
		case s.Location(world.Ruby).Exists():
			res.say("THE CASE IS ALREADY OPEN.")
		case s.Flags.Gloved:
			res.say("THE GLOVES INSULATE AGAINST THE",
				"ELECTRICITY! THE CASE OPENS!")
			s.Place(world.Ruby, world.FloorOf(s.Here))
			res.say(relistItems(s)...)
		default:
			res.say("THE CASE IS ELECTRIFIED!")
		}
	default:
		res.say("YOU CAN'T OPEN THAT!")
	}
	return res
}

func read(s *state.State, act command.Action) Result {
	var res Result
	if !s.IsHere(act.Object) {
		res.say(msgNotHere)
		return res
	}
	switch act.Object {
	case "DIA":
		res.say("IT SAYS: 'ADD SODIUM CHLORIDE PLUS THE",
			"FORMULA TO RAINWATER, TO REACH THE",
			"OTHER WORLD.'")
	case "DIC":
		res.say("IT SAYS: SODIUM CHLORIDE IS",
			"COMMON TABLE SALT.")
	case "BOT":
		res.say("IT READS: 'SECRET FORMULA'.")
	default:
		res.say("YOU CAN'T READ THAT!")
	}
	return res
}
