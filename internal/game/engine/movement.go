package engine

import (
	"github.com/cory-johannsen/magicruby/internal/game/command"
	"github.com/cory-johannsen/magicruby/internal/game/state"
	"github.com/cory-johannsen/magicruby/internal/game/world"
)

// move relocates the player along an exit. A zero exit never changes the room.
func move(s *state.State, act command.Action) Result {
	var res Result
	dest := world.Destination(s.Here, act.Direction)
	switch {
	case world.IsRoom(dest):
		s.Here = dest
		res.say(describeRoom(s)...)
	case dest == world.Guarded:
		if s.Location(world.Guard).Exists() {
			res.say("THE GUARD WON'T LET YOU!")
			break
		}
		s.Here = world.NarrowHall
		res.say(describeRoom(s)...)
	default:
		res.say("YOU CAN'T GO THERE!")
	}
	return res
}

func goWhere(_ *state.State, _ command.Action) Result {
	return Result{Lines: []string{"GO WHERE?"}}
}

// jump climbs the tree one branch at a time from the forest edge.
func jump(s *state.State, _ command.Action) Result {
	var res Result
	switch s.Here {
	case world.ForestEdge:
		res.say("YOU GRAB THE LOWEST BRANCH OF THE",
			"TREE AND PULL YOURSELF UP. . . .")
		s.Here = world.TreeBranch
		res.say(describeRoom(s)...)
	case world.TreeBranch:
		res.say("YOU GRAB A HIGHER BRANCH OF THE",
			"TREE AND PULL YOURSELF UP. . . .")
		s.Here = world.TreeTop
		res.say(describeRoom(s)...)
	default:
		res.say("WHEE! THAT WAS FUN!")
	}
	return res
}

// leave steps out of the boat onto whichever bank it is moored at.
func leave(s *state.State, act command.Action) Result {
	var res Result
	if s.Here != world.BoatInterior {
		res.say("PLEASE GIVE A DIRECTION!")
		return res
	}
	if act.Object != "BOA" {
		res.say("HUH?")
		return res
	}
	s.Here = s.Location(world.Boat).Room()
	res.say(describeRoom(s)...)
	return res
}

func row(s *state.State, act command.Action) Result {
	var res Result
	switch {
	case act.Object != "" && act.Object != "BOA":
		res.say("HOW CAN YOU ROW THAT?")
	case s.Here != world.BoatInterior:
		res.say("YOU'RE NOT IN A BOAT!")
	default:
		res.say("YOU DON'T HAVE AN OAR!")
	}
	return res
}
