package engine

import (
	"strings"

	"github.com/cory-johannsen/magicruby/internal/game/command"
	"github.com/cory-johannsen/magicruby/internal/game/state"
	"github.com/cory-johannsen/magicruby/internal/game/world"
)

const indent = "    "

// describeRoom renders the current room: description, exits, and contents.
func describeRoom(s *state.State) []string {
	room := world.MustRoom(s.Here)
	var exits strings.Builder
	exits.WriteString("YOU CAN GO:")
	for _, d := range room.Exits() {
		exits.WriteString(" ")
		exits.WriteString(strings.ToUpper(string(d)))
	}
	lines := []string{
		"",
		"YOU ARE " + room.Description,
		exits.String(),
	}
	return append(lines, listItems(s)...)
}

// listItems renders the objects visible in the current room.
func listItems(s *state.State) []string {
	lines := []string{"YOU CAN SEE:"}
	ids := s.ObjectsIn(s.Here)
	if len(ids) == 0 {
		return append(lines, indent+"THERE IS NOTHING OF INTEREST HERE.")
	}
	for _, id := range ids {
		o, _ := world.LookupObject(id)
		lines = append(lines, indent+o.Name)
	}
	return lines
}

// relistItems renders the room contents after something was revealed.
func relistItems(s *state.State) []string {
	return append([]string{""}, listItems(s)...)
}

func look(s *state.State, _ command.Action) Result {
	return Result{Lines: describeRoom(s)}
}

func inventory(s *state.State, _ command.Action) Result {
	var res Result
	if s.Flags.Gloved {
		res.say("YOU ARE WEARING RUBBER GLOVES.")
	}
	res.say("YOU ARE CARRYING:")
	ids := s.Carried()
	if len(ids) == 0 {
		res.say(indent + "NOTHING")
		return res
	}
	for _, id := range ids {
		o, _ := world.LookupObject(id)
		res.say(indent + o.Name)
	}
	return res
}
