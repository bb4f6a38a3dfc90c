package engine

import (
	"strings"

	"github.com/cory-johannsen/magicruby/internal/game/world"
)

// Summary is a machine-readable snapshot of the game.
type Summary struct {
	RoomID     int      `json:"room_id" jsonschema:"Current room ID"`
	Room       string   `json:"room" jsonschema:"Current room description"`
	Exits      []string `json:"exits" jsonschema:"Directions that lead somewhere"`
	Visible    []string `json:"visible" jsonschema:"Objects visible in the room"`
	Inventory  []string `json:"inventory" jsonschema:"Objects being carried"`
	Salted     bool     `json:"salted" jsonschema:"Whether the salt has been poured into the barrel"`
	Formulated bool     `json:"formulated" jsonschema:"Whether the formula has been poured into the barrel"`
	Gloved     bool     `json:"gloved" jsonschema:"Whether the rubber gloves are worn"`
	Won        bool     `json:"won" jsonschema:"Whether the ruby has been taken"`
	Turns      int      `json:"turns" jsonschema:"Number of commands entered"`
}

// Summary returns a snapshot of the current game.
func (e *Engine) Summary() Summary {
	s := e.state
	room := world.MustRoom(s.Here)
	sum := Summary{
		RoomID:     int(room.ID),
		Room:       room.Description,
		Exits:      []string{},
		Visible:    names(s.ObjectsIn(s.Here)),
		Inventory:  names(s.Carried()),
		Salted:     s.Flags.Salted,
		Formulated: s.Flags.Formulated,
		Gloved:     s.Flags.Gloved,
		Won:        s.Flags.Won,
		Turns:      e.turns,
	}
	for _, d := range room.Exits() {
		sum.Exits = append(sum.Exits, strings.ToUpper(string(d)))
	}
	return sum
}

func names(ids []world.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if o, ok := world.LookupObject(id); ok {
			out = append(out, o.Name)
		}
	}
	return out
}
