// Package command provides the command table, registry, and parser that turn
// a line of player input into an Action.
package command

import "github.com/cory-johannsen/magicruby/internal/game/world"

// Categories for organizing commands.
const (
	CategoryMovement = "movement"
	CategoryWorld    = "world"
	CategoryPuzzle   = "puzzle"
	CategorySystem   = "system"
)

// Handler identifiers mapping commands to engine handlers.
const (
	HandlerMove      = "move"
	HandlerGo        = "go"
	HandlerQuit      = "quit"
	HandlerInventory = "inventory"
	HandlerLook      = "look"
	HandlerExamine   = "examine"
	HandlerGet       = "get"
	HandlerDrop      = "drop"
	HandlerOpen      = "open"
	HandlerRead      = "read"
	HandlerPour      = "pour"
	HandlerClimb     = "climb"
	HandlerWave      = "wave"
	HandlerJump      = "jump"
	HandlerDig       = "dig"
	HandlerRow       = "row"
	HandlerLeave     = "leave"
	HandlerFight     = "fight"
	HandlerWear      = "wear"
)

// Arity describes how many object tokens a verb accepts.
type Arity int

const (
	// ArityNone accepts the verb alone.
	ArityNone Arity = iota
	// ArityRequired needs exactly one object; the verb alone yields the prompt.
	ArityRequired
	// ArityOptional accepts zero or one object; zero substitutes Default.
	ArityOptional
	// ArityIgnored accepts zero or one object and discards it.
	ArityIgnored
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical 3-character token (or shorter word, e.g. "GO").
	Name string
	// Aliases are alternate tokens for this command.
	Aliases []string
	// Help is the short help text.
	Help string
	// Category groups the command.
	Category string
	// Handler names the engine handler invoked for the verb.
	Handler string
	// ObjectHandler, when set, replaces Handler if an object is given.
	ObjectHandler string
	// Direction is the movement direction for movement commands.
	Direction world.Direction
	// Arity is the number of object tokens accepted.
	Arity Arity
	// Default is the object substituted for ArityOptional verbs used alone.
	Default string
	// Prompt is shown when an ArityRequired verb is used alone.
	Prompt string
}

// BuiltinCommands returns the fixed command table.
func BuiltinCommands() []Command {
	return []Command{
		// Movement words
		{Name: "NOR", Aliases: []string{"N"}, Help: "Move north", Category: CategoryMovement, Handler: HandlerMove, Direction: world.North},
		{Name: "SOU", Aliases: []string{"S"}, Help: "Move south", Category: CategoryMovement, Handler: HandlerMove, Direction: world.South},
		{Name: "EAS", Aliases: []string{"E"}, Help: "Move east", Category: CategoryMovement, Handler: HandlerMove, Direction: world.East},
		{Name: "WES", Aliases: []string{"W"}, Help: "Move west", Category: CategoryMovement, Handler: HandlerMove, Direction: world.West},
		{Name: "UP", Aliases: []string{"U"}, Help: "Move up", Category: CategoryMovement, Handler: HandlerMove, Direction: world.Up},
		{Name: "DOW", Aliases: []string{"D"}, Help: "Move down", Category: CategoryMovement, Handler: HandlerMove, Direction: world.Down},
		{Name: "BOA", Help: "Board the boat", Category: CategoryMovement, Handler: HandlerMove, Direction: world.Board},
		{Name: "GO", Help: "Go in a direction", Category: CategoryMovement, Handler: HandlerGo, Arity: ArityNone},

		// World commands
		{Name: "LOO", Aliases: []string{"L"}, Help: "Look around, or look at something", Category: CategoryWorld, Handler: HandlerLook, ObjectHandler: HandlerExamine, Arity: ArityOptional},
		{Name: "EXA", Help: "Examine something", Category: CategoryWorld, Handler: HandlerExamine, Arity: ArityRequired, Prompt: "WHAT DO YOU WANT TO EXAMINE?"},
		{Name: "INV", Aliases: []string{"I"}, Help: "List what you are carrying", Category: CategoryWorld, Handler: HandlerInventory, Arity: ArityNone},
		{Name: "GET", Aliases: []string{"TAK"}, Help: "Pick something up", Category: CategoryWorld, Handler: HandlerGet, Arity: ArityRequired, Prompt: "WHAT DO YOU WANT TO GET?"},
		{Name: "DRO", Help: "Drop something you carry", Category: CategoryWorld, Handler: HandlerDrop, Arity: ArityRequired, Prompt: "WHAT DO YOU WANT TO DROP?"},
		{Name: "OPE", Help: "Open something", Category: CategoryWorld, Handler: HandlerOpen, Arity: ArityRequired, Prompt: "WHAT DO YOU WANT TO OPEN?"},
		{Name: "REA", Help: "Read something", Category: CategoryWorld, Handler: HandlerRead, Arity: ArityRequired, Prompt: "WHAT DO YOU WANT TO READ?"},

		// Puzzle commands
		{Name: "POU", Help: "Pour something", Category: CategoryPuzzle, Handler: HandlerPour, Arity: ArityRequired, Prompt: "WHAT DO YOU WANT TO POUR?"},
		{Name: "CLI", Help: "Climb something", Category: CategoryPuzzle, Handler: HandlerClimb, Arity: ArityRequired, Prompt: "WHAT DO YOU WANT TO CLIMB?"},
		{Name: "WAV", Help: "Wave something", Category: CategoryPuzzle, Handler: HandlerWave, Arity: ArityRequired, Prompt: "WHAT DO YOU WANT TO WAVE?"},
		{Name: "JUM", Help: "Jump", Category: CategoryPuzzle, Handler: HandlerJump, Arity: ArityIgnored},
		{Name: "DIG", Help: "Dig (in the ground by default)", Category: CategoryPuzzle, Handler: HandlerDig, Arity: ArityOptional, Default: "GRO"},
		{Name: "ROW", Help: "Row the boat", Category: CategoryPuzzle, Handler: HandlerRow, Arity: ArityOptional},
		{Name: "LEA", Aliases: []string{"EXI"}, Help: "Leave (the boat by default)", Category: CategoryPuzzle, Handler: HandlerLeave, Arity: ArityOptional, Default: "BOA"},
		{Name: "FIG", Help: "Fight someone", Category: CategoryPuzzle, Handler: HandlerFight, Arity: ArityRequired, Prompt: "WHOM DO YOU WANT TO FIGHT?"},
		{Name: "WEA", Help: "Wear something", Category: CategoryPuzzle, Handler: HandlerWear, Arity: ArityRequired, Prompt: "WHAT DO YOU WANT TO WEAR?"},

		// System commands
		{Name: "QUI", Aliases: []string{"Q"}, Help: "End the game", Category: CategorySystem, Handler: HandlerQuit, Arity: ArityNone},
	}
}

// IsMovementCommand reports whether cmd moves the player.
func IsMovementCommand(cmd *Command) bool {
	return cmd != nil && cmd.Handler == HandlerMove
}
