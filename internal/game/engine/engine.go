// Package engine applies parsed player actions to the game state and
// produces the narrative output of each turn.
package engine

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/magicruby/internal/game/command"
	"github.com/cory-johannsen/magicruby/internal/game/state"
)

// WinBanner congratulates the player once the ruby is taken.
const WinBanner = "CONGRATULATIONS! YOU'VE WON!"

// Fixed replies for inputs that never reach a handler.
const (
	msgUnknown  = "I DON'T KNOW HOW TO DO THAT."
	msgGameOver = "THE GAME IS OVER."
)

// Events reported by handlers for puzzle milestones.
const (
	EventCutScene      = "cut_scene"
	EventGuardRetreats = "guard_retreats"
	EventLadderSinks   = "ladder_sinks"
	EventBoatCrosses   = "boat_crosses"
	EventGlovesWorn    = "gloves_worn"
	EventWon           = "won"
)

// Result is the outcome of one turn.
type Result struct {
	// Lines is the narrative output, in order.
	Lines []string
	// Quit is set when the player asked to end the session.
	Quit bool
	// Events lists puzzle milestones reached during the turn.
	Events []string
}

func (r *Result) say(lines ...string) {
	r.Lines = append(r.Lines, lines...)
}

func (r *Result) event(name string) {
	r.Events = append(r.Events, name)
}

// HandlerFunc applies one action to the state.
//
// Postcondition: the returned Result describes every state change made.
type HandlerFunc func(s *state.State, act command.Action) Result

// Engine interprets commands against one game.
type Engine struct {
	state    *state.State
	registry *command.Registry
	handlers map[string]HandlerFunc
	out      io.Writer
	logger   *zap.Logger
	turns    int
}

// New starts a new game writing narrative to out.
//
// Postcondition: the player is in the start room; the caller must call Look
// once before the first prompt.
func New(out io.Writer, logger *zap.Logger) *Engine {
	return NewWithState(state.New(), out, logger)
}

// NewWithState creates an Engine around an existing state.
//
// Precondition: st must be non-nil.
func NewWithState(st *state.State, out io.Writer, logger *zap.Logger) *Engine {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		state:    st,
		registry: command.DefaultRegistry(),
		handlers: Handlers(),
		out:      out,
		logger:   logger,
	}
}

// State returns the live game state.
func (e *Engine) State() *state.State { return e.state }

// Won reports whether the game has been won.
func (e *Engine) Won() bool { return e.state.Flags.Won }

// Turns returns the number of non-empty commands processed.
func (e *Engine) Turns() int { return e.turns }

// Look writes the description of the current room.
func (e *Engine) Look() {
	e.write(describeRoom(e.state))
}

// Process runs one line of input and writes its narrative.
//
// Postcondition: Returns false when the player asked to quit.
func (e *Engine) Process(line string) bool {
	res := e.Execute(line)
	e.write(res.Lines)
	return !res.Quit
}

// Execute runs one line of input without writing anything.
//
// Postcondition: Returns the narrative, the quit flag, and puzzle events.
func (e *Engine) Execute(line string) Result {
	parsed := e.registry.Parse(line)
	if parsed.Outcome == command.OutcomeEmpty {
		return Result{}
	}
	e.turns++

	if e.state.Flags.Won {
		return Result{Lines: []string{msgGameOver}}
	}

	var res Result
	switch parsed.Outcome {
	case command.OutcomeUnknown:
		res.say(msgUnknown)
	case command.OutcomeMissingObject:
		res.say(parsed.Prompt)
	case command.OutcomeAction:
		h, ok := e.handlers[parsed.Action.Handler]
		if !ok {
			e.logger.Error("no handler for action",
				zap.String("handler", parsed.Action.Handler),
				zap.String("verb", parsed.Action.Verb),
			)
			res.say(msgUnknown)
			break
		}
		res = h(e.state, parsed.Action)
	}

	e.logger.Debug("command processed",
		zap.Int("turn", e.turns),
		zap.Strings("tokens", parsed.Tokens),
		zap.String("handler", parsed.Action.Handler),
		zap.String("object", parsed.Action.Object),
		zap.String("direction", string(parsed.Action.Direction)),
		zap.Uint8("room", uint8(e.state.Here)),
	)
	for _, ev := range res.Events {
		e.logger.Info("puzzle event",
			zap.String("event", ev),
			zap.Int("turn", e.turns),
			zap.Uint8("room", uint8(e.state.Here)),
		)
	}
	return res
}

func (e *Engine) write(lines []string) {
	for _, l := range lines {
		_, _ = fmt.Fprintln(e.out, l)
	}
}

// Handlers returns the dispatch table mapping handler names to functions.
func Handlers() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		command.HandlerMove:      move,
		command.HandlerGo:        goWhere,
		command.HandlerQuit:      quit,
		command.HandlerInventory: inventory,
		command.HandlerLook:      look,
		command.HandlerExamine:   examine,
		command.HandlerGet:       pickUp,
		command.HandlerDrop:      drop,
		command.HandlerOpen:      open,
		command.HandlerRead:      read,
		command.HandlerPour:      pour,
		command.HandlerClimb:     climb,
		command.HandlerWave:      wave,
		command.HandlerJump:      jump,
		command.HandlerDig:       dig,
		command.HandlerRow:       row,
		command.HandlerLeave:     leave,
		command.HandlerFight:     fight,
		command.HandlerWear:      wear,
	}
}

func quit(_ *state.State, _ command.Action) Result {
	return Result{Quit: true}
}
