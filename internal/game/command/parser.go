package command

import (
	"strings"

	"github.com/cory-johannsen/magicruby/internal/game/world"
)

// goToken is the optional word preceding a movement direction.
const goToken = "GO"

// Outcome classifies the result of parsing one line.
type Outcome int

const (
	// OutcomeEmpty means the line held no words; the caller re-prompts silently.
	OutcomeEmpty Outcome = iota
	// OutcomeAction means the line resolved to an Action.
	OutcomeAction
	// OutcomeUnknown means no verb matched.
	OutcomeUnknown
	// OutcomeMissingObject means the verb needs an object that was not given.
	OutcomeMissingObject
)

// Action is one fully resolved player intent.
type Action struct {
	// Handler names the engine handler to run.
	Handler string
	// Verb is the canonical token of the matched command.
	Verb string
	// Direction is set for movement actions.
	Direction world.Direction
	// Object is the canonical object tag, or empty.
	Object string
}

// ParseResult holds the outcome of parsing one line of input.
type ParseResult struct {
	Outcome Outcome
	// Action is valid when Outcome is OutcomeAction.
	Action Action
	// Prompt is the verb-specific question for OutcomeMissingObject.
	Prompt string
	// Tokens are the normalized words of the line.
	Tokens []string
}

// Tokenize upper-cases line, splits it on whitespace, and truncates every
// word to its first world.TagLength characters.
//
// Postcondition: every returned token is non-empty and at most TagLength runes.
func Tokenize(line string) []string {
	words := strings.Fields(strings.ToUpper(line))
	for i, w := range words {
		if r := []rune(w); len(r) > world.TagLength {
			words[i] = string(r[:world.TagLength])
		}
	}
	return words
}

// Parse resolves a line of input using the default command table.
func Parse(line string) ParseResult {
	return defaultRegistry.Parse(line)
}

var defaultRegistry = DefaultRegistry()

// Parse resolves a line of input to an Action.
//
// Movement words win over every verb: the first token, or the second when
// the first is "GO", is tried as a direction before the command table.
//
// Postcondition: Always returns a ParseResult; never fails.
func (r *Registry) Parse(line string) ParseResult {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return ParseResult{Outcome: OutcomeEmpty}
	}

	candidate := tokens[0]
	if len(tokens) > 1 && tokens[0] == goToken {
		candidate = tokens[1]
	}
	if cmd, ok := r.Resolve(candidate); ok && IsMovementCommand(cmd) {
		return ParseResult{
			Outcome: OutcomeAction,
			Action:  Action{Handler: HandlerMove, Verb: cmd.Name, Direction: cmd.Direction},
			Tokens:  tokens,
		}
	}

	unknown := ParseResult{Outcome: OutcomeUnknown, Tokens: tokens}
	if len(tokens) > 2 {
		return unknown
	}
	cmd, ok := r.Resolve(tokens[0])
	if !ok {
		return unknown
	}

	act := Action{Handler: cmd.Handler, Verb: cmd.Name}
	var object string
	hasObject := len(tokens) == 2
	if hasObject {
		object = world.Canonical(tokens[1])
	}

	switch cmd.Arity {
	case ArityNone:
		if hasObject {
			return unknown
		}
	case ArityRequired:
		if !hasObject {
			return ParseResult{Outcome: OutcomeMissingObject, Prompt: cmd.Prompt, Tokens: tokens}
		}
		act.Object = object
	case ArityOptional:
		if hasObject {
			act.Object = object
			if cmd.ObjectHandler != "" {
				act.Handler = cmd.ObjectHandler
			}
		} else {
			act.Object = cmd.Default
		}
	case ArityIgnored:
	}

	return ParseResult{Outcome: OutcomeAction, Action: act, Tokens: tokens}
}
