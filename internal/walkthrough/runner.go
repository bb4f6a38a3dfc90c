package walkthrough

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/magicruby/internal/game/engine"
	"github.com/cory-johannsen/magicruby/internal/observability"
)

// Failure describes one unmet expectation.
type Failure struct {
	// Step is the 1-based step number, or 0 for end-of-game checks.
	Step    int
	Command string
	Reason  string
}

// String renders the failure for terminal output.
func (f Failure) String() string {
	if f.Step == 0 {
		return f.Reason
	}
	return fmt.Sprintf("step %d (%s): %s", f.Step, f.Command, f.Reason)
}

// Report is the outcome of replaying one script.
type Report struct {
	Name     string
	Steps    int
	Won      bool
	Room     int
	Failures []Failure
}

// Passed reports whether every expectation held.
func (r Report) Passed() bool { return len(r.Failures) == 0 }

// Run replays script against a new game.
//
// Precondition: script must have passed Validate.
// Postcondition: Returns a Report; a quit or win before the last step is
// reported as a failure for the remaining steps.
func Run(script *Script, logger *zap.Logger) Report {
	logger = observability.Component(logger, "walkthrough").With(zap.String("script", script.Name))
	eng := engine.New(nil, logger)
	rep := Report{Name: script.Name}

	for i, st := range script.Steps {
		if eng.Won() {
			rep.Failures = append(rep.Failures, Failure{
				Step: i + 1, Command: st.Command,
				Reason: "game already won",
			})
			break
		}
		res := eng.Execute(st.Command)
		rep.Steps++
		output := strings.Join(res.Lines, "\n")

		for _, want := range st.Expect {
			if !strings.Contains(output, want) {
				rep.Failures = append(rep.Failures, Failure{
					Step: i + 1, Command: st.Command,
					Reason: fmt.Sprintf("expected %q in output %q", want, output),
				})
			}
		}
		for _, bad := range st.Reject {
			if strings.Contains(output, bad) {
				rep.Failures = append(rep.Failures, Failure{
					Step: i + 1, Command: st.Command,
					Reason: fmt.Sprintf("unexpected %q in output", bad),
				})
			}
		}
		if res.Quit {
			if i < len(script.Steps)-1 {
				rep.Failures = append(rep.Failures, Failure{
					Step: i + 1, Command: st.Command,
					Reason: "player quit before the last step",
				})
			}
			break
		}
	}

	sum := eng.Summary()
	rep.Won = sum.Won
	rep.Room = sum.RoomID
	if script.ExpectWon && !rep.Won {
		rep.Failures = append(rep.Failures, Failure{Reason: "expected the game to be won"})
	}
	if script.ExpectRoom != 0 && script.ExpectRoom != rep.Room {
		rep.Failures = append(rep.Failures, Failure{
			Reason: fmt.Sprintf("expected to end in room %d, ended in room %d", script.ExpectRoom, rep.Room),
		})
	}

	logger.Info("walkthrough finished",
		zap.Int("steps", rep.Steps),
		zap.Bool("won", rep.Won),
		zap.Int("failures", len(rep.Failures)),
	)
	return rep
}
