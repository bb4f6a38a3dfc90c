// Package walkthrough loads scripted play-throughs from YAML and replays them
// against a fresh game, checking the narrative after every command.
package walkthrough

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/magicruby/internal/game/world"
)

// Step is one command and the checks applied to its output.
type Step struct {
	// Command is typed at the prompt verbatim.
	Command string `yaml:"command"`
	// Expect lists substrings that must all appear in the output.
	Expect []string `yaml:"expect"`
	// Reject lists substrings that must not appear in the output.
	Reject []string `yaml:"reject"`
}

// Script is a named sequence of steps with end-of-game expectations.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
	// ExpectWon requires the game to be won after the last step.
	ExpectWon bool `yaml:"expect_won"`
	// ExpectRoom, when non-zero, is the room the player must end in.
	ExpectRoom int `yaml:"expect_room"`
}

// Validate checks the script invariants.
//
// Postcondition: Returns nil if valid, or an error describing every violation.
func (s *Script) Validate() error {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if len(s.Steps) == 0 {
		errs = append(errs, "steps must not be empty")
	}
	for i, st := range s.Steps {
		if strings.TrimSpace(st.Command) == "" {
			errs = append(errs, fmt.Sprintf("step %d: command must not be empty", i+1))
		}
		for _, e := range st.Expect {
			if e == "" {
				errs = append(errs, fmt.Sprintf("step %d: expect entries must not be empty", i+1))
				break
			}
		}
	}
	if s.ExpectRoom != 0 && (s.ExpectRoom < 0 || s.ExpectRoom > 255 || !world.IsRoom(world.RoomID(s.ExpectRoom))) {
		errs = append(errs, fmt.Sprintf("expect_room %d is not a room", s.ExpectRoom))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// LoadScriptFromFile reads and validates a single script YAML file.
//
// Precondition: path must point to a valid YAML script file.
// Postcondition: Returns a validated Script or a non-nil error.
func LoadScriptFromFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script file %s: %w", path, err)
	}
	return LoadScriptFromBytes(data)
}

// LoadScriptFromBytes parses and validates a script from YAML bytes.
// Unknown keys are rejected.
//
// Postcondition: Returns a validated Script or a non-nil error.
func LoadScriptFromBytes(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var script Script
	if err := dec.Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("parsing script YAML: document is empty")
		}
		return nil, fmt.Errorf("parsing script YAML: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("validating script: %w", err)
	}
	return &script, nil
}

// LoadScriptsFromDir loads all YAML files in a directory as scripts, in
// file name order.
//
// Precondition: dir must be a valid directory path.
// Postcondition: Returns all validated scripts or the first error encountered.
func LoadScriptsFromDir(dir string) ([]*Script, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading script directory %s: %w", dir, err)
	}

	var scripts []*Script
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		script, err := LoadScriptFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading script from %s: %w", name, err)
		}
		scripts = append(scripts, script)
	}

	if len(scripts) == 0 {
		return nil, fmt.Errorf("no script files found in %s", dir)
	}

	return scripts, nil
}
