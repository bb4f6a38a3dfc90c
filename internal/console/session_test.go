package console

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/magicruby/internal/config"
	"github.com/cory-johannsen/magicruby/internal/game/world"
)

var winningInput = strings.Join([]string{
	"open box", "get bottle",
	"e", "open cabinet", "get salt", "w",
	"n", "w", "get shovel",
	"pour salt", "pour formula",
	"dig", "get sword",
	"s", "jump", "get fan", "jump",
	"drop shovel", "get gloves", "wear gloves",
	"d", "d", "n", "n", "e", "n", "w",
	"board", "wave fan", "leave",
	"n", "n", "fight guard", "n", "u",
	"open case", "get ruby",
	"look",
}, "\n") + "\n"

func plainConfig() config.ConsoleConfig {
	return config.ConsoleConfig{
		Prompt:    "WHAT NOW? ",
		Color:     config.ColorNever,
		ShowIntro: true,
	}
}

func TestSession_Opening(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("quit\n"), &out, plainConfig(), zaptest.NewLogger(t))
	require.NoError(t, s.Run(t.Context()))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, Intro))
	assert.Contains(t, text, "\nYOU ARE IN YOUR LIVING ROOM.\nYOU CAN GO: NORTH SOUTH EAST\nYOU CAN SEE:\n    AN OLD DIARY\n    A SMALL BOX\n")
	assert.True(t, strings.HasSuffix(text, "\nWHAT NOW? "))
	assert.NotContains(t, text, Banner)
	assert.NotEmpty(t, s.ID())
}

func TestSession_NoIntro(t *testing.T) {
	var out bytes.Buffer
	cfg := plainConfig()
	cfg.ShowIntro = false
	s := NewSession(strings.NewReader("q\n"), &out, cfg, nil)
	require.NoError(t, s.Run(t.Context()))
	assert.NotContains(t, out.String(), "UNCLE SIMON")
	assert.True(t, strings.HasPrefix(out.String(), "\nYOU ARE IN YOUR LIVING ROOM."))
}

func TestSession_WinPrintsBanner(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader(winningInput), &out, plainConfig(), zaptest.NewLogger(t))
	require.NoError(t, s.Run(t.Context()))

	assert.True(t, s.Engine().Won())
	assert.True(t, strings.HasSuffix(out.String(), "\n"+Banner+"\n\n"))
	// The line after the winning command is never read.
	assert.NotContains(t, out.String(), "THE GAME IS OVER.")
}

func TestSession_WinOnLastUnterminatedLine(t *testing.T) {
	input := strings.TrimSuffix(strings.TrimSuffix(winningInput, "\n"), "\nlook")
	require.True(t, strings.HasSuffix(input, "get ruby"))

	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out, plainConfig(), nil)
	require.NoError(t, s.Run(t.Context()))

	assert.True(t, s.Engine().Won())
	assert.True(t, strings.HasSuffix(out.String(), "\n"+Banner+"\n\n"))
}

func TestSession_ReaderExitsAfterQuit(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("quit\nlook\nlook\n"), &out, plainConfig(), nil)
	require.NoError(t, s.Run(t.Context()))

	select {
	case <-s.readerDone:
	case <-time.After(5 * time.Second):
		t.Fatal("input goroutine still running after the session ended")
	}
}

func TestSession_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("north\nget ladder"), &out, plainConfig(), nil)
	require.NoError(t, s.Run(t.Context()))
	assert.True(t, s.Engine().State().Has(world.Ladder))
	assert.Contains(t, out.String(), "TAKEN.")
}

func TestSession_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("dance\nquit\n"), &out, plainConfig(), nil)
	require.NoError(t, s.Run(t.Context()))
	assert.Contains(t, out.String(), "WHAT NOW? I DON'T KNOW HOW TO DO THAT.\n")
}

func TestSession_ColorAlways(t *testing.T) {
	var out bytes.Buffer
	cfg := plainConfig()
	cfg.Color = config.ColorAlways
	s := NewSession(strings.NewReader("q\n"), &out, cfg, nil)
	require.NoError(t, s.Run(t.Context()))
	assert.Contains(t, out.String(), Colorize(Bold+Green, "WHAT NOW? "))
}

func TestSession_WrapWidth(t *testing.T) {
	var out bytes.Buffer
	cfg := plainConfig()
	cfg.ShowIntro = false
	cfg.WrapWidth = 20
	s := NewSession(strings.NewReader("read diary\nq\n"), &out, cfg, nil)
	require.NoError(t, s.Run(t.Context()))

	for _, line := range strings.Split(StripANSI(out.String()), "\n") {
		if strings.HasPrefix(line, "WHAT NOW?") {
			continue
		}
		assert.LessOrEqual(t, len(line), 20, "line %q", line)
	}
	assert.Contains(t, out.String(), "SODIUM")
}

func TestSession_StopInterrupts(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	s := NewSession(pr, &out, plainConfig(), nil)

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	time.Sleep(50 * time.Millisecond)
	s.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop")
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled(config.ColorAlways, &buf))
	assert.False(t, ColorEnabled(config.ColorNever, &buf))
	assert.False(t, ColorEnabled(config.ColorAuto, &buf))
	assert.False(t, IsTerminal(&buf))
}

func TestNewWrapWriter_ZeroIsPassThrough(t *testing.T) {
	var buf bytes.Buffer
	assert.Same(t, &buf, NewWrapWriter(&buf, 0))
}
