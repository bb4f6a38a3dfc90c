package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/magicruby/internal/config"
	"github.com/cory-johannsen/magicruby/internal/game/engine"
	"github.com/cory-johannsen/magicruby/internal/observability"
)

// Intro is the backstory printed before the first room.
const Intro = `
ALL YOUR LIFE YOU HAD HEARD THE STORIES
ABOUT YOUR CRAZY UNCLE SIMON. HE WAS AN
INVENTOR, WHO KEPT DISAPPEARING FOR
LONG PERIODS OF TIME, NEVER TELLING
ANYONE WHERE HE HAD BEEN.

YOU NEVER BELIEVED THE STORIES, BUT
WHEN YOUR UNCLE DIED AND LEFT YOU HIS
DIARY, YOU LEARNED THAT THEY WERE TRUE.
YOUR UNCLE HAD DISCOVERED A MAGIC
LAND, AND A SECRET FORMULA THAT COULD
TAKE HIM THERE. IN THAT LAND WAS A
MAGIC RUBY, AND HIS DIARY CONTAINED
THE INSTRUCTIONS FOR GOING THERE TO
FIND IT.

`

// Banner is printed when the game is won.
const Banner = engine.WinBanner

// Session is one interactive game on a terminal.
type Session struct {
	id      string
	input   *LineReader
	out     io.Writer
	cfg     config.ConsoleConfig
	palette Palette
	engine  *engine.Engine
	logger  *zap.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool

	// readerDone is closed when the input goroutine of the last Run exits.
	readerDone chan struct{}
}

type readResult struct {
	line string
	err  error
}

// NewSession creates a session reading commands from in and writing the
// narrative to out.
//
// Precondition: in and out must be non-nil.
// Postcondition: the game is in its starting state.
func NewSession(in io.Reader, out io.Writer, cfg config.ConsoleConfig, logger *zap.Logger) *Session {
	id := uuid.NewString()
	logger = observability.Component(logger, "console").With(zap.String("session_id", id))
	return &Session{
		id:      id,
		input:   NewLineReader(in),
		out:     out,
		cfg:     cfg,
		palette: NewPalette(ColorEnabled(cfg.Color, out)),
		engine:  engine.New(NewWrapWriter(out, cfg.WrapWidth), logger),
		logger:  logger,
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Engine returns the game driven by this session.
func (s *Session) Engine() *engine.Engine { return s.engine }

// Start runs the session until it ends or Stop is called.
func (s *Session) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		cancel()
		return nil
	}
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()
	return s.Run(ctx)
}

// Stop interrupts a running session at its next prompt.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}

// Run plays the game: intro, opening room, then one command per prompt until
// the player quits, wins, input ends, or ctx is done.
//
// Postcondition: Returns nil on a normal end, or the input error that
// stopped the session.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started")
	if s.cfg.ShowIntro {
		s.print(s.palette.Paint(s.palette.Intro, Intro))
	}
	s.engine.Look()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan readResult)
	s.readerDone = make(chan struct{})
	go s.readLoop(ctx, lines, s.readerDone)

	for !s.engine.Won() {
		s.print("\n" + s.palette.Paint(s.palette.Prompt, s.cfg.Prompt))

		var r readResult
		select {
		case <-ctx.Done():
			s.print("\n")
			s.logger.Info("session interrupted", zap.Int("turns", s.engine.Turns()))
			return nil
		case r = <-lines:
		}

		if r.err == nil || r.line != "" {
			if !s.engine.Process(r.line) {
				s.logger.Info("player quit", zap.Int("turns", s.engine.Turns()))
				return nil
			}
		}
		if s.engine.Won() {
			break
		}
		if r.err != nil {
			if errors.Is(r.err, io.EOF) {
				s.print("\n")
				s.logger.Info("input closed", zap.Int("turns", s.engine.Turns()))
				return nil
			}
			return fmt.Errorf("reading input: %w", r.err)
		}
	}

	s.print("\n" + s.palette.Paint(s.palette.Banner, Banner) + "\n\n")
	s.logger.Info("game won", zap.Int("turns", s.engine.Turns()))
	return nil
}

// readLoop feeds input lines to Run until an error or ctx is done.
func (s *Session) readLoop(ctx context.Context, lines chan<- readResult, done chan<- struct{}) {
	defer close(done)
	for {
		line, err := s.input.ReadLine()
		select {
		case lines <- readResult{line: line, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.out, text)
}
