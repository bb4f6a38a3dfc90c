// Package mcpserver exposes the adventure as a Model Context Protocol tool so
// an agent can play it over streamable HTTP.
package mcpserver

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/cory-johannsen/magicruby/internal/config"
	"github.com/cory-johannsen/magicruby/internal/game/engine"
	"github.com/cory-johannsen/magicruby/internal/observability"
)

// ToolName is the name of the single tool the server registers.
const ToolName = "command"

const shutdownTimeout = 5 * time.Second

// CommandInput is the argument of the command tool.
type CommandInput struct {
	Command string `json:"command" jsonschema:"Game command to execute, e.g. GET DIARY"`
	Reset   bool   `json:"reset,omitempty" jsonschema:"Start a new game before executing the command"`
}

// CommandOutput is the result of the command tool.
type CommandOutput struct {
	Output string         `json:"output" jsonschema:"Narrative produced by the command"`
	GameID string         `json:"game_id" jsonschema:"Identifier of the current game"`
	State  engine.Summary `json:"state" jsonschema:"Summary of the current game state"`
}

// Game serializes tool calls against one shared game.
type Game struct {
	mu     sync.Mutex
	id     string
	buf    bytes.Buffer
	engine *engine.Engine
	logger *zap.Logger
}

// NewGame starts a game for the tool to drive.
func NewGame(logger *zap.Logger) *Game {
	g := &Game{logger: observability.Component(logger, "mcp")}
	g.reset()
	return g
}

// reset starts a new game and renders its opening room into g.buf.
//
// Precondition: g.mu is held or g is not yet shared.
func (g *Game) reset() {
	g.id = uuid.NewString()
	g.buf.Reset()
	g.engine = engine.New(&g.buf, g.logger.With(zap.String("game_id", g.id)))
	g.engine.Look()
	g.logger.Info("game started", zap.String("game_id", g.id))
}

// HandleCommand runs one command. An empty command re-renders the current
// room; quitting starts a new game.
func (g *Game) HandleCommand(_ context.Context, _ *mcp.CallToolRequest, input *CommandInput) (*mcp.CallToolResult, *CommandOutput, error) {
	if input == nil {
		input = &CommandInput{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if input.Reset {
		g.reset()
		if strings.TrimSpace(input.Command) == "" {
			return nil, g.output(), nil
		}
	}
	g.buf.Reset()

	if strings.TrimSpace(input.Command) == "" {
		g.engine.Look()
		return nil, g.output(), nil
	}

	wasWon := g.engine.Won()
	if !g.engine.Process(input.Command) {
		g.logger.Info("player quit", zap.String("game_id", g.id))
		g.reset()
		return nil, g.output(), nil
	}
	if g.engine.Won() && !wasWon {
		g.buf.WriteString("\n" + engine.WinBanner + "\n")
	}
	return nil, g.output(), nil
}

func (g *Game) output() *CommandOutput {
	return &CommandOutput{
		Output: g.buf.String(),
		GameID: g.id,
		State:  g.engine.Summary(),
	}
}

// NewMCPServer registers the command tool on a new MCP server.
func NewMCPServer(game *Game, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "magicruby",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolName,
		Description: "Send a command to the Magic Ruby adventure and return the narrative plus a state summary.",
	}, game.HandleCommand)
	return server
}

// Handler mounts the MCP endpoint at cfg.Path behind the origin and token
// checks.
func Handler(server *mcp.Server, cfg config.MCPConfig) http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless:    cfg.Stateless,
		JSONResponse: cfg.JSONResponse,
	})

	mux := http.NewServeMux()
	mux.Handle(cfg.Path, Guard(handler, cfg.Origins, cfg.Token))
	return mux
}

// Guard rejects requests from origins outside allowed and, when token is
// non-empty, requests without the matching bearer token.
func Guard(next http.Handler, allowed []string, token string) http.Handler {
	originSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		originSet[origin] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAllowedOrigin(r, originSet) {
			http.Error(w, "Forbidden origin", http.StatusForbidden)
			return
		}
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isAllowedOrigin(r *http.Request, allowed map[string]struct{}) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// Service serves the MCP endpoint as a lifecycle service.
type Service struct {
	http   *http.Server
	logger *zap.Logger
}

// NewService builds the HTTP server for cfg.
//
// Precondition: cfg must have passed validation.
func NewService(cfg config.MCPConfig, game *Game, version string, logger *zap.Logger) *Service {
	logger = observability.Component(logger, "mcp")
	return &Service{
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           Handler(NewMCPServer(game, version), cfg),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start listens until Stop is called.
func (s *Service) Start() error {
	s.logger.Info("mcp endpoint listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the HTTP server down gracefully.
func (s *Service) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Warn("mcp shutdown", zap.Error(err))
	}
}
