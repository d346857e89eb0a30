// Package server exposes the organizer operations as Model Context Protocol
// tools and forwards organizer events to connected clients.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/mj1618/organizer-cli/internal/events"
	"github.com/mj1618/organizer-cli/internal/organizer"
	"github.com/mj1618/organizer-cli/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the organizer service and cache.
type Server struct {
	svc   *organizer.Service
	cache *WindowCache
	mcp   *mcpserver.MCPServer

	// stdio transport streams.
	stdin  io.Reader
	stdout io.Writer
}

// New creates and configures an MCP server with all organizer tools.
func New(svc *organizer.Service, cfg Config) *Server {
	s := &Server{
		svc:    svc,
		cache:  NewWindowCache(cfg.CacheTTL),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	s.mcp = mcpserver.NewMCPServer(
		"organizer",
		version.Version,
		mcpserver.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

// Emit forwards an organizer event to every connected client as the
// notification "notifications/<event name>".
func (s *Server) Emit(_ context.Context, ev events.Event) error {
	s.mcp.SendNotificationToAllClients("notifications/"+ev.Name, map[string]any{
		"id":      ev.ID,
		"time":    ev.Time.Format(time.RFC3339Nano),
		"payload": ev.Payload,
	})
	return nil
}

// Serve runs the transport and the focus watchers until ctx is done or the
// transport stops. The stdio transport stops when the client closes stdin.
func (s *Server) Serve(ctx context.Context, cfg Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.svc.Watch(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		defer cancel()
		return s.serveTransport(ctx, cfg)
	})
	return g.Wait()
}

func (s *Server) serveTransport(ctx context.Context, cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		logger.Debugf(ctx, "serving MCP over stdio")
		err := mcpserver.NewStdioServer(s.mcp).Listen(ctx, s.stdin, s.stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case "streamable-http":
		addr := fmt.Sprintf(":%d", cfg.Port)
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Errorf(ctx, "unable to shut down MCP HTTP server: %v", err)
			}
		}()
		logger.Infof(ctx, "serving MCP over streamable-http on %s", addr)
		err := httpServer.Start(addr)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List the matching application windows in OS enumeration order"),
		),
		s.handleList,
	)

	// active
	s.mcp.AddTool(
		mcp.NewTool("active",
			mcp.WithDescription("Return the foreground window when it is a matching window, otherwise null"),
		),
		s.handleActive,
	)

	// focus
	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Bring a window to the foreground by handle"),
			mcp.WithString("hwnd", mcp.Description("Window handle, decimal or 0x-prefixed hex"), mcp.Required()),
		),
		s.handleFocus,
	)

	// next
	s.mcp.AddTool(
		mcp.NewTool("next",
			mcp.WithDescription("Focus the next matching window, wrapping around"),
		),
		s.handleNext,
	)

	// prev
	s.mcp.AddTool(
		mcp.NewTool("prev",
			mcp.WithDescription("Focus the previous matching window, wrapping around"),
		),
		s.handlePrev,
	)

	// click_all
	s.mcp.AddTool(
		mcp.NewTool("click_all",
			mcp.WithDescription("Left-click every matching window at the current pointer position"),
			mcp.WithNumber("delay", mcp.Description("Click windows one at a time with this delay in ms between them")),
		),
		s.handleClickAll,
	)

	// refresh
	s.mcp.AddTool(
		mcp.NewTool("refresh",
			mcp.WithDescription("Re-enumerate windows into the cycling registry"),
		),
		s.handleRefresh,
	)

	// focus_state
	s.mcp.AddTool(
		mcp.NewTool("focus_state",
			mcp.WithDescription("Report whether the foreground window is the host or a matching window"),
		),
		s.handleFocusState,
	)
}
