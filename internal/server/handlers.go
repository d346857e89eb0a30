package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/output"
	"github.com/mj1618/organizer-cli/internal/platform"
)

// toText serializes v to YAML for MCP responses.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func actionResult(action string, w *model.MatchedWindow, err error) (*mcp.CallToolResult, error) {
	result := output.ActionResult{OK: err == nil, Action: action, Window: w}
	if err != nil {
		result.Message = err.Error()
		return mcp.NewToolResultError(toText(result)), nil
	}
	if w == nil {
		result.Message = "no matching windows"
	}
	return mcp.NewToolResultText(toText(result)), nil
}

func (s *Server) handleList(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	windows := s.cache.ListWindows(ctx, s.svc)
	return mcp.NewToolResultText(toText(output.WindowList{
		TS:      time.Now().Unix(),
		Count:   len(windows),
		Windows: nonNil(windows),
	})), nil
}

func (s *Server) handleActive(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := output.ActiveResult{TS: time.Now().Unix()}
	if w, ok := s.svc.ActiveWindow(ctx); ok {
		result.Active = &w
	}
	return mcp.NewToolResultText(toText(result)), nil
}

func (s *Server) handleFocus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := StringParam(request.GetArguments(), "hwnd", "")
	h, err := platform.ParseHandle(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.Focus(ctx, h); err != nil {
		return actionResult("focus", nil, err)
	}
	var w *model.MatchedWindow
	if active, ok := s.svc.ActiveWindow(ctx); ok {
		w = &active
	}
	return actionResult("focus", w, nil)
}

func (s *Server) handleNext(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	w, err := s.svc.Next(ctx)
	return actionResult("next", w, err)
}

func (s *Server) handlePrev(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	w, err := s.svc.Previous(ctx)
	return actionResult("prev", w, err)
}

func (s *Server) handleClickAll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	var delay *time.Duration
	if HasParam(params, "delay") {
		ms := IntParam(params, "delay", 0)
		if ms < 0 {
			return mcp.NewToolResultError("delay must be >= 0"), nil
		}
		d := time.Duration(ms) * time.Millisecond
		delay = &d
	}
	report, err := s.svc.ClickAll(ctx, delay)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(report)), nil
}

func (s *Server) handleRefresh(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	windows, changes, err := s.svc.RefreshWithChanges(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.cache.Invalidate()
	result := output.WindowList{
		TS:      time.Now().Unix(),
		Count:   len(windows),
		Windows: nonNil(windows),
		Changes: changes,
	}
	if cur, err := s.svc.Registry().Cursor(ctx); err == nil && cur >= 0 {
		result.Cursor = &cur
	}
	return mcp.NewToolResultText(toText(result)), nil
}

func (s *Server) handleFocusState(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(toText(map[string]bool{
		"focused": s.svc.FocusState(ctx),
	})), nil
}

func nonNil(windows []model.MatchedWindow) []model.MatchedWindow {
	if windows == nil {
		return []model.MatchedWindow{}
	}
	return windows
}
