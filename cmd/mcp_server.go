package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/boxlite-labs/boxlite/internal/desktop"
	"github.com/boxlite-labs/boxlite/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the desktop it drives.
type mcpServer struct {
	desktop   *desktop.Desktop
	desktopMu sync.Mutex
	mcp       *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all desktop tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	d, err := newDesktop()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{desktop: d}

	s.mcp = mcpserver.NewMCPServer(
		"boxlite-desktop",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// move
	s.mcp.AddTool(
		mcp.NewTool("move",
			mcp.WithDescription("Move the mouse cursor to absolute screen coordinates"),
			mcp.WithNumber("x", mcp.Description("X coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Y coordinate"), mcp.Required()),
		),
		s.handleMove,
	)

	// click
	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Click the mouse at its current position"),
			mcp.WithString("button", mcp.Description("Mouse button: left, right, middle (default: left)")),
			mcp.WithBoolean("double", mcp.Description("Double-click (left button only)")),
			mcp.WithBoolean("triple", mcp.Description("Triple-click (left button only)")),
		),
		s.handleClick,
	)

	// drag
	s.mcp.AddTool(
		mcp.NewTool("drag",
			mcp.WithDescription("Press the left button at the start coordinates, drag to the end coordinates, and release"),
			mcp.WithNumber("from_x", mcp.Description("Start X coordinate"), mcp.Required()),
			mcp.WithNumber("from_y", mcp.Description("Start Y coordinate"), mcp.Required()),
			mcp.WithNumber("to_x", mcp.Description("End X coordinate"), mcp.Required()),
			mcp.WithNumber("to_y", mcp.Description("End Y coordinate"), mcp.Required()),
		),
		s.handleDrag,
	)

	// cursor_position
	s.mcp.AddTool(
		mcp.NewTool("cursor_position",
			mcp.WithDescription("Query the current mouse cursor position"),
		),
		s.handleCursorPosition,
	)

	// type
	s.mcp.AddTool(
		mcp.NewTool("type",
			mcp.WithDescription("Type literal text into the focused window"),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
		),
		s.handleType,
	)

	// key
	s.mcp.AddTool(
		mcp.NewTool("key",
			mcp.WithDescription("Press a key or key combination (e.g. 'Return', 'ctrl+c', 'alt+F4')"),
			mcp.WithString("sequence", mcp.Description("Key sequence in xdotool syntax"), mcp.Required()),
		),
		s.handleKey,
	)

	// scroll
	s.mcp.AddTool(
		mcp.NewTool("scroll",
			mcp.WithDescription("Move the cursor to a position and scroll"),
			mcp.WithString("direction", mcp.Description("Scroll direction: up, down, left, right"), mcp.Required()),
			mcp.WithNumber("amount", mcp.Description("Scroll clicks (default: 3)")),
			mcp.WithNumber("x", mcp.Description("Scroll at X coordinate")),
			mcp.WithNumber("y", mcp.Description("Scroll at Y coordinate")),
		),
		s.handleScroll,
	)

	// screen_size
	s.mcp.AddTool(
		mcp.NewTool("screen_size",
			mcp.WithDescription("Query the live display geometry"),
		),
		s.handleScreenSize,
	)

	// screenshot
	s.mcp.AddTool(
		mcp.NewTool("screenshot",
			mcp.WithDescription("Capture the desktop as a base64-encoded PNG"),
		),
		s.handleScreenshot,
	)

	// wait_ready
	s.mcp.AddTool(
		mcp.NewTool("wait_ready",
			mcp.WithDescription("Wait until the window manager is running and the display has the configured geometry"),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait (default: configured ready_timeout)")),
			mcp.WithNumber("interval", mcp.Description("Polling interval in ms (default: configured retry_delay)")),
		),
		s.handleWaitReady,
	)
}

// resultToText serializes a result struct to YAML for the MCP response.
func resultToText(result interface{}) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%+v", result)
	}
	return string(b)
}

func (s *mcpServer) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	x := IntParam(params, "x", 0)
	y := IntParam(params, "y", 0)

	s.desktopMu.Lock()
	defer s.desktopMu.Unlock()

	if err := s.desktop.MoveMouse(ctx, x, y); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(MoveResult{OK: true, Action: "move", X: x, Y: y})), nil
}

func (s *mcpServer) handleClick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	button := StringParam(params, "button", "left")
	double := BoolParam(params, "double", false)
	triple := BoolParam(params, "triple", false)

	btn, err := desktop.ParseMouseButton(button)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if double && triple {
		return mcp.NewToolResultError("double and triple are mutually exclusive"), nil
	}
	if (double || triple) && btn != desktop.ButtonLeft {
		return mcp.NewToolResultError("multi-click is only supported for the left button"), nil
	}

	s.desktopMu.Lock()
	defer s.desktopMu.Unlock()

	count := 1
	switch {
	case triple:
		count = 3
		err = s.desktop.TripleClick(ctx)
	case double:
		count = 2
		err = s.desktop.DoubleClick(ctx)
	default:
		err = singleClick(ctx, s.desktop, btn)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(ClickResult{OK: true, Action: "click", Button: button, Count: count})), nil
}

func (s *mcpServer) handleDrag(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	fromX := IntParam(params, "from_x", 0)
	fromY := IntParam(params, "from_y", 0)
	toX := IntParam(params, "to_x", 0)
	toY := IntParam(params, "to_y", 0)

	s.desktopMu.Lock()
	defer s.desktopMu.Unlock()

	if err := s.desktop.Drag(ctx, fromX, fromY, toX, toY); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(DragResult{
		OK: true, Action: "drag",
		FromX: fromX, FromY: fromY, ToX: toX, ToY: toY,
	})), nil
}

func (s *mcpServer) handleCursorPosition(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.desktopMu.Lock()
	defer s.desktopMu.Unlock()

	pos, err := s.desktop.CursorPosition(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(CursorResult{OK: true, Action: "cursor", X: pos.X, Y: pos.Y})), nil
}

func (s *mcpServer) handleType(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := StringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	s.desktopMu.Lock()
	defer s.desktopMu.Unlock()

	if err := s.desktop.TypeText(ctx, text); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(TypeResult{OK: true, Action: "type", Text: text})), nil
}

func (s *mcpServer) handleKey(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sequence := StringParam(params, "sequence", "")
	if sequence == "" {
		return mcp.NewToolResultError("sequence is required"), nil
	}

	s.desktopMu.Lock()
	defer s.desktopMu.Unlock()

	if err := s.desktop.Key(ctx, sequence); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(KeyResult{OK: true, Action: "key", Key: sequence})), nil
}

func (s *mcpServer) handleScroll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	direction := StringParam(params, "direction", "")
	amount := IntParam(params, "amount", 3)
	x := IntParam(params, "x", 0)
	y := IntParam(params, "y", 0)

	s.desktopMu.Lock()
	defer s.desktopMu.Unlock()

	if err := s.desktop.Scroll(ctx, x, y, direction, amount); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(ScrollResult{OK: true, Action: "scroll", Direction: direction, Amount: amount})), nil
}

func (s *mcpServer) handleScreenSize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.desktopMu.Lock()
	defer s.desktopMu.Unlock()

	size, err := s.desktop.ScreenSize(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(ScreenSizeResult{
		OK: true, Action: "screen-size",
		Width: size.Width, Height: size.Height,
	})), nil
}

func (s *mcpServer) handleScreenshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.desktopMu.Lock()
	defer s.desktopMu.Unlock()

	shot, err := s.desktop.CaptureScreenshot(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(shot)), nil
}

func (s *mcpServer) handleWaitReady(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	cfg := s.desktop.Config()
	timeout := cfg.ReadyTimeout()
	if sec := IntParam(params, "timeout", 0); sec > 0 {
		timeout = time.Duration(sec) * time.Second
	}
	interval := cfg.RetryDelay()
	if ms := IntParam(params, "interval", 0); ms > 0 {
		interval = time.Duration(ms) * time.Millisecond
	}

	s.desktopMu.Lock()
	defer s.desktopMu.Unlock()

	start := time.Now()
	if err := s.desktop.WaitUntilReadyFor(ctx, timeout, interval); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	elapsed := fmt.Sprintf("%.1fs", time.Since(start).Seconds())
	return mcp.NewToolResultText(resultToText(WaitResult{OK: true, Action: "wait", Elapsed: elapsed})), nil
}
