package server

import (
	"encoding/json"
	"image"

	"github.com/pkg/errors"

	"github.com/ironsheep/color-picker-mcp/internal/colormath"
	"github.com/ironsheep/color-picker-mcp/internal/picker"
	"github.com/ironsheep/color-picker-mcp/internal/surface"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "picker_engage").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		Logger().Warn("tool failed", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	Logger().Debug("tool call", "tool", name)

	switch name {
	// Conversions
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_from_hsl":
		return s.handleColorFromHSL(args)
	case "color_from_cmyk":
		return s.handleColorFromCMYK(args)

	// Picker interaction
	case "picker_init":
		return s.handlePickerInit(args)
	case "picker_engage":
		return s.handlePickerEngage(args)
	case "picker_sample":
		return s.handlePickerSample(args)
	case "picker_move":
		return s.handlePickerMove(args)
	case "picker_disengage":
		return s.handlePickerDisengage(args)
	case "picker_set_channel":
		return s.handlePickerSetChannel(args)
	case "picker_state":
		return s.pickerState(), nil
	case "picker_snapshot":
		return s.handlePickerSnapshot(args)

	default:
		return nil, errors.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Absent arguments decode as an
// empty object.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return errors.Wrap(err, "invalid arguments")
	}
	return nil
}

// === Conversion Handlers ===

type colorConvertArgs struct {
	Hex string `json:"hex"`
	R   *int   `json:"r"`
	G   *int   `json:"g"`
	B   *int   `json:"b"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Hex != "" {
		rgb, err := colormath.ParseHex(a.Hex)
		if err != nil {
			return nil, err
		}
		return colormath.NewBundle(rgb), nil
	}
	if a.R == nil || a.G == nil || a.B == nil {
		return nil, errors.New("either hex or all of r, g, b are required")
	}
	for _, v := range []int{*a.R, *a.G, *a.B} {
		if v < 0 || v > 255 {
			return nil, errors.Errorf("channel %d out of range 0-255", v)
		}
	}
	return colormath.NewBundle(colormath.RGB{R: *a.R, G: *a.G, B: *a.B}), nil
}

type colorFromHSLArgs struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

func (s *Server) handleColorFromHSL(args json.RawMessage) (interface{}, error) {
	var a colorFromHSLArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return colormath.NewBundle(colormath.HSLToRGB(a.H, a.S, a.L)), nil
}

type colorFromCMYKArgs struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

func (s *Server) handleColorFromCMYK(args json.RawMessage) (interface{}, error) {
	var a colorFromCMYKArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return colormath.NewBundle(colormath.CMYKToRGB(a.C, a.M, a.Y, a.K)), nil
}

// === Picker Handlers ===

// PickerState is the result of every picker tool.
type PickerState struct {
	Color    picker.Color  `json:"color"`
	HSL      colormath.HSL `json:"hsl"`
	State    string        `json:"state"`
	Dragging bool          `json:"dragging"`
	Focus    bool          `json:"focus"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
}

func (s *Server) pickerState() *PickerState {
	c := s.picker.Color()
	w, h := s.canvas.Size()
	return &PickerState{
		Color:    c,
		HSL:      c.HSL(),
		State:    s.picker.State().String(),
		Dragging: s.picker.Dragging(),
		Focus:    s.picker.Focus(),
		Width:    w,
		Height:   h,
	}
}

type pickerInitArgs struct {
	BoundingBox *surface.Box `json:"bounding_box"`
}

func (s *Server) handlePickerInit(args json.RawMessage) (interface{}, error) {
	var a pickerInitArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.picker.InitializeSurface(s.canvas); err != nil {
		return nil, err
	}
	if a.BoundingBox != nil {
		s.canvas.SetBoundingBox(*a.BoundingBox)
	}
	return s.pickerState(), nil
}

// pointerArgs carries client coordinates. Both are optional for
// picker_sample, which falls back to the stored position.
type pointerArgs struct {
	ClientX *float64 `json:"client_x"`
	ClientY *float64 `json:"client_y"`
	Force   bool     `json:"force"`
	Reason  string   `json:"reason"`
}

func (a pointerArgs) event(kind picker.EventKind) (*picker.PointerEvent, error) {
	if a.ClientX == nil && a.ClientY == nil {
		return nil, nil
	}
	if a.ClientX == nil || a.ClientY == nil {
		return nil, errors.New("client_x and client_y must be given together")
	}
	return &picker.PointerEvent{Kind: kind, ClientX: *a.ClientX, ClientY: *a.ClientY}, nil
}

func (a pointerArgs) requireEvent(kind picker.EventKind) (*picker.PointerEvent, error) {
	ev, err := a.event(kind)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, errors.New("client_x and client_y are required")
	}
	return ev, nil
}

func (s *Server) handlePickerEngage(args json.RawMessage) (interface{}, error) {
	var a pointerArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ev, err := a.requireEvent(picker.PointerDown)
	if err != nil {
		return nil, err
	}
	if err := s.picker.Engage(s.canvas, ev); err != nil {
		return nil, err
	}
	return s.pickerState(), nil
}

func (s *Server) handlePickerSample(args json.RawMessage) (interface{}, error) {
	var a pointerArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ev, err := a.event(picker.PointerMove)
	if err != nil {
		return nil, err
	}
	if err := s.picker.SampleColor(s.canvas, ev, a.Force); err != nil {
		return nil, err
	}
	return s.pickerState(), nil
}

func (s *Server) handlePickerMove(args json.RawMessage) (interface{}, error) {
	var a pointerArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ev, err := a.requireEvent(picker.PointerMove)
	if err != nil {
		return nil, err
	}
	if err := s.picker.Handle(s.canvas, *ev); err != nil {
		return nil, err
	}
	return s.pickerState(), nil
}

func (s *Server) handlePickerDisengage(args json.RawMessage) (interface{}, error) {
	var a pointerArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	switch a.Reason {
	case "", "up", "leave":
	default:
		return nil, errors.Errorf("unknown reason %q, expected up or leave", a.Reason)
	}
	s.picker.Disengage()
	return s.pickerState(), nil
}

type pickerSetChannelArgs struct {
	Channel string   `json:"channel"`
	Value   *float64 `json:"value"`
}

func (s *Server) handlePickerSetChannel(args json.RawMessage) (interface{}, error) {
	var a pickerSetChannelArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ch, err := picker.ParseChannel(a.Channel)
	if err != nil {
		return nil, err
	}
	if a.Value == nil {
		return nil, errors.New("value is required")
	}
	if err := s.picker.SetChannelValue(ch, *a.Value); err != nil {
		return nil, err
	}
	return s.pickerState(), nil
}

type pickerSnapshotArgs struct {
	X      *int    `json:"x"`
	Y      *int    `json:"y"`
	Radius int     `json:"radius"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handlePickerSnapshot(args json.RawMessage) (interface{}, error) {
	var a pickerSnapshotArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = s.cfg.SnapshotScale
	}

	opts := surface.SnapshotOptions{Scale: a.Scale}
	if a.X != nil || a.Y != nil {
		pos := s.picker.Color().Position()
		if a.X != nil {
			pos.X = *a.X
		}
		if a.Y != nil {
			pos.Y = *a.Y
		}
		if a.Radius <= 0 {
			a.Radius = 10
		}
		crop := image.Rect(pos.X-a.Radius, pos.Y-a.Radius, pos.X+a.Radius+1, pos.Y+a.Radius+1)
		opts.Crop = &crop
	}

	res, err := surface.Snapshot(s.canvas, opts)
	if err != nil {
		if errors.Is(err, surface.ErrNotSized) {
			return nil, errors.Wrap(picker.ErrSurfaceNotInitialized, "call picker_init first")
		}
		return nil, err
	}
	return res, nil
}
