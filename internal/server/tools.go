package server

import "github.com/ironsheep/color-picker-mcp/internal/surface"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pointerProperties are the client coordinates shared by the pointer tools.
func pointerProperties() map[string]interface{} {
	return map[string]interface{}{
		"client_x": map[string]interface{}{
			"type":        "number",
			"description": "Pointer X in client coordinates",
		},
		"client_y": map[string]interface{}{
			"type":        "number",
			"description": "Pointer Y in client coordinates",
		},
	}
}

func percentProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"minimum":     0,
		"maximum":     100,
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	samplePointer := pointerProperties()
	samplePointer["force"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Sample even when the picker is not engaged (default false)",
		"default":     false,
	}

	return []Tool{
		// Conversions
		{
			Name:        "color_convert",
			Description: "Convert a color given as hex or 8-bit RGB into hex, RGB, HSL and CMYK.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color, #rrggbb or #rgb. Takes precedence over r, g, b",
					},
					"r": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
					"g": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
					"b": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
				},
			},
		},
		{
			Name:        "color_from_hsl",
			Description: "Convert HSL (hue in degrees, saturation and lightness in percent) to every notation. Out-of-range input yields black.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": map[string]interface{}{
						"type":        "number",
						"minimum":     0,
						"maximum":     360,
						"description": "Hue in degrees",
					},
					"s": percentProperty("Saturation percentage"),
					"l": percentProperty("Lightness percentage"),
				},
				"required": []string{"h", "s", "l"},
			},
		},
		{
			Name:        "color_from_cmyk",
			Description: "Convert CMYK percentages to every notation. Out-of-range input yields black.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"c": percentProperty("Cyan percentage"),
					"m": percentProperty("Magenta percentage"),
					"y": percentProperty("Yellow percentage"),
					"k": percentProperty("Key (black) percentage"),
				},
				"required": []string{"c", "m", "y", "k"},
			},
		},

		// Picker interaction
		{
			Name:        "picker_init",
			Description: "Size the picker surface from the stored color and paint the gradient and marker. Must be called before any sampling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"bounding_box": map[string]interface{}{
						"type":        "object",
						"description": "Where the surface sits in client coordinates. Defaults to the surface size at the origin",
						"properties": map[string]interface{}{
							"left":   map[string]interface{}{"type": "number"},
							"top":    map[string]interface{}{"type": "number"},
							"width":  map[string]interface{}{"type": "number"},
							"height": map[string]interface{}{"type": "number"},
						},
						"required": []string{"left", "top", "width", "height"},
					},
				},
			},
		},
		{
			Name:        "picker_engage",
			Description: "Press the pointer on the gradient: start dragging and pick the color under the pointer.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": pointerProperties(),
				"required":   []string{"client_x", "client_y"},
			},
		},
		{
			Name:        "picker_sample",
			Description: "Pick the color under the pointer if dragging (or when forced). Without coordinates the stored position is re-sampled.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": samplePointer,
			},
		},
		{
			Name:        "picker_move",
			Description: "Move the pointer. Picks a new color only while dragging.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": pointerProperties(),
				"required":   []string{"client_x", "client_y"},
			},
		},
		{
			Name:        "picker_disengage",
			Description: "Release the pointer or leave the surface. Stops dragging without sampling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"reason": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"up", "leave"},
						"description": "Why the drag ended (default up)",
						"default":     "up",
					},
				},
			},
		},
		{
			Name:        "picker_set_channel",
			Description: "Set one CMYK slider. The value is clamped to 0-100; RGB and hex follow, the position is kept.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"channel": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"c", "m", "y", "k"},
						"description": "Slider to set",
					},
					"value": map[string]interface{}{
						"type":        "number",
						"description": "New percentage",
					},
				},
				"required": []string{"channel", "value"},
			},
		},
		{
			Name:        "picker_state",
			Description: "Return the current color, position and drag state.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "picker_snapshot",
			Description: "Render the picker surface as a base64-encoded PNG, optionally cropped around a point.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Crop centre X; defaults to the selected pixel when only y is given",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Crop centre Y; defaults to the selected pixel when only x is given",
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Crop half-size in pixels (default 10)",
						"default":     10,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 4.0 to enlarge). Defaults to the configured snapshot scale",
						"exclusiveMinimum": 0,
						"maximum":          surface.MaxSnapshotScale,
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
