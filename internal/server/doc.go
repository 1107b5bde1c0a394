// Package server implements the MCP (Model Context Protocol) server for the color picker.
//
// The server drives a single picker over JSON-RPC 2.0 so that an agent or an
// external UI layer can convert colors and replay pointer interaction
// against the rendered gradient.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversions (stateless):
//   - color_convert: hex or RGB to every notation
//   - color_from_hsl: HSL to every notation
//   - color_from_cmyk: CMYK to every notation
//
// Picker interaction:
//   - picker_init: size and paint the surface
//   - picker_engage: pointer press
//   - picker_sample: sample under the pointer while dragging
//   - picker_move: pointer motion
//   - picker_disengage: pointer release or leave
//   - picker_set_channel: CMYK slider edit
//   - picker_state: current selection
//   - picker_snapshot: PNG of the surface
//
// Every picker tool returns the same state object: the color bundle, its
// HSL form, the drag state and the surface size.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(cfg)
//	defer srv.Close()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
