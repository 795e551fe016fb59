// Package server implements the MCP (Model Context Protocol) server for color difference tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the deltae package
// through the MCP protocol, so that AI assistants and other MCP-compatible
// clients can ask how visually different two colors are.
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
// Color Difference:
//   - delta_e_cie1976: Euclidean distance in L*a*b*
//   - delta_e_cie1994: CIE94 with graphicArts or textiles weighting
//   - delta_e_ciede2000: CIEDE2000
//   - delta_e_cmc1984: CMC l:c with acceptability or imperceptibility ratio
//   - delta_e_compare: All four metrics for one pair
//   - delta_e_swatch: PNG swatch of the pair, labeled with its difference
//
// Color Inspection:
//   - lab_to_lch: Cylindrical L*C*h form of a color
//   - lab_validate: Per-channel range check
//   - kl_value: CIE94 lightness weight for an application type
//
// Colors are always passed as [L, a, b] arrays. The server does not convert
// from RGB; clients must supply L*a*b* values.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "expected 3 color channels, got 4: [1, 2, 3, 4]"
//
// CIE94 and CMC l:c can yield NaN for some nearly collinear inputs. Since JSON
// cannot carry NaN, such results are reported as "delta_e": null with "nan": true.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
