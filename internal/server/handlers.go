package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/ironsheep/color-delta-mcp/internal/deltae"
	"github.com/ironsheep/color-delta-mcp/internal/swatch"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "delta_e_ciede2000", "lab_to_lch").
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
// Tool execution errors, including color validation failures, return a
// JSON-RPC error response with code -32000 and the error text as data.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	text, err := marshalResult(result)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Calls the appropriate deltae or swatch function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Difference
	case "delta_e_cie1976":
		return s.handleCIE1976(args)
	case "delta_e_cie1994":
		return s.handleCIE1994(args)
	case "delta_e_ciede2000":
		return s.handleCIEDE2000(args)
	case "delta_e_cmc1984":
		return s.handleCMC1984(args)
	case "delta_e_compare":
		return s.handleCompare(args)
	case "delta_e_swatch":
		return s.handleSwatch(args)

	// Color Inspection
	case "lab_to_lch":
		return s.handleLabToLCh(args)
	case "lab_validate":
		return s.handleLabValidate(args)
	case "kl_value":
		return s.handleKlValue(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
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

// marshalResult converts a tool result to a pretty-printed JSON string.
func marshalResult(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(b), nil
}

// unmarshalArgs decodes tool arguments, treating absent arguments as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	return json.Unmarshal(args, v)
}

// jsonNumber maps NaN to nil, since JSON has no representation for it.
func jsonNumber(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// === Color Difference Handlers ===

// DeltaEResult is returned by the single-metric tools.
type DeltaEResult struct {
	Metric          deltae.Metric `json:"metric"`
	DeltaE          *float64      `json:"delta_e"`
	NaN             bool          `json:"nan,omitempty"`
	ApplicationType string        `json:"application_type,omitempty"`
	ThresholdType   string        `json:"threshold_type,omitempty"`
}

func newDeltaEResult(m deltae.Metric, v float64) *DeltaEResult {
	return &DeltaEResult{Metric: m, DeltaE: jsonNumber(v), NaN: math.IsNaN(v)}
}

type colorPairArgs struct {
	ColorA []float64 `json:"color_a"`
	ColorB []float64 `json:"color_b"`
}

type referenceSampleArgs struct {
	Reference       []float64 `json:"reference"`
	Sample          []float64 `json:"sample"`
	ApplicationType string    `json:"application_type"`
	ThresholdType   string    `json:"threshold_type"`
}

func (a referenceSampleArgs) options() deltae.Options {
	return deltae.Options{
		Application: deltae.ApplicationType(a.ApplicationType),
		Threshold:   deltae.ThresholdType(a.ThresholdType),
	}
}

func (s *Server) handleCIE1976(args json.RawMessage) (interface{}, error) {
	var a colorPairArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	v, err := deltae.CIE1976(a.ColorA, a.ColorB)
	if err != nil {
		return nil, err
	}
	return newDeltaEResult(deltae.MetricCIE1976, v), nil
}

func (s *Server) handleCIE1994(args json.RawMessage) (interface{}, error) {
	var a referenceSampleArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	app := deltae.ApplicationType(a.ApplicationType)
	v, err := deltae.CIE1994(a.Reference, a.Sample, app)
	if err != nil {
		return nil, err
	}
	result := newDeltaEResult(deltae.MetricCIE1994, v)
	result.ApplicationType = string(app.Resolve())
	return result, nil
}

func (s *Server) handleCIEDE2000(args json.RawMessage) (interface{}, error) {
	var a referenceSampleArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	v, err := deltae.CIEDE2000(a.Reference, a.Sample)
	if err != nil {
		return nil, err
	}
	return newDeltaEResult(deltae.MetricCIEDE2000, v), nil
}

type cmcArgs struct {
	ColorA        []float64 `json:"color_a"`
	ColorB        []float64 `json:"color_b"`
	ThresholdType string    `json:"threshold_type"`
}

func (s *Server) handleCMC1984(args json.RawMessage) (interface{}, error) {
	var a cmcArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	threshold := deltae.ThresholdType(a.ThresholdType)
	v, err := deltae.CMC1984(a.ColorA, a.ColorB, threshold)
	if err != nil {
		return nil, err
	}
	result := newDeltaEResult(deltae.MetricCMC1984, v)
	result.ThresholdType = string(threshold.Resolve())
	return result, nil
}

// CompareResult holds every metric for one color pair.
type CompareResult struct {
	Reference       deltae.Lab `json:"reference"`
	Sample          deltae.Lab `json:"sample"`
	CIE1976         *float64   `json:"cie1976"`
	CIE1994         *float64   `json:"cie1994"`
	CIEDE2000       *float64   `json:"ciede2000"`
	CMC1984         *float64   `json:"cmc1984"`
	ApplicationType string     `json:"application_type"`
	ThresholdType   string     `json:"threshold_type"`
}

func (s *Server) handleCompare(args json.RawMessage) (interface{}, error) {
	var a referenceSampleArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	opts := a.options()
	cmp, err := deltae.Compare(a.Reference, a.Sample, opts)
	if err != nil {
		return nil, err
	}
	return &CompareResult{
		Reference:       deltae.Lab{a.Reference[0], a.Reference[1], a.Reference[2]},
		Sample:          deltae.Lab{a.Sample[0], a.Sample[1], a.Sample[2]},
		CIE1976:         jsonNumber(cmp.CIE1976),
		CIE1994:         jsonNumber(cmp.CIE1994),
		CIEDE2000:       jsonNumber(cmp.CIEDE2000),
		CMC1984:         jsonNumber(cmp.CMC1984),
		ApplicationType: string(opts.Application.Resolve()),
		ThresholdType:   string(opts.Threshold.Resolve()),
	}, nil
}

type swatchArgs struct {
	referenceSampleArgs
	Metric       string  `json:"metric"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Scale        float64 `json:"scale"`
	DividerColor string  `json:"divider_color"`
	ShowLabel    *bool   `json:"show_label"`
}

// SwatchToolResult combines the rendered swatch with the measured difference.
type SwatchToolResult struct {
	*swatch.Result
	Metric deltae.Metric `json:"metric"`
	DeltaE *float64      `json:"delta_e"`
}

func (s *Server) handleSwatch(args json.RawMessage) (interface{}, error) {
	var a swatchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Metric == "" {
		a.Metric = string(deltae.MetricCIEDE2000)
	}
	if a.Width == 0 {
		a.Width = 200
	}
	if a.Height == 0 {
		a.Height = 100
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	metric, err := deltae.ParseMetric(a.Metric)
	if err != nil {
		return nil, err
	}
	ref, err := deltae.CheckColor(a.Reference, false)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	smp, err := deltae.CheckColor(a.Sample, false)
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	v, err := deltae.Difference(metric, ref[:], smp[:], a.options())
	if err != nil {
		return nil, err
	}

	opts := swatch.Options{
		Width:        a.Width,
		Height:       a.Height,
		Scale:        a.Scale,
		DividerColor: a.DividerColor,
	}
	// The label font has digits only, so NaN gets no label.
	if (a.ShowLabel == nil || *a.ShowLabel) && !math.IsNaN(v) {
		opts.Label = fmt.Sprintf("%.2f", v)
	}

	rendered, err := swatch.Render(ref, smp, opts)
	if err != nil {
		return nil, err
	}
	return &SwatchToolResult{Result: rendered, Metric: metric, DeltaE: jsonNumber(v)}, nil
}

// === Color Inspection Handlers ===

type singleColorArgs struct {
	Color                 []float64 `json:"color"`
	DiscardExcessChannels bool      `json:"discard_excess_channels"`
}

// LabToLChResult pairs the validated input with its cylindrical form.
type LabToLChResult struct {
	Lab deltae.Lab `json:"lab"`
	LCh deltae.LCh `json:"lch"`
}

func (s *Server) handleLabToLCh(args json.RawMessage) (interface{}, error) {
	var a singleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	lab, err := deltae.CheckColor(a.Color, a.DiscardExcessChannels)
	if err != nil {
		return nil, err
	}
	return &LabToLChResult{Lab: lab, LCh: deltae.LabToLCh(lab)}, nil
}

// ValidateResult reports whether a color is usable by the delta-E tools.
// Channels is omitted when the channel count itself is wrong.
type ValidateResult struct {
	Valid      bool                    `json:"valid"`
	Color      *deltae.Lab             `json:"color,omitempty"`
	Channels   *[3]bool                `json:"channels,omitempty"`
	Kind       string                  `json:"kind,omitempty"`
	Error      string                  `json:"error,omitempty"`
	Violations []deltae.RangeViolation `json:"violations,omitempty"`
}

func (s *Server) handleLabValidate(args json.RawMessage) (interface{}, error) {
	var a singleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	lab, err := deltae.CheckColor(a.Color, a.DiscardExcessChannels)
	if err == nil {
		channels := deltae.IsValidLabColor(lab)
		return &ValidateResult{Valid: true, Color: &lab, Channels: &channels}, nil
	}

	var verr *deltae.Error
	if !errors.As(err, &verr) {
		return nil, err
	}
	result := &ValidateResult{
		Kind:       verr.Kind.String(),
		Error:      verr.Error(),
		Violations: verr.Violations,
	}
	if verr.Kind == deltae.CoordinateRange {
		c := deltae.Lab{verr.Values[0], verr.Values[1], verr.Values[2]}
		channels := deltae.IsValidLabColor(c)
		result.Channels = &channels
	}
	return result, nil
}

type klValueArgs struct {
	ApplicationType string `json:"application_type"`
}

// KlValueResult reports the CIE94 lightness weight.
type KlValueResult struct {
	ApplicationType string  `json:"application_type"`
	Kl              float64 `json:"kl"`
}

func (s *Server) handleKlValue(args json.RawMessage) (interface{}, error) {
	var a klValueArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return &KlValueResult{
		ApplicationType: string(deltae.ApplicationType(a.ApplicationType).Resolve()),
		Kl:              deltae.GetKlValue(a.ApplicationType),
	}, nil
}
