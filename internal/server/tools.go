package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// labColorSchema describes an L*a*b* triple argument.
func labColorSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "number"},
		"description": description + " as [L, a, b] with L in 0-100 and a, b in -128 to 127",
	}
}

var applicationTypeSchema = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"graphicArts", "textiles"},
	"description": "CIE94 weighting: graphicArts (default) or textiles",
	"default":     "graphicArts",
}

var thresholdTypeSchema = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"acceptability", "imperceptibility"},
	"description": "CMC l:c ratio: acceptability (2:1, default) or imperceptibility (1:1)",
	"default":     "acceptability",
}

var discardExcessSchema = map[string]interface{}{
	"type":        "boolean",
	"description": "Drop channels beyond the third (e.g. alpha) instead of failing. Default false",
	"default":     false,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Difference
		{
			Name:        "delta_e_cie1976",
			Description: "CIE76 color difference: Euclidean distance between two L*a*b* colors. Symmetric.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color_a": labColorSchema("First color"),
					"color_b": labColorSchema("Second color"),
				},
				"required": []string{"color_a", "color_b"},
			},
		},
		{
			Name:        "delta_e_cie1994",
			Description: "CIE94 color difference with graphic arts or textiles weighting. Order matters: the reference chroma weights the result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"reference":        labColorSchema("Reference color"),
					"sample":           labColorSchema("Sample color"),
					"application_type": applicationTypeSchema,
				},
				"required": []string{"reference", "sample"},
			},
		},
		{
			Name:        "delta_e_ciede2000",
			Description: "CIEDE2000 color difference, the current CIE recommendation for small color differences.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"reference": labColorSchema("Reference color"),
					"sample":    labColorSchema("Sample color"),
				},
				"required": []string{"reference", "sample"},
			},
		},
		{
			Name:        "delta_e_cmc1984",
			Description: "CMC l:c color difference with acceptability (2:1) or imperceptibility (1:1) weighting. Weighted by the first color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color_a":        labColorSchema("First (standard) color"),
					"color_b":        labColorSchema("Second color"),
					"threshold_type": thresholdTypeSchema,
				},
				"required": []string{"color_a", "color_b"},
			},
		},
		{
			Name:        "delta_e_compare",
			Description: "Compute CIE76, CIE94, CIEDE2000 and CMC l:c for one color pair in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"reference":        labColorSchema("Reference color"),
					"sample":           labColorSchema("Sample color"),
					"application_type": applicationTypeSchema,
					"threshold_type":   thresholdTypeSchema,
				},
				"required": []string{"reference", "sample"},
			},
		},
		{
			Name:        "delta_e_swatch",
			Description: "Render two L*a*b* colors side by side as a PNG swatch, optionally labeled with their color difference.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"reference": labColorSchema("Reference color (left)"),
					"sample":    labColorSchema("Sample color (right)"),
					"metric": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"cie1976", "cie1994", "ciede2000", "cmc1984"},
						"description": "Metric used for the label and result. Default ciede2000",
						"default":     "ciede2000",
					},
					"application_type": applicationTypeSchema,
					"threshold_type":   thresholdTypeSchema,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch width in pixels. Default 200",
						"default":     200,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch height in pixels. Default 100",
						"default":     100,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
					"divider_color": map[string]interface{}{
						"type":        "string",
						"description": "Optional hex color for a center divider (e.g., '#FFFFFF')",
					},
					"show_label": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the color difference value on the swatch. Default true",
						"default":     true,
					},
				},
				"required": []string{"reference", "sample"},
			},
		},

		// Color Inspection
		{
			Name:        "lab_to_lch",
			Description: "Convert an L*a*b* color to L*C*h (lightness, chroma, hue angle in degrees).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":                   labColorSchema("Color"),
					"discard_excess_channels": discardExcessSchema,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "lab_validate",
			Description: "Check whether a color is a valid L*a*b* triple and report which channels are out of range.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":                   labColorSchema("Color"),
					"discard_excess_channels": discardExcessSchema,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "kl_value",
			Description: "Return the CIE94 lightness weight kL for an application type (1 for graphicArts, 2 for textiles).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"application_type": applicationTypeSchema,
				},
				"required": []string{"application_type"},
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
