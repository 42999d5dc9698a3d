// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// NewMCPServer initializes and configures the CRS MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"CRS Calculator Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: evaluate_profile ---
	s.AddTool(mcp.NewTool("evaluate_profile",
		mcp.WithDescription("Compute the CRS score breakdown of a stored profile."),
		mcp.WithString("name", mcp.Description("Profile name (defaults to the first stored profile).")),
		mcp.WithBoolean("explain", mcp.Description("Include the skill transferability sub-rule breakdown.")),
	), h.handleEvaluateProfile)

	// --- 2. Tool: evaluate_input ---
	s.AddTool(mcp.NewTool("evaluate_input",
		mcp.WithDescription("Compute the CRS score of an ad-hoc applicant. Missing fields take default values; out-of-range numbers are clamped."),
		mcp.WithString("input", mcp.Description("ApplicantInput as a JSON object, e.g. {\"age\": 29, \"educationLevel\": \"masters\"}."), mcp.Required()),
		mcp.WithString("name", mcp.Description("Label for the result.")),
		mcp.WithBoolean("explain", mcp.Description("Include the skill transferability sub-rule breakdown.")),
	), h.handleEvaluateInput)

	// --- 3. Tool: compare_profiles ---
	s.AddTool(mcp.NewTool("compare_profiles",
		mcp.WithDescription("Compare stored profiles category by category, ranked by total score."),
		mcp.WithString("names", mcp.Description("Comma-separated profile names (defaults to all stored profiles).")),
	), h.handleCompareProfiles)

	// --- 4. Tool: list_profiles ---
	s.AddTool(mcp.NewTool("list_profiles",
		mcp.WithDescription("List stored profiles with rank, total score and interpretation band."),
	), h.handleListProfiles)

	// --- 5. Tool: update_profile ---
	s.AddTool(mcp.NewTool("update_profile",
		mcp.WithDescription("Set one input field of a stored profile and return its recomputed score."),
		mcp.WithString("name", mcp.Description("Profile name."), mcp.Required()),
		mcp.WithString("field", mcp.Description("Field key, e.g. age, educationLevel, firstLanguage.speaking."), mcp.Required(), mcp.Enum(schema.FieldKeys...)),
		mcp.WithString("value", mcp.Description("New value. Booleans accept yes/no/true/false/1/0."), mcp.Required()),
	), h.handleUpdateProfile)

	// --- 6. Tool: score_bands ---
	s.AddTool(mcp.NewTool("score_bands",
		mcp.WithDescription("Return the interpretation guide that maps totals to invitation outlooks."),
	), h.handleScoreBands)

	return s
}

// StartMCPServer starts the CRS MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager, version string) error {
	s := NewMCPServer(baseCfg, mgr, version)
	contract.Logger().Info("starting MCP server", zap.String("transport", "stdio"))
	return server.ServeStdio(s)
}
