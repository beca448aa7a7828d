package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/cvtheory/chord"
	"github.com/jsphweid/cvtheory/model"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serves the engine as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("starting MCP server")
		if err := server.ServeStdio(NewMCPServer()); err != nil {
			return fault.Wrap(err, fmsg.WithDesc("serve mcp", "The MCP server stopped"))
		}
		return nil
	},
}

func toolResult(v any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		issue := fmsg.GetIssue(err)
		if issue == "" {
			issue = err.Error()
		}
		return mcp.NewToolResultError(issue), nil
	}
	asJson, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result to JSON: %v", err)
	}
	return mcp.NewToolResultText(string(asJson)), nil
}

func parseDegrees(s string) ([]int, error) {
	var res []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := atoiArg("degree", part)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

func handleQuantizeTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	volts, err := request.RequireFloat("volts")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body := model.QuantizeRequestBody{
		Volts: volts,
		Root:  request.GetInt("root", 0),
		Scale: request.GetInt("scale", 1),
	}
	logger.Debug("[mcp] quantize", "body", body)
	return toolResult(doQuantize(body))
}

func handleResolveTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	m, err := request.RequireInt("mode")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	degree, err := request.RequireInt("degree")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body := model.ResolveRequestBody{Mode: m, Tonic: request.GetInt("tonic", 0), Degree: degree}
	logger.Debug("[mcp] resolve", "body", body)
	return toolResult(doResolve(body))
}

func handleVoicingTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("chord")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, ok := chords.ByName(name)
	if !ok {
		n, err := strconv.Atoi(name)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("no chord named %q", name)), nil
		}
		id = chord.ID(n)
	}
	body := model.VoicingRequestBody{
		Chord:     int(id),
		Root:      request.GetInt("root", 0),
		Inversion: request.GetInt("inversion", 0),
		Repeat:    request.GetString("repeat", "repeat"),
	}
	logger.Debug("[mcp] voicing", "body", body)
	return toolResult(doVoicing(body))
}

func handleProgressionTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	degrees, err := parseDegrees(request.GetString("degrees", "0,3,4,0"))
	if err != nil {
		return toolResult(nil, err)
	}
	body := model.ProgressionRequestBody{
		Mode:      request.GetInt("mode", 0),
		Tonic:     request.GetInt("tonic", 0),
		Degrees:   degrees,
		Inversion: request.GetInt("inversion", 0),
		Repeat:    request.GetString("repeat", "repeat"),
	}
	logger.Debug("[mcp] progression", "body", body)
	cs, err := doProgression(body)
	if err != nil {
		return toolResult(nil, err)
	}
	return toolResult(progressionResponse(cs), nil)
}

func NewMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"cvtheory",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.AddTool(mcp.NewTool("cvtheory_quantize",
		mcp.WithDescription("Snaps a 1V/oct voltage (0V = middle C) to the nearest tone of a scale."),
		mcp.WithNumber("volts", mcp.Required(), mcp.Description("The voltage to quantize.")),
		mcp.WithNumber("root", mcp.Description("Root pitch class, 0 (C) to 11 (B).")),
		mcp.WithNumber("scale", mcp.Description("Scale id: 0 Chromatic, 1 Ionian ... 11 Blues.")),
	), handleQuantizeTool)

	s.AddTool(mcp.NewTool("cvtheory_resolve",
		mcp.WithDescription("Returns the root and triad quality of a scale degree in one of the seven modes."),
		mcp.WithNumber("mode", mcp.Required(), mcp.Description("Mode, 0 (Ionian) to 6 (Locrian).")),
		mcp.WithNumber("tonic", mcp.Description("Tonic pitch class, 0 (C) to 11 (B).")),
		mcp.WithNumber("degree", mcp.Required(), mcp.Description("Scale degree, 0 to 6.")),
	), handleResolveTool)

	s.AddTool(mcp.NewTool("cvtheory_voicing",
		mcp.WithDescription("Returns the six voice offsets and output voltages of a chord inversion."),
		mcp.WithString("chord", mcp.Required(), mcp.Description("Chord name (M, m, 7, m7, 6/9, ...) or table row.")),
		mcp.WithNumber("root", mcp.Description("Root pitch class, 0 (C) to 11 (B).")),
		mcp.WithNumber("inversion", mcp.Description("Inversion index.")),
		mcp.WithString("repeat", mcp.Description("Repeat notes: lower, repeat, upper or random.")),
	), handleVoicingTool)

	s.AddTool(mcp.NewTool("cvtheory_progression",
		mcp.WithDescription("Voices a sequence of scale degrees of a mode as triads."),
		mcp.WithNumber("mode", mcp.Description("Mode, 0 (Ionian) to 6 (Locrian).")),
		mcp.WithNumber("tonic", mcp.Description("Tonic pitch class, 0 (C) to 11 (B).")),
		mcp.WithString("degrees", mcp.Description("Comma separated scale degrees, e.g. \"0,3,4,0\".")),
		mcp.WithNumber("inversion", mcp.Description("Inversion of every triad, 0 to 2.")),
		mcp.WithString("repeat", mcp.Description("Repeat notes: lower, repeat, upper or random.")),
	), handleProgressionTool)

	return s
}
