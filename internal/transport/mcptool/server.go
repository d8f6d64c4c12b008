package mcptool

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/heartmarshall/question-scorer/internal/scoring"
)

const serverName = "question-scorer"

// NewServer registers the scoring tools and the rubric resource.
func NewServer(svc evaluationService, ranks scoring.RankTable, budget budgetStatus, version string) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
	)

	scoreTool := NewScoreTool(svc)
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	sessionTool := NewSessionTool(svc)
	s.AddTool(sessionTool.Definition(), sessionTool.Handle)

	rubric := NewRubricResource(ranks, budget)
	s.AddResource(rubric.Resource(), rubric.Handle)

	return s
}
