// Package mcp exposes the scheduling operations as MCP tools over the stdio
// transport, for use from MCP-capable clients.
package mcp

import (
	"context"
	"log/slog"

	"github.com/akwright/studybuddy/internal/domain/schedule"
	"github.com/akwright/studybuddy/internal/domain/session"
	"github.com/akwright/studybuddy/internal/domain/student"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `Study Buddy tracks students, their courses, weekly availability, and
proposed group study sessions. Ids look like s1 (students) and S1 (sessions); slots look like
"TUE 15:00-16:00". State persists to CSV files after every successful change.`

// StudentService defines student operations needed by MCP.
type StudentService interface {
	CreateProfile(ctx context.Context, name, email string) (*student.Student, error)
	AddCourse(ctx context.Context, studentID, course string) error
	RemoveCourse(ctx context.Context, studentID, course string) error
	AddAvailability(ctx context.Context, studentID string, day schedule.Weekday, start, end schedule.TimeOfDay) error
	RemoveAvailability(ctx context.Context, studentID string, day schedule.Weekday, start, end schedule.TimeOfDay) error
	ClassmatesInCourse(ctx context.Context, course string) ([]*student.Student, error)
	SuggestMatches(ctx context.Context, studentID, course string) ([]*student.Student, error)
}

// SessionService defines session operations needed by MCP.
type SessionService interface {
	Propose(ctx context.Context, inviterID, course string, slot schedule.Slot, inviteeIDs []string) (*session.StudySession, error)
	Respond(ctx context.Context, studentID, sessionID string, accept bool) (*session.StudySession, error)
	ListFor(ctx context.Context, studentID string) ([]*session.StudySession, error)
}

// Store defines the persistence operations needed by MCP.
type Store interface {
	Save() error
	ExportTo(dir string) error
}

// Services contains all collaborators needed by MCP.
type Services struct {
	Students StudentService
	Sessions SessionService
	Store    Store
}

// Config contains server configuration.
type Config struct {
	Services  Services
	ExportDir string
	Logger    *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and
// middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "studybuddy",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(requestLoggingMiddleware(cfg.Logger))

	registerTools(server, cfg.Services, cfg.ExportDir)

	return server
}
