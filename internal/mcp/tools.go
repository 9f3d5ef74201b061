package mcp

import (
	"context"

	"github.com/akwright/studybuddy/internal/domain/schedule"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type toolHandler struct {
	services  Services
	exportDir string
}

// registerTools registers the scheduling operations as typed MCP tools.
func registerTools(server *sdkmcp.Server, services Services, exportDir string) {
	h := &toolHandler{services: services, exportDir: exportDir}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_profile",
		Description: "Register a new student profile and return its assigned id",
	}, h.createProfile)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_course",
		Description: "Enroll a student in a course",
	}, h.addCourse)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_course",
		Description: "Drop a course from a student's enrollments",
	}, h.removeCourse)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_availability",
		Description: "Add a weekly availability window to a student's schedule",
	}, h.addAvailability)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_availability",
		Description: "Remove an exactly matching availability window",
	}, h.removeAvailability)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_classmates",
		Description: "List every student enrolled in a course",
	}, h.listClassmates)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "suggest_matches",
		Description: "Suggest classmates whose availability overlaps the requesting student's",
	}, h.suggestMatches)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "propose_session",
		Description: "Propose a group study session after validating everyone's enrollment and availability",
	}, h.proposeSession)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "respond_session",
		Description: "Accept or decline a proposed study session",
	}, h.respondSession)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_sessions",
		Description: "List every study session a student participates in",
	}, h.listSessions)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_csv",
		Description: "Copy the persisted CSV files into a destination directory",
	}, h.exportCSV)
}

// save persists the store after a successful mutation, matching the
// save-after-every-command behavior of the interactive loop.
func (h *toolHandler) save() error {
	return h.services.Store.Save()
}

func (h *toolHandler) createProfile(ctx context.Context, req *sdkmcp.CallToolRequest, in CreateProfileParams) (*sdkmcp.CallToolResult, StudentResult, error) {
	stu, err := h.services.Students.CreateProfile(ctx, in.Name, in.Email)
	if err != nil {
		return nil, StudentResult{}, err
	}
	if err := h.save(); err != nil {
		return nil, StudentResult{}, err
	}
	return nil, toStudentResult(stu), nil
}

func (h *toolHandler) addCourse(ctx context.Context, req *sdkmcp.CallToolRequest, in CourseParams) (*sdkmcp.CallToolResult, OKResult, error) {
	if err := h.services.Students.AddCourse(ctx, in.StudentID, in.Course); err != nil {
		return nil, OKResult{}, err
	}
	if err := h.save(); err != nil {
		return nil, OKResult{}, err
	}
	return nil, OKResult{OK: true}, nil
}

func (h *toolHandler) removeCourse(ctx context.Context, req *sdkmcp.CallToolRequest, in CourseParams) (*sdkmcp.CallToolResult, OKResult, error) {
	if err := h.services.Students.RemoveCourse(ctx, in.StudentID, in.Course); err != nil {
		return nil, OKResult{}, err
	}
	if err := h.save(); err != nil {
		return nil, OKResult{}, err
	}
	return nil, OKResult{OK: true}, nil
}

func parseAvailability(in AvailabilityParams) (schedule.Weekday, schedule.TimeOfDay, schedule.TimeOfDay, error) {
	day, err := schedule.ParseWeekday(in.Day)
	if err != nil {
		return 0, 0, 0, err
	}
	start, err := schedule.ParseTimeOfDay(in.Start)
	if err != nil {
		return 0, 0, 0, err
	}
	end, err := schedule.ParseTimeOfDay(in.End)
	if err != nil {
		return 0, 0, 0, err
	}
	return day, start, end, nil
}

func (h *toolHandler) addAvailability(ctx context.Context, req *sdkmcp.CallToolRequest, in AvailabilityParams) (*sdkmcp.CallToolResult, OKResult, error) {
	day, start, end, err := parseAvailability(in)
	if err != nil {
		return nil, OKResult{}, err
	}
	if err := h.services.Students.AddAvailability(ctx, in.StudentID, day, start, end); err != nil {
		return nil, OKResult{}, err
	}
	if err := h.save(); err != nil {
		return nil, OKResult{}, err
	}
	return nil, OKResult{OK: true}, nil
}

func (h *toolHandler) removeAvailability(ctx context.Context, req *sdkmcp.CallToolRequest, in AvailabilityParams) (*sdkmcp.CallToolResult, OKResult, error) {
	day, start, end, err := parseAvailability(in)
	if err != nil {
		return nil, OKResult{}, err
	}
	if err := h.services.Students.RemoveAvailability(ctx, in.StudentID, day, start, end); err != nil {
		return nil, OKResult{}, err
	}
	if err := h.save(); err != nil {
		return nil, OKResult{}, err
	}
	return nil, OKResult{OK: true}, nil
}

func (h *toolHandler) listClassmates(ctx context.Context, req *sdkmcp.CallToolRequest, in ClassmatesParams) (*sdkmcp.CallToolResult, StudentListResult, error) {
	list, err := h.services.Students.ClassmatesInCourse(ctx, in.Course)
	if err != nil {
		return nil, StudentListResult{}, err
	}
	res := StudentListResult{Students: make([]StudentResult, 0, len(list))}
	for _, stu := range list {
		res.Students = append(res.Students, toStudentResult(stu))
	}
	return nil, res, nil
}

func (h *toolHandler) suggestMatches(ctx context.Context, req *sdkmcp.CallToolRequest, in SuggestMatchesParams) (*sdkmcp.CallToolResult, StudentListResult, error) {
	list, err := h.services.Students.SuggestMatches(ctx, in.StudentID, in.Course)
	if err != nil {
		return nil, StudentListResult{}, err
	}
	res := StudentListResult{Students: make([]StudentResult, 0, len(list))}
	for _, stu := range list {
		res.Students = append(res.Students, toStudentResult(stu))
	}
	return nil, res, nil
}

func (h *toolHandler) proposeSession(ctx context.Context, req *sdkmcp.CallToolRequest, in ProposeSessionParams) (*sdkmcp.CallToolResult, SessionResult, error) {
	slot, err := schedule.ParseSlot(in.Slot)
	if err != nil {
		return nil, SessionResult{}, err
	}
	sess, err := h.services.Sessions.Propose(ctx, in.InviterID, in.Course, slot, in.Invitees)
	if err != nil {
		return nil, SessionResult{}, err
	}
	if err := h.save(); err != nil {
		return nil, SessionResult{}, err
	}
	return nil, toSessionResult(sess), nil
}

func (h *toolHandler) respondSession(ctx context.Context, req *sdkmcp.CallToolRequest, in RespondSessionParams) (*sdkmcp.CallToolResult, SessionResult, error) {
	sess, err := h.services.Sessions.Respond(ctx, in.StudentID, in.SessionID, in.Accept)
	if err != nil {
		return nil, SessionResult{}, err
	}
	if err := h.save(); err != nil {
		return nil, SessionResult{}, err
	}
	return nil, toSessionResult(sess), nil
}

func (h *toolHandler) listSessions(ctx context.Context, req *sdkmcp.CallToolRequest, in ListSessionsParams) (*sdkmcp.CallToolResult, SessionListResult, error) {
	list, err := h.services.Sessions.ListFor(ctx, in.StudentID)
	if err != nil {
		return nil, SessionListResult{}, err
	}
	res := SessionListResult{Sessions: make([]SessionResult, 0, len(list))}
	for _, sess := range list {
		res.Sessions = append(res.Sessions, toSessionResult(sess))
	}
	return nil, res, nil
}

func (h *toolHandler) exportCSV(ctx context.Context, req *sdkmcp.CallToolRequest, in ExportParams) (*sdkmcp.CallToolResult, ExportResult, error) {
	dir := in.Dir
	if dir == "" {
		dir = h.exportDir
	}
	if err := h.save(); err != nil {
		return nil, ExportResult{}, err
	}
	if err := h.services.Store.ExportTo(dir); err != nil {
		return nil, ExportResult{}, err
	}
	return nil, ExportResult{Dir: dir}, nil
}
