package mcp

import (
	"github.com/akwright/studybuddy/internal/domain/session"
	"github.com/akwright/studybuddy/internal/domain/student"
)

type CreateProfileParams struct {
	Name  string `json:"name" jsonschema:"student display name"`
	Email string `json:"email" jsonschema:"student contact email"`
}

type CourseParams struct {
	StudentID string `json:"student_id" jsonschema:"student id, e.g. s1"`
	Course    string `json:"course" jsonschema:"course code, e.g. CPSC-3720"`
}

type AvailabilityParams struct {
	StudentID string `json:"student_id" jsonschema:"student id, e.g. s1"`
	Day       string `json:"day" jsonschema:"weekday, e.g. TUE or TUESDAY"`
	Start     string `json:"start" jsonschema:"start time HH:MM (24-hour)"`
	End       string `json:"end" jsonschema:"end time HH:MM (24-hour)"`
}

type ClassmatesParams struct {
	Course string `json:"course" jsonschema:"course code"`
}

type SuggestMatchesParams struct {
	StudentID string `json:"student_id" jsonschema:"requesting student id"`
	Course    string `json:"course" jsonschema:"course code"`
}

type ProposeSessionParams struct {
	InviterID string   `json:"inviter_id" jsonschema:"proposing student id"`
	Course    string   `json:"course" jsonschema:"course code"`
	Slot      string   `json:"slot" jsonschema:"proposed slot, e.g. \"TUE 15:00-16:00\""`
	Invitees  []string `json:"invitees" jsonschema:"invited student ids"`
}

type RespondSessionParams struct {
	StudentID string `json:"student_id" jsonschema:"responding participant id"`
	SessionID string `json:"session_id" jsonschema:"session id, e.g. S1"`
	Accept    bool   `json:"accept" jsonschema:"true to accept, false to decline"`
}

type ListSessionsParams struct {
	StudentID string `json:"student_id" jsonschema:"participant id"`
}

type ExportParams struct {
	Dir string `json:"dir,omitempty" jsonschema:"destination directory (defaults to the configured export dir)"`
}

type StudentResult struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Courses      []string `json:"courses,omitempty"`
	Availability []string `json:"availability,omitempty"`
}

type StudentListResult struct {
	Students []StudentResult `json:"students"`
}

type SessionResult struct {
	ID           string   `json:"id"`
	Course       string   `json:"course"`
	Slot         string   `json:"slot"`
	Participants []string `json:"participants"`
	Status       string   `json:"status"`
	InviterID    string   `json:"inviter_id"`
}

type SessionListResult struct {
	Sessions []SessionResult `json:"sessions"`
}

type OKResult struct {
	OK bool `json:"ok"`
}

type ExportResult struct {
	Dir string `json:"dir"`
}

func toStudentResult(stu *student.Student) StudentResult {
	res := StudentResult{
		ID:      stu.ID,
		Name:    stu.Name,
		Email:   stu.Email,
		Courses: stu.Courses,
	}
	for _, slot := range stu.Availability {
		res.Availability = append(res.Availability, slot.String())
	}
	return res
}

func toSessionResult(sess *session.StudySession) SessionResult {
	return SessionResult{
		ID:           sess.ID,
		Course:       sess.CourseCode,
		Slot:         sess.Slot.String(),
		Participants: sess.Participants,
		Status:       string(sess.Status),
		InviterID:    sess.InviterID,
	}
}
