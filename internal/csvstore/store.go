// Package csvstore is the authoritative in-memory registry of students and
// study sessions, persisted as three flat CSV files (students.csv,
// availability.csv, sessions.csv) in a data directory.
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/akwright/studybuddy/internal/domain/schedule"
	"github.com/akwright/studybuddy/internal/domain/session"
	"github.com/akwright/studybuddy/internal/domain/student"
)

const (
	studentsFile     = "students.csv"
	availabilityFile = "availability.csv"
	sessionsFile     = "sessions.csv"
)

var (
	studentsHeader     = []string{"id", "name", "email", "courses"}
	availabilityHeader = []string{"studentId", "dayOfWeek", "startTime", "endTime"}
	sessionsHeader     = []string{"id", "courseCode", "slotDay", "slotStart", "slotEnd", "participants", "status", "inviterId"}
)

// Store owns every student and session record plus the two id sequences.
// Records keep creation order; lookups go through the id maps.
type Store struct {
	dataDir string

	students     map[string]*student.Student
	studentOrder []string
	sessions     map[string]*session.StudySession
	sessionOrder []string

	// Sequences start at 1 and are advanced past the highest numeric id
	// suffix seen on load, so reloading never reissues an id.
	studentSeq int
	sessionSeq int
}

// New creates an empty store rooted at dataDir. Call Load to read any
// existing files.
func New(dataDir string) *Store {
	return &Store{
		dataDir:    dataDir,
		students:   make(map[string]*student.Student),
		sessions:   make(map[string]*session.StudySession),
		studentSeq: 1,
		sessionSeq: 1,
	}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// Load reads the three files in dependency order: students first, so
// availability and session rows can resolve against them. Missing files are
// treated as empty.
func (s *Store) Load() error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("preparing data dir: %w", err)
	}
	if err := s.loadStudents(); err != nil {
		return err
	}
	if err := s.loadAvailability(); err != nil {
		return err
	}
	return s.loadSessions()
}

func (s *Store) loadStudents() error {
	rows, err := readRows(s.path(studentsFile))
	if err != nil {
		return err
	}
	for _, row := range rows {
		id := field(row, 0)
		stu := &student.Student{ID: id, Name: field(row, 1), Email: field(row, 2)}
		for _, course := range splitList(field(row, 3)) {
			stu.AddCourse(course)
		}
		s.students[id] = stu
		s.studentOrder = append(s.studentOrder, id)
		s.studentSeq = max(s.studentSeq, numericSuffix(id)+1)
	}
	return nil
}

func (s *Store) loadAvailability() error {
	rows, err := readRows(s.path(availabilityFile))
	if err != nil {
		return err
	}
	for _, row := range rows {
		stu, ok := s.students[field(row, 0)]
		if !ok {
			continue // orphan row, dropped
		}
		day, err := schedule.ParseWeekday(field(row, 1))
		if err != nil {
			return fmt.Errorf("%s: %w", availabilityFile, err)
		}
		start, err := schedule.ParseTimeOfDay(field(row, 2))
		if err != nil {
			return fmt.Errorf("%s: %w", availabilityFile, err)
		}
		end, err := schedule.ParseTimeOfDay(field(row, 3))
		if err != nil {
			return fmt.Errorf("%s: %w", availabilityFile, err)
		}
		slot, err := schedule.NewSlot(day, start, end)
		if err != nil {
			return fmt.Errorf("%s: %w", availabilityFile, err)
		}
		stu.AddSlot(slot)
	}
	return nil
}

func (s *Store) loadSessions() error {
	rows, err := readRows(s.path(sessionsFile))
	if err != nil {
		return err
	}
	for _, row := range rows {
		id := field(row, 0)
		slot, err := parseSlotFields(field(row, 2), field(row, 3), field(row, 4))
		if err != nil {
			return fmt.Errorf("%s: %w", sessionsFile, err)
		}
		status, err := session.ParseStatus(field(row, 6))
		if err != nil {
			return fmt.Errorf("%s: %w", sessionsFile, err)
		}
		participants := splitList(field(row, 5))
		slices.Sort(participants)
		// Participant and inviter ids are loaded verbatim, even when the
		// referenced student no longer exists.
		sess := &session.StudySession{
			ID:           id,
			CourseCode:   field(row, 1),
			Slot:         slot,
			Participants: participants,
			InviterID:    field(row, 7),
			Status:       status,
		}
		s.sessions[id] = sess
		s.sessionOrder = append(s.sessionOrder, id)
		s.sessionSeq = max(s.sessionSeq, numericSuffix(id)+1)
	}
	return nil
}

func parseSlotFields(dayText, startText, endText string) (schedule.Slot, error) {
	day, err := schedule.ParseWeekday(dayText)
	if err != nil {
		return schedule.Slot{}, err
	}
	start, err := schedule.ParseTimeOfDay(startText)
	if err != nil {
		return schedule.Slot{}, err
	}
	end, err := schedule.ParseTimeOfDay(endText)
	if err != nil {
		return schedule.Slot{}, err
	}
	return schedule.NewSlot(day, start, end)
}

// Save rewrites all three files from the in-memory state, fully replacing
// prior contents.
func (s *Store) Save() error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("preparing data dir: %w", err)
	}

	studentRows := make([][]string, 0, len(s.studentOrder))
	availabilityRows := make([][]string, 0)
	for _, id := range s.studentOrder {
		stu := s.students[id]
		studentRows = append(studentRows, []string{stu.ID, stu.Name, stu.Email, joinList(stu.Courses)})
		for _, slot := range stu.Availability {
			availabilityRows = append(availabilityRows, []string{
				stu.ID, slot.Day.String(), slot.Start.String(), slot.End.String(),
			})
		}
	}
	if err := writeFile(s.path(studentsFile), studentsHeader, studentRows); err != nil {
		return err
	}
	if err := writeFile(s.path(availabilityFile), availabilityHeader, availabilityRows); err != nil {
		return err
	}

	sessionRows := make([][]string, 0, len(s.sessionOrder))
	for _, id := range s.sessionOrder {
		sess := s.sessions[id]
		sessionRows = append(sessionRows, []string{
			sess.ID,
			sess.CourseCode,
			sess.Slot.Day.String(),
			sess.Slot.Start.String(),
			sess.Slot.End.String(),
			joinList(sess.Participants),
			string(sess.Status),
			sess.InviterID,
		})
	}
	return writeFile(s.path(sessionsFile), sessionsHeader, sessionRows)
}

// ExportTo copies the three persisted files byte-for-byte into dir, creating
// it if needed. Callers are expected to Save first.
func (s *Store) ExportTo(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("preparing export dir: %w", err)
	}
	for _, name := range []string{studentsFile, availabilityFile, sessionsFile} {
		if err := copyFile(s.path(name), filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("exporting %s: %w", name, err)
		}
	}
	return nil
}

func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}
	return rows, nil
}

func writeFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// numericSuffix extracts the trailing digit run of an id (s12 -> 12).
// Ids without one contribute nothing to sequence recovery.
func numericSuffix(id string) int {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return 0
	}
	return n
}

func joinList(items []string) string {
	return strings.Join(items, ";")
}

func splitList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(text, ";") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
