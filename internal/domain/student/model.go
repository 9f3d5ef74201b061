package student

import (
	"slices"

	"github.com/akwright/studybuddy/internal/domain/schedule"
)

// Student is a registered profile with course enrollments and weekly
// availability. Courses are kept sorted and unique so output and
// persistence render deterministically; availability keeps insertion order.
type Student struct {
	ID           string
	Name         string
	Email        string
	Courses      []string
	Availability []schedule.Slot
}

// HasCourse reports whether the student is enrolled in the course.
func (s *Student) HasCourse(code string) bool {
	_, found := slices.BinarySearch(s.Courses, code)
	return found
}

// AddCourse enrolls the student, keeping Courses sorted. Adding an already
// present course is a no-op.
func (s *Student) AddCourse(code string) {
	idx, found := slices.BinarySearch(s.Courses, code)
	if found {
		return
	}
	s.Courses = slices.Insert(s.Courses, idx, code)
}

// RemoveCourse drops an enrollment. Removing an absent course is a no-op.
func (s *Student) RemoveCourse(code string) {
	idx, found := slices.BinarySearch(s.Courses, code)
	if found {
		s.Courses = slices.Delete(s.Courses, idx, idx+1)
	}
}

// AddSlot appends an availability window.
func (s *Student) AddSlot(slot schedule.Slot) {
	s.Availability = append(s.Availability, slot)
}

// RemoveSlot deletes every availability entry exactly matching the given
// slot. Partially overlapping entries are untouched.
func (s *Student) RemoveSlot(slot schedule.Slot) {
	s.Availability = slices.DeleteFunc(s.Availability, func(a schedule.Slot) bool {
		return a == slot
	})
}
