package models

// AdminID is the reserved identifier of the built-in administrator account.
// The admin logs in like any student but is excluded from analytics and from
// the course-load cap.
const AdminID = "admin"

// MaxRegisteredCourses is the per-semester course-load cap for students.
const MaxRegisteredCourses = 8

// Student represents a registered account. RegisteredCourses holds course
// codes in insertion order; it behaves as a set, duplicates are never stored.
type Student struct {
	StudentID         string
	Name              string
	Email             string
	Program           string
	Semester          string
	Password          string
	RegisteredCourses []string
}

// IsAdmin reports whether the student is the built-in administrator account.
func (s *Student) IsAdmin() bool {
	return s.StudentID == AdminID
}

// HasCourse reports whether the student is registered for the given course code.
func (s *Student) HasCourse(courseCode string) bool {
	for _, code := range s.RegisteredCourses {
		if code == courseCode {
			return true
		}
	}
	return false
}

// AddCourse appends a course code, ignoring duplicates.
func (s *Student) AddCourse(courseCode string) {
	if s.HasCourse(courseCode) {
		return
	}
	s.RegisteredCourses = append(s.RegisteredCourses, courseCode)
}

// RemoveCourse drops a course code if present.
func (s *Student) RemoveCourse(courseCode string) {
	for i, code := range s.RegisteredCourses {
		if code == courseCode {
			s.RegisteredCourses = append(s.RegisteredCourses[:i], s.RegisteredCourses[i+1:]...)
			return
		}
	}
}
