// Package repositories implements the flat-file entity stores and the
// append-only log files backing the registration domain.
package repositories

import (
	"strconv"
	"strings"

	"github.com/oguzk/campusreg/internal/app/models"
)

// Record layout, one entity per line, comma-delimited:
//
//	students.txt: ID,Name,Email,Program,Semester,Password,Course1;Course2;...
//	courses.txt:  Code,Name,Instructor,Credits,Schedule
//
// Field values must not contain ',' or ';' because the format supports no escaping.
// That is a known limitation of the persisted format, not something the codec
// tries to repair.

// EncodeStudent renders a student as a single students.txt record line.
func EncodeStudent(s models.Student) string {
	return strings.Join([]string{
		s.StudentID,
		s.Name,
		s.Email,
		s.Program,
		s.Semester,
		s.Password,
		strings.Join(s.RegisteredCourses, ";"),
	}, ",")
}

// DecodeStudent parses a students.txt record line. A line with fewer than six
// fields is malformed and decodes to nil; callers drop such lines and keep
// going. Fields beyond the seventh are ignored.
func DecodeStudent(line string) *models.Student {
	parts := strings.Split(line, ",")
	if len(parts) < 6 {
		return nil
	}

	student := &models.Student{
		StudentID: parts[0],
		Name:      parts[1],
		Email:     parts[2],
		Program:   parts[3],
		Semester:  parts[4],
		Password:  parts[5],
	}

	if len(parts) > 6 && parts[6] != "" {
		for _, code := range strings.Split(parts[6], ";") {
			code = strings.TrimSpace(code)
			if code != "" {
				student.AddCourse(code)
			}
		}
	}

	return student
}

// EncodeCourse renders a course as a single courses.txt record line.
func EncodeCourse(c models.Course) string {
	return strings.Join([]string{
		c.CourseCode,
		c.CourseName,
		c.Instructor,
		strconv.Itoa(c.Credits),
		c.Schedule,
	}, ",")
}

// DecodeCourse parses a courses.txt record line. The line must have exactly
// five fields and an integer credits value, otherwise it decodes to nil.
func DecodeCourse(line string) *models.Course {
	parts := strings.Split(line, ",")
	if len(parts) != 5 {
		return nil
	}

	credits, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil
	}

	return &models.Course{
		CourseCode: parts[0],
		CourseName: parts[1],
		Instructor: parts[2],
		Credits:    credits,
		Schedule:   parts[4],
	}
}
