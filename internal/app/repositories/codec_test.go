package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/oguzk/campusreg/internal/app/models"
)

func TestStudentCodecRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		field := rapid.StringMatching(`[A-Za-z0-9@._-]{1,20}`)
		codes := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[A-Z]{2,4}[0-9]{3}`), 0, 8, rapid.ID[string],
		).Draw(t, "codes")
		if len(codes) == 0 {
			codes = nil
		}

		student := models.Student{
			StudentID:         field.Draw(t, "id"),
			Name:              field.Draw(t, "name"),
			Email:             field.Draw(t, "email"),
			Program:           field.Draw(t, "program"),
			Semester:          field.Draw(t, "semester"),
			Password:          field.Draw(t, "password"),
			RegisteredCourses: codes,
		}

		decoded := DecodeStudent(EncodeStudent(student))
		if decoded == nil {
			t.Fatalf("round trip decoded to nil for %q", EncodeStudent(student))
		}
		if !studentEqual(student, *decoded) {
			t.Fatalf("round trip mismatch: %+v != %+v", student, *decoded)
		}
	})
}

func studentEqual(a, b models.Student) bool {
	if a.StudentID != b.StudentID || a.Name != b.Name || a.Email != b.Email ||
		a.Program != b.Program || a.Semester != b.Semester || a.Password != b.Password {
		return false
	}
	if len(a.RegisteredCourses) != len(b.RegisteredCourses) {
		return false
	}
	for i := range a.RegisteredCourses {
		if a.RegisteredCourses[i] != b.RegisteredCourses[i] {
			return false
		}
	}
	return true
}

func TestCourseCodecRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		course := models.Course{
			CourseCode: rapid.StringMatching(`[A-Z]{2,4}[0-9]{3}`).Draw(t, "code"),
			CourseName: rapid.StringMatching(`[A-Za-z0-9 .-]{1,40}`).Draw(t, "name"),
			Instructor: rapid.StringMatching(`[A-Za-z. ]{1,30}`).Draw(t, "instructor"),
			Credits:    rapid.IntRange(0, 12).Draw(t, "credits"),
			Schedule:   rapid.StringMatching(`[A-Za-z]{2,3} [0-9]{1,2}:[0-9]{2}-[0-9]{1,2}:[0-9]{2}`).Draw(t, "schedule"),
		}

		decoded := DecodeCourse(EncodeCourse(course))
		if decoded == nil {
			t.Fatalf("round trip decoded to nil for %q", EncodeCourse(course))
		}
		if *decoded != course {
			t.Fatalf("round trip mismatch: %+v != %+v", course, *decoded)
		}
	})
}

func TestDecodeStudentMalformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"two fields", "STU1234,Jane"},
		{"five fields", "STU1234,Jane,jane@uni.edu,CS,Fall 2025"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Nil(t, DecodeStudent(tc.line))
		})
	}
}

func TestDecodeStudentCourseListHandling(t *testing.T) {
	// Six fields with no course list is a valid record with no courses.
	s := DecodeStudent("STU1234,Jane,jane@uni.edu,CS,Fall 2025,secret")
	require.NotNil(t, s)
	require.Empty(t, s.RegisteredCourses)

	// Course codes are trimmed, empty entries dropped, duplicates collapsed.
	s = DecodeStudent("STU1234,Jane,jane@uni.edu,CS,Fall 2025,secret, CS101 ;;CS201;CS101")
	require.NotNil(t, s)
	require.Equal(t, []string{"CS101", "CS201"}, s.RegisteredCourses)

	// Fields beyond the seventh are ignored.
	s = DecodeStudent("STU1234,Jane,jane@uni.edu,CS,Fall 2025,secret,CS101,stray")
	require.NotNil(t, s)
	require.Equal(t, []string{"CS101"}, s.RegisteredCourses)
}

func TestDecodeCourseMalformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"four fields", "CS101,Intro,Dr. Johnson,3"},
		{"six fields", "CS101,Intro,Dr. Johnson,3,MWF 9:00-10:00,extra"},
		{"non-integer credits", "CS101,Intro,Dr. Johnson,three,MWF 9:00-10:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Nil(t, DecodeCourse(tc.line))
		})
	}
}
