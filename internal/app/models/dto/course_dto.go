package dto

import "github.com/oguzk/campusreg/internal/app/models"

// CourseResponse represents a catalog entry.
type CourseResponse struct {
	CourseCode string `json:"courseCode"`
	CourseName string `json:"courseName"`
	Instructor string `json:"instructor"`
	Credits    int    `json:"credits"`
	Schedule   string `json:"schedule"`
}

// NewCourseResponse maps a domain course to its API shape.
func NewCourseResponse(c models.Course) CourseResponse {
	return CourseResponse{
		CourseCode: c.CourseCode,
		CourseName: c.CourseName,
		Instructor: c.Instructor,
		Credits:    c.Credits,
		Schedule:   c.Schedule,
	}
}

// NewCourseListResponse maps a course slice to its API shape.
func NewCourseListResponse(courses []models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

// RegisteredCoursesResponse is the dashboard view of a student's schedule.
type RegisteredCoursesResponse struct {
	Courses      []CourseResponse `json:"courses"`
	TotalCredits int              `json:"totalCredits"`
}
