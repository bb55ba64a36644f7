package dto

import "github.com/oguzk/campusreg/internal/app/models"

// StudentResponse represents a student account. The stored password is never
// serialized.
type StudentResponse struct {
	StudentID         string   `json:"studentId"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Program           string   `json:"program"`
	Semester          string   `json:"semester"`
	RegisteredCourses []string `json:"registeredCourses"`
}

// NewStudentResponse maps a domain student to its API shape.
func NewStudentResponse(s *models.Student) StudentResponse {
	courses := s.RegisteredCourses
	if courses == nil {
		courses = []string{}
	}
	return StudentResponse{
		StudentID:         s.StudentID,
		Name:              s.Name,
		Email:             s.Email,
		Program:           s.Program,
		Semester:          s.Semester,
		RegisteredCourses: courses,
	}
}

// UpdateProfileRequest represents profile update data. Student id and
// password are immutable through this path.
type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Program  string `json:"program" binding:"required"`
	Semester string `json:"semester" binding:"required"`
}
