package services

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/app/models/dto"
	"github.com/oguzk/campusreg/internal/app/repositories"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
	"github.com/oguzk/campusreg/internal/pkg/validation"
)

// AuthService defines the interface for account operations: credential
// lookup and new-student registration.
type AuthService interface {
	// Authenticate matches id and password exactly; no normalization of the
	// id, case-sensitive password comparison.
	Authenticate(studentID, password string) (*models.Student, error)

	// RegisterStudent validates the request, generates a unique STU#### id
	// and persists the new account.
	RegisterStudent(req *dto.RegisterStudentRequest) (*models.Student, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	students *repositories.StudentRepository
	logs     *repositories.LogsRepository
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(students *repositories.StudentRepository, logs *repositories.LogsRepository, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		students: students,
		logs:     logs,
		logger:   logger,
	}
}

// Authenticate re-reads the full student collection and matches credentials
// exactly. Successful and failed attempts both leave an activity trail.
func (s *authServiceImpl) Authenticate(studentID, password string) (*models.Student, error) {
	students, _, err := s.students.LoadAll()
	if err != nil {
		return nil, err
	}

	for i := range students {
		if students[i].StudentID == studentID && students[i].Password == password {
			s.logs.AppendActivity(studentID, "Successful login")
			s.logs.AppendRegistrationEvent(studentID, models.ActionLogin, models.NoCourse, "Student logged in")
			return &students[i], nil
		}
	}

	s.logs.AppendActivity(studentID, "Failed login attempt")
	s.logger.Warn().Str("studentId", studentID).Msg("Failed login attempt")
	return nil, apperrors.ErrInvalidCredentials
}

// RegisterStudent creates a new account after validating required fields,
// email shape and uniqueness, and the password pair.
func (s *authServiceImpl) RegisterStudent(req *dto.RegisterStudentRequest) (*models.Student, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	students, _, err := s.students.LoadAll()
	if err != nil {
		return nil, err
	}

	// Email uniqueness is case-insensitive across all current students.
	for _, existing := range students {
		if strings.EqualFold(existing.Email, strings.TrimSpace(req.Email)) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	student := models.Student{
		StudentID: generateStudentID(students),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Program:   req.Program,
		Semester:  req.Semester,
		Password:  req.Password,
	}

	students = append(students, student)
	if err := s.students.SaveAll(students); err != nil {
		return nil, err
	}

	s.logs.AppendActivity(student.StudentID, "New student registered")
	s.logs.AppendRegistrationEvent(student.StudentID, models.ActionStudentRegistered, models.NoCourse,
		"New student account created: "+student.Name)

	s.logger.Info().Str("studentId", student.StudentID).Str("program", student.Program).Msg("Student registered")
	return &student, nil
}

func validateRegistration(req *dto.RegisterStudentRequest) error {
	if !validation.Required(req.Name) {
		return apperrors.NewValidationError("full name is required")
	}
	if !validation.Required(req.Email) {
		return apperrors.NewValidationError("email address is required")
	}
	if !validation.EmailLooksValid(strings.TrimSpace(req.Email)) {
		return apperrors.NewCustomError(apperrors.ErrInvalidEmail, "please enter a valid email address")
	}
	if !validation.Required(req.Program) {
		return apperrors.NewValidationError("program is required")
	}
	if !validation.Required(req.Semester) {
		return apperrors.NewValidationError("semester is required")
	}
	if req.Password == "" {
		return apperrors.NewValidationError("password is required")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			fmt.Sprintf("password must be at least %d characters long", validation.PasswordMinLength))
	}
	if req.Password != req.ConfirmPassword {
		return apperrors.NewCustomError(apperrors.ErrPasswordMismatch, "passwords do not match")
	}
	return nil
}

// generateStudentID draws random "STU" + 1000..9999 ids until one is unused.
// Rejection sampling with no retry bound; collisions stay rare with at most
// 9000 possible ids.
func generateStudentID(students []models.Student) string {
	taken := make(map[string]struct{}, len(students))
	for _, s := range students {
		taken[s.StudentID] = struct{}{}
	}

	for {
		id := fmt.Sprintf("STU%d", rand.Intn(9000)+1000)
		if _, exists := taken[id]; !exists {
			return id
		}
	}
}
