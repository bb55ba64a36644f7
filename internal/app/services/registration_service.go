package services

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/app/models/dto"
	"github.com/oguzk/campusreg/internal/app/repositories"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
	"github.com/oguzk/campusreg/internal/pkg/validation"
)

// RegistrationService defines the interface for course registration and
// profile operations. Every mutation re-reads the full student collection,
// applies the business rules, rewrites the collection, and appends audit
// events.
type RegistrationService interface {
	// GetStudent returns the current stored record for a student id.
	GetStudent(studentID string) (*models.Student, error)

	// ListCourses returns the full catalog in file order.
	ListCourses() ([]models.Course, error)

	// ListAvailableCourses returns the catalog minus the student's
	// registered courses.
	ListAvailableCourses(studentID string) ([]models.Course, error)

	// StudentCourses resolves a student's registered course codes against
	// the catalog and sums their credits. Codes missing from the catalog
	// contribute nothing.
	StudentCourses(studentID string) ([]models.Course, int, error)

	// AddCourse registers the student for a course, enforcing the course
	// cap and the schedule-conflict rule. Adding an already-registered
	// course is a no-op.
	AddCourse(studentID, courseCode string) (*models.Student, error)

	// DropCourse removes a course from the student's registration; dropping
	// an unregistered course is a no-op.
	DropCourse(studentID, courseCode string) (*models.Student, error)

	// UpdateProfile overwrites name, email, program and semester. The
	// student id and password are immutable through this path.
	UpdateProfile(studentID string, req *dto.UpdateProfileRequest) (*models.Student, error)
}

// registrationServiceImpl implements the RegistrationService interface
type registrationServiceImpl struct {
	students *repositories.StudentRepository
	courses  *repositories.CourseRepository
	logs     *repositories.LogsRepository
	logger   zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	students *repositories.StudentRepository,
	courses *repositories.CourseRepository,
	logs *repositories.LogsRepository,
	logger zerolog.Logger,
) RegistrationService {
	return &registrationServiceImpl{
		students: students,
		courses:  courses,
		logs:     logs,
		logger:   logger,
	}
}

func (s *registrationServiceImpl) GetStudent(studentID string) (*models.Student, error) {
	return s.students.FindByID(studentID)
}

func (s *registrationServiceImpl) ListCourses() ([]models.Course, error) {
	courses, _, err := s.courses.LoadAll()
	return courses, err
}

func (s *registrationServiceImpl) ListAvailableCourses(studentID string) ([]models.Course, error) {
	student, err := s.students.FindByID(studentID)
	if err != nil {
		return nil, err
	}

	courses, _, err := s.courses.LoadAll()
	if err != nil {
		return nil, err
	}

	available := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if !student.HasCourse(c.CourseCode) {
			available = append(available, c)
		}
	}
	return available, nil
}

func (s *registrationServiceImpl) StudentCourses(studentID string) ([]models.Course, int, error) {
	student, err := s.students.FindByID(studentID)
	if err != nil {
		return nil, 0, err
	}

	catalog, _, err := s.courses.LoadAll()
	if err != nil {
		return nil, 0, err
	}

	byCode := make(map[string]models.Course, len(catalog))
	for _, c := range catalog {
		byCode[c.CourseCode] = c
	}

	var registered []models.Course
	totalCredits := 0
	for _, code := range student.RegisteredCourses {
		if c, ok := byCode[code]; ok {
			registered = append(registered, c)
			totalCredits += c.Credits
		}
	}
	return registered, totalCredits, nil
}

// AddCourse applies the registration rules in order: idempotent no-op for an
// already-registered code, then the course-load cap, then the schedule
// conflict check. Unknown course codes are not rejected here; the catalog
// check belongs to the caller.
func (s *registrationServiceImpl) AddCourse(studentID, courseCode string) (*models.Student, error) {
	students, _, err := s.students.LoadAll()
	if err != nil {
		return nil, err
	}

	idx := indexOfStudent(students, studentID)
	if idx < 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	student := &students[idx]

	if student.HasCourse(courseCode) {
		return student, nil
	}

	if !student.IsAdmin() && len(student.RegisteredCourses) >= models.MaxRegisteredCourses {
		return nil, apperrors.NewCustomError(apperrors.ErrCourseLimitReached,
			"maximum number of courses reached for this semester")
	}

	catalog, _, err := s.courses.LoadAll()
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]models.Course, len(catalog))
	for _, c := range catalog {
		byCode[c.CourseCode] = c
	}

	details := courseCode
	if added, known := byCode[courseCode]; known {
		details = added.CourseName
		for _, code := range student.RegisteredCourses {
			if registered, ok := byCode[code]; ok && registered.Schedule == added.Schedule {
				return nil, apperrors.NewCustomError(apperrors.ErrScheduleConflict,
					"the selected course conflicts with your current schedule")
			}
		}
	}

	student.AddCourse(courseCode)
	if err := s.students.SaveAll(students); err != nil {
		return nil, err
	}

	s.logs.AppendRegistrationEvent(studentID, models.ActionRegister, courseCode, details)
	s.logger.Info().Str("studentId", studentID).Str("courseCode", courseCode).Msg("Course registered")
	return student, nil
}

func (s *registrationServiceImpl) DropCourse(studentID, courseCode string) (*models.Student, error) {
	students, _, err := s.students.LoadAll()
	if err != nil {
		return nil, err
	}

	idx := indexOfStudent(students, studentID)
	if idx < 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	student := &students[idx]

	if !student.HasCourse(courseCode) {
		return student, nil
	}

	student.RemoveCourse(courseCode)
	if err := s.students.SaveAll(students); err != nil {
		return nil, err
	}

	details := courseCode
	if course, err := s.courses.FindByCode(courseCode); err == nil {
		details = course.CourseName
	}

	s.logs.AppendActivity(studentID, "Dropped course: "+courseCode)
	s.logs.AppendRegistrationEvent(studentID, models.ActionDrop, courseCode, details)
	s.logger.Info().Str("studentId", studentID).Str("courseCode", courseCode).Msg("Course dropped")
	return student, nil
}

func (s *registrationServiceImpl) UpdateProfile(studentID string, req *dto.UpdateProfileRequest) (*models.Student, error) {
	if !validation.Required(req.Name) {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if !validation.Required(req.Email) {
		return nil, apperrors.NewValidationError("email cannot be empty")
	}
	if !strings.Contains(req.Email, "@") {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidEmail, "please enter a valid email address")
	}

	students, _, err := s.students.LoadAll()
	if err != nil {
		return nil, err
	}

	idx := indexOfStudent(students, studentID)
	if idx < 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	student := &students[idx]

	student.Name = strings.TrimSpace(req.Name)
	student.Email = strings.TrimSpace(req.Email)
	student.Program = req.Program
	student.Semester = req.Semester

	if err := s.students.SaveAll(students); err != nil {
		return nil, err
	}

	s.logs.AppendActivity(studentID, "Profile updated")
	s.logs.AppendRegistrationEvent(studentID, models.ActionProfileUpdate, models.NoCourse, "Profile information updated")
	return student, nil
}

func indexOfStudent(students []models.Student, studentID string) int {
	for i := range students {
		if students[i].StudentID == studentID {
			return i
		}
	}
	return -1
}
