package repositories

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/pkg/apperrors"
)

// Data file names inside the data directory.
const (
	StudentsFile      = "students.txt"
	CoursesFile       = "courses.txt"
	RegistrationsFile = "registrations.txt"
	ActivityFile      = "system_logs.txt"
	AnalyticsFile     = "analytics_data.txt"
)

// Repositories bundles all flat-file stores sharing one data directory.
type Repositories struct {
	Students *StudentRepository
	Courses  *CourseRepository
	Logs     *LogsRepository
}

// NewRepositories creates the stores rooted at dataDir.
func NewRepositories(dataDir string, logger zerolog.Logger) *Repositories {
	return &Repositories{
		Students: NewStudentRepository(filepath.Join(dataDir, StudentsFile), logger),
		Courses:  NewCourseRepository(filepath.Join(dataDir, CoursesFile), logger),
		Logs: NewLogsRepository(
			filepath.Join(dataDir, ActivityFile),
			filepath.Join(dataDir, RegistrationsFile),
			filepath.Join(dataDir, AnalyticsFile),
			logger,
		),
	}
}

// Initialize creates the data directory and synthesizes any missing data
// files with their seed content and header blocks.
func (r *Repositories) Initialize(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return apperrors.NewFileAccessError(err, "failed to create data directory")
	}

	if _, _, err := r.Students.LoadAll(); err != nil {
		return err
	}
	if _, _, err := r.Courses.LoadAll(); err != nil {
		return err
	}
	return r.Logs.EnsureFiles()
}
