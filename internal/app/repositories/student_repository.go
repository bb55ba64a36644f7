package repositories

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
	"github.com/oguzk/campusreg/internal/seed"
)

// LoadStats reports how a whole-collection load went. Skipped counts
// malformed lines the decoder dropped.
type LoadStats struct {
	Loaded  int
	Skipped int
}

// StudentRepository persists the student collection in a single text file.
// Every operation re-reads the whole file; there is no in-memory cache, so
// sequential operations within one process always see each other's writes.
type StudentRepository struct {
	path   string
	logger zerolog.Logger
}

// NewStudentRepository creates a StudentRepository backed by the given file.
func NewStudentRepository(path string, logger zerolog.Logger) *StudentRepository {
	return &StudentRepository{path: path, logger: logger}
}

// LoadAll reads all students in file order. A missing file is synthesized
// with the admin seed record first. Malformed lines are dropped and counted,
// never fatal.
func (r *StudentRepository) LoadAll() ([]models.Student, LoadStats, error) {
	if !fileExists(r.path) {
		if err := r.initialize(); err != nil {
			r.logger.Error().Err(err).Str("path", r.path).Msg("Failed to initialize students file")
			return nil, LoadStats{}, apperrors.NewFileAccessError(err, "failed to initialize students file")
		}
	}

	lines, err := readDataLines(r.path)
	if err != nil {
		r.logger.Error().Err(err).Str("path", r.path).Msg("Failed to read students file")
		return nil, LoadStats{}, apperrors.NewFileAccessError(err, "failed to read students file")
	}

	var students []models.Student
	stats := LoadStats{}
	for _, line := range lines {
		student := DecodeStudent(line)
		if student == nil {
			stats.Skipped++
			r.logger.Warn().Str("line", line).Msg("Dropping malformed student record")
			continue
		}
		students = append(students, *student)
	}
	stats.Loaded = len(students)

	if stats.Skipped > 0 {
		r.logger.Warn().Int("skipped", stats.Skipped).Int("loaded", stats.Loaded).Msg("Student load dropped malformed lines")
	}
	return students, stats, nil
}

// SaveAll snapshots the current file to a .backup sibling, then rewrites the
// whole collection. The admin record is always written first in its own
// labeled block; all other students follow in input order.
func (r *StudentRepository) SaveAll(students []models.Student) error {
	if err := backupFile(r.path); err != nil {
		r.logger.Error().Err(err).Str("path", r.path).Msg("Failed to back up students file")
		return apperrors.NewFileAccessError(err, "failed to back up students file")
	}

	f, err := os.Create(r.path)
	if err != nil {
		r.logger.Error().Err(err).Str("path", r.path).Msg("Failed to rewrite students file")
		return apperrors.NewFileAccessError(err, "failed to rewrite students file")
	}
	defer f.Close()

	fmt.Fprintln(f, "# Student Data Format: ID,Name,Email,Program,Semester,Password,RegisteredCourses")
	fmt.Fprintln(f, "# Last Updated: "+now())
	fmt.Fprintln(f, "# Students registered through the application")
	fmt.Fprintln(f)

	for _, s := range students {
		if s.IsAdmin() {
			fmt.Fprintln(f, "# Admin account")
			fmt.Fprintln(f, EncodeStudent(s))
			fmt.Fprintln(f)
			break
		}
	}

	fmt.Fprintln(f, "# Registered Students")
	for _, s := range students {
		if !s.IsAdmin() {
			fmt.Fprintln(f, EncodeStudent(s))
		}
	}

	if err := f.Sync(); err != nil {
		return apperrors.NewFileAccessError(err, "failed to flush students file")
	}

	r.logger.Debug().Int("count", len(students)).Msg("Saved students to file")
	return nil
}

// FindByID returns the student with the given id.
func (r *StudentRepository) FindByID(studentID string) (*models.Student, error) {
	students, _, err := r.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].StudentID == studentID {
			return &students[i], nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

// Update replaces the stored record matching the student's id and rewrites
// the collection.
func (r *StudentRepository) Update(student models.Student) error {
	students, _, err := r.LoadAll()
	if err != nil {
		return err
	}

	for i := range students {
		if students[i].StudentID == student.StudentID {
			students[i] = student
			return r.SaveAll(students)
		}
	}
	return apperrors.ErrStudentNotFound
}

// initialize writes a fresh students file holding only the admin seed record.
func (r *StudentRepository) initialize() error {
	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "# Student Data Format: ID,Name,Email,Program,Semester,Password,RegisteredCourses")
	fmt.Fprintln(f, "# Created: "+now())
	fmt.Fprintln(f, "# Students must register through the application to create accounts")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "# Admin account for system management")
	fmt.Fprintln(f, EncodeStudent(seed.AdminStudent()))
	fmt.Fprintln(f)
	fmt.Fprintln(f, "# Student accounts will be added here when they register")

	r.logger.Info().Str("path", r.path).Msg("Initialized students file with admin seed account")
	return f.Sync()
}
