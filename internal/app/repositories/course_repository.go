package repositories

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
	"github.com/oguzk/campusreg/internal/seed"
)

// CourseRepository persists the course catalog in a single text file. The
// catalog is seeded once on first run and is otherwise static.
type CourseRepository struct {
	path   string
	logger zerolog.Logger
}

// NewCourseRepository creates a CourseRepository backed by the given file.
func NewCourseRepository(path string, logger zerolog.Logger) *CourseRepository {
	return &CourseRepository{path: path, logger: logger}
}

// LoadAll reads all courses in file order, seeding the catalog if the file is
// absent. Malformed lines are dropped and counted, never fatal.
func (r *CourseRepository) LoadAll() ([]models.Course, LoadStats, error) {
	if !fileExists(r.path) {
		if err := r.initialize(); err != nil {
			r.logger.Error().Err(err).Str("path", r.path).Msg("Failed to initialize courses file")
			return nil, LoadStats{}, apperrors.NewFileAccessError(err, "failed to initialize courses file")
		}
	}

	lines, err := readDataLines(r.path)
	if err != nil {
		r.logger.Error().Err(err).Str("path", r.path).Msg("Failed to read courses file")
		return nil, LoadStats{}, apperrors.NewFileAccessError(err, "failed to read courses file")
	}

	var courses []models.Course
	stats := LoadStats{}
	for _, line := range lines {
		course := DecodeCourse(line)
		if course == nil {
			stats.Skipped++
			r.logger.Warn().Str("line", line).Msg("Dropping malformed course record")
			continue
		}
		courses = append(courses, *course)
	}
	stats.Loaded = len(courses)

	if stats.Skipped > 0 {
		r.logger.Warn().Int("skipped", stats.Skipped).Int("loaded", stats.Loaded).Msg("Course load dropped malformed lines")
	}
	return courses, stats, nil
}

// SaveAll snapshots the current file to a .backup sibling, then rewrites the
// whole catalog in input order.
func (r *CourseRepository) SaveAll(courses []models.Course) error {
	if err := backupFile(r.path); err != nil {
		r.logger.Error().Err(err).Str("path", r.path).Msg("Failed to back up courses file")
		return apperrors.NewFileAccessError(err, "failed to back up courses file")
	}

	f, err := os.Create(r.path)
	if err != nil {
		r.logger.Error().Err(err).Str("path", r.path).Msg("Failed to rewrite courses file")
		return apperrors.NewFileAccessError(err, "failed to rewrite courses file")
	}
	defer f.Close()

	fmt.Fprintln(f, "# Course Data Format: Code,Name,Instructor,Credits,Schedule")
	fmt.Fprintln(f, "# Last Updated: "+now())
	for _, c := range courses {
		fmt.Fprintln(f, EncodeCourse(c))
	}

	if err := f.Sync(); err != nil {
		return apperrors.NewFileAccessError(err, "failed to flush courses file")
	}

	r.logger.Debug().Int("count", len(courses)).Msg("Saved courses to file")
	return nil
}

// FindByCode returns the catalog entry with the given course code.
func (r *CourseRepository) FindByCode(courseCode string) (*models.Course, error) {
	courses, _, err := r.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].CourseCode == courseCode {
			return &courses[i], nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

// initialize writes a fresh courses file holding the seed catalog, grouped
// under its section headings.
func (r *CourseRepository) initialize() error {
	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "# Course Data Format: Code,Name,Instructor,Credits,Schedule")
	fmt.Fprintln(f, "# Created: "+now())

	for _, section := range seed.CourseCatalog() {
		fmt.Fprintln(f)
		fmt.Fprintln(f, "# "+section.Heading)
		for _, c := range section.Courses {
			fmt.Fprintln(f, EncodeCourse(c))
		}
	}

	r.logger.Info().Str("path", r.path).Msg("Initialized courses file with seed catalog")
	return f.Sync()
}
