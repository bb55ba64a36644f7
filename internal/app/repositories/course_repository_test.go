package repositories

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
	"github.com/oguzk/campusreg/internal/seed"
)

func newCourseRepo(t *testing.T) (*CourseRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), CoursesFile)
	return NewCourseRepository(path, zerolog.Nop()), path
}

func TestCourseRepositoryFirstRunSeedsCatalog(t *testing.T) {
	repo, path := newCourseRepo(t)

	courses, stats, err := repo.LoadAll()
	require.NoError(t, err)
	require.Zero(t, stats.Skipped)
	require.Equal(t, seed.AllCourses(), courses)

	first := courses[0]
	require.Equal(t, "CS101", first.CourseCode)
	require.Equal(t, "Introduction to Programming", first.CourseName)
	require.Equal(t, 3, first.Credits)
	require.Equal(t, "MWF 9:00-10:00", first.Schedule)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "# Course Data Format: Code,Name,Instructor,Credits,Schedule")
	require.Contains(t, string(content), "# Computer Science Courses")
	require.Contains(t, string(content), "# General Education Courses")
}

func TestCourseRepositoryFindByCode(t *testing.T) {
	repo, _ := newCourseRepo(t)

	course, err := repo.FindByCode("ENG201")
	require.NoError(t, err)
	require.Equal(t, "Communication Skills", course.CourseName)
	require.Equal(t, 2, course.Credits)

	_, err = repo.FindByCode("ZZZ999")
	require.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
}

func TestCourseRepositoryLoadAllSkipsMalformedLines(t *testing.T) {
	repo, path := newCourseRepo(t)

	lines := []string{
		"# Course Data Format: Code,Name,Instructor,Credits,Schedule",
		"CS101,Introduction to Programming,Dr. Johnson,3,MWF 9:00-10:00",
		"broken,line",
		"CS999,Bad Credits,Dr. Nobody,three,MWF 9:00-10:00",
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	courses, stats, err := repo.LoadAll()
	require.NoError(t, err)
	require.Equal(t, LoadStats{Loaded: 1, Skipped: 2}, stats)
	require.Equal(t, "CS101", courses[0].CourseCode)
}

func TestCourseRepositorySaveAllBacksUpPreviousContent(t *testing.T) {
	repo, path := newCourseRepo(t)

	_, _, err := repo.LoadAll()
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	custom := []models.Course{
		{CourseCode: "CS700", CourseName: "Compilers", Instructor: "Dr. Knuth", Credits: 4, Schedule: "MWF 9:00-10:00"},
	}
	require.NoError(t, repo.SaveAll(custom))

	backup, err := os.ReadFile(path + ".backup")
	require.NoError(t, err)
	require.Equal(t, string(before), string(backup))

	courses, _, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "CS700", courses[0].CourseCode)
}
