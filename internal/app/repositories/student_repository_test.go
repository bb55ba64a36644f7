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
)

func newStudentRepo(t *testing.T) (*StudentRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), StudentsFile)
	return NewStudentRepository(path, zerolog.Nop()), path
}

func TestStudentRepositoryFirstRunSeedsAdmin(t *testing.T) {
	repo, path := newStudentRepo(t)

	students, stats, err := repo.LoadAll()
	require.NoError(t, err)
	require.Equal(t, LoadStats{Loaded: 1, Skipped: 0}, stats)
	require.Len(t, students, 1)

	admin := students[0]
	require.Equal(t, models.AdminID, admin.StudentID)
	require.Equal(t, "System Administrator", admin.Name)
	require.Equal(t, "admin@university.edu", admin.Email)
	require.Equal(t, "admin", admin.Password)
	require.Empty(t, admin.RegisteredCourses)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "# Student Data Format: ID,Name,Email,Program,Semester,Password,RegisteredCourses")
	require.Contains(t, string(content), "# Admin account for system management")
}

func TestStudentRepositorySaveAllWritesAdminFirst(t *testing.T) {
	repo, _ := newStudentRepo(t)

	students, _, err := repo.LoadAll()
	require.NoError(t, err)
	admin := students[0]

	alice := models.Student{StudentID: "STU1001", Name: "Alice", Email: "alice@uni.edu",
		Program: "CS", Semester: "Fall 2025", Password: "secret1", RegisteredCourses: []string{"CS101"}}
	bob := models.Student{StudentID: "STU1002", Name: "Bob", Email: "bob@uni.edu",
		Program: "IT", Semester: "Fall 2025", Password: "secret2"}

	// Admin placed last on purpose; the save must still lead with it.
	require.NoError(t, repo.SaveAll([]models.Student{alice, bob, admin}))

	loaded, _, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	require.Equal(t, models.AdminID, loaded[0].StudentID)
	require.Equal(t, "STU1001", loaded[1].StudentID)
	require.Equal(t, []string{"CS101"}, loaded[1].RegisteredCourses)
	require.Equal(t, "STU1002", loaded[2].StudentID)
}

func TestStudentRepositorySaveAllBacksUpPreviousContent(t *testing.T) {
	repo, path := newStudentRepo(t)

	students, _, err := repo.LoadAll()
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	students = append(students, models.Student{StudentID: "STU2000", Name: "Carol",
		Email: "carol@uni.edu", Program: "CS", Semester: "Fall 2025", Password: "secret3"})
	require.NoError(t, repo.SaveAll(students))

	backup, err := os.ReadFile(path + ".backup")
	require.NoError(t, err)
	require.Equal(t, string(before), string(backup))

	// A second save replaces the backup with the newer snapshot.
	afterFirstSave, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, repo.SaveAll(students))

	backup, err = os.ReadFile(path + ".backup")
	require.NoError(t, err)
	require.Equal(t, string(afterFirstSave), string(backup))
}

func TestStudentRepositoryLoadAllSkipsMalformedLines(t *testing.T) {
	repo, path := newStudentRepo(t)

	lines := []string{
		"# comment header",
		"",
		"STU1001,Alice,alice@uni.edu,CS,Fall 2025,secret1,CS101;CS201",
		"garbage line without enough fields",
		"STU1002,Bob,bob@uni.edu,IT,Fall 2025,secret2,",
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	students, stats, err := repo.LoadAll()
	require.NoError(t, err)
	require.Equal(t, LoadStats{Loaded: 2, Skipped: 1}, stats)
	require.Equal(t, "STU1001", students[0].StudentID)
	require.Equal(t, []string{"CS101", "CS201"}, students[0].RegisteredCourses)
	require.Equal(t, "STU1002", students[1].StudentID)
}

func TestStudentRepositoryFindByID(t *testing.T) {
	repo, _ := newStudentRepo(t)

	_, _, err := repo.LoadAll()
	require.NoError(t, err)

	admin, err := repo.FindByID(models.AdminID)
	require.NoError(t, err)
	require.Equal(t, "System Administrator", admin.Name)

	_, err = repo.FindByID("STU9999")
	require.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestStudentRepositoryUpdate(t *testing.T) {
	repo, _ := newStudentRepo(t)

	admin, err := repo.FindByID(models.AdminID)
	require.NoError(t, err)

	admin.Name = "Head Administrator"
	require.NoError(t, repo.Update(*admin))

	reloaded, err := repo.FindByID(models.AdminID)
	require.NoError(t, err)
	require.Equal(t, "Head Administrator", reloaded.Name)

	err = repo.Update(models.Student{StudentID: "STU9999"})
	require.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}
