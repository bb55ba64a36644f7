package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/campusreg/internal/app/models"
)

func newLogsRepo(t *testing.T) (*LogsRepository, string) {
	t.Helper()
	dir := t.TempDir()
	repo := NewLogsRepository(
		filepath.Join(dir, ActivityFile),
		filepath.Join(dir, RegistrationsFile),
		filepath.Join(dir, AnalyticsFile),
		zerolog.Nop(),
	)
	return repo, dir
}

func TestAppendActivityFormat(t *testing.T) {
	repo, _ := newLogsRepo(t)

	repo.AppendActivity("STU1001", "Successful login")

	lines, err := repo.TailActivity(0)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	parts := strings.Split(lines[0], " | ")
	require.Len(t, parts, 3)
	_, err = time.Parse(TimestampLayout, parts[0])
	require.NoError(t, err)
	require.Equal(t, "STU1001", parts[1])
	require.Equal(t, "Successful login", parts[2])
}

func TestTailActivityReturnsLastN(t *testing.T) {
	repo, _ := newLogsRepo(t)

	for i := 0; i < 5; i++ {
		repo.AppendActivity("STU1001", fmt.Sprintf("action %d", i))
	}

	lines, err := repo.TailActivity(2)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "action 3"))
	require.True(t, strings.HasSuffix(lines[1], "action 4"))
}

func TestTailActivityMissingFile(t *testing.T) {
	repo, _ := newLogsRepo(t)

	lines, err := repo.TailActivity(10)
	require.NoError(t, err)
	require.Nil(t, lines)
}

func TestAppendRegistrationEvent(t *testing.T) {
	repo, dir := newLogsRepo(t)

	repo.AppendRegistrationEvent("STU1001", models.ActionRegister, "CS101", "Introduction to Programming")
	repo.AppendRegistrationEvent("STU1001", models.ActionLogin, models.NoCourse, "Student logged in")

	events, err := repo.AllRegistrationEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)

	fields := strings.Split(events[0], ",")
	require.Len(t, fields, 5)
	_, err = time.Parse(TimestampLayout, fields[0])
	require.NoError(t, err)
	require.Equal(t, "STU1001", fields[1])
	require.Equal(t, models.ActionRegister, fields[2])
	require.Equal(t, "CS101", fields[3])
	require.Equal(t, "Introduction to Programming", fields[4])

	require.Contains(t, events[1], models.ActionLogin)
	require.Contains(t, events[1], models.NoCourse)

	content, err := os.ReadFile(filepath.Join(dir, RegistrationsFile))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "# Registration Log Format: Timestamp,StudentID,Action,CourseCode,Details"))
}

func TestAllRegistrationEventsMissingFile(t *testing.T) {
	repo, _ := newLogsRepo(t)

	events, err := repo.AllRegistrationEvents()
	require.NoError(t, err)
	require.Nil(t, events)
}

func TestAppendAnalyticsEntry(t *testing.T) {
	repo, dir := newLogsRepo(t)

	repo.AppendAnalyticsEntry(models.CategoryStatistics, "TOTAL_STUDENTS", "2")

	content, err := os.ReadFile(filepath.Join(dir, AnalyticsFile))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "# Analytics Data File"))
	require.Contains(t, string(content), ",STATISTICS,TOTAL_STUDENTS,2")
}

func TestEnsureFilesIsIdempotent(t *testing.T) {
	repo, _ := newLogsRepo(t)

	require.NoError(t, repo.EnsureFiles())
	repo.AppendRegistrationEvent("STU1001", models.ActionDrop, "CS101", "Introduction to Programming")

	// A second call must not truncate the existing logs.
	require.NoError(t, repo.EnsureFiles())

	events, err := repo.AllRegistrationEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
}
