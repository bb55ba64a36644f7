package repositories

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/pkg/apperrors"
)

// LogsRepository owns the three append-only audit files: the free-text
// activity trail, the structured registration-event log, and the analytics
// snapshot log. Appends are best-effort: a failed append is reported on the
// process log and swallowed so it can never fail the triggering operation.
type LogsRepository struct {
	activityPath      string
	registrationsPath string
	analyticsPath     string
	logger            zerolog.Logger
}

// NewLogsRepository creates a LogsRepository writing to the given files.
func NewLogsRepository(activityPath, registrationsPath, analyticsPath string, logger zerolog.Logger) *LogsRepository {
	return &LogsRepository{
		activityPath:      activityPath,
		registrationsPath: registrationsPath,
		analyticsPath:     analyticsPath,
		logger:            logger,
	}
}

// AppendActivity records one timestamped free-text activity line:
// "timestamp | actorId | activity".
func (r *LogsRepository) AppendActivity(actorID, activity string) {
	line := fmt.Sprintf("%s | %s | %s", now(), actorID, activity)
	if err := appendLine(r.activityPath, line); err != nil {
		r.logger.Warn().Err(err).Str("actor", actorID).Msg("Failed to log activity")
	}
}

// AppendRegistrationEvent records one structured registration event:
// "timestamp,studentId,ACTION,courseCodeOrNA,details".
func (r *LogsRepository) AppendRegistrationEvent(studentID, action, courseCode, details string) {
	if err := r.ensureRegistrationsFile(); err != nil {
		r.logger.Warn().Err(err).Msg("Failed to initialize registrations file")
		return
	}
	line := fmt.Sprintf("%s,%s,%s,%s,%s", now(), studentID, action, courseCode, details)
	if err := appendLine(r.registrationsPath, line); err != nil {
		r.logger.Warn().Err(err).Str("student", studentID).Str("action", action).Msg("Failed to log registration event")
	}
}

// AppendAnalyticsEntry records one point-in-time computed statistic:
// "timestamp,CATEGORY,key,value". Entries are an audit trail only; they are
// never read back as a source of truth.
func (r *LogsRepository) AppendAnalyticsEntry(category, key, value string) {
	if err := r.ensureAnalyticsFile(); err != nil {
		r.logger.Warn().Err(err).Msg("Failed to initialize analytics file")
		return
	}
	line := fmt.Sprintf("%s,%s,%s,%s", now(), category, key, value)
	if err := appendLine(r.analyticsPath, line); err != nil {
		r.logger.Warn().Err(err).Str("category", category).Str("key", key).Msg("Failed to log analytics entry")
	}
}

// TailActivity returns the last n activity lines as opaque text, oldest first.
func (r *LogsRepository) TailActivity(n int) ([]string, error) {
	lines, err := readAllLines(r.activityPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.NewFileAccessError(err, "failed to read activity log")
	}

	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// AllRegistrationEvents returns every registration event line in file order,
// skipping the header comments. Lines are opaque text.
func (r *LogsRepository) AllRegistrationEvents() ([]string, error) {
	lines, err := readDataLines(r.registrationsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.NewFileAccessError(err, "failed to read registrations log")
	}
	return lines, nil
}

// EnsureFiles creates the registration and analytics log files with their
// header blocks if they do not exist yet. The activity log is created lazily
// by its first append.
func (r *LogsRepository) EnsureFiles() error {
	if err := r.ensureRegistrationsFile(); err != nil {
		return apperrors.NewFileAccessError(err, "failed to initialize registrations file")
	}
	if err := r.ensureAnalyticsFile(); err != nil {
		return apperrors.NewFileAccessError(err, "failed to initialize analytics file")
	}
	return nil
}

func (r *LogsRepository) ensureRegistrationsFile() error {
	if fileExists(r.registrationsPath) {
		return nil
	}
	f, err := os.Create(r.registrationsPath)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "# Registration Log Format: Timestamp,StudentID,Action,CourseCode,Details")
	fmt.Fprintln(f, "# Actions: REGISTER, DROP, LOGIN, PROFILE_UPDATE, STUDENT_REGISTERED")
	fmt.Fprintln(f, "# Created: "+now())
	fmt.Fprintln(f)

	r.logger.Info().Str("path", r.registrationsPath).Msg("Initialized registrations file")
	return f.Sync()
}

func (r *LogsRepository) ensureAnalyticsFile() error {
	if fileExists(r.analyticsPath) {
		return nil
	}
	f, err := os.Create(r.analyticsPath)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "# Analytics Data File")
	fmt.Fprintln(f, "# This file stores computed analytics data for faster retrieval")
	fmt.Fprintln(f, "# Format: Timestamp,DataType,Key,Value")
	fmt.Fprintln(f, "# Created: "+now())
	fmt.Fprintln(f)

	r.logger.Info().Str("path", r.analyticsPath).Msg("Initialized analytics file")
	return f.Sync()
}
