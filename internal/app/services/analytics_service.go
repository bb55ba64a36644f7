package services

import (
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/app/repositories"
)

// NoDataCourseCode is the sentinel entry a popularity ranking yields when no
// registrations exist, so display layers always have at least one row.
const NoDataCourseCode = "No Data"

// CourseCount is one course's enrollment count.
type CourseCount struct {
	CourseCode string
	Count      int
}

// Snapshot is a point-in-time aggregation over the stored students and
// courses. The admin account is excluded from every figure.
type Snapshot struct {
	TotalStudents            int
	TotalCourses             int
	TotalRegistrations       int
	AverageCoursesPerStudent float64

	// EnrollmentCounts preserves first-encountered course order, which is
	// the tie-break order for popularity rankings.
	EnrollmentCounts []CourseCount

	ProgramDistribution map[string]int
	CreditsPerStudent   map[string]int
}

// Aggregate computes a Snapshot from loaded collections. It is a pure
// function; persistence side effects live in the service.
func Aggregate(students []models.Student, courses []models.Course) Snapshot {
	snap := Snapshot{
		TotalCourses:        len(courses),
		ProgramDistribution: make(map[string]int),
		CreditsPerStudent:   make(map[string]int),
	}

	creditsByCode := make(map[string]int, len(courses))
	for _, c := range courses {
		creditsByCode[c.CourseCode] = c.Credits
	}

	countIndex := make(map[string]int)
	for _, s := range students {
		if s.IsAdmin() {
			continue
		}

		snap.TotalStudents++
		snap.TotalRegistrations += len(s.RegisteredCourses)
		snap.ProgramDistribution[s.Program]++

		credits := 0
		for _, code := range s.RegisteredCourses {
			credits += creditsByCode[code]
			if i, seen := countIndex[code]; seen {
				snap.EnrollmentCounts[i].Count++
			} else {
				countIndex[code] = len(snap.EnrollmentCounts)
				snap.EnrollmentCounts = append(snap.EnrollmentCounts, CourseCount{CourseCode: code, Count: 1})
			}
		}
		snap.CreditsPerStudent[s.StudentID] = credits
	}

	if snap.TotalStudents > 0 {
		snap.AverageCoursesPerStudent = float64(snap.TotalRegistrations) / float64(snap.TotalStudents)
	}

	return snap
}

// PopularityRanking returns the top n courses by enrollment count, descending,
// ties broken by first-encountered order. An empty snapshot yields the single
// "No Data" sentinel entry rather than an empty slice.
func (s Snapshot) PopularityRanking(n int) []CourseCount {
	if len(s.EnrollmentCounts) == 0 {
		return []CourseCount{{CourseCode: NoDataCourseCode, Count: 0}}
	}

	ranked := make([]CourseCount, len(s.EnrollmentCounts))
	copy(ranked, s.EnrollmentCounts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// AnalyticsService recomputes aggregate statistics from the entity stores on
// demand. Stored analytics entries are an audit trail, never a cache: every
// read recomputes from the current files.
type AnalyticsService interface {
	// ComputeSnapshot loads the current collections, aggregates them, and
	// appends snapshot entries to the analytics log.
	ComputeSnapshot() (*Snapshot, error)
}

// analyticsServiceImpl implements the AnalyticsService interface
type analyticsServiceImpl struct {
	students *repositories.StudentRepository
	courses  *repositories.CourseRepository
	logs     *repositories.LogsRepository
	logger   zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(
	students *repositories.StudentRepository,
	courses *repositories.CourseRepository,
	logs *repositories.LogsRepository,
	logger zerolog.Logger,
) AnalyticsService {
	return &analyticsServiceImpl{
		students: students,
		courses:  courses,
		logs:     logs,
		logger:   logger,
	}
}

func (s *analyticsServiceImpl) ComputeSnapshot() (*Snapshot, error) {
	students, _, err := s.students.LoadAll()
	if err != nil {
		return nil, err
	}
	courses, _, err := s.courses.LoadAll()
	if err != nil {
		return nil, err
	}

	snap := Aggregate(students, courses)

	s.logs.AppendAnalyticsEntry(models.CategoryStatistics, "TOTAL_STUDENTS", strconv.Itoa(snap.TotalStudents))
	s.logs.AppendAnalyticsEntry(models.CategoryStatistics, "TOTAL_COURSES", strconv.Itoa(snap.TotalCourses))
	s.logs.AppendAnalyticsEntry(models.CategoryStatistics, "TOTAL_REGISTRATIONS", strconv.Itoa(snap.TotalRegistrations))
	for _, cc := range snap.EnrollmentCounts {
		s.logs.AppendAnalyticsEntry(models.CategoryCoursePopularity, cc.CourseCode, strconv.Itoa(cc.Count))
	}
	for program, count := range snap.ProgramDistribution {
		s.logs.AppendAnalyticsEntry(models.CategoryProgramDistribution, program, strconv.Itoa(count))
	}

	s.logger.Debug().
		Int("students", snap.TotalStudents).
		Int("registrations", snap.TotalRegistrations).
		Msg("Analytics snapshot computed")
	return &snap, nil
}
