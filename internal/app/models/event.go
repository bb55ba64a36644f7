package models

// Registration event action tags written to registrations.txt.
const (
	ActionRegister          = "REGISTER"
	ActionDrop              = "DROP"
	ActionLogin             = "LOGIN"
	ActionProfileUpdate     = "PROFILE_UPDATE"
	ActionStudentRegistered = "STUDENT_REGISTERED"
)

// NoCourse is the course-code placeholder for events that are not tied to a
// particular course.
const NoCourse = "N/A"

// Analytics snapshot categories written to analytics_data.txt.
const (
	CategoryStatistics          = "STATISTICS"
	CategoryCoursePopularity    = "COURSE_POPULARITY"
	CategoryProgramDistribution = "PROGRAM_DISTRIBUTION"
)
