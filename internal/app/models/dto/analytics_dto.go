package dto

// AnalyticsOverviewResponse holds the headline enrollment statistics. The
// admin account is excluded from every figure.
type AnalyticsOverviewResponse struct {
	TotalStudents            int     `json:"totalStudents"`
	TotalCourses             int     `json:"totalCourses"`
	TotalRegistrations       int     `json:"totalRegistrations"`
	AverageCoursesPerStudent float64 `json:"averageCoursesPerStudent"`
}

// CourseCountResponse is one enrollment-count entry.
type CourseCountResponse struct {
	CourseCode string `json:"courseCode"`
	Count      int    `json:"count"`
}

// ProgramCountResponse is one program-distribution entry.
type ProgramCountResponse struct {
	Program string `json:"program"`
	Count   int    `json:"count"`
}

// CreditsResponse is one per-student credit total.
type CreditsResponse struct {
	StudentID string `json:"studentId"`
	Credits   int    `json:"credits"`
}
