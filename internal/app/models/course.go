package models

// Course represents a catalog entry. Schedule is a free-text time-slot
// string; two courses conflict iff their Schedule strings are exactly equal.
type Course struct {
	CourseCode string
	CourseName string
	Instructor string
	Credits    int
	Schedule   string
}
