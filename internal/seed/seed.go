// Package seed holds the data written on first run: the administrator
// account and the initial course catalog.
package seed

import "github.com/oguzk/campusreg/internal/app/models"

// AdminStudent returns the built-in administrator record seeded into a fresh
// students file.
func AdminStudent() models.Student {
	return models.Student{
		StudentID: models.AdminID,
		Name:      "System Administrator",
		Email:     "admin@university.edu",
		Program:   "Administration",
		Semester:  "N/A",
		Password:  "admin",
	}
}

// CatalogSection groups seed courses under the comment heading written to a
// fresh courses file.
type CatalogSection struct {
	Heading string
	Courses []models.Course
}

// CourseCatalog returns the initial catalog, grouped the way it is laid out
// in courses.txt.
func CourseCatalog() []CatalogSection {
	return []CatalogSection{
		{
			Heading: "Computer Science Courses",
			Courses: []models.Course{
				{CourseCode: "CS101", CourseName: "Introduction to Programming", Instructor: "Dr. Johnson", Credits: 3, Schedule: "MWF 9:00-10:00"},
				{CourseCode: "CS201", CourseName: "Data Structures and Algorithms", Instructor: "Dr. Williams", Credits: 4, Schedule: "TTh 11:00-12:30"},
				{CourseCode: "CS301", CourseName: "Database Management Systems", Instructor: "Dr. Brown", Credits: 3, Schedule: "MWF 2:00-3:00"},
				{CourseCode: "CS401", CourseName: "Software Engineering", Instructor: "Dr. Davis", Credits: 4, Schedule: "TTh 3:30-5:00"},
				{CourseCode: "CS501", CourseName: "Machine Learning", Instructor: "Dr. Garcia", Credits: 3, Schedule: "MWF 1:00-2:00"},
			},
		},
		{
			Heading: "Information Technology Courses",
			Courses: []models.Course{
				{CourseCode: "IT101", CourseName: "Web Development Fundamentals", Instructor: "Prof. Wilson", Credits: 3, Schedule: "MWF 10:00-11:00"},
				{CourseCode: "IT201", CourseName: "Network Security", Instructor: "Prof. Miller", Credits: 3, Schedule: "TTh 1:00-2:30"},
				{CourseCode: "IT301", CourseName: "Cloud Computing", Instructor: "Prof. Anderson", Credits: 4, Schedule: "MWF 3:00-4:00"},
			},
		},
		{
			Heading: "Mathematics Courses",
			Courses: []models.Course{
				{CourseCode: "MATH201", CourseName: "Discrete Mathematics", Instructor: "Dr. Taylor", Credits: 4, Schedule: "MWF 11:00-12:00"},
				{CourseCode: "MATH301", CourseName: "Statistics for Computer Science", Instructor: "Dr. Lee", Credits: 3, Schedule: "TTh 9:30-11:00"},
			},
		},
		{
			Heading: "General Education Courses",
			Courses: []models.Course{
				{CourseCode: "ENG101", CourseName: "Technical Writing", Instructor: "Prof. Thompson", Credits: 2, Schedule: "TTh 9:00-10:00"},
				{CourseCode: "ENG201", CourseName: "Communication Skills", Instructor: "Prof. Martinez", Credits: 2, Schedule: "MWF 8:00-9:00"},
			},
		},
	}
}

// AllCourses flattens the catalog sections into a single ordered list.
func AllCourses() []models.Course {
	var courses []models.Course
	for _, section := range CourseCatalog() {
		courses = append(courses, section.Courses...)
	}
	return courses
}
