package models

// Department names accepted by the system. The set is fixed; validation
// rejects anything outside it.
const (
	DeptEngineering = "College of Engineering"
	DeptCAFAD       = "College of Architecture, Fine Arts and Design"
	DeptEngTech     = "College of Engineering Technology"
	DeptInformatics = "College of Informatics and Computing Sciences"
)

// Departments lists the valid college departments in display order.
var Departments = []string{
	DeptEngineering,
	DeptCAFAD,
	DeptEngTech,
	DeptInformatics,
}

// departmentCourses maps each department to its offered courses. The course
// list shown in the form is always filtered by the selected department.
var departmentCourses = map[string][]string{
	DeptEngineering: {
		"BS Civil Engineering",
		"BS Electrical Engineering",
		"BS Electronics Engineering",
		"BS Mechanical Engineering",
		"BS Sanitary Engineering",
	},
	DeptCAFAD: {
		"BS Architecture",
		"BS Interior Design",
		"BFA Visual Communication",
	},
	DeptEngTech: {
		"BS Automotive Engineering Technology",
		"BS Civil Engineering Technology",
		"BS Electrical Engineering Technology",
		"BS Mechatronics Engineering Technology",
	},
	DeptInformatics: {
		"BS Computer Science",
		"BS Information Technology",
	},
}

// CoursesFor returns the courses offered by a department. Unknown departments
// yield an empty list, which leaves the course selector empty in the form.
func CoursesFor(department string) []string {
	return departmentCourses[department]
}

// ValidDepartment reports whether name is one of the fixed departments.
func ValidDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}

// YearLevels lists the valid ordinal year levels.
var YearLevels = []string{"1st Year", "2nd Year", "3rd Year", "4th Year"}

// ValidYearLevel reports whether level is one of the fixed year levels.
func ValidYearLevel(level string) bool {
	for _, y := range YearLevels {
		if y == level {
			return true
		}
	}
	return false
}

// StatusEnrolled is the default status assigned to new records when the
// client omits one.
const StatusEnrolled = "Enrolled"

// Statuses lists the valid enrollment statuses.
var Statuses = []string{
	StatusEnrolled,
	"Unenrolled",
	"Graduated",
	"Dropped",
	"Suspended",
	"Transferred Out",
}

// ValidStatus reports whether status is one of the fixed statuses.
func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
