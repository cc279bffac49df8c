package domain

// Subject es una materia del catálogo de un programa educativo.
type Subject struct {
	ID                   int64  `json:"id"`
	SubjectName          string `json:"subjectName"`
	WeeklyHours          int32  `json:"weeklyHours"`
	TotalHours           int32  `json:"totalHours"`
	MonthPeriod          string `json:"monthPeriod"`
	EducationalProgramID int64  `json:"educationalProgramId"`
	Version              int32  `json:"-"`
}
