package domain

// Activity es una actividad individual dentro de una plantilla parcial
// (docencia, gestión, estancia, tutorías, etc.).
type Activity struct {
	ID                     int64    `json:"id"`
	PartialTemplateID      int64    `json:"partialTemplateId"`
	EducationalProgramID   *int64   `json:"educationalProgramId,omitempty"`
	ActivityDistribution   string   `json:"activityDistribution"`
	ManagementType         string   `json:"managementType,omitempty"`
	StayType               string   `json:"stayType,omitempty"`
	ActivityName           string   `json:"activityName,omitempty"`
	GradeGroups            []string `json:"gradeGroups,omitempty"`
	WeeklyHours            int32    `json:"weeklyHours"`
	SubtotalClassification int32    `json:"subtotalClassification"`
	NumberStudents         int32    `json:"numberStudents,omitempty"`
}
