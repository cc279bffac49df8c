package domain

type EducationalProgram struct {
	ID           int64  `json:"id"`
	Abbreviation string `json:"abbreviation"`
	Description  string `json:"description"`
	AreaID       int64  `json:"areaId"`
	Version      int32  `json:"-"`
}
