package entities

// Vacancy is one entry of the read-only job catalog, seeded at process start.
type Vacancy struct {
	ID           int           `gorm:"primaryKey"`
	CategoryID   int
	CategoryName string
	Company      string
	Address      string
	Description  string
	Positions    []JobPosition `gorm:"foreignKey:VacancyID"`
}

// JobPosition is a position offered by a vacancy. Capacity is the hard limit
// of distinct applicants; ApplyCapacity is a display-only upper bound and is
// not enforced. The live applicant count is derived from the application
// ledger, never stored here.
type JobPosition struct {
	ID            int `gorm:"primaryKey"`
	VacancyID     int `gorm:"index"`
	Name          string
	Capacity      int
	ApplyCapacity int
	SortOrder     int
}

type Category struct {
	ID          int    `json:"id"`
	JobCategory string `json:"job_category"`
}

func (v Vacancy) Category() Category {
	return Category{ID: v.CategoryID, JobCategory: v.CategoryName}
}

// Position looks up a position of this vacancy by name.
func (v Vacancy) Position(name string) (JobPosition, bool) {
	for _, p := range v.Positions {
		if p.Name == name {
			return p, true
		}
	}
	return JobPosition{}, false
}
