package entities

import (
	"time"

	"github.com/samber/lo"
)

type ApplyStatus string

const (
	ApplyPending  ApplyStatus = "pending"
	ApplyAccepted ApplyStatus = "accepted"
	ApplyRejected ApplyStatus = "rejected"
)

// Application is one user's single application document for a vacancy. The
// (UserID, VacancyID) pair is unique: a user applies to a vacancy at most
// once, though one document may name several positions.
type Application struct {
	ID        int                   `gorm:"primaryKey"`
	UserID    string                `gorm:"index"`
	VacancyID int
	Positions []ApplicationPosition `gorm:"foreignKey:ApplicationID"`
	CreatedAt time.Time
}

// ApplicationPosition carries VacancyID redundantly so per-position applicant
// counts are a single indexed count query.
type ApplicationPosition struct {
	ID            int    `gorm:"primaryKey"`
	ApplicationID int    `gorm:"index"`
	VacancyID     int    `gorm:"index:idx_vacancy_position"`
	Position      string `gorm:"index:idx_vacancy_position"`
	ApplyStatus   ApplyStatus
	Notes         string
}

func NewApplication(userID string, vacancyID int, positions []string, notes string) Application {
	return Application{
		UserID:    userID,
		VacancyID: vacancyID,
		Positions: lo.Map(positions, func(name string, _ int) ApplicationPosition {
			return ApplicationPosition{
				VacancyID:   vacancyID,
				Position:    name,
				ApplyStatus: ApplyPending,
				Notes:       notes,
			}
		}),
	}
}

// PositionNames returns the names of the positions this document applies to.
func (a Application) PositionNames() []string {
	return lo.Map(a.Positions, func(p ApplicationPosition, _ int) string {
		return p.Position
	})
}
