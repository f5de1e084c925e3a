package repositories

import "github.com/rendyak/karirku/internal/entities"

// Seed data stands in for an external user directory and a vacancy
// administration backend, neither of which exists in this system.

func (c *DbContext) seedUsers() error {
	users := []entities.User{
		{
			IDCardNumber: "1234567890123456",
			Password:     "password123",
			Name:         "Doni Rianto",
			BornDate:     "1974-10-22",
			Gender:       "male",
			Address:      "Ki. Raya Setiabudhi No. 790",
			RegionalID:   1,
			Province:     "DKI Jakarta",
			District:     "Central Jakarta",
		},
		{
			IDCardNumber: "9876543210987654",
			Password:     "password456",
			Name:         "Siti Nurhaliza",
			BornDate:     "1985-05-15",
			Gender:       "female",
			Address:      "Jl. Sudirman No. 123",
			RegionalID:   2,
			Province:     "Jawa Barat",
			District:     "Bandung",
		},
	}

	return c.DB.Create(&users).Error
}

func (c *DbContext) seedVacancies() error {
	vacancies := []entities.Vacancy{
		{
			ID:           1,
			CategoryID:   1,
			CategoryName: "Technology",
			Company:      "PT. MajuMundur Sejahtera",
			Address:      "Jl. Gotong Royong No. 123, Jakarta",
			Description:  "Lowongan pekerjaan untuk beberapa posisi teknologi",
			Positions: []entities.JobPosition{
				{Name: "Web Developer", Capacity: 5, ApplyCapacity: 15, SortOrder: 1},
				{Name: "Mobile Developer", Capacity: 3, ApplyCapacity: 10, SortOrder: 2},
			},
		},
		{
			ID:           2,
			CategoryID:   2,
			CategoryName: "Marketing",
			Company:      "CV. Kreatif Digital",
			Address:      "Jl. Sudirman No. 456, Bandung",
			Description:  "Perusahaan digital marketing terkemuka",
			Positions: []entities.JobPosition{
				{Name: "Digital Marketing Specialist", Capacity: 2, ApplyCapacity: 8, SortOrder: 1},
				{Name: "Content Creator", Capacity: 4, ApplyCapacity: 12, SortOrder: 2},
			},
		},
		{
			ID:           3,
			CategoryID:   4,
			CategoryName: "Design",
			Company:      "Studio Desain Kreatif",
			Address:      "Jl. Raya Kemang No. 789, Jakarta Selatan",
			Description:  "Studio desain yang mengerjakan berbagai proyek kreatif",
			Positions: []entities.JobPosition{
				{Name: "Graphic Designer", Capacity: 3, ApplyCapacity: 9, SortOrder: 1},
				{Name: "UI/UX Designer", Capacity: 2, ApplyCapacity: 6, SortOrder: 2},
			},
		},
	}

	return c.DB.Create(&vacancies).Error
}
