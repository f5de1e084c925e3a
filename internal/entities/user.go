package entities

// User is a seeded account record. There is no registration flow: the user
// table stands in for an external identity provider and is populated at
// process start.
type User struct {
	IDCardNumber string `gorm:"primaryKey"`
	Password     string
	Name         string
	BornDate     string
	Gender       string
	Address      string
	RegionalID   int
	Province     string
	District     string
}

type Regional struct {
	ID       int    `json:"id"`
	Province string `json:"province"`
	District string `json:"district"`
}

func (u User) Regional() Regional {
	return Regional{ID: u.RegionalID, Province: u.Province, District: u.District}
}
