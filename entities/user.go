package entities

type User struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Username         string  `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email            string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash     string  `gorm:"not null" json:"-"`
	FullName         *string `gorm:"size:100" json:"full_name"`
	ProfileImagePath *string `json:"profile_image_path"`

	Timestamp
}
