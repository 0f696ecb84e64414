package domain

// Team is a named group of employees owned by a manager.
type Team struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	OwnerUserID int64  `gorm:"column:owner_user_id;not null"`
}

// TeamMember links an employee to a team.
type TeamMember struct {
	ID     int64 `gorm:"primaryKey"`
	TeamID int64 `gorm:"not null;index"`
	UserID int64 `gorm:"not null;index"`
}
