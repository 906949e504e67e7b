package role

type Role struct {
	ID   ID     `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:role_name;uniqueIndex;not null" json:"role_name"`
}
