package model

type Admin struct {
	BaseModel
	Username string `gorm:"type:varchar(50);not null;uniqueIndex:uni_admins_username" json:"username" form:"username" binding:"required"`
	// Password is a bcrypt hash, never the plain text.
	Password string `gorm:"type:varchar(200);not null" json:"-" form:"-"`
}

func (a Admin) TableName() string {
	return "admins"
}
