package model

type Course struct {
	BaseModel
	Title string `gorm:"type:varchar(100);not null;uniqueIndex:uni_courses_title" json:"title" form:"title" binding:"required,strNotEmpty"`
}

func (c Course) TableName() string {
	return "courses"
}
