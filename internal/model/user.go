package model

type UserRole string

const (
	Admin    UserRole = "admin"
	Exec     UserRole = "exec"
	DeptHead UserRole = "dept_head"
	Staff    UserRole = "staff"
)

// swagger:model User
type User struct {
	BaseModel
	Username     string      `gorm:"size:100;unique;not null" json:"username"`
	Password     string      `gorm:"size:100;not null" json:"-"`
	Role         UserRole    `gorm:"size:20;not null;default:'staff'" json:"role"`
	DepartmentID *uint       `gorm:"index" json:"departmentId,omitempty"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (User) TableName() string {
	return "users"
}
