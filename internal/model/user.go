package model

type UserType string

const (
	Aluno     UserType = "aluno"
	Professor UserType = "professor"
)

// swagger:model User
type User struct {
	BaseModel
	Name               string   `gorm:"size:100;not null" json:"name"`
	Email              string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash       string   `gorm:"size:100;not null" json:"-"`
	UserType           UserType `gorm:"size:20;not null;default:'aluno'" json:"user_type"`
	CPF                string   `gorm:"size:14" json:"cpf,omitempty"`
	Phone              string   `gorm:"size:20" json:"phone,omitempty"`
	Institution        string   `gorm:"size:255" json:"institution,omitempty"`
	RegistrationNumber string   `gorm:"size:50" json:"registrationNumber,omitempty"`
	Course             string   `gorm:"size:255" json:"course,omitempty"`
	PhotoURL           string   `gorm:"size:255" json:"photoUrl,omitempty"`
}

func (User) TableName() string {
	return "users"
}
