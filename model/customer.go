package model

type Customer struct {
	DTO
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	UserName string `json:"username"`

	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`

	Phone   string `json:"phone"`
	Address string `json:"address"`

	Role     string `gorm:"size:20;default:'CUSTOMER'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type Customers []Customer

type RegisterCustomerInput struct {
	UserName  string  `json:"username" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	Phone     string  `json:"phone"`
}

type EditCustomerInput struct {
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

type CustomerChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	RepeatPassword  string `json:"repeatPassword" validate:"required,eqfield=NewPassword"`
}
