package employee

type CreateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Position string  `json:"position" binding:"required"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
}

type UpdateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Position string  `json:"position" binding:"required"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
}

type EmployeeResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}
