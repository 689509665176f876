package user

import "printlist-backend/internal/models"

type UserResponse struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	Token    string      `json:"token,omitempty"`
}
