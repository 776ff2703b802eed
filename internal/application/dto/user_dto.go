package dto

import "time"

// RegisterRequest entrada para registrar un usuario (solo ADMIN).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=150"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role     string `json:"role,omitempty"`
	Area     string `json:"area,omitempty" validate:"omitempty,max=30"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida de login: token JWT y datos del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest entrada para actualizar un usuario (solo ADMIN).
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=150"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role     *string `json:"role,omitempty"`
	Status   *string `json:"status,omitempty"`
	Area     *string `json:"area,omitempty" validate:"omitempty,max=30"`
	Notes    *string `json:"notes,omitempty"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FullName   string     `json:"full_name,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	Area       string     `json:"area,omitempty"`
	LastAccess *time.Time `json:"last_access,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
