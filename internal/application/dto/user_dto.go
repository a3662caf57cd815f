package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y los datos de sesión que la UI retiene.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
// Permissions vacío = sin permisos; la UI suele enviar las cuatro pestañas marcadas.
type CreateUserRequest struct {
	Username    string   `json:"username" validate:"required,min=1,max=100"`
	Password    string   `json:"password" validate:"required,min=1"`
	Role        string   `json:"role" validate:"required,oneof=admin registrador auditor"`
	Permissions []string `json:"permissions" validate:"dive,oneof=tab1 tab2 tab3 tab4"`
}

// ChangePasswordRequest entrada para cambio de contraseña (propia o por admin).
// La confirmación se valida antes de tocar la cuenta.
type ChangePasswordRequest struct {
	UserID          string `json:"user_id"` // vacío = la propia cuenta
	NewPassword     string `json:"new_password" validate:"required,min=1"`
	ConfirmPassword string `json:"confirm_password" validate:"required,min=1"`
}

// SetPermissionsRequest entrada para editar el conjunto de permisos de una cuenta.
type SetPermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"dive,oneof=tab1 tab2 tab3 tab4"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}
