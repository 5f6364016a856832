package dto

// LoginRequest credenciais do operador.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest cadastro de operador (somente admin).
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UserResponse operador sem o hash de senha.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginResponse token + dados do operador.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
