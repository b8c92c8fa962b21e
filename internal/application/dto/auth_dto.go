package dto

// LoginRequest credenciales simuladas del formulario de login.
// No hay verificación real: cualquier email bien formado con contraseña
// de longitud mínima y un rol elegido se acepta.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // "manager" | "staff"
}

// SignupRequest formulario de registro simulado.
type SignupRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Company         string `json:"company"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"` // opcional, por defecto staff
}

// SessionResponse identidad de la sesión activa.
type SessionResponse struct {
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Authenticated bool     `json:"authenticated"`
	Capabilities  []string `json:"capabilities,omitempty"` // solo en /profile
}

// LoginResponse resultado de login o signup: token de sesión + identidad.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
	Message string          `json:"message"`
}
