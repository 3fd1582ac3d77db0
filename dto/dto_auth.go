package dto

// ===== Requests =====

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ===== Responses =====

type LoginResponse struct {
	Msg         string `json:"msg"         example:"Login successful"`
	AccessToken string `json:"access_token"`
	Username    string `json:"username"    example:"alice"`
}
