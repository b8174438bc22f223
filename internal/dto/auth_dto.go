package dto

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=50"`
}

type AuthResponse struct {
	Token      string `json:"token"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	RedirectTo string `json:"redirect_to"`
}
