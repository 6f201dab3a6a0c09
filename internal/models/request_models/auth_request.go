package request_models

type RequestLoginLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyLoginLinkRequest struct {
	Token string `json:"token" binding:"required"`
}
