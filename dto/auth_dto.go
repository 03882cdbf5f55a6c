package dto

import "strings"

type RegisterInput struct {
	Email    string  `json:"email" binding:"required,email,max=255"`
	Password string  `json:"password" binding:"required,min=8,maxbytes=72"`
	FullName *string `json:"full_name" binding:"omitempty,max=255"`
}

// LoginInput はJSON（email）とOAuth2のパスワードフォーム（username）の両方を受け付ける
type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"omitempty,email"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (in LoginInput) Identifier() string {
	if email := strings.TrimSpace(in.Email); email != "" {
		return email
	}
	return strings.TrimSpace(in.Username)
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
