package model

import "github.com/google/uuid"

const (
	ROLE_USER  = "user"
	ROLE_ADMIN = "admin"
)

type CachedUser struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	Role        string    `json:"role"`
}

func (u *CachedUser) IsAdmin() bool {
	return u.Role == ROLE_ADMIN
}

type UserAuthor struct {
	Username    string  `json:"username"`
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
	Role        string  `json:"role"`
}
