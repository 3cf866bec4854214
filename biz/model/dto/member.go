package dto

type JoinReq struct {
	ID       string `json:"id" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
	Name     string `json:"name" validate:"max=64"`
	Nickname string `json:"nickname" validate:"max=64"`
	Sex      string `json:"sex" validate:"required,max=8"`
	Tel      string `json:"tel" validate:"required,max=16"`
}

type JoinResp struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	JoinedAt int64  `json:"joined_at"`
}

type LoginReq struct {
	ID       string `json:"id" validate:"max=64"`
	Password string `json:"password" validate:"max=128"`
}

type LoginResp struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type RefreshTokenReq struct {
}

type RefreshTokenResp struct {
	AccessToken      string `json:"access_token"`
	ExpiresAt        int64  `json:"expires_at"`
	RefreshToken     string `json:"refresh_token"`
	RefreshExpiresAt int64  `json:"refresh_expires_at"`
}

type LogoutReq struct{}

type LogoutResp struct{}

type GetMemberInfoReq struct{}

type GetMemberInfoResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	OauthNo  string `json:"oauth_no"`
	Sex      string `json:"sex"`
	Tel      string `json:"tel"`
	Role     string `json:"role"`
}
