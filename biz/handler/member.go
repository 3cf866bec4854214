package handler

import (
	"context"
	"errors"
	"net/http"

	"upstagram/be/biz/middleware/jwt"
	"upstagram/be/biz/middleware/session"
	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/dto"
	"upstagram/be/biz/model/errs"
	"upstagram/be/biz/service/member"
	"upstagram/be/biz/service/oauth"
	"upstagram/be/biz/util/random"
	"upstagram/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/sessions"
)

// Join 회원 가입
//
//	@Tags			member
//	@Summary		member registration
//	@Description	register a new member with id, password, tel and sex
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.JoinReq	true	"join request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.JoinResp}
//	@Router			/api/v1/member/join [POST]
func Join(ctx context.Context, c *app.RequestContext) {
	var req dto.JoinReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	m, bizErr := member.NewDefault().Join(ctx, &domain.MemberJoinRequest{
		ID:       req.ID,
		Password: req.Password,
		Name:     req.Name,
		Nickname: req.Nickname,
		Sex:      req.Sex,
		Tel:      req.Tel,
	})
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.JoinResp{
		ID:       m.ID,
		Role:     m.Role,
		JoinedAt: m.JoinDttm.Unix(),
	})
}

// Login 로그인
//
//	@Tags			member
//	@Summary		member login
//	@Description	member login with id and password
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.LoginResp}
//	@Header			200	{string}	set-cookie	"cookie"
//	@Router			/api/v1/member/login [POST]
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	ms, bizErr := member.NewDefault().Login(ctx, req.ID, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	accessToken, expAt, bizErr := establishSession(ctx, c, ms.ID, ms.Role, ms.Name)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.LoginResp{
		AccessToken: accessToken,
		ExpiresAt:   expAt,
	})
}

// establishSession persists the session and issues the access/refresh token
// pair bound to it. Shared by local and federated login.
func establishSession(ctx context.Context, c *app.RequestContext, memberID, role, name string) (string, int64, errs.Error) {
	sess := sessions.Default(c)
	sess.Set("member_id", memberID)
	sess.Set("role", role)
	sess.Set("name", name)
	if err := sess.Save(); err != nil {
		hlog.CtxErrorf(ctx, "sess.Save err: %v", err)
		return "", 0, errs.ServerError.SetErr(err)
	}

	payload := jwt.Payload{
		MemberID: memberID,
		Role:     role,
	}

	accessToken, expAt, jwtErr := jwt.GenerateToken(ctx, payload, sess.ID())
	if jwtErr != nil {
		return "", 0, errs.ServerError.SetErr(jwtErr)
	}

	refreshToken, refreshExpAt, refreshErr := jwt.GenerateRefreshToken(ctx, sess.ID())
	if refreshErr != nil {
		return "", 0, errs.ServerError.SetErr(refreshErr)
	}
	jwt.SetRefreshTokenCookie(c, refreshToken, refreshExpAt)

	return accessToken, expAt, nil
}

const oauthStateSessionKey = "oauth_state"

// OAuthLogin OAuth 인증 요청
//
//	@Tags			member
//	@Summary		start federated login
//	@Description	redirects to the configured provider's authorization page
//	@Produce		json
//	@Success		302
//	@Router			/api/v1/member/oauth/login [GET]
func OAuthLogin(ctx context.Context, c *app.RequestContext) {
	state := random.RandStr(24)

	sess := sessions.Default(c)
	sess.Set(oauthStateSessionKey, state)
	if err := sess.Save(); err != nil {
		hlog.CtxErrorf(ctx, "sess.Save err: %v", err)
		resp.FailResp(c, errs.ServerError.SetErr(err))
		return
	}

	c.Redirect(http.StatusFound, []byte(oauth.NewDefault().AuthURL(state)))
}

// OAuthCallback OAuth 콜백
//
//	@Tags			member
//	@Summary		federated login callback
//	@Description	exchanges the provider code, links or creates the member and logs in
//	@Produce		json
//	@Param			code	query		string	true	"authorization code"
//	@Param			state	query		string	true	"state echoed by the provider"
//	@Success		200		{object}	dto.CommonResp{data=dto.LoginResp}
//	@Router			/api/v1/member/oauth/callback [GET]
func OAuthCallback(ctx context.Context, c *app.RequestContext) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		resp.AbortWithErr(c, errs.ParamError.SetMsg("code and state are required"), http.StatusBadRequest)
		return
	}

	sess := sessions.Default(c)
	wantState, _ := sess.Get(oauthStateSessionKey).(string)
	sess.Delete(oauthStateSessionKey)
	if wantState == "" || wantState != state {
		hlog.CtxNoticef(ctx, "oauth state mismatch")
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	oauthSvc := oauth.NewDefault()
	attrs, err := oauthSvc.Exchange(ctx, code)
	if err != nil {
		hlog.CtxErrorf(ctx, "oauth exchange err: %v", err)
		resp.FailResp(c, errs.Unauthorized.SetErr(err))
		return
	}

	m, bizErr := member.NewDefault().LoginOrLinkOAuth(ctx, oauthSvc.Subject(attrs), attrs)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	accessToken, expAt, bizErr := establishSession(ctx, c, m.ID, m.Role, m.Name)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.LoginResp{
		AccessToken: accessToken,
		ExpiresAt:   expAt,
	})
}

// RefreshToken 토큰 갱신
//
//	@Tags			member
//	@Summary		refresh token
//	@Description	rotate the access and refresh token pair
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.RefreshTokenReq	true	"refresh token request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.RefreshTokenResp}
//	@Header			200	{string}	set-cookie	"cookie"
//	@Router			/api/v1/member/refresh_token [POST]
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req dto.RefreshTokenReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError, http.StatusBadRequest)
		return
	}

	sess := sessions.Default(c)
	sessID := sess.ID()
	if sessID == "" {
		hlog.CtxNoticef(ctx, "sessID is empty")
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	refreshToken := jwt.GetRefreshTokenFromCookie(c)
	if refreshToken == "" {
		hlog.CtxNoticef(ctx, "refreshToken is empty")
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	if err := jwt.RemoveRefreshToken(ctx, refreshToken, sessID); err != nil {
		if errors.Is(err, jwt.ErrRefreshTokenInvalid) {
			resp.FailResp(c, errs.Unauthorized.SetErr(err))
			return
		}
		hlog.CtxErrorf(ctx, "RemoveRefreshToken err: %v", err)
		resp.FailResp(c, errs.ServerError.SetErr(err))
		return
	}

	memberID, _ := sess.Get("member_id").(string)
	role, _ := sess.Get("role").(string)
	if memberID == "" {
		hlog.CtxNoticef(ctx, "memberID is empty")
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	newAccessToken, accessExpAt, accessErr := jwt.GenerateToken(ctx,
		jwt.Payload{
			MemberID: memberID,
			Role:     role,
		}, sessID)
	if accessErr != nil {
		hlog.CtxErrorf(ctx, "GenerateToken err: %v", accessErr)
		resp.FailResp(c, errs.ServerError.SetErr(accessErr))
		return
	}

	newRefreshToken, refreshExpAt, refreshErr := jwt.GenerateRefreshToken(ctx, sessID)
	if refreshErr != nil {
		hlog.CtxErrorf(ctx, "GenerateRefreshToken err: %v", refreshErr)
		resp.FailResp(c, errs.ServerError.SetErr(refreshErr))
		return
	}
	jwt.SetRefreshTokenCookie(c, newRefreshToken, refreshExpAt)

	resp.SuccessResp(c, dto.RefreshTokenResp{
		AccessToken:      newAccessToken,
		ExpiresAt:        accessExpAt,
		RefreshToken:     newRefreshToken,
		RefreshExpiresAt: refreshExpAt,
	})
}

// Logout 로그아웃
//
//	@Tags			member
//	@Summary		member logout
//	@Description	invalidate the session and both tokens
//	@Accept			json
//	@Produce		json
//	@Param			req				body		dto.LogoutReq	true	"logout request body"
//	@Param			Authorization	header		string			true	"jwt"
//	@Success		200				{object}	dto.CommonResp{data=dto.LogoutResp}
//	@Header			200				{string}	set-cookie	"cookie"
//	@Router			/api/v1/member/logout [POST]
func Logout(ctx context.Context, c *app.RequestContext) {
	var req dto.LogoutReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "Logout BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError, http.StatusBadRequest)
		return
	}

	sess := sessions.Default(c)
	sessID := sess.ID()
	if err := jwt.RemoveToken(ctx, sessID); err != nil {
		hlog.CtxErrorf(ctx, "RemoveToken err: %v", err)
	}
	if rt := jwt.GetRefreshTokenFromCookie(c); rt != "" {
		if err := jwt.RemoveRefreshToken(ctx, rt, sessID); err != nil {
			hlog.CtxErrorf(ctx, "RemoveRefreshToken err: %v", err)
		}
		jwt.ClearRefreshTokenCookie(c)
	}
	if err := session.Remove(c); err != nil {
		hlog.CtxErrorf(ctx, "RemoveSession err: %v", err)
	}
	hlog.CtxInfof(ctx, "Logout success")
	resp.SuccessResp(c, dto.LogoutResp{})
}

// GetMemberInfo 회원 정보 조회
//
//	@Tags			member
//	@Summary		get member info
//	@Description	get the logged-in member's profile
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string	true	"jwt"
//	@Success		200				{object}	dto.CommonResp{data=dto.GetMemberInfoResp}
//	@Router			/api/v1/member/info [GET]
func GetMemberInfo(ctx context.Context, c *app.RequestContext) {
	var req dto.GetMemberInfoReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError, http.StatusBadRequest)
		return
	}

	payload := jwt.GetPayload(ctx)
	if payload.MemberID == "" {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	m, bizErr := member.NewDefault().GetByMemberID(ctx, payload.MemberID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.GetMemberInfoResp{
		ID:       m.ID,
		Name:     m.Name,
		Nickname: m.Nickname,
		OauthNo:  m.OauthNo,
		Sex:      m.Sex,
		Tel:      m.Tel,
		Role:     m.Role,
	})
}
