package member

import (
	"context"
	"strings"
	"time"

	"upstagram/be/biz/dal/repo"
	"upstagram/be/biz/db/mysql"
	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/errs"
	"upstagram/be/biz/util/password"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const telDigits = 11

type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) (*domain.Member, error)
	FindByMemberID(ctx context.Context, memberID string) (*domain.Member, error)
	FindByMemberIDAndUseYn(ctx context.Context, memberID, useYn string) (*domain.Member, error)
	FindByOauthNo(ctx context.Context, oauthNo string) (*domain.Member, error)
	UpdateLoginState(ctx context.Context, memberID string, apply func(domain.Member) domain.Member) (*domain.Member, error)
}

type Service struct {
	members MemberRepository
}

func New(members MemberRepository) *Service {
	return &Service{members: members}
}

func NewDefault() *Service {
	return New(repo.NewMemberRepository(mysql.GetDbConn()))
}

// Login verifies the credentials against the active member record. Every
// verified attempt leaves a durable mark: the fail counter increments on a
// wrong password before the error is reported, and resets together with the
// last-login stamp on success. The returned session reflects the record as it
// was before the login write.
func (s *Service) Login(ctx context.Context, id, plain string) (*domain.MemberSession, errs.Error) {
	if id == "" {
		return nil, errs.ParamError.SetMsg("id is required")
	}
	if plain == "" {
		return nil, errs.ParamError.SetMsg("password is required")
	}

	m, err := s.members.FindByMemberIDAndUseYn(ctx, id, domain.FlagYes)
	if err != nil {
		return nil, errs.ServerError
	}
	if m == nil {
		return nil, errs.MemberNotExist
	}

	if !password.Verify(m.Password, plain) {
		hlog.CtxInfof(ctx, "LOGIN failed(%s)", m.ID)
		if _, err := s.members.UpdateLoginState(ctx, m.ID, domain.Member.LoginFail); err != nil {
			return nil, errs.ServerError.SetErr(err)
		}
		return nil, errs.PasswordIncorrect
	}

	session := m.Session()

	now := time.Now()
	if _, err := s.members.UpdateLoginState(ctx, m.ID, func(cur domain.Member) domain.Member {
		return cur.LoginSuccess(now)
	}); err != nil {
		return nil, errs.ServerError.SetErr(err)
	}
	hlog.CtxInfof(ctx, "LOGIN success(%s)", m.ID)

	return session, nil
}

// Join registers a new local member. Validation order is fixed and the first
// failing field wins; no write happens on a validation failure.
func (s *Service) Join(ctx context.Context, req *domain.MemberJoinRequest) (*domain.Member, errs.Error) {
	if bizErr := s.validateJoin(ctx, req); bizErr != nil {
		return nil, bizErr
	}

	now := time.Now()
	m := &domain.Member{
		ID:                  req.ID,
		OauthNo:             "",
		Password:            req.Password, // hashed by validateJoin
		Name:                req.Name,
		Nickname:            req.Nickname,
		Sex:                 req.Sex,
		Tel:                 req.Tel,
		Role:                domain.RoleUser,
		PushViewYn:          domain.FlagYes,
		TagAllowYn:          domain.FlagYes,
		JoinDttm:            now,
		WrongPasswordNumber: 0,
		PasswordChgDttm:     now,
		UseYn:               domain.FlagYes,
	}

	created, err := s.members.Create(ctx, m)
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, errs.MemberDuplicated
		}
		return nil, errs.ServerError
	}

	hlog.CtxInfof(ctx, "JOIN success(%s)", created.ID)
	return created, nil
}

// validateJoin checks the join request field by field. The plaintext password
// is replaced in place by its hash before any further processing, so nothing
// downstream ever sees it.
func (s *Service) validateJoin(ctx context.Context, req *domain.MemberJoinRequest) errs.Error {
	if req.ID == "" {
		return errs.ParamError.SetMsg("id is required")
	}

	if req.Password == "" {
		return errs.ParamError.SetMsg("password is required")
	}
	hashed, err := password.Hash(req.Password)
	if err != nil {
		return errs.ServerError.SetErr(err)
	}
	req.Password = hashed

	if req.Tel == "" {
		return errs.ParamError.SetMsg("tel is required")
	}
	req.Tel = strings.ReplaceAll(req.Tel, "-", "")
	if len(req.Tel) != telDigits {
		return errs.ParamError.SetMsg("tel must be 11 digits")
	}

	if req.Sex == "" {
		return errs.ParamError.SetMsg("sex is required")
	}

	existing, err := s.members.FindByMemberID(ctx, req.ID)
	if err != nil {
		return errs.ServerError
	}
	if existing != nil {
		return errs.MemberDuplicated
	}

	return nil
}

// GetByMemberID returns the member regardless of use_yn; callers deciding on
// login eligibility go through Login instead.
func (s *Service) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, errs.Error) {
	m, err := s.members.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, errs.ServerError
	}
	if m == nil {
		return nil, errs.MemberNotExist
	}
	return m, nil
}

// LoginOrLinkOAuth resolves a federated exchange to a local member: the first
// exchange creates a GUEST member carrying the normalized profile, later ones
// log the linked member in.
func (s *Service) LoginOrLinkOAuth(ctx context.Context, oauthNo string, attrs *domain.OAuthAttributes) (*domain.Member, errs.Error) {
	if oauthNo == "" {
		return nil, errs.ParamError.SetMsg("oauth subject is required")
	}

	existing, err := s.members.FindByOauthNo(ctx, oauthNo)
	if err != nil {
		return nil, errs.ServerError
	}
	if existing != nil {
		now := time.Now()
		if _, err := s.members.UpdateLoginState(ctx, existing.ID, func(cur domain.Member) domain.Member {
			return cur.LoginSuccess(now)
		}); err != nil {
			return nil, errs.ServerError.SetErr(err)
		}
		return existing, nil
	}

	req := attrs.ToMemberRequest()
	now := time.Now()
	m := &domain.Member{
		ID:         memberIDForOauth(oauthNo, attrs),
		OauthNo:    oauthNo,
		Name:       req.Name,
		Email:      req.Email,
		Picture:    req.Picture,
		Role:       req.Role, // GUEST until the profile is completed
		PushViewYn: domain.FlagYes,
		TagAllowYn: domain.FlagYes,
		JoinDttm:   now,
		UseYn:      domain.FlagYes,
	}

	created, err := s.members.Create(ctx, m)
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, errs.MemberDuplicated
		}
		return nil, errs.ServerError
	}

	hlog.CtxInfof(ctx, "OAUTH JOIN success(%s)", created.ID)
	return created, nil
}

func memberIDForOauth(oauthNo string, attrs *domain.OAuthAttributes) string {
	if attrs != nil && attrs.Email != "" {
		return attrs.Email
	}
	return oauthNo
}
