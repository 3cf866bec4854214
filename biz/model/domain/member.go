package domain

import "time"

const (
	RoleGuest = "GUEST"
	RoleUser  = "ROLE_USER"

	FlagYes = "Y"
	FlagNo  = "N"
)

type Member struct {
	ID                  string
	OauthNo             string
	Password            string // one-way hash, never the plaintext
	Name                string
	Nickname            string
	Sex                 string
	Tel                 string
	Email               string
	Picture             string
	Role                string
	PushViewYn          string
	TagAllowYn          string
	JoinDttm            time.Time
	LastLoginDttm       time.Time
	WrongPasswordNumber int
	PasswordChgDttm     time.Time
	UseYn               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// MemberSession is the projection returned to the caller on successful login.
// It is never persisted.
type MemberSession struct {
	ID   string
	Name string
	Sex  string
	Tel  string
	Role string
}

func (m *Member) Session() *MemberSession {
	return &MemberSession{
		ID:   m.ID,
		Name: m.Name,
		Sex:  m.Sex,
		Tel:  m.Tel,
		Role: m.Role,
	}
}

// LoginSuccess returns a copy with the fail counter cleared and the login time
// stamped. Persisting the copy is the caller's decision.
func (m Member) LoginSuccess(now time.Time) Member {
	m.WrongPasswordNumber = 0
	m.LastLoginDttm = now
	return m
}

// LoginFail returns a copy with the fail counter bumped by one.
func (m Member) LoginFail() Member {
	m.WrongPasswordNumber++
	return m
}

// MemberJoinRequest carries registration input. Password is replaced in place
// by its hash during validation so the plaintext never travels further.
type MemberJoinRequest struct {
	ID       string
	Password string
	Name     string
	Nickname string
	Sex      string
	Tel      string
	Role     string
	Email    string
	Picture  string
	OauthNo  string
}
