package storage

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt
}

type MemberRecord struct {
	GormModel
	MemberId            string `gorm:"size:64;not null;uniqueIndex"` // 회원 고유 ID
	OauthNo             string `gorm:"size:64;not null"`             // 연동된 OAuth 식별자, 없으면 빈 문자열
	Password            string `gorm:"size:128;not null"`
	Name                string `gorm:"size:64"`
	Nickname            string `gorm:"size:64"`
	Sex                 string `gorm:"size:8"`
	Tel                 string `gorm:"size:16"` // digits only, 11 chars
	Email               string `gorm:"size:128"`
	Picture             string `gorm:"size:256"`
	Role                string `gorm:"size:16"`
	PushViewYn          string `gorm:"size:1;default:Y"`
	TagAllowYn          string `gorm:"size:1;default:Y"`
	JoinDttm            time.Time
	LastLoginDttm       time.Time
	WrongPasswordNumber int `gorm:"default:0;not null"`
	PasswordChgDttm     time.Time
	UseYn               string `gorm:"size:1;default:Y"`
}

func (MemberRecord) TableName() string {
	return "member_info"
}
