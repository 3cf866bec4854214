package convert

import (
	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/storage"
)

func MemberDomainToRecord(m *domain.Member) *storage.MemberRecord {
	if m == nil {
		return nil
	}
	return &storage.MemberRecord{
		GormModel: storage.GormModel{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		MemberId:            m.ID,
		OauthNo:             m.OauthNo,
		Password:            m.Password,
		Name:                m.Name,
		Nickname:            m.Nickname,
		Sex:                 m.Sex,
		Tel:                 m.Tel,
		Email:               m.Email,
		Picture:             m.Picture,
		Role:                m.Role,
		PushViewYn:          m.PushViewYn,
		TagAllowYn:          m.TagAllowYn,
		JoinDttm:            m.JoinDttm,
		LastLoginDttm:       m.LastLoginDttm,
		WrongPasswordNumber: m.WrongPasswordNumber,
		PasswordChgDttm:     m.PasswordChgDttm,
		UseYn:               m.UseYn,
	}
}

func MemberRecordToDomain(r *storage.MemberRecord) *domain.Member {
	if r == nil {
		return nil
	}
	return &domain.Member{
		ID:                  r.MemberId,
		OauthNo:             r.OauthNo,
		Password:            r.Password,
		Name:                r.Name,
		Nickname:            r.Nickname,
		Sex:                 r.Sex,
		Tel:                 r.Tel,
		Email:               r.Email,
		Picture:             r.Picture,
		Role:                r.Role,
		PushViewYn:          r.PushViewYn,
		TagAllowYn:          r.TagAllowYn,
		JoinDttm:            r.JoinDttm,
		LastLoginDttm:       r.LastLoginDttm,
		WrongPasswordNumber: r.WrongPasswordNumber,
		PasswordChgDttm:     r.PasswordChgDttm,
		UseYn:               r.UseYn,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}
