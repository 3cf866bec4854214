package repo

import (
	"context"

	"upstagram/be/biz/model/convert"
	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/storage"

	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	rec := convert.MemberDomainToRecord(m)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return convert.MemberRecordToDomain(rec), nil
}

func (r *MemberRepository) FindByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	var rec storage.MemberRecord
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return convert.MemberRecordToDomain(&rec), nil
}

func (r *MemberRepository) FindByMemberIDAndUseYn(ctx context.Context, memberID, useYn string) (*domain.Member, error) {
	var rec storage.MemberRecord
	err := r.db.WithContext(ctx).Where("member_id = ? AND use_yn = ?", memberID, useYn).First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return convert.MemberRecordToDomain(&rec), nil
}

func (r *MemberRepository) FindByOauthNo(ctx context.Context, oauthNo string) (*domain.Member, error) {
	var rec storage.MemberRecord
	err := r.db.WithContext(ctx).Where("oauth_no = ?", oauthNo).First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return convert.MemberRecordToDomain(&rec), nil
}

// UpdateLoginState re-reads the member under a row lock, applies the pure
// transition and persists the affected columns in one transaction. Concurrent
// failed logins therefore never lose an increment.
func (r *MemberRepository) UpdateLoginState(ctx context.Context, memberID string, apply func(domain.Member) domain.Member) (*domain.Member, error) {
	var out *domain.Member
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec storage.MemberRecord
		if err := lockForUpdate(tx).Where("member_id = ?", memberID).First(&rec).Error; err != nil {
			return err
		}

		next := apply(*convert.MemberRecordToDomain(&rec))
		if err := tx.Model(&rec).Updates(map[string]any{
			"wrong_password_number": next.WrongPasswordNumber,
			"last_login_dttm":       next.LastLoginDttm,
		}).Error; err != nil {
			return err
		}

		out = &next
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

func (r *MemberRepository) Update(ctx context.Context, m *domain.Member) error {
	rec := convert.MemberDomainToRecord(m)
	return r.db.WithContext(ctx).
		Model(&storage.MemberRecord{}).
		Where("member_id = ?", m.ID).
		Updates(rec).Error
}
