package repo

import (
	"context"

	"upstagram/be/biz/model/convert"
	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/storage"

	"gorm.io/gorm"
)

type StoryRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

func (r *StoryRepository) Create(ctx context.Context, s *domain.Story) (*domain.Story, error) {
	rec := &storage.StoryRecord{
		MemberId:      s.MemberID,
		StoryFileName: s.StoryFileName,
		StoryTime:     s.StoryTime,
		ShowYn:        s.ShowYn,
		KeepYn:        s.KeepYn,
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return convert.StoryRecordToDomain(rec), nil
}

func (r *StoryRepository) FindByStoryNo(ctx context.Context, storyNo uint64) (*domain.Story, error) {
	var rec storage.StoryRecord
	err := r.db.WithContext(ctx).Where("id = ?", storyNo).First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return convert.StoryRecordToDomain(&rec), nil
}

func (r *StoryRepository) FindByMemberID(ctx context.Context, memberID string) ([]*domain.Story, error) {
	var recs []storage.StoryRecord
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Story, 0, len(recs))
	for i := range recs {
		out = append(out, convert.StoryRecordToDomain(&recs[i]))
	}
	return out, nil
}
