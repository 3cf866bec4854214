package repo

import (
	"context"
	"time"

	"upstagram/be/biz/model/convert"
	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoryWatchingRepository struct {
	db *gorm.DB
}

func NewStoryWatchingRepository(db *gorm.DB) *StoryWatchingRepository {
	return &StoryWatchingRepository{db: db}
}

func (r *StoryWatchingRepository) FindByPair(ctx context.Context, storyNo uint64, memberID string) (*domain.StoryWatch, error) {
	var rec storage.StoryWatchingRecord
	err := r.db.WithContext(ctx).
		Where("story_no = ? AND member_id = ?", storyNo, memberID).
		First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return convert.StoryWatchingRecordToDomain(&rec), nil
}

// Upsert creates the watch row on first view and bumps last_dttm on every
// later one. The conflict target is the unique pair index, so concurrent
// watches never produce two rows.
func (r *StoryWatchingRepository) Upsert(ctx context.Context, storyNo uint64, memberID string, now time.Time) (*domain.StoryWatch, error) {
	rec := &storage.StoryWatchingRecord{
		StoryNo:   uint(storyNo),
		MemberId:  memberID,
		FirstDttm: now,
		LastDttm:  now,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "story_no"}, {Name: "member_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"last_dttm":  now,
			"updated_at": now,
		}),
	}).Create(rec).Error
	if err != nil {
		return nil, err
	}

	// Re-read: on the update path the in-memory record does not carry the
	// original first_dttm.
	return r.FindByPair(ctx, storyNo, memberID)
}
