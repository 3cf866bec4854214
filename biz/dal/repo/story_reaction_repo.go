package repo

import (
	"context"

	"upstagram/be/biz/model/convert"
	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/errs"
	"upstagram/be/biz/model/storage"

	"gorm.io/gorm"
)

type StoryReactionRepository struct {
	db *gorm.DB
}

func NewStoryReactionRepository(db *gorm.DB) *StoryReactionRepository {
	return &StoryReactionRepository{db: db}
}

func (r *StoryReactionRepository) FindByPair(ctx context.Context, storyNo uint64, memberID string) (*domain.StoryReaction, error) {
	var rec storage.StoryReactionRecord
	err := r.db.WithContext(ctx).
		Where("story_no = ? AND member_id = ?", storyNo, memberID).
		First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return convert.StoryReactionRecordToDomain(&rec), nil
}

// Toggle removes the reaction row for the pair if one exists, otherwise
// inserts it. Delete-first keeps the pair serialized through the unique index
// without a row lock: the delete is a single statement, and a concurrent
// insert losing the race hits the duplicate key and retries as a delete.
func (r *StoryReactionRepository) Toggle(ctx context.Context, storyNo uint64, memberID string) (bool, error) {
	// Rows are removed for real on toggle-off so the unique pair index stays
	// reusable.
	res := r.db.WithContext(ctx).Unscoped().
		Where("story_no = ? AND member_id = ?", storyNo, memberID).
		Delete(&storage.StoryReactionRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	rec := &storage.StoryReactionRecord{
		StoryNo:  uint(storyNo),
		MemberId: memberID,
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errs.IsDuplicatedErr(err) {
			// Lost the race against a concurrent toggle-on; resolve as the
			// later call and turn the reaction back off.
			res := r.db.WithContext(ctx).Unscoped().
				Where("story_no = ? AND member_id = ?", storyNo, memberID).
				Delete(&storage.StoryReactionRecord{})
			return false, res.Error
		}
		return false, err
	}
	return true, nil
}
