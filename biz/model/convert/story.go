package convert

import (
	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/storage"
)

func StoryRecordToDomain(r *storage.StoryRecord) *domain.Story {
	if r == nil {
		return nil
	}
	return &domain.Story{
		StoryNo:       uint64(r.ID),
		MemberID:      r.MemberId,
		StoryFileName: r.StoryFileName,
		StoryTime:     r.StoryTime,
		ShowYn:        r.ShowYn,
		KeepYn:        r.KeepYn,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func StoryReactionRecordToDomain(r *storage.StoryReactionRecord) *domain.StoryReaction {
	if r == nil {
		return nil
	}
	return &domain.StoryReaction{
		StoryNo:   uint64(r.StoryNo),
		MemberID:  r.MemberId,
		CreatedAt: r.CreatedAt,
	}
}

func StoryWatchingRecordToDomain(r *storage.StoryWatchingRecord) *domain.StoryWatch {
	if r == nil {
		return nil
	}
	return &domain.StoryWatch{
		StoryNo:   uint64(r.StoryNo),
		MemberID:  r.MemberId,
		FirstDttm: r.FirstDttm,
		LastDttm:  r.LastDttm,
	}
}
