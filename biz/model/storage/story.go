package storage

import "time"

type StoryRecord struct {
	GormModel
	MemberId      string `gorm:"size:64;not null;index"`
	StoryFileName string `gorm:"size:128"`
	StoryTime     int    `gorm:"default:0;not null"` // seconds
	ShowYn        string `gorm:"size:1;default:Y"`
	KeepYn        string `gorm:"size:1;default:N"`
}

func (StoryRecord) TableName() string {
	return "story"
}

// StoryReactionRecord rows are hard-deleted on toggle-off so the pair index
// stays reusable.
type StoryReactionRecord struct {
	GormModel
	StoryNo  uint   `gorm:"not null;uniqueIndex:udx_story_reaction_pair"`
	MemberId string `gorm:"size:64;not null;uniqueIndex:udx_story_reaction_pair"`
}

func (StoryReactionRecord) TableName() string {
	return "story_reaction"
}

type StoryWatchingRecord struct {
	GormModel
	StoryNo   uint   `gorm:"not null;uniqueIndex:udx_story_watching_pair"`
	MemberId  string `gorm:"size:64;not null;uniqueIndex:udx_story_watching_pair"`
	FirstDttm time.Time
	LastDttm  time.Time
}

func (StoryWatchingRecord) TableName() string {
	return "story_watching"
}
