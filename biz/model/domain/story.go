package domain

import (
	"mime/multipart"
	"time"
)

type Story struct {
	StoryNo       uint64
	MemberID      string
	StoryFileName string
	StoryTime     int // seconds
	ShowYn        string
	KeepYn        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type StorySubmitRequest struct {
	MemberID string
	File     *multipart.FileHeader
	ShowYn   string
	KeepYn   string
}

type StoryReaction struct {
	StoryNo   uint64
	MemberID  string
	CreatedAt time.Time
}

type StoryReactionRequest struct {
	StoryNo  uint64
	MemberID string
}

// ReactionOutcome reports the state the toggle left behind.
type ReactionOutcome struct {
	StoryNo  uint64
	MemberID string
	Reacted  bool
}

type StoryWatch struct {
	StoryNo   uint64
	MemberID  string
	FirstDttm time.Time
	LastDttm  time.Time
}

type StoryWatchRequest struct {
	StoryNo  uint64
	MemberID string
}

type WatchOutcome struct {
	StoryNo   uint64
	MemberID  string
	FirstDttm time.Time
	LastDttm  time.Time
}
