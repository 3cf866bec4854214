package dto

// SubmitStoryReq is bound from a multipart form; the media file itself comes
// from the form part named "file".
type SubmitStoryReq struct {
	ShowYn string `form:"show_yn" validate:"omitempty,oneof=Y N"`
	KeepYn string `form:"keep_yn" validate:"omitempty,oneof=Y N"`
}

type SubmitStoryResp struct {
	StoryNo       uint64 `json:"story_no"`
	StoryFileName string `json:"story_file_name"`
	StoryTime     int    `json:"story_time"`
	Stored        bool   `json:"stored"`
	SkipReason    string `json:"skip_reason,omitempty"`
}

type ReactStoryReq struct {
	StoryNo uint64 `json:"story_no" validate:"required"`
}

type ReactStoryResp struct {
	StoryNo uint64 `json:"story_no"`
	Reacted bool   `json:"reacted"`
}

type ListStoriesReq struct{}

type StoryItem struct {
	StoryNo       uint64 `json:"story_no"`
	StoryFileName string `json:"story_file_name"`
	StoryTime     int    `json:"story_time"`
	ShowYn        string `json:"show_yn"`
	KeepYn        string `json:"keep_yn"`
	CreatedAt     int64  `json:"created_at"`
}

type ListStoriesResp struct {
	Stories []StoryItem `json:"stories"`
}

type WatchStoryReq struct {
	StoryNo uint64 `json:"story_no" validate:"required"`
}

type WatchStoryResp struct {
	StoryNo   uint64 `json:"story_no"`
	FirstDttm int64  `json:"first_dttm"`
	LastDttm  int64  `json:"last_dttm"`
}
