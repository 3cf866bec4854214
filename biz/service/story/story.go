package story

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"upstagram/be/biz/config"
	"upstagram/be/biz/dal/repo"
	"upstagram/be/biz/db/mysql"
	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/errs"
	"upstagram/be/biz/util/media"
	"upstagram/be/biz/util/upload"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// PolicyLegacy keeps the inherited submit precondition that rejects requests
// carrying a member id; anything else behaves as "strict". See DESIGN.md.
const (
	PolicyStrict = "strict"
	PolicyLegacy = "legacy"
)

type StoryRepository interface {
	Create(ctx context.Context, s *domain.Story) (*domain.Story, error)
	FindByStoryNo(ctx context.Context, storyNo uint64) (*domain.Story, error)
	FindByMemberID(ctx context.Context, memberID string) ([]*domain.Story, error)
}

type ReactionRepository interface {
	Toggle(ctx context.Context, storyNo uint64, memberID string) (bool, error)
}

type WatchingRepository interface {
	Upsert(ctx context.Context, storyNo uint64, memberID string, now time.Time) (*domain.StoryWatch, error)
}

type Uploader interface {
	Save(file *multipart.FileHeader) (string, error)
}

type Service struct {
	stories   StoryRepository
	reactions ReactionRepository
	watching  WatchingRepository
	uploader  Uploader
	policy    string
}

func New(stories StoryRepository, reactions ReactionRepository, watching WatchingRepository, uploader Uploader, policy string) *Service {
	return &Service{
		stories:   stories,
		reactions: reactions,
		watching:  watching,
		uploader:  uploader,
		policy:    policy,
	}
}

func NewDefault() *Service {
	conf := config.GetStoryConf()
	db := mysql.GetDbConn()
	return New(
		repo.NewStoryRepository(db),
		repo.NewStoryReactionRepository(db),
		repo.NewStoryWatchingRepository(db),
		upload.NewStore(conf.UploadDir, conf.AllowedTypes),
		conf.RequireLoginPolicy,
	)
}

// Submit validates the request, stores the media best-effort and persists the
// story. A failed upload is logged and leaves the filename empty; only an
// absent payload rejects the submission. The upload result is returned so the
// caller can surface a skip.
func (s *Service) Submit(ctx context.Context, req *domain.StorySubmitRequest) (*domain.Story, upload.Result, errs.Error) {
	if bizErr := s.checkSubmitAuth(req.MemberID); bizErr != nil {
		return nil, upload.Result{}, bizErr
	}
	if req.File == nil || req.File.Size == 0 {
		return nil, upload.Result{}, errs.ParamError.SetMsg("story file is required")
	}

	result := s.store(req.File)
	if !result.Stored {
		hlog.CtxWarnf(ctx, "story upload skipped(%s): %s", req.MemberID, result.Reason)
	}

	story := &domain.Story{
		MemberID:      req.MemberID,
		StoryFileName: result.FileName,
		StoryTime:     s.duration(req.File),
		ShowYn:        req.ShowYn,
		KeepYn:        req.KeepYn,
	}

	created, err := s.stories.Create(ctx, story)
	if err != nil {
		return nil, result, errs.ServerError
	}

	hlog.CtxInfof(ctx, "STORY submit(%s) no=%d stored=%t", req.MemberID, created.StoryNo, result.Stored)
	return created, result, nil
}

func (s *Service) checkSubmitAuth(memberID string) errs.Error {
	if s.policy == PolicyLegacy {
		if memberID != "" {
			return errs.ParamError.SetMsg("login required")
		}
		return nil
	}
	if memberID == "" {
		return errs.ParamError.SetMsg("login required")
	}
	return nil
}

func (s *Service) store(file *multipart.FileHeader) upload.Result {
	name, err := s.uploader.Save(file)
	if err != nil {
		if errors.Is(err, upload.ErrTypeNotAllowed) {
			return upload.Skipped("content type not allowed")
		}
		return upload.Skipped(err.Error())
	}
	return upload.Stored(name)
}

func (s *Service) duration(file *multipart.FileHeader) int {
	src, err := file.Open()
	if err != nil {
		return 0
	}
	defer src.Close()
	return media.Duration(file.Header.Get("Content-Type"), src)
}

// React flips the reaction of one member on one story and reports the state
// left behind.
func (s *Service) React(ctx context.Context, req *domain.StoryReactionRequest) (*domain.ReactionOutcome, errs.Error) {
	if req.MemberID == "" {
		return nil, errs.ParamError.SetMsg("member id is required")
	}

	story, err := s.stories.FindByStoryNo(ctx, req.StoryNo)
	if err != nil {
		return nil, errs.ServerError
	}
	if story == nil {
		return nil, errs.StoryNotExist
	}

	reacted, err := s.reactions.Toggle(ctx, req.StoryNo, req.MemberID)
	if err != nil {
		return nil, errs.ServerError.SetErr(err)
	}

	return &domain.ReactionOutcome{
		StoryNo:  req.StoryNo,
		MemberID: req.MemberID,
		Reacted:  reacted,
	}, nil
}

// RecordWatch marks the story as watched. The first watch fixes first_dttm;
// every later watch only moves last_dttm forward.
func (s *Service) RecordWatch(ctx context.Context, req *domain.StoryWatchRequest) (*domain.WatchOutcome, errs.Error) {
	if req.MemberID == "" {
		return nil, errs.ParamError.SetMsg("member id is required")
	}

	story, err := s.stories.FindByStoryNo(ctx, req.StoryNo)
	if err != nil {
		return nil, errs.ServerError
	}
	if story == nil {
		return nil, errs.StoryNotExist
	}

	watch, err := s.watching.Upsert(ctx, req.StoryNo, req.MemberID, time.Now())
	if err != nil {
		return nil, errs.ServerError.SetErr(err)
	}

	return &domain.WatchOutcome{
		StoryNo:   watch.StoryNo,
		MemberID:  watch.MemberID,
		FirstDttm: watch.FirstDttm,
		LastDttm:  watch.LastDttm,
	}, nil
}

// ListByMember returns the member's stories, newest first.
func (s *Service) ListByMember(ctx context.Context, memberID string) ([]*domain.Story, errs.Error) {
	if memberID == "" {
		return nil, errs.ParamError.SetMsg("member id is required")
	}
	stories, err := s.stories.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, errs.ServerError
	}
	return stories, nil
}
