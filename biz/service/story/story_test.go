package story

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/errs"
	"upstagram/be/biz/util/upload"

	"github.com/stretchr/testify/assert"
)

type fakeStoryRepo struct {
	createRetStory *domain.Story
	createRetErr   error
	createInput    *domain.Story

	findStory *domain.Story
	findErr   error

	listStories []*domain.Story
	listErr     error
}

func (r *fakeStoryRepo) Create(_ context.Context, s *domain.Story) (*domain.Story, error) {
	r.createInput = s
	if r.createRetStory == nil && r.createRetErr == nil {
		created := *s
		created.StoryNo = 1
		return &created, nil
	}
	return r.createRetStory, r.createRetErr
}

func (r *fakeStoryRepo) FindByStoryNo(_ context.Context, _ uint64) (*domain.Story, error) {
	return r.findStory, r.findErr
}

func (r *fakeStoryRepo) FindByMemberID(_ context.Context, _ string) ([]*domain.Story, error) {
	return r.listStories, r.listErr
}

type fakeReactionRepo struct {
	reacted bool
	err     error
	calls   int
}

func (r *fakeReactionRepo) Toggle(_ context.Context, _ uint64, _ string) (bool, error) {
	r.calls++
	return r.reacted, r.err
}

type fakeWatchingRepo struct {
	watch *domain.StoryWatch
	err   error
	now   time.Time
}

func (r *fakeWatchingRepo) Upsert(_ context.Context, storyNo uint64, memberID string, now time.Time) (*domain.StoryWatch, error) {
	r.now = now
	if r.err != nil {
		return nil, r.err
	}
	if r.watch != nil {
		return r.watch, nil
	}
	return &domain.StoryWatch{StoryNo: storyNo, MemberID: memberID, FirstDttm: now, LastDttm: now}, nil
}

type fakeUploader struct {
	name string
	err  error
}

func (u *fakeUploader) Save(_ *multipart.FileHeader) (string, error) {
	return u.name, u.err
}

func buildFileHeader(t *testing.T, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="story.png"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	assert.NoError(t, err)
	return form.File["file"][0]
}

func submitRequest(t *testing.T) *domain.StorySubmitRequest {
	t.Helper()
	return &domain.StorySubmitRequest{
		MemberID: "member_01",
		File:     buildFileHeader(t, "image/png", []byte("png-bytes")),
		ShowYn:   domain.FlagYes,
		KeepYn:   domain.FlagNo,
	}
}

func TestService_Submit(t *testing.T) {
	newSvc := func(stories *fakeStoryRepo, uploader *fakeUploader, policy string) *Service {
		return New(stories, &fakeReactionRepo{}, &fakeWatchingRepo{}, uploader, policy)
	}

	t.Run("strict rejects blank member id", func(t *testing.T) {
		req := submitRequest(t)
		req.MemberID = ""
		svc := newSvc(&fakeStoryRepo{}, &fakeUploader{name: "f.png"}, PolicyStrict)
		_, _, bizErr := svc.Submit(context.Background(), req)
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
	})

	t.Run("legacy rejects present member id", func(t *testing.T) {
		svc := newSvc(&fakeStoryRepo{}, &fakeUploader{name: "f.png"}, PolicyLegacy)
		_, _, bizErr := svc.Submit(context.Background(), submitRequest(t))
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
	})

	t.Run("missing file", func(t *testing.T) {
		req := submitRequest(t)
		req.File = nil
		svc := newSvc(&fakeStoryRepo{}, &fakeUploader{name: "f.png"}, PolicyStrict)
		_, _, bizErr := svc.Submit(context.Background(), req)
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
	})

	t.Run("upload failure is best-effort", func(t *testing.T) {
		stories := &fakeStoryRepo{}
		svc := newSvc(stories, &fakeUploader{err: upload.ErrTypeNotAllowed}, PolicyStrict)

		story, result, bizErr := svc.Submit(context.Background(), submitRequest(t))
		assert.Nil(t, bizErr)
		assert.Empty(t, story.StoryFileName)
		assert.False(t, result.Stored)
		assert.NotEmpty(t, result.Reason)

		if assert.NotNil(t, stories.createInput) {
			assert.Empty(t, stories.createInput.StoryFileName)
		}
	})

	t.Run("create error", func(t *testing.T) {
		svc := newSvc(&fakeStoryRepo{createRetErr: errors.New("insert error")}, &fakeUploader{name: "f.png"}, PolicyStrict)
		_, _, bizErr := svc.Submit(context.Background(), submitRequest(t))
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("success stores file and image duration", func(t *testing.T) {
		stories := &fakeStoryRepo{}
		svc := newSvc(stories, &fakeUploader{name: "generated.png"}, PolicyStrict)

		story, result, bizErr := svc.Submit(context.Background(), submitRequest(t))
		assert.Nil(t, bizErr)
		assert.True(t, result.Stored)
		assert.Equal(t, uint64(1), story.StoryNo)
		assert.Equal(t, "generated.png", story.StoryFileName)
		assert.Equal(t, 5, story.StoryTime)
		assert.Equal(t, domain.FlagYes, story.ShowYn)
		assert.Equal(t, domain.FlagNo, story.KeepYn)
	})
}

func TestService_React(t *testing.T) {
	req := &domain.StoryReactionRequest{StoryNo: 7, MemberID: "member_01"}

	t.Run("blank member id", func(t *testing.T) {
		svc := New(&fakeStoryRepo{}, &fakeReactionRepo{}, &fakeWatchingRepo{}, &fakeUploader{}, PolicyStrict)
		_, bizErr := svc.React(context.Background(), &domain.StoryReactionRequest{StoryNo: 7})
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
	})

	t.Run("find error", func(t *testing.T) {
		svc := New(&fakeStoryRepo{findErr: errors.New("db error")}, &fakeReactionRepo{}, &fakeWatchingRepo{}, &fakeUploader{}, PolicyStrict)
		_, bizErr := svc.React(context.Background(), req)
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("story not exist", func(t *testing.T) {
		reactions := &fakeReactionRepo{}
		svc := New(&fakeStoryRepo{}, reactions, &fakeWatchingRepo{}, &fakeUploader{}, PolicyStrict)
		_, bizErr := svc.React(context.Background(), req)
		assert.True(t, errs.ErrorEqual(errs.StoryNotExist, bizErr))
		assert.Zero(t, reactions.calls)
	})

	t.Run("toggle error", func(t *testing.T) {
		svc := New(
			&fakeStoryRepo{findStory: &domain.Story{StoryNo: 7}},
			&fakeReactionRepo{err: errors.New("db error")},
			&fakeWatchingRepo{}, &fakeUploader{}, PolicyStrict,
		)
		_, bizErr := svc.React(context.Background(), req)
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("toggle on", func(t *testing.T) {
		svc := New(
			&fakeStoryRepo{findStory: &domain.Story{StoryNo: 7}},
			&fakeReactionRepo{reacted: true},
			&fakeWatchingRepo{}, &fakeUploader{}, PolicyStrict,
		)
		out, bizErr := svc.React(context.Background(), req)
		assert.Nil(t, bizErr)
		assert.True(t, out.Reacted)
		assert.Equal(t, uint64(7), out.StoryNo)
		assert.Equal(t, "member_01", out.MemberID)
	})

	t.Run("toggle off", func(t *testing.T) {
		svc := New(
			&fakeStoryRepo{findStory: &domain.Story{StoryNo: 7}},
			&fakeReactionRepo{reacted: false},
			&fakeWatchingRepo{}, &fakeUploader{}, PolicyStrict,
		)
		out, bizErr := svc.React(context.Background(), req)
		assert.Nil(t, bizErr)
		assert.False(t, out.Reacted)
	})
}

func TestService_RecordWatch(t *testing.T) {
	req := &domain.StoryWatchRequest{StoryNo: 7, MemberID: "member_01"}

	t.Run("blank member id", func(t *testing.T) {
		svc := New(&fakeStoryRepo{}, &fakeReactionRepo{}, &fakeWatchingRepo{}, &fakeUploader{}, PolicyStrict)
		_, bizErr := svc.RecordWatch(context.Background(), &domain.StoryWatchRequest{StoryNo: 7})
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
	})

	t.Run("story not exist", func(t *testing.T) {
		svc := New(&fakeStoryRepo{}, &fakeReactionRepo{}, &fakeWatchingRepo{}, &fakeUploader{}, PolicyStrict)
		_, bizErr := svc.RecordWatch(context.Background(), req)
		assert.True(t, errs.ErrorEqual(errs.StoryNotExist, bizErr))
	})

	t.Run("upsert error", func(t *testing.T) {
		svc := New(
			&fakeStoryRepo{findStory: &domain.Story{StoryNo: 7}},
			&fakeReactionRepo{},
			&fakeWatchingRepo{err: errors.New("db error")},
			&fakeUploader{}, PolicyStrict,
		)
		_, bizErr := svc.RecordWatch(context.Background(), req)
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("first watch sets both stamps", func(t *testing.T) {
		watching := &fakeWatchingRepo{}
		svc := New(
			&fakeStoryRepo{findStory: &domain.Story{StoryNo: 7}},
			&fakeReactionRepo{}, watching, &fakeUploader{}, PolicyStrict,
		)
		out, bizErr := svc.RecordWatch(context.Background(), req)
		assert.Nil(t, bizErr)
		assert.Equal(t, out.FirstDttm, out.LastDttm)
		assert.False(t, watching.now.IsZero())
	})

	t.Run("repeat watch keeps first stamp", func(t *testing.T) {
		first := time.Now().Add(-time.Hour)
		last := time.Now()
		svc := New(
			&fakeStoryRepo{findStory: &domain.Story{StoryNo: 7}},
			&fakeReactionRepo{},
			&fakeWatchingRepo{watch: &domain.StoryWatch{StoryNo: 7, MemberID: "member_01", FirstDttm: first, LastDttm: last}},
			&fakeUploader{}, PolicyStrict,
		)
		out, bizErr := svc.RecordWatch(context.Background(), req)
		assert.Nil(t, bizErr)
		assert.Equal(t, first, out.FirstDttm)
		assert.Equal(t, last, out.LastDttm)
	})
}

func TestService_ListByMember(t *testing.T) {
	t.Run("blank member id", func(t *testing.T) {
		svc := New(&fakeStoryRepo{}, &fakeReactionRepo{}, &fakeWatchingRepo{}, &fakeUploader{}, PolicyStrict)
		_, bizErr := svc.ListByMember(context.Background(), "")
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
	})

	t.Run("success", func(t *testing.T) {
		stories := []*domain.Story{{StoryNo: 2}, {StoryNo: 1}}
		svc := New(&fakeStoryRepo{listStories: stories}, &fakeReactionRepo{}, &fakeWatchingRepo{}, &fakeUploader{}, PolicyStrict)
		out, bizErr := svc.ListByMember(context.Background(), "member_01")
		assert.Nil(t, bizErr)
		assert.Equal(t, stories, out)
	})
}
