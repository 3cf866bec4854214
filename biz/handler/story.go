package handler

import (
	"context"
	"net/http"

	"upstagram/be/biz/middleware/jwt"
	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/dto"
	"upstagram/be/biz/model/errs"
	"upstagram/be/biz/service/story"
	"upstagram/be/biz/util/resp"
	"upstagram/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// SubmitStory 스토리 등록
//
//	@Tags			story
//	@Summary		submit a story
//	@Description	upload a media file and register it as a story
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			Authorization	header		string	true	"jwt"
//	@Param			file			formData	file	true	"story media file"
//	@Param			show_yn			formData	string	false	"visible flag, Y or N"
//	@Param			keep_yn			formData	string	false	"keep flag, Y or N"
//	@Success		200				{object}	dto.CommonResp{data=dto.SubmitStoryResp}
//	@Router			/api/v1/story/submit [POST]
func SubmitStory(ctx context.Context, c *app.RequestContext) {
	req := dto.SubmitStoryReq{
		ShowYn: c.PostForm("show_yn"),
		KeepYn: c.PostForm("keep_yn"),
	}
	if err := validate.Struct(&req); err != nil {
		hlog.CtxNoticef(ctx, "validate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		hlog.CtxNoticef(ctx, "FormFile err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg("story file is required"), http.StatusBadRequest)
		return
	}

	if req.ShowYn == "" {
		req.ShowYn = domain.FlagYes
	}
	if req.KeepYn == "" {
		req.KeepYn = domain.FlagNo
	}

	created, result, bizErr := story.NewDefault().Submit(ctx, &domain.StorySubmitRequest{
		MemberID: jwt.GetPayload(ctx).MemberID,
		File:     file,
		ShowYn:   req.ShowYn,
		KeepYn:   req.KeepYn,
	})
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.SubmitStoryResp{
		StoryNo:       created.StoryNo,
		StoryFileName: created.StoryFileName,
		StoryTime:     created.StoryTime,
		Stored:        result.Stored,
		SkipReason:    result.Reason,
	})
}

// ReactStory 스토리 좋아요 토글
//
//	@Tags			story
//	@Summary		toggle a story reaction
//	@Description	flips the member's reaction on the story
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string				true	"jwt"
//	@Param			req				body		dto.ReactStoryReq	true	"react request body"
//	@Success		200				{object}	dto.CommonResp{data=dto.ReactStoryResp}
//	@Router			/api/v1/story/react [POST]
func ReactStory(ctx context.Context, c *app.RequestContext) {
	var req dto.ReactStoryReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	out, bizErr := story.NewDefault().React(ctx, &domain.StoryReactionRequest{
		StoryNo:  req.StoryNo,
		MemberID: jwt.GetPayload(ctx).MemberID,
	})
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.ReactStoryResp{
		StoryNo: out.StoryNo,
		Reacted: out.Reacted,
	})
}

// ListStories 내 스토리 목록
//
//	@Tags			story
//	@Summary		list my stories
//	@Description	returns the member's stories, newest first
//	@Produce		json
//	@Param			Authorization	header		string	true	"jwt"
//	@Success		200				{object}	dto.CommonResp{data=dto.ListStoriesResp}
//	@Router			/api/v1/story/list [GET]
func ListStories(ctx context.Context, c *app.RequestContext) {
	stories, bizErr := story.NewDefault().ListByMember(ctx, jwt.GetPayload(ctx).MemberID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	items := make([]dto.StoryItem, 0, len(stories))
	for _, s := range stories {
		items = append(items, dto.StoryItem{
			StoryNo:       s.StoryNo,
			StoryFileName: s.StoryFileName,
			StoryTime:     s.StoryTime,
			ShowYn:        s.ShowYn,
			KeepYn:        s.KeepYn,
			CreatedAt:     s.CreatedAt.Unix(),
		})
	}
	resp.SuccessResp(c, dto.ListStoriesResp{Stories: items})
}

// WatchStory 스토리 시청 기록
//
//	@Tags			story
//	@Summary		record a story watch
//	@Description	marks the story as watched by the member
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string				true	"jwt"
//	@Param			req				body		dto.WatchStoryReq	true	"watch request body"
//	@Success		200				{object}	dto.CommonResp{data=dto.WatchStoryResp}
//	@Router			/api/v1/story/watch [POST]
func WatchStory(ctx context.Context, c *app.RequestContext) {
	var req dto.WatchStoryReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	out, bizErr := story.NewDefault().RecordWatch(ctx, &domain.StoryWatchRequest{
		StoryNo:  req.StoryNo,
		MemberID: jwt.GetPayload(ctx).MemberID,
	})
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.WatchStoryResp{
		StoryNo:   out.StoryNo,
		FirstDttm: out.FirstDttm.Unix(),
		LastDttm:  out.LastDttm.Unix(),
	})
}
