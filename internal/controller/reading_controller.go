package controller

import (
	"bible_challenge_backend/internal/model"
	"bible_challenge_backend/internal/service"
	"bible_challenge_backend/internal/util"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

type ReadingController struct {
	ReadingService *service.ReadingService
}

func NewReadingController(readingService *service.ReadingService) *ReadingController {
	return &ReadingController{ReadingService: readingService}
}

// LogReadingRequest 일일 읽기 기록 요청
// swagger:model LogReadingRequest
type LogReadingRequest struct {
	Book         string `json:"book" binding:"required"`
	StartChapter int    `json:"startChapter" binding:"required,min=1"`
	ChaptersRead int    `json:"chaptersRead" binding:"required,min=1"`
}

// LogDaily godoc
// @Summary 오늘의 읽기 기록
// @Description 오늘 읽은 범위를 저장한다. 같은 날 기존 기록은 교체된다.
// @Tags 읽기
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body LogReadingRequest true "읽기 정보"
// @Success 201 {object} util.Response{data=model.Reading} "저장 완료"
// @Failure 400 {object} util.Response "검증 실패"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/readings [post]
func (c *ReadingController) LogDaily(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LogReadingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reading, err := c.ReadingService.LogDaily(claims.UserID, req.Book, req.StartChapter, req.ChaptersRead)
	if err != nil {
		if isValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, reading)
}

// MarkChapterRequest 장 클릭 기록 요청
// swagger:model MarkChapterRequest
type MarkChapterRequest struct {
	Book    string `json:"book" binding:"required"`
	Chapter int    `json:"chapter" binding:"required,min=1"`
}

// MarkChapter godoc
// @Summary 장 읽음 표시
// @Description 그리드에서 장 하나를 클릭해 기록한다. 같은 날 중복 클릭은 무시된다.
// @Tags 읽기
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body MarkChapterRequest true "책/장"
// @Success 200 {object} util.Response{data=object} "기록됨(created=false면 이미 기록)"
// @Failure 400 {object} util.Response "검증 실패"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/readings/chapters [post]
func (c *ReadingController) MarkChapter(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req MarkChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	created, err := c.ReadingService.MarkChapter(claims.UserID, req.Book, req.Chapter)
	if err != nil {
		if isValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"created": created})
}

// GetRecent godoc
// @Summary 이번 달 내 기록
// @Description 이번 달 읽기 기록(날짜 내림차순)과 합계
// @Tags 읽기
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "성공"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/readings/recent [get]
func (c *ReadingController) GetRecent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	window := service.CurrentMonthWindow(time.Now())
	readings, err := c.ReadingService.RecentReadings(claims.UserID, window)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	total := 0
	for _, r := range readings {
		total += r.ChaptersRead
	}

	util.Success(ctx, gin.H{
		"readings": readings,
		"total":    total,
	})
}

// GetChapterMap godoc
// @Summary 장별 읽기 맵
// @Description 전체 기간의 장별 읽은 횟수 맵과 이번 달/이번 주 합계
// @Tags 읽기
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ChapterStats} "성공"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/readings/chapter-map [get]
func (c *ReadingController) GetChapterMap(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.ReadingService.ChapterReadStats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// GetCanon godoc
// @Summary 정경 목록
// @Description 66권의 책 이름(영문/한글)과 장 수
// @Tags 읽기
// @Produce  json
// @Success 200 {object} util.Response{data=object} "성공"
// @Router /api/canon [get]
func (c *ReadingController) GetCanon(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"books":         model.Canon,
		"totalChapters": model.TotalCanonChapters,
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, util.ErrUnknownBook) ||
		errors.Is(err, util.ErrChapterOutOfRange) ||
		errors.Is(err, util.ErrInvalidChapterCount)
}
