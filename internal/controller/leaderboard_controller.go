package controller

import (
	"bible_challenge_backend/internal/service"
	"bible_challenge_backend/internal/util"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// GetMyGroup godoc
// @Summary 내 그룹 현황
// @Description 이번 달 내 그룹 멤버별 합계, 내림차순
// @Tags 리더보드
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "성공"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "소속 그룹을 찾을 수 없음"
// @Router /api/leaderboard/my-group [get]
func (c *LeaderboardController) GetMyGroup(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	window := service.CurrentMonthWindow(time.Now())
	ranking, err := c.LeaderboardService.GroupMemberRanking(claims.GroupID, window)
	if err != nil {
		if errors.Is(err, util.ErrGroupNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"groupId":   ranking.GroupID,
		"groupName": ranking.GroupName,
		"month":     window.String(),
		"members":   ranking.Members,
	})
}

// GetMonthly godoc
// @Summary 월간 그룹 리더보드
// @Description 지정한 달(기본: 이번 달)의 그룹 순위. 기록이 없는 그룹도 0으로 포함된다.
// @Tags 리더보드
// @Produce  json
// @Security ApiKeyAuth
// @Param   year query int false "연도"
// @Param   month query int false "월 (1-12)"
// @Success 200 {object} util.Response{data=object} "성공"
// @Failure 400 {object} util.Response "연/월 파라미터 오류"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/leaderboard/groups [get]
func (c *LeaderboardController) GetMonthly(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	window, err := parseMonthWindow(ctx.Query("year"), ctx.Query("month"), time.Now())
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ranked, err := c.LeaderboardService.MonthlyLeaderboard(window, claims.GroupID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"month":  window.String(),
		"groups": ranked,
	})
}

// parseMonthWindow 연/월 쿼리 파라미터를 독립적으로 해석한다.
// 빠진 쪽은 현재 달로 채워서 월만 넘겨도 달 이동이 된다.
func parseMonthWindow(yearStr, monthStr string, now time.Time) (service.MonthWindow, error) {
	window := service.CurrentMonthWindow(now)
	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return window, errors.New("invalid year")
		}
		window.Year = year
	}
	if monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			return window, errors.New("invalid month")
		}
		window.Month = time.Month(month)
	}
	return window, nil
}
