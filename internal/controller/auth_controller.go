package controller

import (
	"bible_challenge_backend/internal/service"
	"bible_challenge_backend/internal/util"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService    *service.AuthService
	ReadingService *service.ReadingService
}

func NewAuthController(authService *service.AuthService, readingService *service.ReadingService) *AuthController {
	return &AuthController{
		AuthService:    authService,
		ReadingService: readingService,
	}
}

// RegisterRequest 가입 요청
// swagger:model RegisterRequest
type RegisterRequest struct {
	LoginID   string `json:"loginId" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Nickname  string `json:"nickname" binding:"required"`
	GroupName string `json:"groupName" binding:"required"`
}

// Register godoc
// @Summary 회원가입
// @Description ID/비밀번호/닉네임/그룹명으로 챌린지에 가입
// @Tags 인증
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "가입 정보"
// @Success 201 {object} util.Response{data=object} "가입 완료"
// @Failure 400 {object} util.Response "요청 형식 오류"
// @Failure 409 {object} util.Response "이미 사용 중인 ID"
// @Failure 500 {object} util.Response "서버 오류"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(req.LoginID, req.Password, req.Nickname, req.GroupName)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLoginIDTaken):
			util.Error(ctx, 409, err.Error())
		case errors.Is(err, util.ErrPasswordTooShort):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID, "groupId": user.GroupID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	LoginID  string `json:"loginId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 로그인
// @Description 자격 증명을 확인하고 JWT 토큰을 돌려준다
// @Tags 인증
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "로그인 정보"
// @Success 200 {object} util.Response{data=object} "성공"
// @Failure 400 {object} util.Response "요청 형식 오류"
// @Failure 401 {object} util.Response "ID 또는 비밀번호 불일치"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.LoginID, req.Password)
	if err != nil {
		util.Error(ctx, 401, util.ErrInvalidCredential.Error())
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// ResetPasswordRequest 비밀번호 재설정 요청
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	LoginID     string `json:"loginId" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPassword godoc
// @Summary 비밀번호 재설정
// @Description 로그인 ID 확인 후 새 비밀번호로 교체 (최소 6자)
// @Tags 인증
// @Accept  json
// @Produce  json
// @Param   body body ResetPasswordRequest true "재설정 정보"
// @Success 200 {object} util.Response "성공"
// @Failure 400 {object} util.Response "비밀번호가 너무 짧음"
// @Failure 404 {object} util.Response "사용자를 찾을 수 없음"
// @Router /api/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.ResetPassword(req.LoginID, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, util.ErrPasswordTooShort):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"success": true})
}

// GetProfile godoc
// @Summary 내 프로필
// @Description 현재 사용자의 프로필과 이번 달 합계
// @Tags 인증
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "성공"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	window := service.CurrentMonthWindow(time.Now())
	monthTotal, err := c.ReadingService.MonthTotal(user.ID, window)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	groupName := ""
	if user.Group != nil {
		groupName = user.Group.Name
	}

	util.Success(ctx, gin.H{
		"id":         user.ID,
		"loginId":    user.LoginID,
		"nickname":   user.Nickname,
		"groupId":    user.GroupID,
		"groupName":  groupName,
		"joinedAt":   user.CreatedAt,
		"monthTotal": monthTotal,
	})
}
