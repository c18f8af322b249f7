package service

import (
	"bible_challenge_backend/internal/config"
	"bible_challenge_backend/internal/model"
	"bible_challenge_backend/internal/util"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserStore  UserStore
	GroupStore GroupStore
	Cfg        *config.Config
}

func NewAuthService(users UserStore, groups GroupStore, cfg *config.Config) *AuthService {
	return &AuthService{
		UserStore:  users,
		GroupStore: groups,
		Cfg:        cfg,
	}
}

// Register 가입: 그룹은 이름으로 찾고 없으면 만든다.
// 그룹 확정 → 비밀번호 해시 → 프로필 생성 순서.
func (s *AuthService) Register(loginID, password, nickname, groupName string) (*model.User, error) {
	loginID = strings.TrimSpace(loginID)
	nickname = strings.TrimSpace(nickname)
	groupName = strings.TrimSpace(groupName)

	if len(password) < util.MinPasswordLength {
		return nil, util.ErrPasswordTooShort
	}

	_, err := s.UserStore.FindByLoginID(loginID)
	if err == nil {
		return nil, util.ErrLoginIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	group, err := s.GroupStore.FindOrCreateByName(groupName)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		LoginID:  loginID,
		Nickname: nickname,
		Password: string(hashedPassword),
		GroupID:  group.ID,
	}
	if err := s.UserStore.Create(user); err != nil {
		return nil, err
	}
	user.Group = group
	return user, nil
}

func (s *AuthService) Login(loginID, password string) (string, error) {
	user, err := s.UserStore.FindByLoginID(strings.TrimSpace(loginID))
	if err != nil {
		return "", util.ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredential
	}

	jwtCfg := s.Cfg.JWTSettings()
	return util.GenerateJWT(user, jwtCfg.Secret, jwtCfg.ExpireTime)
}

// ResetPassword 로그인 ID로 사용자를 확인한 뒤 비밀번호를 교체한다
func (s *AuthService) ResetPassword(loginID, newPassword string) error {
	if len(newPassword) < util.MinPasswordLength {
		return util.ErrPasswordTooShort
	}

	user, err := s.UserStore.FindByLoginID(strings.TrimSpace(loginID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserStore.UpdatePassword(user.ID, string(hashedPassword))
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserStore.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
