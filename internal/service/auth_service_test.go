package service

import (
	"testing"
	"time"

	"bible_challenge_backend/internal/config"
	"bible_challenge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-for-auth-service-test"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func TestRegisterCreatesUserAndGroup(t *testing.T) {
	users := &fakeUserStore{}
	groups := &fakeGroupStore{}
	svc := NewAuthService(users, groups, testConfig())

	user, err := svc.Register("  chulsoo  ", "secret1", " 철수 ", "3조")
	require.NoError(t, err)

	assert.Equal(t, "chulsoo", user.LoginID)
	assert.Equal(t, "철수", user.Nickname)
	require.NotNil(t, user.Group)
	assert.Equal(t, "3조", user.Group.Name)
	assert.Equal(t, user.Group.ID, user.GroupID)

	// 비밀번호는 평문으로 저장되지 않는다
	assert.NotEqual(t, "secret1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))

	// 같은 그룹 이름으로 다시 가입하면 그룹이 늘지 않는다
	_, err = svc.Register("younghee", "secret2", "영희", "3조")
	require.NoError(t, err)
	assert.Len(t, groups.groups, 1)
	assert.Len(t, users.users, 2)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	users := &fakeUserStore{}
	svc := NewAuthService(users, &fakeGroupStore{}, testConfig())

	_, err := svc.Register("chulsoo", "12345", "철수", "1조")
	assert.ErrorIs(t, err, util.ErrPasswordTooShort)
	assert.Empty(t, users.users)
}

func TestRegisterRejectsTakenLoginID(t *testing.T) {
	users := &fakeUserStore{}
	users.users = append(users.users, newUser("u1", "철수", "g1"))
	users.users[0].LoginID = "chulsoo"
	svc := NewAuthService(users, &fakeGroupStore{}, testConfig())

	_, err := svc.Register("chulsoo", "secret1", "다른철수", "1조")
	assert.ErrorIs(t, err, util.ErrLoginIDTaken)
}

func TestLogin(t *testing.T) {
	users := &fakeUserStore{}
	groups := &fakeGroupStore{}
	svc := NewAuthService(users, groups, testConfig())

	_, err := svc.Register("chulsoo", "secret1", "철수", "1조")
	require.NoError(t, err)

	token, err := svc.Login("chulsoo", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, testConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "chulsoo", claims.LoginID)
	assert.Equal(t, "철수", claims.Nickname)

	// 틀린 비밀번호와 없는 계정은 같은 에러로 답한다
	_, err = svc.Login("chulsoo", "wrong-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredential)
	_, err = svc.Login("nobody", "secret1")
	assert.ErrorIs(t, err, util.ErrInvalidCredential)
}

func TestResetPassword(t *testing.T) {
	users := &fakeUserStore{}
	svc := NewAuthService(users, &fakeGroupStore{}, testConfig())

	_, err := svc.Register("chulsoo", "secret1", "철수", "1조")
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword("chulsoo", "renewed1"))

	_, err = svc.Login("chulsoo", "secret1")
	assert.ErrorIs(t, err, util.ErrInvalidCredential)
	_, err = svc.Login("chulsoo", "renewed1")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.ResetPassword("nobody", "renewed1"), util.ErrUserNotFound)
	assert.ErrorIs(t, svc.ResetPassword("chulsoo", "short"), util.ErrPasswordTooShort)
}
