package repository

import (
	"bible_challenge_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("Group").Where("id = ?", id).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByLoginID(loginID string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("login_id = ?", loginID).First(&user).Error
	return &user, err
}

// FindAll 집계용 전체 사용자(그룹 매핑) 조회
func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByGroup(groupID string) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("group_id = ?", groupID).Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdatePassword(userID, hashedPassword string) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("password", hashedPassword).
		Error
}
