package repository

import (
	"bible_challenge_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

// FindAll 이름 오름차순의 결정적 순서로 전체 그룹을 돌려준다.
// 리더보드 동점 처리의 기준 순서가 되므로 정렬을 빼면 안 된다.
func (r *GroupRepository) FindAll() ([]model.Group, error) {
	var groups []model.Group
	err := r.DB.Order("name ASC").Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) FindByID(id string) (*model.Group, error) {
	var group model.Group
	err := r.DB.Where("id = ?", id).First(&group).Error
	return &group, err
}

func (r *GroupRepository) FindByName(name string) (*model.Group, error) {
	var group model.Group
	err := r.DB.Where("name = ?", name).First(&group).Error
	return &group, err
}

// FindOrCreateByName 가입 시 그룹이 없으면 만들어서 돌려준다
func (r *GroupRepository) FindOrCreateByName(name string) (*model.Group, error) {
	group, err := r.FindByName(name)
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &model.Group{Name: name}
	if err := r.DB.Create(created).Error; err != nil {
		// 동시 가입으로 먼저 생성됐을 수 있으니 한 번 더 조회
		if existing, findErr := r.FindByName(name); findErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return created, nil
}
