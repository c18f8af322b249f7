package service

import (
	"bible_challenge_backend/internal/model"
	"time"
)

// 서비스가 기대하는 저장소 계약. internal/repository의 GORM 구현이 기본이지만
// 네 가지 조회/삽입만 만족하면 어떤 저장소든 바꿔 끼울 수 있다.

type ReadingStore interface {
	Create(reading *model.Reading) error
	UpsertDaily(reading *model.Reading) error
	FindByUser(userID string) ([]model.Reading, error)
	FindByUserAndRange(userID string, from, to time.Time) ([]model.Reading, error)
	FindByRange(from, to time.Time) ([]model.Reading, error)
}

type UserStore interface {
	Create(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByLoginID(loginID string) (*model.User, error)
	FindAll() ([]model.User, error)
	FindByGroup(groupID string) ([]model.User, error)
	UpdatePassword(userID, hashedPassword string) error
}

type GroupStore interface {
	FindAll() ([]model.Group, error)
	FindByID(id string) (*model.Group, error)
	FindOrCreateByName(name string) (*model.Group, error)
}
