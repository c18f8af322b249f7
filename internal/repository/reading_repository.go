package repository

import (
	"bible_challenge_backend/internal/model"
	"bible_challenge_backend/internal/util"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type ReadingRepository struct {
	DB *gorm.DB
}

func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{DB: db}
}

// Create 장 단위 클릭 기록 한 건 삽입.
// (user, date, book, start_chapter) 유니크 인덱스 충돌은 ErrDuplicateReading으로
// 돌려주고, 되돌릴지 무시할지는 서비스 계층이 정한다.
func (r *ReadingRepository) Create(reading *model.Reading) error {
	err := r.DB.Create(reading).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "Duplicate entry") {
		return util.ErrDuplicateReading
	}
	return err
}

// UpsertDaily 일일 합산 입력: 같은 (user, date)의 기존 행을 전부 지우고 새 행 하나를 넣는다.
// 같은 날 클릭 기록이 섞여 있어도 그 날의 합계는 이 한 건으로 남는다.
// 유니크 인덱스가 소프트 삭제된 행과 충돌하지 않도록 Unscoped로 지운다.
func (r *ReadingRepository) UpsertDaily(reading *model.Reading) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("user_id = ? AND reading_date = ?",
				reading.UserID, reading.ReadingDate.Format(util.DateFormat)).
			Delete(&model.Reading{}).Error; err != nil {
			return err
		}
		return tx.Create(reading).Error
	})
}

// FindByUser 한 사용자의 전체(기간 제한 없는) 기록, 장별 읽기 맵 계산용
func (r *ReadingRepository) FindByUser(userID string) ([]model.Reading, error) {
	var readings []model.Reading
	err := r.DB.Where("user_id = ?", userID).Find(&readings).Error
	return readings, err
}

// FindByUserAndRange 한 사용자의 기간 내 기록, 날짜 내림차순
func (r *ReadingRepository) FindByUserAndRange(userID string, from, to time.Time) ([]model.Reading, error) {
	var readings []model.Reading
	err := r.DB.Where("user_id = ? AND reading_date BETWEEN ? AND ?",
		userID, from.Format(util.DateFormat), to.Format(util.DateFormat)).
		Order("reading_date DESC").
		Find(&readings).Error
	return readings, err
}

// FindByRange 모든 사용자의 기간 내 기록, 그룹 집계용
func (r *ReadingRepository) FindByRange(from, to time.Time) ([]model.Reading, error) {
	var readings []model.Reading
	err := r.DB.Where("reading_date BETWEEN ? AND ?",
		from.Format(util.DateFormat), to.Format(util.DateFormat)).
		Find(&readings).Error
	return readings, err
}
