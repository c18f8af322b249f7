package model

import (
	"time"
)

// Reading 하루의 읽기 기록 한 건
// (UserID, ReadingDate, Book, StartChapter) 유니크 인덱스로 장 단위 클릭의
// 멱등성을 보장한다. 일일 합산 입력은 서비스 계층에서 (UserID, ReadingDate)
// 기준으로 기존 행을 교체한다.
// swagger:model Reading
type Reading struct {
	BaseModel
	UserID       string    `gorm:"type:varchar(36);not null;index;index:idx_reading_click,unique" json:"userId"`
	ReadingDate  time.Time `gorm:"type:date;not null;index;index:idx_reading_click,unique" json:"readingDate"`
	Book         string    `gorm:"size:30;not null;index:idx_reading_click,unique" json:"book"`
	StartChapter int       `gorm:"not null;index:idx_reading_click,unique" json:"startChapter"`
	ChaptersRead int       `gorm:"not null" json:"chaptersRead"`
}

func (Reading) TableName() string {
	return "readings"
}

// EndChapter 이 기록이 커버하는 마지막 장
func (r *Reading) EndChapter() int {
	return r.StartChapter + r.ChaptersRead - 1
}
