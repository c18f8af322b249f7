package model

// Group 리더보드 집계 단위가 되는 조
// swagger:model Group
type Group struct {
	UUIDBase
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (Group) TableName() string {
	return "groups"
}

// DefaultGroupNames 가입 화면에서 선택 가능한 다섯 개의 기본 조
var DefaultGroupNames = []string{"1조", "2조", "3조", "4조", "5조"}
