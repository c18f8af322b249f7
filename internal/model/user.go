package model

// User 챌린지 참가자 프로필
// LoginID는 로그인용 아이디(영문), Nickname은 대시보드에 표시되는 이름
// 가입 시 그룹이 확정되며 이후 집계 코어에서는 변경하지 않는다
// swagger:model User
type User struct {
	UUIDBase
	LoginID  string `gorm:"size:50;uniqueIndex;not null" json:"loginId"`
	Nickname string `gorm:"size:50;not null" json:"nickname"`
	Password string `gorm:"size:100;not null" json:"-"`
	GroupID  string `gorm:"type:varchar(36);index;not null" json:"groupId"`
	Group    *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

func (User) TableName() string {
	return "users"
}
