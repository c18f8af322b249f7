package util

import "errors"

var (
	ErrUserNotFound      = errors.New("해당 ID로 등록된 사용자를 찾을 수 없습니다")
	ErrLoginIDTaken      = errors.New("이미 사용 중인 ID입니다")
	ErrInvalidCredential = errors.New("ID 또는 비밀번호가 올바르지 않습니다")
	ErrPasswordTooShort  = errors.New("비밀번호는 최소 6자 이상이어야 합니다")
	ErrGroupNotFound     = errors.New("그룹을 찾을 수 없습니다")

	ErrUnknownBook         = errors.New("성경 책을 선택하세요")
	ErrChapterOutOfRange   = errors.New("해당 책에 없는 장입니다")
	ErrInvalidChapterCount = errors.New("올바른 장 수를 입력하세요")
	ErrDuplicateReading    = errors.New("이미 기록된 장입니다")
)
