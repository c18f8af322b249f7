package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	// MinPasswordLength 비밀번호 최소 길이
	MinPasswordLength = 6
)
