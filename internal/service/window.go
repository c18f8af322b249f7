package service

import (
	"fmt"
	"time"
)

// MonthWindow 달력 기준 한 달 범위 (year, month)
type MonthWindow struct {
	Year  int
	Month time.Month
}

func NewMonthWindow(year int, month time.Month) MonthWindow {
	return MonthWindow{Year: year, Month: month}
}

func CurrentMonthWindow(now time.Time) MonthWindow {
	return MonthWindow{Year: now.Year(), Month: now.Month()}
}

// Bounds 달의 첫날과 마지막 날(포함 범위)
func (w MonthWindow) Bounds() (time.Time, time.Time) {
	first := time.Date(w.Year, w.Month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// Contains 날짜(일 단위)가 이 달에 속하는지
func (w MonthWindow) Contains(date time.Time) bool {
	return date.Year() == w.Year && date.Month() == w.Month
}

func (w MonthWindow) String() string {
	return fmt.Sprintf("%04d-%02d", w.Year, int(w.Month))
}

// weekStart 주의 시작(월요일) 자정. 일요일은 지난 월요일로 돌린다.
func weekStart(now time.Time) time.Time {
	daysToMonday := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		daysToMonday = 6
	}
	day := now.AddDate(0, 0, -daysToMonday)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}
