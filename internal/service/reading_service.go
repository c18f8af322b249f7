package service

import (
	"bible_challenge_backend/internal/model"
	"bible_challenge_backend/internal/util"
	"bible_challenge_backend/pkg/monitoring"
	"errors"
	"fmt"
	"time"
)

// ReadingService 읽기 기록의 검증/저장과 사용자별 파생 뷰 계산
type ReadingService struct {
	ReadingStore ReadingStore
	Leaderboard  *LeaderboardService

	// 테스트에서 기준 시각을 고정하기 위한 주입 지점
	Now func() time.Time
}

func NewReadingService(readings ReadingStore, leaderboard *LeaderboardService) *ReadingService {
	return &ReadingService{
		ReadingStore: readings,
		Leaderboard:  leaderboard,
		Now:          time.Now,
	}
}

// ChapterStats 장별 읽기 맵과 이번 달/이번 주 합계
type ChapterStats struct {
	Chapters   map[string]int `json:"chapters"`
	MonthTotal int            `json:"monthTotal"`
	WeekTotal  int            `json:"weekTotal"`
}

// ChapterKey 읽기 맵의 키, "Book:chapter" 형식
func ChapterKey(book string, chapter int) string {
	return fmt.Sprintf("%s:%d", book, chapter)
}

func validateChapter(book string, chapter int) error {
	maxChapter, ok := model.ChapterCount(book)
	if !ok {
		return util.ErrUnknownBook
	}
	if chapter < 1 || chapter > maxChapter {
		return util.ErrChapterOutOfRange
	}
	return nil
}

// LogDaily 일일 합산 기록. 같은 날의 기존 기록은 클릭 기록까지 포함해 전부 교체된다.
// 저장 전에 검증하고, 어떤 검증 실패도 저장소에 닿지 않는다.
func (s *ReadingService) LogDaily(userID, book string, startChapter, chaptersRead int) (*model.Reading, error) {
	if chaptersRead <= 0 {
		return nil, util.ErrInvalidChapterCount
	}
	if err := validateChapter(book, startChapter); err != nil {
		return nil, err
	}

	today := s.today()
	reading := &model.Reading{
		UserID:       userID,
		ReadingDate:  today,
		Book:         book,
		StartChapter: startChapter,
		ChaptersRead: chaptersRead,
	}
	if err := s.ReadingStore.UpsertDaily(reading); err != nil {
		return nil, err
	}

	monitoring.ChaptersLogged.WithLabelValues("daily").Add(float64(chaptersRead))
	s.Leaderboard.InvalidateMonth(CurrentMonthWindow(today))
	return reading, nil
}

// MarkChapter 장 하나를 읽음으로 표시(그리드 클릭).
// 같은 (user, date, book, chapter) 중복은 성공으로 삼킨다: 이미 표시된 장이다.
// 반환값은 실제로 새 행이 생겼는지 여부.
func (s *ReadingService) MarkChapter(userID, book string, chapter int) (bool, error) {
	if err := validateChapter(book, chapter); err != nil {
		return false, err
	}

	today := s.today()
	reading := &model.Reading{
		UserID:       userID,
		ReadingDate:  today,
		Book:         book,
		StartChapter: chapter,
		ChaptersRead: 1,
	}
	if err := s.ReadingStore.Create(reading); err != nil {
		if errors.Is(err, util.ErrDuplicateReading) {
			return false, nil
		}
		return false, err
	}

	monitoring.ChaptersLogged.WithLabelValues("click").Inc()
	s.Leaderboard.InvalidateMonth(CurrentMonthWindow(today))
	return true, nil
}

// RecentReadings 기간 내 기록, 날짜 내림차순
func (s *ReadingService) RecentReadings(userID string, window MonthWindow) ([]model.Reading, error) {
	from, to := window.Bounds()
	return s.ReadingStore.FindByUserAndRange(userID, from, to)
}

// MonthTotal 기간 내 읽은 장 수 합계
func (s *ReadingService) MonthTotal(userID string, window MonthWindow) (int, error) {
	readings, err := s.RecentReadings(userID, window)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range readings {
		total += r.ChaptersRead
	}
	return total, nil
}

// ChapterReadStats 전체 기록을 장 단위로 펼친 읽기 맵과 이번 달/이번 주 합계.
// 기록이 겹치는 장은 중복 제거 없이 횟수가 더해진다(읽은 횟수 의미).
// 주 합계는 월요일 시작, 오늘 포함이다.
func (s *ReadingService) ChapterReadStats(userID string) (*ChapterStats, error) {
	readings, err := s.ReadingStore.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	month := CurrentMonthWindow(now)
	week := weekStart(now)

	stats := &ChapterStats{Chapters: make(map[string]int)}
	for _, r := range readings {
		for ch := r.StartChapter; ch <= r.EndChapter(); ch++ {
			stats.Chapters[ChapterKey(r.Book, ch)]++
		}

		if month.Contains(r.ReadingDate) {
			stats.MonthTotal += r.ChaptersRead
		}
		if !r.ReadingDate.Before(week) && !r.ReadingDate.After(now) {
			stats.WeekTotal += r.ChaptersRead
		}
	}
	return stats, nil
}

// today 시각을 떼어낸 오늘 날짜
func (s *ReadingService) today() time.Time {
	now := s.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
