package service

import (
	"bible_challenge_backend/internal/util"
	"bible_challenge_backend/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const leaderboardCacheTTL = 10 * time.Minute

// GroupProgress 한 그룹의 월간 집계 결과
type GroupProgress struct {
	GroupID       string `json:"groupId"`
	GroupName     string `json:"groupName"`
	TotalChapters int    `json:"totalChapters"`
	MemberCount   int    `json:"memberCount"`
}

// RankedGroup 순위가 매겨진 리더보드 항목
type RankedGroup struct {
	Rank int `json:"rank"`
	GroupProgress
	IsMine bool `json:"isMine"`
}

// MemberProgress 그룹 내 멤버 한 명의 월간 합계
type MemberProgress struct {
	UserID        string `json:"userId"`
	Nickname      string `json:"nickname"`
	TotalChapters int    `json:"totalChapters"`
}

type LeaderboardService struct {
	GroupStore   GroupStore
	UserStore    UserStore
	ReadingStore ReadingStore
	Redis        *redis.Client
}

func NewLeaderboardService(groups GroupStore, users UserStore, readings ReadingStore, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{
		GroupStore:   groups,
		UserStore:    users,
		ReadingStore: readings,
		Redis:        rdb,
	}
}

// ComputeGroupProgress 한 달 범위의 그룹별 집계.
// 알려진 모든 그룹이 결과에 들어간다: 기록이나 멤버가 없는 그룹도 0으로 남는다.
// 그룹 목록을 읽지 못하면 부분 결과 없이 에러를 그대로 돌려준다.
func (s *LeaderboardService) ComputeGroupProgress(window MonthWindow) ([]GroupProgress, error) {
	groups, err := s.GroupStore.FindAll()
	if err != nil {
		return nil, err
	}

	users, err := s.UserStore.FindAll()
	if err != nil {
		return nil, err
	}

	from, to := window.Bounds()
	readings, err := s.ReadingStore.FindByRange(from, to)
	if err != nil {
		return nil, err
	}

	// 그룹별 0으로 초기화, 기준 순서는 GroupStore가 보장하는 이름 오름차순
	totals := make(map[string]int, len(groups))
	memberCounts := make(map[string]int, len(groups))
	for _, g := range groups {
		totals[g.ID] = 0
		memberCounts[g.ID] = 0
	}

	// 멤버 수는 활동 여부와 무관하게 센다
	userGroup := make(map[string]string, len(users))
	for _, u := range users {
		userGroup[u.ID] = u.GroupID
		if _, known := memberCounts[u.GroupID]; known {
			memberCounts[u.GroupID]++
		}
	}

	// 그룹 없는 사용자의 기록은 어느 버킷에도 넣지 않는다
	for _, r := range readings {
		groupID, hasGroup := userGroup[r.UserID]
		if !hasGroup {
			continue
		}
		if _, known := totals[groupID]; known {
			totals[groupID] += r.ChaptersRead
		}
	}

	progress := make([]GroupProgress, len(groups))
	for i, g := range groups {
		progress[i] = GroupProgress{
			GroupID:       g.ID,
			GroupName:     g.Name,
			TotalChapters: totals[g.ID],
			MemberCount:   memberCounts[g.ID],
		}
	}
	return progress, nil
}

// RankGroups 총 장 수 내림차순으로 순위를 매긴다.
// 동점 그룹은 입력 순서를 유지하고, 순위는 1부터 시작한다.
// callerGroupID가 비어 있으면 IsMine은 어디에도 찍히지 않는다.
func (s *LeaderboardService) RankGroups(progress []GroupProgress, callerGroupID string) []RankedGroup {
	ordered := make([]GroupProgress, len(progress))
	copy(ordered, progress)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TotalChapters > ordered[j].TotalChapters
	})

	ranked := make([]RankedGroup, len(ordered))
	for i, p := range ordered {
		ranked[i] = RankedGroup{
			Rank:          i + 1,
			GroupProgress: p,
			IsMine:        callerGroupID != "" && p.GroupID == callerGroupID,
		}
	}
	return ranked
}

// MonthlyLeaderboard 캐시를 거친 월간 리더보드.
// 캐시에는 순위 전(기준 순서) 집계를 넣고, 순위와 IsMine은 호출자마다 계산한다.
func (s *LeaderboardService) MonthlyLeaderboard(window MonthWindow, callerGroupID string) ([]RankedGroup, error) {
	progress, ok := s.cachedProgress(window)
	if !ok {
		var err error
		progress, err = s.ComputeGroupProgress(window)
		if err != nil {
			return nil, err
		}
		s.storeProgress(window, progress)
	}
	return s.RankGroups(progress, callerGroupID), nil
}

// GroupRanking 그룹 정보와 멤버별 월간 합계
type GroupRanking struct {
	GroupID   string           `json:"groupId"`
	GroupName string           `json:"groupName"`
	Members   []MemberProgress `json:"members"`
}

// GroupMemberRanking 그룹 멤버별 월간 합계, 내림차순.
// 없는 그룹이면 ErrGroupNotFound를 돌려준다.
// 원본 화면과 같게 이번 달 기록이 없는 멤버는 목록에 나오지 않는다.
func (s *LeaderboardService) GroupMemberRanking(groupID string, window MonthWindow) (*GroupRanking, error) {
	group, err := s.GroupStore.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGroupNotFound
		}
		return nil, err
	}

	members, err := s.UserStore.FindByGroup(groupID)
	if err != nil {
		return nil, err
	}

	from, to := window.Bounds()
	readings, err := s.ReadingStore.FindByRange(from, to)
	if err != nil {
		return nil, err
	}

	nickname := make(map[string]string, len(members))
	for _, m := range members {
		nickname[m.ID] = m.Nickname
	}

	totals := make(map[string]int)
	for _, r := range readings {
		if _, isMember := nickname[r.UserID]; isMember {
			totals[r.UserID] += r.ChaptersRead
		}
	}

	ranking := make([]MemberProgress, 0, len(totals))
	for _, m := range members {
		if total, active := totals[m.ID]; active {
			ranking = append(ranking, MemberProgress{
				UserID:        m.ID,
				Nickname:      m.Nickname,
				TotalChapters: total,
			})
		}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalChapters > ranking[j].TotalChapters
	})
	return &GroupRanking{
		GroupID:   group.ID,
		GroupName: group.Name,
		Members:   ranking,
	}, nil
}

// InvalidateMonth 기록이 저장된 뒤 해당 달의 캐시를 지운다.
// 모듈 전역 캐시 대신 쓰기를 트리거로 하는 명시적 무효화만 쓴다.
func (s *LeaderboardService) InvalidateMonth(window MonthWindow) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), cacheKey(window)).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate leaderboard cache",
			zap.String("window", window.String()), zap.Error(err))
	}
}

func cacheKey(window MonthWindow) string {
	return "leaderboard:" + window.String()
}

func (s *LeaderboardService) cachedProgress(window MonthWindow) ([]GroupProgress, bool) {
	if s.Redis == nil {
		return nil, false
	}
	raw, err := s.Redis.Get(context.Background(), cacheKey(window)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("Leaderboard cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var progress []GroupProgress
	if err := json.Unmarshal(raw, &progress); err != nil {
		return nil, false
	}
	return progress, true
}

func (s *LeaderboardService) storeProgress(window MonthWindow, progress []GroupProgress) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(progress)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), cacheKey(window), raw, leaderboardCacheTTL).Err(); err != nil {
		logger.Log.Warn("Leaderboard cache write failed", zap.Error(err))
	}
}
