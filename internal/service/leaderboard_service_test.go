package service

import (
	"errors"
	"testing"
	"time"

	"bible_challenge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGroupProgressZeroFillsEveryGroup(t *testing.T) {
	groups := &fakeGroupStore{}
	groups.groups = append(groups.groups,
		newGroup("g1", "1조"),
		newGroup("g2", "2조"),
		newGroup("g3", "3조"),
	)
	users := &fakeUserStore{}
	users.users = append(users.users,
		newUser("u1", "철수", "g1"),
		newUser("u2", "영희", "g1"),
	)
	readings := &fakeReadingStore{}
	readings.readings = append(readings.readings,
		reading("u1", day(2026, time.August, 10), "Genesis", 1, 5),
	)
	svc := NewLeaderboardService(groups, users, readings, nil)

	progress, err := svc.ComputeGroupProgress(NewMonthWindow(2026, time.August))
	require.NoError(t, err)
	require.Len(t, progress, 3)

	assert.Equal(t, "1조", progress[0].GroupName)
	assert.Equal(t, 5, progress[0].TotalChapters)
	assert.Equal(t, 2, progress[0].MemberCount)

	// 기록도 멤버도 없는 그룹이 0으로 남는다
	assert.Equal(t, 0, progress[1].TotalChapters)
	assert.Equal(t, 0, progress[1].MemberCount)
	assert.Equal(t, 0, progress[2].TotalChapters)
}

func TestComputeGroupProgressSumsOnlyWithinWindow(t *testing.T) {
	groups := &fakeGroupStore{}
	groups.groups = append(groups.groups, newGroup("g1", "1조"))
	users := &fakeUserStore{}
	users.users = append(users.users, newUser("u1", "철수", "g1"))
	readings := &fakeReadingStore{}
	readings.readings = append(readings.readings,
		reading("u1", day(2026, time.August, 1), "Genesis", 1, 3),
		reading("u1", day(2026, time.August, 31), "Exodus", 1, 4),
		reading("u1", day(2026, time.July, 31), "Leviticus", 1, 10),
		reading("u1", day(2026, time.September, 1), "Numbers", 1, 10),
	)
	svc := NewLeaderboardService(groups, users, readings, nil)

	progress, err := svc.ComputeGroupProgress(NewMonthWindow(2026, time.August))
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 7, progress[0].TotalChapters)
}

func TestComputeGroupProgressSkipsGrouplessUsers(t *testing.T) {
	groups := &fakeGroupStore{}
	groups.groups = append(groups.groups, newGroup("g1", "1조"))
	users := &fakeUserStore{}
	users.users = append(users.users,
		newUser("u1", "철수", "g1"),
		newUser("u2", "떠돌이", ""),
	)
	readings := &fakeReadingStore{}
	readings.readings = append(readings.readings,
		reading("u1", day(2026, time.August, 5), "Genesis", 1, 2),
		reading("u2", day(2026, time.August, 5), "Genesis", 1, 9),
	)
	svc := NewLeaderboardService(groups, users, readings, nil)

	progress, err := svc.ComputeGroupProgress(NewMonthWindow(2026, time.August))
	require.NoError(t, err)
	assert.Equal(t, 2, progress[0].TotalChapters)
	assert.Equal(t, 1, progress[0].MemberCount)
}

func TestComputeGroupProgressPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection refused")

	svc := NewLeaderboardService(&fakeGroupStore{failWith: boom}, &fakeUserStore{}, &fakeReadingStore{}, nil)
	progress, err := svc.ComputeGroupProgress(NewMonthWindow(2026, time.August))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, progress)

	svc = NewLeaderboardService(&fakeGroupStore{}, &fakeUserStore{failWith: boom}, &fakeReadingStore{}, nil)
	progress, err = svc.ComputeGroupProgress(NewMonthWindow(2026, time.August))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, progress)

	svc = NewLeaderboardService(&fakeGroupStore{}, &fakeUserStore{}, &fakeReadingStore{failWith: boom}, nil)
	progress, err = svc.ComputeGroupProgress(NewMonthWindow(2026, time.August))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, progress)
}

func TestRankGroupsStableTieBreak(t *testing.T) {
	svc := NewLeaderboardService(nil, nil, nil, nil)
	progress := []GroupProgress{
		{GroupID: "a", GroupName: "1조", TotalChapters: 50},
		{GroupID: "b", GroupName: "2조", TotalChapters: 50},
		{GroupID: "c", GroupName: "3조", TotalChapters: 30},
	}

	ranked := svc.RankGroups(progress, "b")
	require.Len(t, ranked, 3)

	// 동점은 입력 순서 유지, 순위는 1부터
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "a", ranked[0].GroupID)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "b", ranked[1].GroupID)
	assert.Equal(t, 3, ranked[2].Rank)
	assert.Equal(t, "c", ranked[2].GroupID)

	assert.False(t, ranked[0].IsMine)
	assert.True(t, ranked[1].IsMine)
	assert.False(t, ranked[2].IsMine)
}

func TestRankGroupsNoCallerGroup(t *testing.T) {
	svc := NewLeaderboardService(nil, nil, nil, nil)
	ranked := svc.RankGroups([]GroupProgress{
		{GroupID: "a", TotalChapters: 10},
		{GroupID: "b", TotalChapters: 20},
	}, "")

	for _, entry := range ranked {
		assert.False(t, entry.IsMine)
	}
	assert.Equal(t, "b", ranked[0].GroupID)
	assert.Equal(t, "a", ranked[1].GroupID)
}

func TestRankGroupsDoesNotMutateInput(t *testing.T) {
	svc := NewLeaderboardService(nil, nil, nil, nil)
	progress := []GroupProgress{
		{GroupID: "a", TotalChapters: 1},
		{GroupID: "b", TotalChapters: 9},
	}
	svc.RankGroups(progress, "")
	assert.Equal(t, "a", progress[0].GroupID)
	assert.Equal(t, "b", progress[1].GroupID)
}

func TestMonthlyLeaderboardWithoutCache(t *testing.T) {
	groups := &fakeGroupStore{}
	groups.groups = append(groups.groups, newGroup("g1", "1조"), newGroup("g2", "2조"))
	users := &fakeUserStore{}
	users.users = append(users.users, newUser("u1", "철수", "g2"))
	readings := &fakeReadingStore{}
	readings.readings = append(readings.readings,
		reading("u1", day(2026, time.August, 3), "Psalms", 1, 12),
	)
	svc := NewLeaderboardService(groups, users, readings, nil)

	ranked, err := svc.MonthlyLeaderboard(NewMonthWindow(2026, time.August), "g1")
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "g2", ranked[0].GroupID)
	assert.Equal(t, 12, ranked[0].TotalChapters)
	assert.True(t, ranked[1].IsMine)
}

func TestGroupMemberRankingOmitsInactiveMembers(t *testing.T) {
	groups := &fakeGroupStore{}
	groups.groups = append(groups.groups, newGroup("g1", "1조"))
	users := &fakeUserStore{}
	users.users = append(users.users,
		newUser("u1", "철수", "g1"),
		newUser("u2", "영희", "g1"),
		newUser("u3", "민수", "g1"),
		newUser("u9", "남그룹", "g2"),
	)
	readings := &fakeReadingStore{}
	readings.readings = append(readings.readings,
		reading("u1", day(2026, time.August, 2), "Genesis", 1, 4),
		reading("u2", day(2026, time.August, 2), "Genesis", 5, 7),
		reading("u2", day(2026, time.August, 9), "Exodus", 1, 2),
		reading("u9", day(2026, time.August, 2), "Genesis", 1, 40),
	)
	svc := NewLeaderboardService(groups, users, readings, nil)

	ranking, err := svc.GroupMemberRanking("g1", NewMonthWindow(2026, time.August))
	require.NoError(t, err)
	assert.Equal(t, "g1", ranking.GroupID)
	assert.Equal(t, "1조", ranking.GroupName)
	require.Len(t, ranking.Members, 2)
	assert.Equal(t, "u2", ranking.Members[0].UserID)
	assert.Equal(t, 9, ranking.Members[0].TotalChapters)
	assert.Equal(t, "u1", ranking.Members[1].UserID)
	assert.Equal(t, 4, ranking.Members[1].TotalChapters)
}

func TestGroupMemberRankingUnknownGroup(t *testing.T) {
	groups := &fakeGroupStore{}
	groups.groups = append(groups.groups, newGroup("g1", "1조"))
	svc := NewLeaderboardService(groups, &fakeUserStore{}, &fakeReadingStore{}, nil)

	ranking, err := svc.GroupMemberRanking("no-such-group", NewMonthWindow(2026, time.August))
	assert.ErrorIs(t, err, util.ErrGroupNotFound)
	assert.Nil(t, ranking)
}
