package service

import (
	"bible_challenge_backend/internal/model"
	"bible_challenge_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// 저장소 계약에 대한 인메모리 구현. 서비스 테스트는 DB 없이 이것으로 돈다.

type fakeReadingStore struct {
	readings []model.Reading
	nextID   uint
	failWith error
}

func (f *fakeReadingStore) Create(r *model.Reading) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.readings {
		if existing.UserID == r.UserID &&
			existing.ReadingDate.Equal(r.ReadingDate) &&
			existing.Book == r.Book &&
			existing.StartChapter == r.StartChapter {
			return util.ErrDuplicateReading
		}
	}
	f.nextID++
	r.ID = f.nextID
	f.readings = append(f.readings, *r)
	return nil
}

func (f *fakeReadingStore) UpsertDaily(r *model.Reading) error {
	if f.failWith != nil {
		return f.failWith
	}
	kept := f.readings[:0]
	for _, existing := range f.readings {
		if existing.UserID == r.UserID && existing.ReadingDate.Equal(r.ReadingDate) {
			continue
		}
		kept = append(kept, existing)
	}
	f.readings = kept
	f.nextID++
	r.ID = f.nextID
	f.readings = append(f.readings, *r)
	return nil
}

func (f *fakeReadingStore) FindByUser(userID string) ([]model.Reading, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []model.Reading
	for _, r := range f.readings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReadingStore) FindByUserAndRange(userID string, from, to time.Time) ([]model.Reading, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []model.Reading
	for _, r := range f.readings {
		if r.UserID == userID && inRange(r.ReadingDate, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReadingStore) FindByRange(from, to time.Time) ([]model.Reading, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []model.Reading
	for _, r := range f.readings {
		if inRange(r.ReadingDate, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func inRange(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}

type fakeUserStore struct {
	users    []model.User
	failWith error
}

func (f *fakeUserStore) Create(u *model.User) error {
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserStore) FindByID(id string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindByLoginID(loginID string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].LoginID == loginID {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindAll() ([]model.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.users, nil
}

func (f *fakeUserStore) FindByGroup(groupID string) ([]model.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []model.User
	for _, u := range f.users {
		if u.GroupID == groupID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) UpdatePassword(userID, hashedPassword string) error {
	for i := range f.users {
		if f.users[i].ID == userID {
			f.users[i].Password = hashedPassword
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeGroupStore struct {
	groups   []model.Group
	failWith error
}

func (f *fakeGroupStore) FindAll() ([]model.Group, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.groups, nil
}

func (f *fakeGroupStore) FindByID(id string) (*model.Group, error) {
	for i := range f.groups {
		if f.groups[i].ID == id {
			return &f.groups[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGroupStore) FindOrCreateByName(name string) (*model.Group, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.groups {
		if f.groups[i].Name == name {
			return &f.groups[i], nil
		}
	}
	group := model.Group{Name: name}
	group.ID = name + "-id"
	f.groups = append(f.groups, group)
	return &f.groups[len(f.groups)-1], nil
}

func newGroup(id, name string) model.Group {
	g := model.Group{Name: name}
	g.ID = id
	return g
}

func newUser(id, nickname, groupID string) model.User {
	u := model.User{Nickname: nickname, GroupID: groupID}
	u.ID = id
	return u
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func reading(userID string, date time.Time, book string, start, count int) model.Reading {
	return model.Reading{
		UserID:       userID,
		ReadingDate:  date,
		Book:         book,
		StartChapter: start,
		ChaptersRead: count,
	}
}
