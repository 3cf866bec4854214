package repo

import (
	"context"
	"testing"
	"time"

	"upstagram/be/biz/model/domain"
	"upstagram/be/biz/model/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(
		&storage.MemberRecord{},
		&storage.StoryRecord{},
		&storage.StoryReactionRecord{},
		&storage.StoryWatchingRecord{},
	)
	assert.NoError(t, err)
	return db
}

func newTestMember(id string) *domain.Member {
	return &domain.Member{
		ID:         id,
		OauthNo:    "",
		Password:   "hash",
		Name:       "tester",
		Sex:        "M",
		Tel:        "01012345678",
		Role:       domain.RoleUser,
		PushViewYn: domain.FlagYes,
		TagAllowYn: domain.FlagYes,
		UseYn:      domain.FlagYes,
		JoinDttm:   time.Now(),
	}
}

func TestMemberRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	r := NewMemberRepository(db)
	ctx := context.Background()

	created, err := r.Create(ctx, newTestMember("member1"))
	assert.NoError(t, err)
	assert.Equal(t, "member1", created.ID)

	found, err := r.FindByMemberID(ctx, "member1")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "tester", found.Name)

	found, err = r.FindByMemberID(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemberRepository_FindByMemberIDAndUseYn(t *testing.T) {
	db := setupTestDB(t)
	r := NewMemberRepository(db)
	ctx := context.Background()

	m := newTestMember("member1")
	m.UseYn = domain.FlagNo
	_, err := r.Create(ctx, m)
	assert.NoError(t, err)

	// a deactivated member is invisible to the active lookup
	found, err := r.FindByMemberIDAndUseYn(ctx, "member1", domain.FlagYes)
	assert.NoError(t, err)
	assert.Nil(t, found)

	found, err = r.FindByMemberIDAndUseYn(ctx, "member1", domain.FlagNo)
	assert.NoError(t, err)
	assert.NotNil(t, found)
}

func TestMemberRepository_FindByOauthNo(t *testing.T) {
	db := setupTestDB(t)
	r := NewMemberRepository(db)
	ctx := context.Background()

	m := newTestMember("member1")
	m.OauthNo = "google-123"
	_, err := r.Create(ctx, m)
	assert.NoError(t, err)

	found, err := r.FindByOauthNo(ctx, "google-123")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "member1", found.ID)

	found, err = r.FindByOauthNo(ctx, "google-999")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemberRepository_UpdateLoginState(t *testing.T) {
	db := setupTestDB(t)
	r := NewMemberRepository(db)
	ctx := context.Background()

	m := newTestMember("member1")
	m.WrongPasswordNumber = 2
	_, err := r.Create(ctx, m)
	assert.NoError(t, err)

	updated, err := r.UpdateLoginState(ctx, "member1", domain.Member.LoginFail)
	assert.NoError(t, err)
	assert.Equal(t, 3, updated.WrongPasswordNumber)

	var rec storage.MemberRecord
	assert.NoError(t, db.First(&rec, "member_id = ?", "member1").Error)
	assert.Equal(t, 3, rec.WrongPasswordNumber)

	now := time.Now()
	updated, err = r.UpdateLoginState(ctx, "member1", func(m domain.Member) domain.Member {
		return m.LoginSuccess(now)
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, updated.WrongPasswordNumber)

	assert.NoError(t, db.First(&rec, "member_id = ?", "member1").Error)
	assert.Equal(t, 0, rec.WrongPasswordNumber)
	assert.WithinDuration(t, now, rec.LastLoginDttm, time.Second)
}

func TestMemberRepository_UpdateLoginState_NotFound(t *testing.T) {
	db := setupTestDB(t)
	r := NewMemberRepository(db)

	updated, err := r.UpdateLoginState(context.Background(), "nobody", domain.Member.LoginFail)
	assert.NoError(t, err)
	assert.Nil(t, updated)
}
