package services

import (
	"testing"
	"time"

	"github.com/sena-h/group-companion/internal/models"
	"github.com/sena-h/group-companion/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupChannelService(t *testing.T) (*gorm.DB, *ChannelService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Channel{},
		&models.AccessKey{},
		&models.Group{},
	)
	require.NoError(t, err)

	channelRepo := repository.NewChannelRepository(db)
	keyRepo := repository.NewAccessKeyRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, NewChannelService(channelRepo, keyRepo)
}

func seedChannel(t *testing.T, db *gorm.DB, name string, active bool, createdAt time.Time) *models.Channel {
	t.Helper()

	channel := &models.Channel{
		Name:                   name,
		LineChannelID:          name + "-id",
		LineChannelAccessToken: name + "-token",
		LineChannelSecret:      name + "-secret",
		LiffID:                 name + "-liff",
		IsActive:               active,
		CreatedAt:              createdAt,
	}
	require.NoError(t, db.Create(channel).Error)
	return channel
}

func TestChannelService_Resolve_RegisteredGroup(t *testing.T) {
	db, svc := setupChannelService(t)

	base := time.Now().Add(-48 * time.Hour)
	older := seedChannel(t, db, "older", true, base)
	newer := seedChannel(t, db, "newer", true, base.Add(time.Hour))

	require.NoError(t, db.Create(&models.Group{
		ChannelID:   newer.ID,
		LineGroupID: "LG-registered",
		Name:        "Registered",
	}).Error)

	channel, err := svc.Resolve("LG-registered")
	require.NoError(t, err)
	require.Equal(t, newer.ID, channel.ID)

	// The registered group wins even though another channel is older.
	require.NotEqual(t, older.ID, channel.ID)
}

func TestChannelService_Resolve_FallsBackToOldestActive(t *testing.T) {
	db, svc := setupChannelService(t)

	base := time.Now().Add(-48 * time.Hour)
	oldest := seedChannel(t, db, "oldest", true, base)
	seedChannel(t, db, "inactive-older", false, base.Add(-time.Hour))
	seedChannel(t, db, "newer", true, base.Add(time.Hour))

	channel, err := svc.Resolve("LG-unknown")
	require.NoError(t, err)
	require.Equal(t, oldest.ID, channel.ID)
}

func TestChannelService_Resolve_InactiveOwnerFallsBack(t *testing.T) {
	db, svc := setupChannelService(t)

	base := time.Now().Add(-48 * time.Hour)
	active := seedChannel(t, db, "active", true, base)
	inactive := seedChannel(t, db, "inactive", false, base.Add(time.Hour))

	require.NoError(t, db.Create(&models.Group{
		ChannelID:   inactive.ID,
		LineGroupID: "LG-dormant",
		Name:        "Dormant",
	}).Error)

	channel, err := svc.Resolve("LG-dormant")
	require.NoError(t, err)
	require.Equal(t, active.ID, channel.ID)
}

func TestChannelService_Resolve_NoActiveChannel(t *testing.T) {
	db, svc := setupChannelService(t)

	seedChannel(t, db, "dormant", false, time.Now())

	_, err := svc.Resolve("LG-any")
	require.ErrorIs(t, err, ErrNoActiveChannel)
}

func TestChannelService_IssueAccessKey_DefaultExpiry(t *testing.T) {
	_, svc := setupChannelService(t)

	key, err := svc.IssueAccessKey(1, 0)
	require.NoError(t, err)

	expected := time.Now().AddDate(0, 0, 7)
	require.WithinDuration(t, expected, key.ExpiresAt, time.Minute)
}
