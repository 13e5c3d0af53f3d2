package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/parkease/parkease-backend/internal/config"
	"github.com/parkease/parkease-backend/internal/domain"
	userRepo "github.com/parkease/parkease-backend/internal/infra/storage/user"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSlotRepo struct {
	slots []*domain.Slot
}

func (r *fakeSlotRepo) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	stored := *s
	stored.ID = int64(len(r.slots) + 1)
	r.slots = append(r.slots, &stored)
	return &stored, nil
}

func (r *fakeSlotRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.slots)), nil
}

type fakeUserRepo struct {
	users []*domain.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, userRepo.ErrEmailExists
		}
	}
	stored := *u
	stored.ID = int64(len(r.users) + 1)
	r.users = append(r.users, &stored)
	return &stored, nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func testConfig() *config.BootstrapConfig {
	return &config.BootstrapConfig{
		SeedSlots:     true,
		AdminEmail:    "admin@parkease.local",
		AdminName:     "Admin",
		AdminPassword: "admin123",
	}
}

func TestRun_SeedsSlotsAndAdmin(t *testing.T) {
	slots := &fakeSlotRepo{}
	users := &fakeUserRepo{}
	seeder := NewSeeder(slots, users, nopLogger{})

	require.NoError(t, seeder.Run(context.Background(), testConfig()))

	require.Len(t, slots.slots, 12)
	assert.Equal(t, "S1", slots.slots[0].Code)
	assert.Equal(t, "S12", slots.slots[11].Code)

	// Первые шесть слотов на первом уровне, остальные на втором
	assert.Equal(t, 1, slots.slots[5].Level)
	assert.Equal(t, 2, slots.slots[6].Level)

	// Тариф циклом 40/50/30 в зависимости от номера
	assert.Equal(t, 40.0, slots.slots[0].PricePerHour)
	assert.Equal(t, 50.0, slots.slots[1].PricePerHour)
	assert.Equal(t, 30.0, slots.slots[2].PricePerHour)

	for _, s := range slots.slots {
		assert.True(t, s.Available)
	}

	require.Len(t, users.users, 1)
	admin := users.users[0]
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
}

func TestRun_IdempotentOnSecondStart(t *testing.T) {
	slots := &fakeSlotRepo{}
	users := &fakeUserRepo{}
	seeder := NewSeeder(slots, users, nopLogger{})

	require.NoError(t, seeder.Run(context.Background(), testConfig()))
	require.NoError(t, seeder.Run(context.Background(), testConfig()))

	assert.Len(t, slots.slots, 12)
	assert.Len(t, users.users, 1)
}

func TestRun_SeedDisabled(t *testing.T) {
	slots := &fakeSlotRepo{}
	users := &fakeUserRepo{}
	seeder := NewSeeder(slots, users, nopLogger{})

	cfg := testConfig()
	cfg.SeedSlots = false
	cfg.AdminEmail = ""

	require.NoError(t, seeder.Run(context.Background(), cfg))

	assert.Empty(t, slots.slots)
	assert.Empty(t, users.users)
}
