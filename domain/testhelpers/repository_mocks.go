package testhelpers

import (
	"context"

	"wheelbot/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockGuildStateRepository is a mock implementation of GuildStateRepository
type MockGuildStateRepository struct {
	mock.Mock
}

func (m *MockGuildStateRepository) Get(ctx context.Context, guildID int64) (*entities.GuildState, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildState), args.Error(1)
}

func (m *MockGuildStateRepository) Save(ctx context.Context, guildID int64, state *entities.GuildState) error {
	args := m.Called(ctx, guildID, state)
	return args.Error(0)
}

// MockInviteDirectory is a mock implementation of InviteDirectory
type MockInviteDirectory struct {
	mock.Mock
}

func (m *MockInviteDirectory) ListGuildInvites(ctx context.Context, guildID int64) ([]entities.InviteUsage, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.InviteUsage), args.Error(1)
}
