package votes

import (
	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"votebot/models"
)

// MockPollsService is a mock implementation of services.PollsService
type MockPollsService struct {
	mock.Mock
}

func (m *MockPollsService) Open(poll *models.Poll) error {
	args := m.Called(poll)
	return args.Error(0)
}

func (m *MockPollsService) Close(messageTS string) {
	m.Called(messageTS)
}

func (m *MockPollsService) Get(messageTS string) mo.Option[*models.Poll] {
	args := m.Called(messageTS)
	return args.Get(0).(mo.Option[*models.Poll])
}

func (m *MockPollsService) OpenCount() int {
	args := m.Called()
	return args.Int(0)
}

// MockUsersService is a mock implementation of services.UsersService
type MockUsersService struct {
	mock.Mock
}

func (m *MockUsersService) DisplayName(userID string) string {
	args := m.Called(userID)
	return args.String(0)
}

func (m *MockUsersService) DisplayNames(userIDs []string) []string {
	args := m.Called(userIDs)
	return args.Get(0).([]string)
}
