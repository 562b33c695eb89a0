package submission_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRelayClient is a mock implementation of email.RelayClient.
type MockRelayClient struct {
	mock.Mock
}

func (m *MockRelayClient) Send(ctx context.Context, serviceID, templateID string, params map[string]string, publicKey string) error {
	args := m.Called(ctx, serviceID, templateID, params, publicKey)
	return args.Error(0)
}
