package integration

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hdwhdw/testkit/pkg/db"
)

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) GetCustomer(ctx context.Context, id int) (*db.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*db.Customer)
	return customer, args.Error(1)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, to, body string) error {
	args := m.Called(ctx, to, body)
	return args.Error(0)
}
