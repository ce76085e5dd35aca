// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/t83714/ts-module-alias-transformer/internal/domain"
	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow that asserts its expectations when
// the test finishes.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mw := &MockWorkflow{}
	mw.Mock.Test(t)

	t.Cleanup(func() { mw.AssertExpectations(t) })

	return mw
}

// Run implements domain.Workflow.
func (mw *MockWorkflow) Run(ctx context.Context, args domain.RunArgs) (m.RunSummary, error) {
	ret := mw.Called(ctx, args)

	return ret.Get(0).(m.RunSummary), ret.Error(1)
}
