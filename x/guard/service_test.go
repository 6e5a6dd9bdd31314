package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/JayByRP/shield/core"
	mock_guard "github.com/JayByRP/shield/x/guard/mock"
	"github.com/JayByRP/shield/x/util"
)

func TestAuthorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockRepo := mock_guard.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetSecret(gomock.Any(), "Annabeth").
		Return("hunter2", nil).
		AnyTimes()
	mockRepo.EXPECT().
		GetSecret(gomock.Any(), "Nobody").
		Return("", core.NewErrorNotFound()).
		AnyTimes()

	config := util.Config{}
	config.Roster.AdminSecret = "override"

	service := NewService(mockRepo, config)

	// owner secret
	assert.NoError(t, service.Authorize(ctx, "Annabeth", "hunter2"))

	// admin override works regardless of the stored secret
	assert.NoError(t, service.Authorize(ctx, "Annabeth", "override"))

	// wrong secret
	err := service.Authorize(ctx, "Annabeth", "wrong")
	assert.True(t, errors.Is(err, core.ErrorPermissionDenied{}))

	// a missing record denies the same way as a wrong secret
	err = service.Authorize(ctx, "Nobody", "hunter2")
	assert.True(t, errors.Is(err, core.ErrorPermissionDenied{}))
}

func TestAuthorizeWithoutAdminSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockRepo := mock_guard.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetSecret(gomock.Any(), "Annabeth").
		Return("hunter2", nil).
		AnyTimes()

	service := NewService(mockRepo, util.Config{})

	assert.NoError(t, service.Authorize(ctx, "Annabeth", "hunter2"))

	// an unset override must not turn the empty string into a skeleton key
	err := service.Authorize(ctx, "Annabeth", "")
	assert.True(t, errors.Is(err, core.ErrorPermissionDenied{}))
}
