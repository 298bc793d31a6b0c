package usecase_test

import (
	"errors"
	"testing"

	"github.com/bnema/netguard/internal/application/usecase"
	"github.com/bnema/netguard/internal/domain/entity"
	repomocks "github.com/bnema/netguard/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManagePermissionsUseCase_SetNormalisesInput(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	permRepo.EXPECT().Set(mock.Anything, mock.MatchedBy(func(r *entity.PermissionRecord) bool {
		return r.Origin == entity.Origin("https://meet.example.com") &&
			r.Kind == entity.PermissionPointerLock &&
			r.Allowed
	})).Return(nil).Once()

	uc := usecase.NewManagePermissionsUseCase(permRepo)
	record, err := uc.Set(ctx, "HTTPS://Meet.Example.com:443/room/42", "PointerLock", true)

	require.NoError(t, err)
	assert.Equal(t, entity.Origin("https://meet.example.com"), record.Origin)
}

func TestManagePermissionsUseCase_RejectsBadInput(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePermissionsUseCase(repomocks.NewMockPermissionRepository(t))

	_, err := uc.Set(ctx, "not a url", "geolocation", true)
	assert.ErrorIs(t, err, entity.ErrUnknownOrigin)

	err = uc.Revoke(ctx, "https://a.com", "teleport")
	assert.ErrorIs(t, err, entity.ErrUnknownPermission)
}

func TestManagePermissionsUseCase_ListAndRevoke(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	records := []*entity.PermissionRecord{{Origin: testOrigin, Kind: entity.PermissionMedia, Allowed: true}}

	permRepo.EXPECT().List(mock.Anything).Return(records, nil).Once()
	permRepo.EXPECT().ListByOrigin(mock.Anything, testOrigin).Return(records, nil).Once()
	permRepo.EXPECT().Delete(mock.Anything, testOrigin, entity.PermissionMedia).Return(errors.New("busy")).Once()

	uc := usecase.NewManagePermissionsUseCase(permRepo)

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	byOrigin, err := uc.List(ctx, "https://a.com/path")
	require.NoError(t, err)
	assert.Equal(t, records, byOrigin)

	assert.Error(t, uc.Revoke(ctx, "https://a.com", "media"))
}
