package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/user"
	usererrors "github.com/SirTuppy/route-setter-scheduler/internal/user/errors"
	userMock "github.com/SirTuppy/route-setter-scheduler/internal/user/mock"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) (user.Service, *userMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	return user.NewService(repo), repo
}

func TestUserService_GetAll(t *testing.T) {
	svc, repo := setupServiceTest(t)

	repo.EXPECT().FindAll(gomock.Any(), user.ListFilter{GymID: "denton"}).Return([]user.User{
		{ID: uuid.New(), Name: "Avery", Role: domain.RoleSetter, PrimaryGyms: pq.StringArray{"denton"}, IsActive: true},
		{ID: uuid.New(), Name: "Blake", Role: domain.RoleHeadSetter},
	}, nil)

	resp, err := svc.GetAll(context.Background(), user.ListFilter{GymID: "denton"})

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, []string{"denton"}, resp[0].PrimaryGyms)
	assert.Equal(t, []string{}, resp[1].PrimaryGyms)
}

func TestUserService_GetAll_StoreError(t *testing.T) {
	svc, repo := setupServiceTest(t)
	repo.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.GetAll(context.Background(), user.ListFilter{})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeDataFetchError, appErr.Code)
}

func TestUserService_GetByID(t *testing.T) {
	t.Run("negative invalid id", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.GetByID(context.Background(), "not-a-uuid")

		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		id := uuid.New().String()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(context.Background(), id)

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestUserService_Lookup(t *testing.T) {
	active := uuid.New()
	inactive := uuid.New()
	unknown := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindByIDs(gomock.Any(), []string{active.String()}).
			Return([]user.User{{ID: active, Name: "Avery", IsActive: true}}, nil)

		got, err := svc.Lookup(context.Background(), []string{active.String()})

		require.NoError(t, err)
		assert.Equal(t, "Avery", got[active.String()].Name)
	})

	t.Run("negative reports every missing setter", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		ids := []string{active.String(), inactive.String(), unknown.String(), "bogus"}
		repo.EXPECT().FindByIDs(gomock.Any(), ids[:3]).Return([]user.User{
			{ID: active, IsActive: true},
			{ID: inactive, IsActive: false},
		}, nil)

		_, err := svc.Lookup(context.Background(), ids)

		require.ErrorIs(t, err, usererrors.ErrSetterNotFound)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeSetterNotFound, appErr.Code)
		missing := appErr.Details.(map[string]any)["setter_ids"].([]string)
		assert.Len(t, missing, 3)
		assert.Contains(t, missing, "bogus")
		assert.Contains(t, missing, inactive.String())
	})

	t.Run("empty input", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		got, err := svc.Lookup(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestUserService_Sync(t *testing.T) {
	id := uuid.New()
	actor := domain.Actor{UserID: id.String(), Email: "sam@example.com", Role: domain.RoleHeadSetter}

	t.Run("first sight stores the token role", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *user.User) error {
			assert.Equal(t, id, u.ID)
			assert.Equal(t, "sam@example.com", u.Name)
			assert.Equal(t, domain.RoleHeadSetter, u.Role)
			return nil
		})
		repo.EXPECT().FindByID(gomock.Any(), id.String()).
			Return(&user.User{ID: id, Name: "sam@example.com", Email: actor.Email, Role: domain.RoleHeadSetter, IsActive: true}, nil)

		resp, err := svc.Sync(context.Background(), actor)

		require.NoError(t, err)
		assert.Equal(t, domain.RoleHeadSetter, resp.Role)
	})

	t.Run("negative subject is not a uuid", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.Sync(context.Background(), domain.Actor{UserID: "abc"})

		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})
}

func TestUserService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("success dedupes primary gyms", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		role := domain.RoleHeadSetter
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&user.User{ID: id, Role: domain.RoleSetter}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *user.User) error {
			assert.Equal(t, pq.StringArray{"plano", "planoTC"}, u.PrimaryGyms)
			return nil
		})

		resp, err := svc.Update(context.Background(), id.String(), user.UpdateUserRequest{
			Role:        &role,
			PrimaryGyms: []string{"plano", " plano", "planoTC", ""},
		})

		require.NoError(t, err)
		assert.Equal(t, domain.RoleHeadSetter, resp.Role)
	})

	t.Run("negative invalid role", func(t *testing.T) {
		svc, _ := setupServiceTest(t)
		role := "owner"

		_, err := svc.Update(context.Background(), id.String(), user.UpdateUserRequest{Role: &role})

		assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	})
}

func TestUserService_ToggleStatus(t *testing.T) {
	svc, repo := setupServiceTest(t)
	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&user.User{ID: id, IsActive: true}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *user.User) error {
		assert.False(t, u.IsActive)
		return nil
	})

	assert.NoError(t, svc.ToggleStatus(context.Background(), id.String(), false))
}
