package gym_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/gym"
	gymerrors "github.com/SirTuppy/route-setter-scheduler/internal/gym/errors"
	gymMock "github.com/SirTuppy/route-setter-scheduler/internal/gym/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   gym.Service
	repo      *gymMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()
	repo := gymMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   gym.NewService(db, repo, rdb),
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(s string) *string { return &s }

func TestGymService_List(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.repo.EXPECT().FindAll(gomock.Any(), false).Return([]gym.Gym{
		{ID: "denton", Name: "Denton", Active: true},
		{ID: gym.VacationGymID, Name: "Vacation", Active: true},
		{ID: "plano", Name: "Plano", Active: true, PairedGymID: strPtr("planoTC")},
	}, nil)

	resp, err := deps.service.List(context.Background(), false)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "denton", resp[0].ID)
	assert.Equal(t, "planoTC", *resp[1].PairedGymID)
}

func TestGymService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), "plano").Return(&gym.Gym{ID: "plano"}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, g *gym.Gym) error {
			assert.Equal(t, "planoTC", g.ID)
			assert.True(t, g.Active)
			return nil
		})

		resp, err := deps.service.Create(ctx, gym.CreateGymRequest{
			ID:          "planoTC",
			Name:        "Plano Training Center",
			PairedGymID: strPtr("plano"),
		})

		require.NoError(t, err)
		assert.Equal(t, "planoTC", resp.ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative reserved id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, gym.CreateGymRequest{ID: gym.VacationGymID, Name: "Vacation"})

		assert.ErrorIs(t, err, gymerrors.ErrReservedGymID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative self pairing", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		_, err := deps.service.Create(ctx, gym.CreateGymRequest{ID: "hill", Name: "Hill", PairedGymID: strPtr("hill")})

		assert.ErrorIs(t, err, gymerrors.ErrSelfPairing)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown paired gym", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), "nowhere").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, gym.CreateGymRequest{ID: "hill", Name: "Hill", PairedGymID: strPtr("nowhere")})

		assert.ErrorIs(t, err, gymerrors.ErrPairedGymNotFound)
	})

	t.Run("negative duplicate id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "gyms_pkey"})

		_, err := deps.service.Create(ctx, gym.CreateGymRequest{ID: "denton", Name: "Denton"})

		assert.ErrorIs(t, err, gymerrors.ErrGymAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestGymService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	inactive := false
	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(gomock.Any(), "hill").Return(&gym.Gym{ID: "hill", Name: "Hill", Active: true}, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, g *gym.Gym) error {
		assert.False(t, g.Active)
		assert.Equal(t, "The Hill", g.Name)
		return nil
	})

	resp, err := deps.service.Update(context.Background(), "hill", gym.UpdateGymRequest{Name: "The Hill", Active: &inactive})

	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestGymService_Catalog(t *testing.T) {
	ctx := context.Background()
	walls := []gym.Wall{
		{ID: uuid.New(), GymID: "design", Name: "Cardinal", WallType: gym.WallTypeRope, Difficulty: 1, ClimbsPerSetter: 2, Active: true},
		{ID: uuid.New(), GymID: "design", Name: "A1", WallType: gym.WallTypeBoulder, Difficulty: 2, ClimbsPerSetter: 5, Active: true},
	}
	data, _ := json.Marshal(walls)

	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(gym.WallCatalogKey("design")).SetVal(string(data))

		got, err := deps.service.Catalog(ctx, "design")

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Cardinal", got[0].Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(gym.WallCatalogKey("design")).SetErr(redis.Nil)
		deps.repo.EXPECT().FindWallsByGym(gomock.Any(), "design", true).Return(walls, nil)
		deps.redismock.Regexp().ExpectSet(gym.WallCatalogKey("design"), `.*`, time.Hour).SetVal("OK")

		got, err := deps.service.Catalog(ctx, "design")

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("negative repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(gym.WallCatalogKey("design")).SetErr(redis.Nil)
		deps.repo.EXPECT().FindWallsByGym(gomock.Any(), "design", true).Return(nil, sql.ErrConnDone)

		_, err := deps.service.Catalog(ctx, "design")

		assert.Error(t, err)
	})
}

func TestGymService_CreateWall(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.repo.EXPECT().FindByID(gomock.Any(), "design").Return(&gym.Gym{ID: "design"}, nil)
	deps.repo.EXPECT().CreateWall(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, w *gym.Wall) error {
		assert.Equal(t, "design", w.GymID)
		assert.NotEqual(t, uuid.Nil, w.ID)
		assert.True(t, w.Active)
		return nil
	})
	deps.redismock.ExpectDel(gym.WallCatalogKey("design")).SetVal(1)

	resp, err := deps.service.CreateWall(context.Background(), "design", gym.WallRequest{
		Name:            "Easter Island",
		WallType:        gym.WallTypeRope,
		Difficulty:      3,
		ClimbsPerSetter: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "Easter Island", resp.Name)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestGymService_UpdateWall(t *testing.T) {
	t.Run("negative wall not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		deps.repo.EXPECT().FindWallByID(gomock.Any(), "design", id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateWall(context.Background(), "design", id, gym.WallRequest{Name: "A1", WallType: gym.WallTypeBoulder})

		assert.ErrorIs(t, err, gymerrors.ErrWallNotFound)
	})

	t.Run("negative duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().FindWallByID(gomock.Any(), "design", id.String()).
			Return(&gym.Wall{ID: id, GymID: "design", Name: "A3"}, nil)
		deps.repo.EXPECT().UpdateWall(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_walls_gym_name"})

		_, err := deps.service.UpdateWall(context.Background(), "design", id.String(), gym.WallRequest{Name: "A1", WallType: gym.WallTypeBoulder})

		assert.ErrorIs(t, err, gymerrors.ErrWallAlreadyExists)
	})
}

func TestGymService_ExportCSV(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.repo.EXPECT().FindAll(gomock.Any(), true).Return([]gym.Gym{
		{ID: "denton", Name: "Denton", Location: "Denton, TX", Active: true},
		{ID: "planoTC", Name: "Plano TC", PairedGymID: strPtr("plano")},
	}, nil)

	data, err := deps.service.ExportCSV(context.Background())

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,location,paired_gym_id,active", lines[0])
	assert.Equal(t, `denton,Denton,"Denton, TX",,true`, lines[1])
	assert.Equal(t, "planoTC,Plano TC,,plano,false", lines[2])
}
