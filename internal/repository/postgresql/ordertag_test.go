package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/merchkit/ordertags/internal/db/mocks"
	"github.com/merchkit/ordertags/internal/repository"
	"github.com/merchkit/ordertags/internal/repository/postgresql"
)

func TestOrderTagRepo_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(10)), gomock.Eq(int64(7))).
			Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.Insert(ctx, 10, 7)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Insert(ctx, 10, 7)
		assert.Equal(t, expectedErr, err)
	})
}

func TestOrderTagRepo_InsertTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(10)), gomock.Eq(int64(7))).
			Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.InsertTx(ctx, mockTx, 10, 7)
		assert.NoError(t, err)
	})
}

func TestOrderTagRepo_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("association removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(10)), gomock.Eq(int64(7))).
			Return(pgconn.CommandTag("DELETE 1"), nil)

		removed, err := repo.Delete(ctx, 10, 7)
		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("nothing to remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("DELETE 0"), nil)

		removed, err := repo.Delete(ctx, 10, 7)
		assert.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		removed, err := repo.Delete(ctx, 10, 7)
		assert.Equal(t, expectedErr, err)
		assert.False(t, removed)
	})
}

func TestOrderTagRepo_DeleteNotInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps the given tag ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		var gotQuery string
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(10)), gomock.Eq([]int64{2, 3})).
			DoAndReturn(func(_ context.Context, query string, _ ...interface{}) (pgconn.CommandTag, error) {
				gotQuery = query
				return pgconn.CommandTag("DELETE 1"), nil
			})

		err := repo.DeleteNotInTx(ctx, mockTx, 10, []int64{2, 3})
		require.NoError(t, err)
		assert.Contains(t, gotQuery, "tag_id != ALL($2)")
	})

	t.Run("empty keep set clears the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		var gotQuery string
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(10))).
			DoAndReturn(func(_ context.Context, query string, _ ...interface{}) (pgconn.CommandTag, error) {
				gotQuery = query
				return pgconn.CommandTag("DELETE 2"), nil
			})

		err := repo.DeleteNotInTx(ctx, mockTx, 10, nil)
		require.NoError(t, err)
		assert.NotContains(t, gotQuery, "tag_id")
	})
}

func TestOrderTagRepo_ListByOrderTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		links := []*repository.OrderTag{
			{OrderID: 10, TagID: 1},
			{OrderID: 10, TagID: 2},
		}

		mockTx.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(10))).
			DoAndReturn(func(_ context.Context, dest *[]*repository.OrderTag, _ string, _ ...interface{}) error {
				*dest = links
				return nil
			})

		got, err := repo.ListByOrderTx(ctx, mockTx, 10)
		require.NoError(t, err)
		assert.Equal(t, links, got)
	})
}

func TestOrderTagRepo_TagNames(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(10))).
			DoAndReturn(func(_ context.Context, dest *[]string, _ string, _ ...interface{}) error {
				*dest = []string{"new", "sale"}
				return nil
			})

		names, err := repo.TagNames(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"new", "sale"}, names)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		names, err := repo.TagNames(ctx, 10)
		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, names)
	})
}

func TestOrderTagRepo_ListAllNames(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderTagRepo(mockDB)

		rows := []*repository.OrderTagName{
			{OrderID: 10, Name: "sale"},
			{OrderID: 11, Name: "vip"},
		}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest *[]*repository.OrderTagName, _ string, _ ...interface{}) error {
				*dest = rows
				return nil
			})

		got, err := repo.ListAllNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})
}
