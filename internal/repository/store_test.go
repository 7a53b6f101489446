package repository_test

import (
	"context"
	"testing"
	"time"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database/models"
	apperrors "dealflow-backend/internal/errors"
	"dealflow-backend/internal/mocks"
	"dealflow-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInvestorRepository_StoreCalls(t *testing.T) {
	ctx := context.Background()

	t.Run("two rapid lists read the store once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		repo := repository.NewInvestorRepository(store, cache.New(time.Minute, nil))

		store.EXPECT().
			Read(gomock.Any(), "INVESTORS", "A2:F").
			Return([][]string{{"inv_1", "North"}, {}, {"inv_2", "South", "seed"}}, nil).
			Times(1)

		first, err := repo.List(ctx)
		require.NoError(t, err)
		second, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, first, 2)
		assert.Equal(t, first, second)
	})

	t.Run("update of row k overwrites only row k", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		repo := repository.NewInvestorRepository(store, cache.New(time.Minute, nil))

		investor := &models.Investor{InvestorID: "inv_2", InvestorName: "South Capital"}
		gomock.InOrder(
			store.EXPECT().
				Read(gomock.Any(), "INVESTORS", "A:A").
				Return([][]string{{"investor_id"}, {"inv_1"}, {"inv_2"}, {"inv_3"}}, nil),
			store.EXPECT().
				Update(gomock.Any(), "INVESTORS", "A3:F3", [][]string{investor.Row()}).
				Return(nil),
		)

		require.NoError(t, repo.Update(ctx, investor))
	})

	t.Run("update of an unknown id never writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		repo := repository.NewInvestorRepository(store, cache.New(time.Minute, nil))

		store.EXPECT().
			Read(gomock.Any(), "INVESTORS", "A:A").
			Return([][]string{{"investor_id"}, {"inv_1"}}, nil)

		err := repo.Update(ctx, &models.Investor{InvestorID: "does-not-exist"})
		assert.True(t, apperrors.IsNotFound(err))
	})
}
