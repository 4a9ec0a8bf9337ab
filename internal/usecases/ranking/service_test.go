package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/repository/mocks"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
)

func TestRankChangeService_PickLatestPeriod(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *mocks.MockRankChangeRepository)
		validate func(t *testing.T, period *domain.Period, err error)
	}{
		{
			name: "Retorna o período mais recente",
			setup: func(repo *mocks.MockRankChangeRepository) {
				repo.EXPECT().LatestPeriod(gomock.Any()).Return(&domain.Period{Current: "2024-06-03", Previous: "2024-05-27"}, nil)
			},
			validate: func(t *testing.T, period *domain.Period, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2024-06-03", period.Current)
			},
		},
		{
			name: "Banco vazio retorna ErrNoData",
			setup: func(repo *mocks.MockRankChangeRepository) {
				repo.EXPECT().LatestPeriod(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, period *domain.Period, err error) {
				assert.Nil(t, period)
				assert.ErrorIs(t, err, domain.ErrNoData)
			},
		},
		{
			name: "Erro do banco vira domínio indisponível",
			setup: func(repo *mocks.MockRankChangeRepository) {
				repo.EXPECT().LatestPeriod(gomock.Any()).Return(nil, errors.New("no such table: rank_changes"))
			},
			validate: func(t *testing.T, period *domain.Period, err error) {
				assert.Nil(t, period)
				assert.ErrorIs(t, err, domain.ErrDomainUnavailable)
				assert.Contains(t, err.Error(), "no such table")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRankChangeRepository(ctrl)
			tt.setup(repo)

			period, err := NewRankChangeService(repo).PickLatestPeriod(context.Background())

			tt.validate(t, period, err)
		})
	}
}

func TestRankChangeService_ListNewEntrants(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRankChangeRepository(ctrl)

	repo.EXPECT().
		ListByPeriod(gomock.Any(), "2024-06-03", domain.ChangeCategoryNewEntrant).
		Return([]domain.RankRecord{
			newEntrant(60, "B", "US", "iOS"),
			newEntrant(5, "A", "US", "iOS"),
		}, nil)

	records, err := NewRankChangeService(repo).ListNewEntrants(context.Background(), "2024-06-03", 50)

	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, names(records))
}

func TestRankChangeService_ListTopSurges(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRankChangeRepository(ctrl)

	repo.EXPECT().
		ListByPeriod(gomock.Any(), "2024-06-03", domain.ChangeCategorySurge).
		Return([]domain.RankRecord{
			surge(30, "X", "↑20"),
			surge(8, "Y", "↑5"),
			surge(12, "Z", "↑20"),
		}, nil)

	records, err := NewRankChangeService(repo).ListTopSurges(context.Background(), "2024-06-03", 10)

	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "X", "Y"}, names(records))
}

func TestRankChangeService_DedupeOnePerPartition(t *testing.T) {
	t.Run("Chave nula usa região, ranking e plataforma", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRankChangeRepository(ctrl)

		repo.EXPECT().ListAllByPeriod(gomock.Any(), "2024-06-03").Return([]domain.RankRecord{
			{Region: "US", Signal: "free", Platform: "iOS", CurrentRank: 3, EntityID: "b", DisplayName: "b"},
			{Region: "US", Signal: "free", Platform: "iOS", CurrentRank: 1, EntityID: "a", DisplayName: "a"},
			{Region: "US", Signal: "paid", Platform: "iOS", CurrentRank: 2, EntityID: "c", DisplayName: "c"},
		}, nil)

		records, err := NewRankChangeService(repo).DedupeOnePerPartition(context.Background(), "2024-06-03", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, names(records))
	})

	t.Run("Erro do banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRankChangeRepository(ctrl)

		repo.EXPECT().ListAllByPeriod(gomock.Any(), "2024-06-03").Return(nil, errors.New("database is locked"))

		_, err := NewRankChangeService(repo).DedupeOnePerPartition(context.Background(), "2024-06-03", domain.RegionSignalPlatform)

		assert.ErrorIs(t, err, domain.ErrDomainUnavailable)
	})
}
