package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/apiclient"
	bracketModel "github.com/festy23/sportsday/internal/bracket/model"
	teamModel "github.com/festy23/sportsday/internal/team/model"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) GetBracket(ctx context.Context, sport string) ([]bracketModel.Match, error) {
	args := m.Called(ctx, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bracketModel.Match), args.Error(1)
}

func (m *mockAPI) GenerateBracket(ctx context.Context, sport string) error {
	return m.Called(ctx, sport).Error(0)
}

func (m *mockAPI) SetMatchWinner(ctx context.Context, matchID, winnerID int64) error {
	return m.Called(ctx, matchID, winnerID).Error(0)
}

func (m *mockAPI) ResetBracket(ctx context.Context, sport string) error {
	return m.Called(ctx, sport).Error(0)
}

func (m *mockAPI) ListTeams(ctx context.Context, sport string) ([]teamModel.Team, error) {
	args := m.Called(ctx, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]teamModel.Team), args.Error(1)
}

func setup() (*mockAPI, Service) {
	api := new(mockAPI)
	return api, New(api, zap.NewNop().Sugar())
}

func teams(n int) []teamModel.Team {
	out := make([]teamModel.Team, n)
	for i := range out {
		out[i] = teamModel.Team{ID: int64(i + 1)}
	}
	return out
}

func TestService_Get(t *testing.T) {
	t.Run("keeps api order", func(t *testing.T) {
		api, svc := setup()
		matches := []bracketModel.Match{{ID: 3, Round: 2}, {ID: 1, Round: 1}}
		api.On("GetBracket", mock.Anything, "cricket").Return(matches, nil)

		got, err := svc.Get(context.Background(), "cricket")

		require.NoError(t, err)
		assert.Equal(t, matches, got)
	})

	t.Run("missing bracket is empty", func(t *testing.T) {
		api, svc := setup()
		api.On("GetBracket", mock.Anything, "cricket").
			Return(nil, &apiclient.APIError{StatusCode: http.StatusNotFound})

		got, err := svc.Get(context.Background(), "cricket")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("transport error", func(t *testing.T) {
		api, svc := setup()
		api.On("GetBracket", mock.Anything, "cricket").Return(nil, apiclient.ErrUnavailable)

		_, err := svc.Get(context.Background(), "cricket")

		assert.ErrorIs(t, err, apiclient.ErrUnavailable)
	})

	t.Run("unknown sport", func(t *testing.T) {
		_, svc := setup()

		_, err := svc.Get(context.Background(), "chess")

		assert.ErrorIs(t, err, bracketModel.ErrUnknownSport)
	})
}

func TestService_Generate(t *testing.T) {
	tests := []struct {
		name       string
		teamCount  int
		wantErr    error
		expectCall bool
	}{
		{name: "no teams", teamCount: 0, wantErr: bracketModel.ErrNotEnoughTeams},
		{name: "one team", teamCount: 1, wantErr: bracketModel.ErrNotEnoughTeams},
		{name: "two teams", teamCount: 2, expectCall: true},
		{name: "five teams", teamCount: 5, expectCall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, svc := setup()
			api.On("ListTeams", mock.Anything, "relay").Return(teams(tt.teamCount), nil)
			if tt.expectCall {
				api.On("GenerateBracket", mock.Anything, "relay").Return(nil)
			}

			err := svc.Generate(context.Background(), "relay")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				api.AssertNotCalled(t, "GenerateBracket", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			api.AssertExpectations(t)
		})
	}

	t.Run("team listing fails", func(t *testing.T) {
		api, svc := setup()
		api.On("ListTeams", mock.Anything, "relay").Return(nil, apiclient.ErrUnavailable)

		err := svc.Generate(context.Background(), "relay")

		assert.ErrorIs(t, err, apiclient.ErrUnavailable)
		api.AssertNotCalled(t, "GenerateBracket", mock.Anything, mock.Anything)
	})

	t.Run("api rejects", func(t *testing.T) {
		api, svc := setup()
		api.On("ListTeams", mock.Anything, "relay").Return(teams(2), nil)
		api.On("GenerateBracket", mock.Anything, "relay").Return(errors.New("bracket exists"))

		assert.Error(t, svc.Generate(context.Background(), "relay"))
	})
}

func TestService_SetWinner(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api, svc := setup()
		api.On("SetMatchWinner", mock.Anything, int64(11), int64(4)).Return(nil)

		require.NoError(t, svc.SetWinner(context.Background(), 11, 4))
		api.AssertExpectations(t)
	})

	t.Run("invalid ids", func(t *testing.T) {
		api, svc := setup()

		assert.ErrorIs(t, svc.SetWinner(context.Background(), 0, 4), bracketModel.ErrInvalidMatchID)
		assert.ErrorIs(t, svc.SetWinner(context.Background(), 11, 0), bracketModel.ErrInvalidWinner)
		api.AssertNotCalled(t, "SetMatchWinner", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Reset(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api, svc := setup()
		api.On("ResetBracket", mock.Anything, "tug_of_war").Return(nil)

		require.NoError(t, svc.Reset(context.Background(), "tug_of_war"))
	})

	t.Run("api error", func(t *testing.T) {
		api, svc := setup()
		api.On("ResetBracket", mock.Anything, "tug_of_war").Return(apiclient.ErrUnavailable)

		assert.Error(t, svc.Reset(context.Background(), "tug_of_war"))
	})
}

func TestService_TeamCount(t *testing.T) {
	api, svc := setup()
	api.On("ListTeams", mock.Anything, "cricket").Return(teams(3), nil)

	n, err := svc.TeamCount(context.Background(), "cricket")

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
