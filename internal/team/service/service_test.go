package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	studentModel "github.com/festy23/sportsday/internal/student/model"
	teamModel "github.com/festy23/sportsday/internal/team/model"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListTeams(ctx context.Context, sport string) ([]teamModel.Team, error) {
	args := m.Called(ctx, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]teamModel.Team), args.Error(1)
}

func (m *mockAPI) ListStudentsBySport(ctx context.Context, sport string) ([]studentModel.Student, error) {
	args := m.Called(ctx, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]studentModel.Student), args.Error(1)
}

func (m *mockAPI) CreateTeam(ctx context.Context, req teamModel.CreateTeamRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAPI) DeleteTeam(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setup() (*mockAPI, Service) {
	api := new(mockAPI)
	return api, New(api, zap.NewNop().Sugar())
}

func TestService_ListTeams(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api, svc := setup()
		api.On("ListTeams", mock.Anything, "relay").Return([]teamModel.Team{{ID: 1, TeamName: "Falcons"}}, nil)

		teams, err := svc.ListTeams(context.Background(), "relay")

		require.NoError(t, err)
		assert.Len(t, teams, 1)
	})

	t.Run("unknown sport", func(t *testing.T) {
		api, svc := setup()

		_, err := svc.ListTeams(context.Background(), "chess")

		assert.ErrorIs(t, err, teamModel.ErrUnknownSport)
		api.AssertNotCalled(t, "ListTeams", mock.Anything, mock.Anything)
	})
}

func TestService_ListAvailable(t *testing.T) {
	t.Run("maps students to roster entries", func(t *testing.T) {
		api, svc := setup()
		api.On("ListStudentsBySport", mock.Anything, "cricket").Return([]studentModel.Student{
			{ID: 3, Name: "Asha", RollNumber: "21CS001", Cricket: true, Email: "a@x"},
			{ID: 5, Name: "Ravi", RollNumber: "21CS002", Cricket: true},
		}, nil)

		roster, err := svc.ListAvailable(context.Background(), "cricket")

		require.NoError(t, err)
		assert.Equal(t, []teamModel.RosterStudent{
			{ID: 3, Name: "Asha", RollNumber: "21CS001"},
			{ID: 5, Name: "Ravi", RollNumber: "21CS002"},
		}, roster)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		api, svc := setup()
		api.On("ListStudentsBySport", mock.Anything, "relay").Return([]studentModel.Student{}, nil)

		roster, err := svc.ListAvailable(context.Background(), "relay")

		require.NoError(t, err)
		assert.NotNil(t, roster)
		assert.Empty(t, roster)
	})

	t.Run("api error", func(t *testing.T) {
		api, svc := setup()
		api.On("ListStudentsBySport", mock.Anything, "relay").Return(nil, errors.New("down"))

		_, err := svc.ListAvailable(context.Background(), "relay")

		assert.Error(t, err)
	})
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		sport   string
		form    teamModel.CreateTeamForm
		wantErr error
	}{
		{name: "no members", sport: "relay", form: teamModel.CreateTeamForm{TeamName: "Falcons"}, wantErr: teamModel.ErrEmptyMembers},
		{name: "blank name", sport: "relay", form: teamModel.CreateTeamForm{TeamName: "  ", Members: []int64{1}}, wantErr: teamModel.ErrInvalidTeamName},
		{name: "unknown sport", sport: "chess", form: teamModel.CreateTeamForm{TeamName: "A", Members: []int64{1}}, wantErr: teamModel.ErrUnknownSport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, svc := setup()

			err := svc.Create(context.Background(), tt.sport, tt.form)

			assert.ErrorIs(t, err, tt.wantErr)
			api.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
		})
	}

	t.Run("success", func(t *testing.T) {
		api, svc := setup()
		api.On("CreateTeam", mock.Anything, teamModel.CreateTeamRequest{
			TeamName: "Falcons", Sport: "relay", Members: []int64{1, 2},
		}).Return(nil)

		err := svc.Create(context.Background(), "relay", teamModel.CreateTeamForm{TeamName: " Falcons ", Members: []int64{1, 2}})

		require.NoError(t, err)
		api.AssertExpectations(t)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api, svc := setup()
		api.On("DeleteTeam", mock.Anything, int64(7)).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), 7))
	})

	t.Run("invalid id", func(t *testing.T) {
		_, svc := setup()
		assert.ErrorIs(t, svc.Delete(context.Background(), -1), teamModel.ErrInvalidTeamID)
	})
}
