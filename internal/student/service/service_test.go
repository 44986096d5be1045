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
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListStudents(ctx context.Context) ([]studentModel.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]studentModel.Student), args.Error(1)
}

func (m *mockAPI) CreateStudent(ctx context.Context, req studentModel.CreateStudentRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAPI) DeleteStudent(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setup() (*mockAPI, Service) {
	api := new(mockAPI)
	return api, New(api, zap.NewNop().Sugar())
}

func TestService_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api, svc := setup()
		api.On("ListStudents", mock.Anything).Return([]studentModel.Student{{ID: 1, Name: "Asha"}}, nil)

		students, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.Len(t, students, 1)
	})

	t.Run("api error", func(t *testing.T) {
		api, svc := setup()
		api.On("ListStudents", mock.Anything).Return(nil, errors.New("down"))

		students, err := svc.List(context.Background())

		assert.Error(t, err)
		assert.Nil(t, students)
	})
}

func TestService_Register(t *testing.T) {
	t.Run("normalized request is sent", func(t *testing.T) {
		api, svc := setup()
		api.On("CreateStudent", mock.Anything, studentModel.CreateStudentRequest{
			Name: "Asha", RollNumber: "21CS001", Cricket: true,
		}).Return(nil)

		err := svc.Register(context.Background(), studentModel.CreateStudentRequest{
			Name: " Asha ", RollNumber: "21CS001 ", Cricket: true,
		})

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("blank name is rejected before the api", func(t *testing.T) {
		api, svc := setup()

		err := svc.Register(context.Background(), studentModel.CreateStudentRequest{Name: "   ", RollNumber: "1"})

		assert.ErrorIs(t, err, studentModel.ErrNameRequired)
		api.AssertNotCalled(t, "CreateStudent", mock.Anything, mock.Anything)
	})

	t.Run("api error is returned", func(t *testing.T) {
		api, svc := setup()
		apiErr := errors.New("duplicate roll number")
		api.On("CreateStudent", mock.Anything, mock.Anything).Return(apiErr)

		err := svc.Register(context.Background(), studentModel.CreateStudentRequest{Name: "Asha", RollNumber: "1"})

		assert.ErrorIs(t, err, apiErr)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api, svc := setup()
		api.On("DeleteStudent", mock.Anything, int64(4)).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), 4))
		api.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		api, svc := setup()

		assert.ErrorIs(t, svc.Delete(context.Background(), 0), studentModel.ErrInvalidStudentID)
		api.AssertNotCalled(t, "DeleteStudent", mock.Anything, mock.Anything)
	})
}
