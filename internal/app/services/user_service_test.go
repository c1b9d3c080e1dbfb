package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/pkg/auth"
)

func newUserServiceForTest(userRepo *fakeUserRepo, tokenRepo *fakeTokenRepo) *UserService {
	return NewUserService(userRepo, &fakeEnrollmentRepo{}, tokenRepo, auth.NewEncrypter("test-pepper"))
}

func TestListStudentsPaginated(t *testing.T) {
	var gotRole models.Role
	var gotOffset uint64
	var gotLimit int
	userRepo := &fakeUserRepo{
		listByRoleFn: func(ctx context.Context, role models.Role, offset uint64, limit int) ([]*models.User, error) {
			gotRole = role
			gotOffset = offset
			gotLimit = limit
			return []*models.User{{ID: 4, Name: "Ana", Surname: "Gómez", RoleID: models.RoleStudent}}, nil
		},
		countByRoleFn: func(ctx context.Context, role models.Role) (int64, error) {
			return 23, nil
		},
	}
	svc := newUserServiceForTest(userRepo, &fakeTokenRepo{})

	resp, err := svc.ListStudents(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, gotRole)
	assert.Equal(t, uint64(10), gotOffset)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, int64(23), resp.Pagination.TotalItems)

	items, ok := resp.Items.([]dto.UserResponse)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, int64(4), items[0].ID)
}

func TestUpdatePasswordRevokesSessions(t *testing.T) {
	var updated *models.User
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Name: "Ana", Surname: "Gómez", Password: "old-hash"}, nil
		},
		updateFn: func(ctx context.Context, user *models.User) error {
			updated = user
			return nil
		},
	}
	revokedFor := []int64{}
	tokenRepo := &fakeTokenRepo{
		revokeAllForUserFn: func(ctx context.Context, userID int64) error {
			revokedFor = append(revokedFor, userID)
			return nil
		},
	}
	svc := newUserServiceForTest(userRepo, tokenRepo)

	newPassword := "brand-new-secret"
	_, err := svc.Update(context.Background(), 7, &dto.UpdateUserRequest{
		Name:     "Ana",
		Surname:  "Gómez",
		Password: &newPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.NotEqual(t, "old-hash", updated.Password)
	assert.NotEqual(t, newPassword, updated.Password)
	assert.Equal(t, []int64{7}, revokedFor)
}

func TestUpdateWithoutPasswordKeepsSessions(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Name: "Ana", Surname: "Gómez", Password: "old-hash"}, nil
		},
	}
	tokenRepo := &fakeTokenRepo{
		revokeAllForUserFn: func(ctx context.Context, userID int64) error {
			t.Fatal("sessions must survive a plain profile update")
			return nil
		},
	}
	svc := newUserServiceForTest(userRepo, tokenRepo)

	user, err := svc.Update(context.Background(), 7, &dto.UpdateUserRequest{
		Name:    "Ana",
		Surname: "Vega",
	})
	require.NoError(t, err)
	assert.Equal(t, "old-hash", user.Password)
	assert.Equal(t, "Vega", user.Surname)
}
