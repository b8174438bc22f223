package service

import (
	"context"
	"testing"
	"time"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/model"
	"anoa.com/greencampus/internal/repository"
	"anoa.com/greencampus/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour), db
}

func TestLoginMatchesExactCredentials(t *testing.T) {
	svc, db := newAuthService(t)
	createUser(t, db, "admin", model.RoleAdmin)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin", Password: "admin123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleAdmin, resp.Role)
	assert.Equal(t, "/admin/dashboard", resp.RedirectTo)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, db := newAuthService(t)
	createUser(t, db, "admin", model.RoleAdmin)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin", Password: "Admin123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "ghost", Password: "whatever",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestRegisterCreatesStudent(t *testing.T) {
	svc, db := newAuthService(t)

	require.NoError(t, svc.Register(context.Background(), dto.RegisterRequest{
		Username: "newkid", Password: "secret1",
	}))

	var user model.User
	require.NoError(t, db.Where("username = ?", "newkid").First(&user).Error)
	assert.Equal(t, model.RoleStudent, user.Role)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "newkid", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "/student/dashboard", resp.RedirectTo)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc, db := newAuthService(t)
	createUser(t, db, "taken", model.RoleStudent)

	err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "taken", Password: "secret1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}
