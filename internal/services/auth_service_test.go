package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/timeclock-api/internal/models"
	"github.com/yukikurage/timeclock-api/internal/repository"
	"github.com/yukikurage/timeclock-api/internal/testutil"
)

func TestAuthService_Login(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	testutil.CreateUser(t, db, "boss", "admin-pw", models.RoleAdmin)
	testutil.CreateUser(t, db, "bob", "worker-pw", models.RoleWorker)

	tests := []struct {
		name     string
		username string
		password string
		wantRole models.UserRole
		wantErr  error
	}{
		{name: "admin", username: "boss", password: "admin-pw", wantRole: models.RoleAdmin},
		{name: "worker", username: "bob", password: "worker-pw", wantRole: models.RoleWorker},
		{name: "wrong password", username: "bob", password: "admin-pw", wantErr: ErrInvalidPassword},
		{name: "unknown user", username: "ghost", password: "x", wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(ctx, LoginInput{Username: tt.username, Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, user)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.username, user.Username)
			require.Equal(t, tt.wantRole, user.Role)
		})
	}
}

func TestAuthService_GetUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	bob := testutil.CreateUser(t, db, "bob", "pw", models.RoleWorker)

	got, err := svc.GetUser(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Equal(t, "bob", got.Username)

	_, err = svc.GetUser(context.Background(), 999)
	require.ErrorIs(t, err, ErrUserNotFound)
}
