package service

import (
	"context"
	"errors"
	"testing"

	"fitlog/internal/database"
	"fitlog/internal/model"
	"fitlog/internal/store"

	"github.com/stretchr/testify/require"
)

func restoreAuthenticate() {
	getUserByEmail = store.GetUserByEmail
}

func TestAuthenticate(t *testing.T) {
	t.Cleanup(restoreAuthenticate)
	hash, err := HashPassword("pw")
	require.NoError(t, err)

	// user not found
	getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
		return nil, store.ErrNotFound
	}
	_, err = Authenticate(context.Background(), &database.FakeDB{}, "a@b.c", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// wrong password
	getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
		return &model.User{ID: 1, Email: email, PasswordHash: hash}, nil
	}
	_, err = Authenticate(context.Background(), &database.FakeDB{}, "a@b.c", "other")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// success
	u, err := Authenticate(context.Background(), &database.FakeDB{}, "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
}

func TestAuthenticateSameErrorEitherWay(t *testing.T) {
	t.Cleanup(restoreAuthenticate)
	hash, _ := HashPassword("pw")

	getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
		return nil, errors.New("no rows")
	}
	_, errMissing := Authenticate(context.Background(), &database.FakeDB{}, "missing@b.c", "pw")

	getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
		return &model.User{PasswordHash: hash}, nil
	}
	_, errWrongPw := Authenticate(context.Background(), &database.FakeDB{}, "known@b.c", "bad")

	require.Equal(t, errMissing, errWrongPw)
}
