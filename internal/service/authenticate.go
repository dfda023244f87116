// File: internal/service/authenticate.go
package service

import (
	"context"
	"errors"

	"fitlog/internal/database"
	"fitlog/internal/model"
	"fitlog/internal/store"
)

// ErrInvalidCredentials 查無此 Email 與密碼不符都回傳同一錯誤，
// 避免洩漏哪些 Email 已註冊。
var ErrInvalidCredentials = errors.New("invalid email or password")

var getUserByEmail = store.GetUserByEmail

// Authenticate 以 Email 撈使用者並比對 bcrypt 密碼。
func Authenticate(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	user, err := getUserByEmail(ctx, db, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
