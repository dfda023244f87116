// Package forms holds the page form models and turns validator failures
// into per-field messages the templates can render inline.
package forms

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type RegisterForm struct {
	Username  string `form:"username" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required"`
	Password2 string `form:"password2" validate:"required,eqfield=Password"`
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type WorkoutForm struct {
	Date      string `form:"date" validate:"required"`
	StartTime string `form:"start_time" validate:"required"`
	Duration  string `form:"duration" validate:"required"`
	Notes     string `form:"notes"`
}

// FieldErrors 將 validator 錯誤攤平成 欄位名稱 → 訊息。
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["Form"] = "Invalid form data."
		return out
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "This field is required."
		case "email":
			out[fe.Field()] = "Enter a valid email address."
		case "eqfield":
			out[fe.Field()] = "Passwords must match."
		default:
			out[fe.Field()] = "Invalid value."
		}
	}
	return out
}
