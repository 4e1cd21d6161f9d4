package client

import (
	"context"
	"regexp"
)

// 表單狀態機：idle → validating → submitting → succeeded / failed
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

// 前端自己的 email 檢查（advisory；server 那邊還會再驗一次，以 server 為準）
var clientEmailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)

/* ---------------- Register ---------------- */

type RegisterForm struct {
	api *Client

	FullName        string
	Email           string
	Password        string
	ConfirmPassword string

	FieldErrors map[string]string // 欄位名 → 紅字
	Message     string            // 表單層級的錯誤訊息
	State       State
}

func NewRegisterForm(api *Client) *RegisterForm {
	return &RegisterForm{api: api, FieldErrors: map[string]string{}}
}

// SetField 填值，順便清掉該欄位的紅字（使用者開始改就不要再罵他）
func (f *RegisterForm) SetField(name, value string) {
	switch name {
	case "fullName":
		f.FullName = value
	case "email":
		f.Email = value
	case "password":
		f.Password = value
	case "confirmPassword":
		f.ConfirmPassword = value
	}
	delete(f.FieldErrors, name)
}

func (f *RegisterForm) validate() map[string]string {
	errs := map[string]string{}
	if f.FullName == "" {
		errs["fullName"] = "Name is required"
	}
	if f.Email == "" {
		errs["email"] = "Email is required"
	} else if !clientEmailRegex.MatchString(f.Email) {
		errs["email"] = "Email is invalid"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	return errs
}

// Submit 跑完整個狀態機；true = 成功，呼叫端可以導頁離開
func (f *RegisterForm) Submit(ctx context.Context) bool {
	f.State = StateValidating
	f.Message = ""

	if errs := f.validate(); len(errs) > 0 {
		f.FieldErrors = errs
		f.State = StateFailed
		return false
	}

	f.State = StateSubmitting
	if err := f.api.Register(ctx, f.FullName, f.Email, f.Password); err != nil {
		switch err.Kind {
		case ErrServerRejected:
			f.Message = err.Message
			if f.Message == "" {
				f.Message = "Registration failed. Please try again."
			}
		case ErrNoResponse:
			f.Message = "No response from server. Please try again."
		default:
			f.Message = "Error creating account. Please try again."
		}
		f.State = StateFailed
		return false
	}

	f.State = StateSucceeded
	return true
}

/* ---------------- Login ---------------- */

type LoginForm struct {
	api *Client

	Email    string
	Password string

	FieldErrors map[string]string
	Message     string
	State       State

	// 登入成功後 server 回的使用者資料（外面的 auth context 拿去用）
	User UserInfo
}

func NewLoginForm(api *Client) *LoginForm {
	return &LoginForm{api: api, FieldErrors: map[string]string{}}
}

func (f *LoginForm) SetField(name, value string) {
	switch name {
	case "email":
		f.Email = value
	case "password":
		f.Password = value
	}
	delete(f.FieldErrors, name)
}

func (f *LoginForm) validate() map[string]string {
	errs := map[string]string{}
	if f.Email == "" {
		errs["email"] = "Email is required"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

func (f *LoginForm) Submit(ctx context.Context) bool {
	f.State = StateValidating
	f.Message = ""

	if errs := f.validate(); len(errs) > 0 {
		f.FieldErrors = errs
		f.State = StateFailed
		return false
	}

	f.State = StateSubmitting
	user, err := f.api.Login(ctx, f.Email, f.Password)
	if err != nil {
		switch err.Kind {
		case ErrServerRejected:
			f.Message = err.Message
			if f.Message == "" {
				f.Message = "Login failed. Please try again."
			}
		case ErrNoResponse:
			f.Message = "No response from server. Please try again."
		default:
			f.Message = "Error logging in. Please try again."
		}
		f.State = StateFailed
		return false
	}

	f.User = user
	f.State = StateSucceeded
	return true
}
