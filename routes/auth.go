package routes

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventapi/models"
	"eventapi/utils"
)

/* --------------------- Auth --------------------- */

// POST /login
func (d *deps) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	if req.Email == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := d.users.FindByEmail(req.Email)
	if errors.Is(err, sql.ErrNoRows) {
		// 查無此人跟密碼錯用同一句話，不洩漏帳號存不存在
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		failInternal(c, "An error occurred during login. Please try again.", err)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		envelope: envelope{Success: true, Message: "Login successful"},
		User: userPayload{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
	})
}

// POST /register
func (d *deps) register(c *gin.Context) {
	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if !validEmail(req.Email) {
		fail(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	if len(req.Password) < 6 {
		fail(c, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	// pre-check 只為了回 409；同 email 同時註冊的 race 由 users.email 的 UNIQUE 擋
	_, err := d.users.FindByEmail(req.Email)
	if err == nil {
		fail(c, http.StatusConflict, "User already exists")
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		failInternal(c, "An error occurred during registration. Please try again.", err)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		failInternal(c, "An error occurred during registration. Please try again.", err)
		return
	}

	u := models.User{FullName: req.FullName, Email: req.Email, Password: hashed}
	if err := d.users.Insert(&u); err != nil {
		failInternal(c, "An error occurred during registration. Please try again.", err)
		return
	}

	c.JSON(http.StatusCreated, envelope{Success: true, Message: "User registered successfully"})
}
