package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt.DefaultCost = 10，跟原系統的 saltRounds 一樣
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// 比對失敗不是 error，就是單純的 false
func CheckPasswordHash(password, hashedPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
