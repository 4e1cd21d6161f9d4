package utils

import "testing"

// bcrypt round-trip：對的密碼過、錯的不過；比對失敗不是 error
func TestHashAndCheckPassword(t *testing.T) {
	for _, plain := range []string{"p@ss", "secret1", "非常長的密碼 with spaces 123!"} {
		hashed, err := HashPassword(plain)
		if err != nil {
			t.Fatalf("hash err: %v", err)
		}
		if hashed == plain {
			t.Fatalf("hash must not equal plaintext")
		}
		if !CheckPasswordHash(plain, hashed) {
			t.Fatalf("%q should match its own hash", plain)
		}
		if CheckPasswordHash(plain+"x", hashed) {
			t.Fatalf("different plaintext must not match")
		}
	}
}

// 同一個明碼兩次雜湊要不一樣（每次都有自己的鹽）
func TestHashPassword_RandomSalt(t *testing.T) {
	a, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}
	b, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same plaintext must differ")
	}
}
