package models

import "database/sql"

type sqlUserRepo struct{ db *sql.DB }

func NewSQLUserRepository(db *sql.DB) UserRepository { return &sqlUserRepo{db} }

func (r *sqlUserRepo) FindByEmail(email string) (User, error) {
	var u User
	err := r.db.QueryRow(
		`SELECT id, full_name, email, password FROM users WHERE email=$1`, email).
		Scan(&u.ID, &u.FullName, &u.Email, &u.Password)
	return u, err
}

// Insert 只負責存，雜湊在呼叫端先做好（repo 不碰明碼）
func (r *sqlUserRepo) Insert(u *User) error {
	return r.db.QueryRow(
		`INSERT INTO users(full_name, email, password) VALUES ($1,$2,$3) RETURNING id`,
		u.FullName, u.Email, u.Password).
		Scan(&u.ID)
}
