package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open 回傳一個 pooled 的 *sql.DB，由 main 注入給各 repository
// （不再用全域單一連線，每個 handler 拿到的是同一個 pool）
func Open(dsn string, maxOpen, maxIdle int) (*sql.DB, error) {
	sqldb, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	sqldb.SetMaxOpenConns(maxOpen)
	sqldb.SetMaxIdleConns(maxIdle)

	if err := createTables(sqldb); err != nil {
		return nil, err
	}
	return sqldb, nil
}

func createTables(sqldb *sql.DB) error {
	// email 的 UNIQUE 才是重複註冊的真正防線，
	// handler 的 pre-check 只是為了能回 409 + 友善訊息
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);`
	if _, err := sqldb.Exec(createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	// title 故意不加 UNIQUE：重複檢查走 pre-check（行為沿用原系統，
	// 同時間兩個相同 title 的請求有機會都通過，屬已知且接受的 race）
	createEventsTable := `
	CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		date DATE NOT NULL,
		time TIME NOT NULL,
		location TEXT NOT NULL,
		attendees TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		status TEXT NOT NULL
	);`
	if _, err := sqldb.Exec(createEventsTable); err != nil {
		return fmt.Errorf("create events table: %w", err)
	}
	return nil
}
