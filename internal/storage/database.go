// Package storage persists user accounts and live-call session records in
// sqlite.
package storage

import (
	"database/sql"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

var db *sql.DB

func Init(path string) error {
	var err error

	db, err = sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"username" TEXT NOT NULL UNIQUE,
			"password_hash" TEXT NOT NULL
	);`
	createRecordsTable := `
	CREATE TABLE IF NOT EXISTS session_records (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"user_id" INTEGER NOT NULL,
			"session_id" TEXT NOT NULL,
			"scenario_id" TEXT NOT NULL,
			"turns" INTEGER NOT NULL,
			"created_at" DATETIME NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id)
	)`

	if _, err := db.Exec(createUsersTable); err != nil {
		return err
	}
	if _, err := db.Exec(createRecordsTable); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("database initialized")
	return nil
}

func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
