// Package models defines the persisted domain records.
package models

// User is a registered trainee account.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
