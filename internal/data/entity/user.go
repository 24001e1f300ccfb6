package entity

import (
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	Login        string    `db:"login"`
	Name         string    `db:"name"`
	PasswordHash *string   `db:"password"`
	Birthday     time.Time `db:"birthday"`
}
