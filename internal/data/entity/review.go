package entity

type Review struct {
	ID         int64  `db:"id"`
	Content    string `db:"content"`
	IsPositive bool   `db:"is_positive"`
	UserID     int64  `db:"user_id"`
	FilmID     int64  `db:"film_id"`
	Useful     int    `db:"useful"` // likes minus dislikes
}
