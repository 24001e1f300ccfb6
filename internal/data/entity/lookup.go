package entity

type Genre struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type MPA struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type Director struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
