package db

// DB is the database port handed to repositories. Conn exposes the
// underlying handle (a *gorm.DB here) without binding callers to it.
type DB interface {
	Conn() any
}
