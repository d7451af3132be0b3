package database

import (
	"database/sql"
	"fmt"
	"strings"

	"feedback/internal/database/migrations"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

type Database struct {
	DBConn *sql.DB
}

// Querier покрывает *sql.DB и *sql.Tx, чтобы сервисы могли работать
// как напрямую с базой, так и внутри транзакции обработчика.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func NewDatabase(dbPath string) (*Database, error) {
	// Каскадное удаление зависит от включенных внешних ключей,
	// параметр в DSN применяется к каждому соединению пула
	if !strings.ContainsRune(dbPath, '?') {
		dbPath += "?_foreign_keys=on"
	}

	dbconn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %v", err)
	}

	if err := dbconn.Ping(); err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %v", err)
	}

	database := &Database{DBConn: dbconn}

	if err := database.runMigrations(); err != nil {
		return nil, fmt.Errorf("ошибка выполнения миграций: %v", err)
	}

	return database, nil
}

func (d *Database) runMigrations() error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("ошибка установки диалекта goose: %v", err)
	}

	return goose.Up(d.DBConn, ".")
}

// Begin открывает транзакцию; обработчик сам решает, когда коммитить.
func (d *Database) Begin() (*sql.Tx, error) {
	return d.DBConn.Begin()
}

func (d *Database) Close() error {
	if d.DBConn != nil {
		return d.DBConn.Close()
	}
	return nil
}

func (d *Database) Ping() error {
	return d.DBConn.Ping()
}
