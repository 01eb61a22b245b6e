package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteTarget struct {
	path string
	db   *sql.DB
}

func NewSQLiteTarget(path string) *SQLiteTarget {
	return &SQLiteTarget{path: path}
}

func (t *SQLiteTarget) Connect() error {
	db, err := sql.Open("sqlite3", t.path)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	t.db = db
	return nil
}

func (t *SQLiteTarget) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

func (t *SQLiteTarget) CreateTableIfNotExists(table string, cols []string) error {
	query := `SELECT name FROM sqlite_master WHERE type='table' AND name=?`
	var name string
	err := t.db.QueryRow(query, table).Scan(&name)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	columnDefs := make([]string, len(cols))
	for i, col := range cols {
		columnDefs[i] = col + " TEXT"
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(columnDefs, ", "))
	_, err = t.db.Exec(createSQL)
	return err
}

func (t *SQLiteTarget) TruncateTable(table string) error {
	_, err := t.db.Exec(fmt.Sprintf("DELETE FROM %s", table))
	return err
}

func (t *SQLiteTarget) InsertBatch(table string, cols []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := t.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = "?"
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]any, len(row))
		for i, val := range row {
			args[i] = val
		}
		if _, err := stmt.Exec(args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}
