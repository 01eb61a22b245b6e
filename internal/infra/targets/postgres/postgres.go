package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
)

type PostgresTarget struct {
	dsn    string
	schema string
	db     *sql.DB
}

func NewPostgresTarget(dsn, schema string) *PostgresTarget {
	if schema == "" {
		schema = "public"
	}
	return &PostgresTarget{
		dsn:    dsn,
		schema: schema,
	}
}

func (t *PostgresTarget) Connect() error {
	db, err := sql.Open("postgres", t.dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	t.db = db
	return nil
}

func (t *PostgresTarget) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

func (t *PostgresTarget) CreateTableIfNotExists(table string, cols []string) error {
	var exists bool
	query := `SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = $1 AND table_name = $2
	)`
	err := t.db.QueryRow(query, t.schema, table).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	columnDefs := make([]string, len(cols))
	for i, col := range cols {
		columnDefs[i] = col + " TEXT"
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s.%s (%s)",
		t.schema, table, strings.Join(columnDefs, ", "))
	_, err = t.db.Exec(createSQL)
	return err
}

func (t *PostgresTarget) TruncateTable(table string) error {
	_, err := t.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s.%s", t.schema, table))
	return err
}

func (t *PostgresTarget) InsertBatch(table string, cols []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	placeholders := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(cols))

	for i, row := range rows {
		rowPlaceholders := make([]string, len(cols))
		for j := range cols {
			rowPlaceholders[j] = fmt.Sprintf("$%d", i*len(cols)+j+1)
			args = append(args, row[j])
		}
		placeholders[i] = "(" + strings.Join(rowPlaceholders, ", ") + ")"
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES %s",
		t.schema, table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	_, err := t.db.Exec(insertSQL, args...)
	return err
}
