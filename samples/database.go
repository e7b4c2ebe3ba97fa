package samples

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/demo"
)

func databaseDemos() []demo.Demo {
	return []demo.Demo{
		{
			Name:     "row-not-found",
			Topic:    "database",
			Synopsis: "selecting a book that was never inserted",
			Expect:   faultbook.ClassNotFound,
			Run: func(ctx context.Context) error {
				db, err := openCatalogDB(ctx)
				if err != nil {
					return err
				}
				defer db.Close()

				var author string
				row := db.QueryRowContext(ctx,
					`SELECT author FROM books WHERE title = ?`, "The Wind-Up Bird Chronicle")
				return row.Scan(&author)
			},
		},
		{
			Name:     "duplicate-key",
			Topic:    "database",
			Synopsis: "inserting the same title twice; the driver error carries no class and is wrapped by hand",
			Expect:   faultbook.ClassAlreadyExists,
			Run: func(ctx context.Context) error {
				db, err := openCatalogDB(ctx)
				if err != nil {
					return err
				}
				defer db.Close()

				insert := `INSERT INTO books (title, author, page_count) VALUES (?, ?, ?)`
				if _, err := db.ExecContext(ctx, insert, "The Stand", "Stephen King", 1153); err != nil {
					return faultbook.Wrap(err, "insert book", faultbook.CategoryDatabase)
				}
				_, err = db.ExecContext(ctx, insert, "The Stand", "Stephen King", 1153)
				return faultbook.Wrap(err, "insert duplicate book",
					faultbook.ClassAlreadyExists, faultbook.CategoryDatabase,
					"title", "The Stand")
			},
		},
	}
}

// openCatalogDB opens an in-memory catalog with the books schema.
func openCatalogDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, faultbook.DatabaseError.Wrap(err, "open")
	}
	schema := `CREATE TABLE books (
		title TEXT PRIMARY KEY,
		author TEXT NOT NULL,
		page_count INTEGER NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, faultbook.DatabaseError.Wrap(err, "create schema")
	}
	return db, nil
}
