// assets/embed.go
//
// Files compiled into the binary:
//   - words.txt:     default word corpus, used when no WORDS_FILE is configured.
//   - migrations/:   SQL applied to the optional results database.
package assets

import "embed"

//go:embed words.txt migrations/*.sql
var FS embed.FS

const (
	// WordsFile is the embedded corpus inside FS.
	WordsFile = "words.txt"
	// MigrationsDir is the directory inside FS holding *.sql migrations.
	MigrationsDir = "migrations"
)
