package query

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Dialect captures the few places where the supported stores disagree:
// placeholder style, the shape of the page clause and LIKE case folding.
// Both page clauses bind offset before limit.
type Dialect struct {
	Name        string
	Placeholder sq.PlaceholderFormat
	PageClause  string
	FoldLike    bool
}

var (
	// MySQL is the default store dialect: positional ? and LIMIT offset, count.
	MySQL = Dialect{
		Name:        "mysql",
		Placeholder: sq.Question,
		PageClause:  "LIMIT ?, ?",
	}

	// Postgres rewrites placeholders to $n and pages with OFFSET/LIMIT.
	Postgres = Dialect{
		Name:        "postgres",
		Placeholder: sq.Dollar,
		PageClause:  "OFFSET ? LIMIT ?",
		FoldLike:    true,
	}
)

// DialectFor resolves a configured driver name.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "mysql":
		return MySQL, nil
	case "postgres", "pgx":
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Rebind rewrites a hand-written statement that uses ? placeholders into the
// dialect's placeholder style.
func (d Dialect) Rebind(sql string) string {
	if d.Placeholder == nil {
		return sql
	}
	out, err := d.Placeholder.ReplacePlaceholders(sql)
	if err != nil {
		return sql
	}
	return out
}

func (d Dialect) like(column, pattern string) sq.Sqlizer {
	if d.FoldLike {
		return sq.ILike{column: pattern}
	}
	return sq.Like{column: pattern}
}
