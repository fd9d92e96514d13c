// Package query composes the count and data statements behind every listing
// endpoint from one shared set of optional filters.
package query

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// ErrParamDrift is returned when the count and data statements would bind
// different parameter prefixes.
var ErrParamDrift = errors.New("count and data statements bind different parameters")

// Direction is a sort direction for the primary ordering column.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection maps a sort_order input to a Direction. Only an explicit
// "asc" sorts ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "asc") {
		return Asc
	}
	return Desc
}

// Plan is a composed pair of statements sharing one ordered parameter list.
// DataSQL ends with the dialect's page clause, whose two placeholders are not
// part of Args.
type Plan struct {
	CountSQL string
	DataSQL  string
	Args     []any
}

// PageArgs returns the data statement arguments: the filter values followed by
// offset and limit. Args is never mutated.
func (p Plan) PageArgs(offset, limit int) []any {
	args := make([]any, 0, len(p.Args)+2)
	args = append(args, p.Args...)
	return append(args, offset, limit)
}

// Statement is a single rendered statement.
type Statement struct {
	SQL  string
	Args []any
}

// Builder accumulates predicates and applies each one to both the count and
// the data statement. A Builder is request scoped and not safe for concurrent use.
type Builder struct {
	dialect Dialect
	count   sq.SelectBuilder
	data    sq.SelectBuilder
	preds   []sq.Sqlizer
	orderBy []string
}

// New starts a composition. count and data must differ only in projection,
// joins or grouping. Arguments already bound inside them (a HAVING clause or
// a derived table) must be identical in both, or Plan reports ErrParamDrift.
func New(d Dialect, count, data sq.SelectBuilder) *Builder {
	return &Builder{dialect: d, count: count, data: data}
}

// Where adds an unconditional predicate.
func (b *Builder) Where(pred sq.Sqlizer) *Builder {
	if pred != nil {
		b.preds = append(b.preds, pred)
	}
	return b
}

// Eq adds column = value when value is not blank.
func (b *Builder) Eq(column, value string) *Builder {
	if v := strings.TrimSpace(value); v != "" {
		b.preds = append(b.preds, sq.Eq{column: v})
	}
	return b
}

// EqInt adds column = value when value is set.
func (b *Builder) EqInt(column string, value *int64) *Builder {
	if value != nil {
		b.preds = append(b.preds, sq.Eq{column: *value})
	}
	return b
}

// Like adds a substring match on column when term is not blank.
func (b *Builder) Like(column, term string) *Builder {
	if t := strings.TrimSpace(term); t != "" {
		b.preds = append(b.preds, b.dialect.like(column, "%"+t+"%"))
	}
	return b
}

// DateBetween restricts DATE(column) to [from, to]. Nothing is added unless
// both bounds are present.
func (b *Builder) DateBetween(column, from, to string) *Builder {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from != "" && to != "" {
		b.preds = append(b.preds, sq.Expr(fmt.Sprintf("DATE(%s) BETWEEN ? AND ?", column), from, to))
	}
	return b
}

// DateRange is DateBetween with open ends: a lone from becomes >= and a lone
// to becomes <=.
func (b *Builder) DateRange(column, from, to string) *Builder {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	switch {
	case from != "" && to != "":
		return b.DateBetween(column, from, to)
	case from != "":
		b.preds = append(b.preds, sq.Expr(fmt.Sprintf("DATE(%s) >= ?", column), from))
	case to != "":
		b.preds = append(b.preds, sq.Expr(fmt.Sprintf("DATE(%s) <= ?", column), to))
	}
	return b
}

// In adds column IN (...) with one placeholder per value. Empty lists add nothing.
func (b *Builder) In(column string, values []any) *Builder {
	if len(values) > 0 {
		b.preds = append(b.preds, sq.Eq{column: values})
	}
	return b
}

// InInt64 is In for identifier lists.
func (b *Builder) InInt64(column string, ids []int64) *Builder {
	if len(ids) > 0 {
		b.preds = append(b.preds, sq.Eq{column: ids})
	}
	return b
}

// InCSV splits a comma separated input and adds an IN predicate for the
// non-blank elements.
func (b *Builder) InCSV(column, csv string) *Builder {
	var values []any
	for _, part := range strings.Split(csv, ",") {
		if p := strings.TrimSpace(part); p != "" {
			values = append(values, p)
		}
	}
	return b.In(column, values)
}

// OrderBy appends an ordering term to the data statement only.
func (b *Builder) OrderBy(column string, dir Direction) *Builder {
	if dir != Asc {
		dir = Desc
	}
	b.orderBy = append(b.orderBy, column+" "+string(dir))
	return b
}

// Plan renders the paged pair.
func (b *Builder) Plan() (Plan, error) {
	count := b.count
	data := b.data
	for _, p := range b.preds {
		count = count.Where(p)
		data = data.Where(p)
	}
	if len(b.orderBy) > 0 {
		data = data.OrderBy(b.orderBy...)
	}
	data = data.Suffix(b.dialect.PageClause)

	countSQL, countArgs, err := count.PlaceholderFormat(b.dialect.Placeholder).ToSql()
	if err != nil {
		return Plan{}, fmt.Errorf("count statement: %w", err)
	}
	dataSQL, dataArgs, err := data.PlaceholderFormat(b.dialect.Placeholder).ToSql()
	if err != nil {
		return Plan{}, fmt.Errorf("data statement: %w", err)
	}
	if !sameArgs(countArgs, dataArgs) {
		return Plan{}, ErrParamDrift
	}
	if countArgs == nil {
		countArgs = []any{}
	}
	return Plan{CountSQL: countSQL, DataSQL: dataSQL, Args: countArgs}, nil
}

// Rows renders the data statement without the page clause.
func (b *Builder) Rows() (Statement, error) {
	data := b.data
	for _, p := range b.preds {
		data = data.Where(p)
	}
	if len(b.orderBy) > 0 {
		data = data.OrderBy(b.orderBy...)
	}
	sql, args, err := data.PlaceholderFormat(b.dialect.Placeholder).ToSql()
	if err != nil {
		return Statement{}, fmt.Errorf("data statement: %w", err)
	}
	if args == nil {
		args = []any{}
	}
	return Statement{SQL: sql, Args: args}, nil
}

func sameArgs(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
