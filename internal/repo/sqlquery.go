package repo

import (
	"ContactHub/internal/query"
	"strings"

	"gorm.io/gorm"
)

// applyQuery переводит запрос в условия gorm. Имена колонок берутся из схемы,
// значения передаются только параметрами.
func applyQuery[T any](db *gorm.DB, s *query.Schema[T], q query.Query) (*gorm.DB, error) {
	if err := s.Validate(q); err != nil {
		return nil, err
	}
	if len(q.Fields) > 0 {
		cols := []string{"id"}
		for _, name := range q.Fields {
			if f, _ := s.Lookup(name); f.Column != "id" {
				cols = append(cols, f.Column)
			}
		}
		db = db.Select(cols)
	}
	for _, c := range q.Where {
		expr, args := conditionSQL(db, s, c)
		db = db.Where(expr, args...)
	}
	for _, g := range q.WhereGroups {
		if expr, args := groupSQL(db, s, g); expr != "" {
			db = db.Where(expr, args...)
		}
	}
	for _, o := range q.OrderBy {
		f, _ := s.Lookup(o.FieldName)
		col := f.Column
		if f.Kind == query.Text {
			col = foldExpr(db, col)
		}
		dir := "ASC"
		if strings.EqualFold(o.SortType, query.Desc) {
			dir = "DESC"
		}
		db = db.Order(col + " " + dir)
	}
	db = db.Order("id ASC")
	if q.Paging != nil {
		if q.Paging.Limit > 0 {
			db = db.Limit(q.Paging.Limit)
		}
		if q.Paging.Offset > 0 {
			db = db.Offset(q.Paging.Offset)
		}
	}
	return db, nil
}

func conditionSQL[T any](db *gorm.DB, s *query.Schema[T], c query.Condition) (string, []any) {
	f, _ := s.Lookup(c.FieldName)
	col := f.Column
	if f.Kind == query.Text {
		col = foldExpr(db, col)
	}
	parts := make([]string, 0, len(c.Values))
	args := make([]any, 0, len(c.Values))
	for _, raw := range c.Values {
		v, err := query.Normalize(f.Kind, raw)
		if err != nil {
			continue
		}
		switch c.Operator {
		case query.EqualTo:
			parts = append(parts, col+" = ?")
			args = append(args, v)
		case query.NotEqualTo:
			parts = append(parts, col+" <> ?")
			args = append(args, v)
		case query.Contains:
			parts = append(parts, col+` LIKE ? ESCAPE '\'`)
			args = append(args, "%"+escapeLike(v.(string))+"%")
		case query.StartsWith:
			parts = append(parts, col+` LIKE ? ESCAPE '\'`)
			args = append(args, escapeLike(v.(string))+"%")
		}
	}
	joiner := " OR "
	if c.Operator == query.NotEqualTo {
		joiner = " AND "
	}
	return "(" + strings.Join(parts, joiner) + ")", args
}

func groupSQL[T any](db *gorm.DB, s *query.Schema[T], g query.Group) (string, []any) {
	var parts []string
	var args []any
	for _, c := range g.Conditions {
		expr, a := conditionSQL(db, s, c)
		parts = append(parts, expr)
		args = append(args, a...)
	}
	for _, sg := range g.SubGroups {
		if expr, a := groupSQL(db, s, sg); expr != "" {
			parts = append(parts, expr)
			args = append(args, a...)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	joiner := " AND "
	if strings.EqualFold(g.Operator, query.Or) {
		joiner = " OR "
	}
	return "(" + strings.Join(parts, joiner) + ")", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
