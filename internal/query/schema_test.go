package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	ID      int64
	Name    string
	City    string
	Starred bool
	Age     int64
	Born    time.Time
}

func testSchema() *Schema[person] {
	return NewSchema(func(p *person) int64 { return p.ID },
		Field[person]{Name: "name", Column: "name", Kind: Text, Value: func(p *person) any { return p.Name }},
		Field[person]{Name: "city", Column: "city", Kind: Text, Value: func(p *person) any { return p.City }},
		Field[person]{Name: "starred", Column: "starred", Kind: Bool, Value: func(p *person) any { return p.Starred }},
		Field[person]{Name: "age", Column: "age", Kind: Int, Value: func(p *person) any { return p.Age }},
		Field[person]{Name: "born", Column: "born", Kind: Time, Value: func(p *person) any { return p.Born }},
	)
}

func people() []person {
	return []person{
		{ID: 1, Name: "bob", City: "Berlin", Starred: true, Age: 40},
		{ID: 2, Name: "Alice", City: "Paris", Age: 31},
		{ID: 3, Name: "carol", City: "berlin", Age: 25},
		{ID: 4, Name: "alice", City: "Oslo", Starred: true, Age: 50},
	}
}

func ids(ps []person) []int64 {
	out := make([]int64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestSchema_Validate(t *testing.T) {
	s := testSchema()

	assert.NoError(t, s.Validate(New("name", "city").Filter(Eq("starred", true)).Sorted(AscBy("name"))))

	tests := []struct {
		name string
		q    Query
	}{
		{"unknown field", New("nope")},
		{"unknown where field", New().Filter(Eq("nope", "x"))},
		{"contains on bool", New().Filter(Condition{FieldName: "starred", Operator: Contains, Values: []any{"t"}})},
		{"no values", New().Filter(Condition{FieldName: "name", Operator: EqualTo})},
		{"bad bool", New().Filter(Eq("starred", "maybe"))},
		{"bad int", New().Filter(Eq("age", "old"))},
		{"condition on time", New().Filter(Eq("born", "2020"))},
		{"bad sort", New().Sorted(Order{FieldName: "name", SortType: "UP"})},
		{"unknown sort", New().Sorted(AscBy("nope"))},
		{"bad group op", New().Grouped(Group{Operator: "XOR"})},
		{"bad nested", New().Grouped(Group{Operator: Or, SubGroups: []Group{AnyOf(Eq("nope", 1))}})},
		{"negative paging", New().Limit(-1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, s.Validate(tt.q), ErrInvalidQuery)
		})
	}
}

func TestSchema_Apply_FilterAndSort(t *testing.T) {
	s := testSchema()

	// регистронезависимое равенство
	got, err := s.Apply(people(), New().Filter(Eq("city", "BERLIN")).Sorted(AscBy("name")))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(got))

	// OR-группа по подстроке
	got, err = s.Apply(people(), New().Grouped(AnyOf(Like("name", "LIC"), Like("city", "slo"))).Sorted(AscBy("name")))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, ids(got))

	// булево поле строкой
	got, err = s.Apply(people(), New().Filter(Eq("starred", "true")))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, ids(got))

	// NotEqualTo должен отличаться от всех значений
	got, err = s.Apply(people(), New().Filter(Condition{FieldName: "city", Operator: NotEqualTo, Values: []any{"berlin", "oslo"}}))
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(got))

	// StartsWith + число из JSON
	got, err = s.Apply(people(), New().Filter(Condition{FieldName: "name", Operator: StartsWith, Values: []any{"a"}}, Eq("age", float64(50))))
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, ids(got))

	// досортировка по id при равных именах
	got, err = s.Apply(people(), New().Sorted(AscBy("name")))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4, 1, 3}, ids(got))

	got, err = s.Apply(people(), New().Sorted(DescBy("age")))
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 1, 2, 3}, ids(got))
}

func TestSchema_Apply_NestedGroupsAndPaging(t *testing.T) {
	s := testSchema()
	q := New().Grouped(Group{
		Operator: Or,
		SubGroups: []Group{
			AllOf(Eq("city", "berlin"), Eq("starred", false)),
			AllOf(Eq("name", "alice"), Eq("starred", true)),
		},
	}).Sorted(AscBy("age"))

	got, err := s.Apply(people(), q)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, ids(got))

	got, err = s.Apply(people(), New().Sorted(AscBy("age")).Limit(2, 1))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids(got))

	// offset за пределами
	got, err = s.Apply(people(), New().Limit(0, 10))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSchema_Apply_DoesNotMutateInput(t *testing.T) {
	s := testSchema()
	in := people()
	_, err := s.Apply(in, New().Sorted(AscBy("name")))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(in))
}

func TestBuilders_DoNotShareBackingArrays(t *testing.T) {
	base := New("name").Filter(Eq("name", "a"))
	q1 := base.Filter(Eq("city", "x"))
	q2 := base.Filter(Eq("city", "y"))
	assert.Equal(t, "x", q1.Where[1].Values[0])
	assert.Equal(t, "y", q2.Where[1].Values[0])
	assert.Len(t, base.Where, 1)
}
