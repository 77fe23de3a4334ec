package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DuDupedrosa/krt-bank/internal/models"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{total: 0, want: 0},
		{total: 1, want: 1},
		{total: 10, want: 1},
		{total: 11, want: 2},
		{total: 95, want: 10},
		{total: 100, want: 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.total), "total=%d", tt.total)
	}
}

func TestListFilters(t *testing.T) {
	active := models.StatusActive

	t.Run("no filters", func(t *testing.T) {
		where, args := listFilters("", nil)
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("filter only", func(t *testing.T) {
		where, args := listFilters("john", nil)
		assert.Equal(t, " WHERE (name ILIKE $1 OR national_id ILIKE $1)", where)
		assert.Equal(t, []any{"%john%"}, args)
	})

	t.Run("whitespace filter is ignored", func(t *testing.T) {
		where, args := listFilters("   ", nil)
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("status only", func(t *testing.T) {
		where, args := listFilters("", &active)
		assert.Equal(t, " WHERE status = $1", where)
		assert.Equal(t, []any{active}, args)
	})

	t.Run("filter and status", func(t *testing.T) {
		where, args := listFilters("360", &active)
		assert.Equal(t, " WHERE (name ILIKE $1 OR national_id ILIKE $1) AND status = $2", where)
		assert.Equal(t, []any{"%360%", active}, args)
	})
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "ASC", orderClause(models.OrderAscending))
	assert.Equal(t, "DESC", orderClause(models.OrderDescending))
	assert.Equal(t, "DESC", orderClause(models.Order("bogus")))
}
