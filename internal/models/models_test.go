package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		total   int
		want    Pagination
	}{
		{
			name: "middle page", page: 2, perPage: 2, total: 5,
			want: Pagination{Page: 2, PerPage: 2, Total: 5, TotalPages: 3, HasNext: true, HasPrevious: true},
		},
		{
			name: "first page", page: 1, perPage: 10, total: 25,
			want: Pagination{Page: 1, PerPage: 10, Total: 25, TotalPages: 3, HasNext: true, HasPrevious: false},
		},
		{
			name: "last page", page: 3, perPage: 10, total: 25,
			want: Pagination{Page: 3, PerPage: 10, Total: 25, TotalPages: 3, HasNext: false, HasPrevious: true},
		},
		{
			name: "empty", page: 1, perPage: 10, total: 0,
			want: Pagination{Page: 1, PerPage: 10, Total: 0, TotalPages: 0, HasNext: false, HasPrevious: false},
		},
		{
			name: "past the end", page: 5, perPage: 10, total: 3,
			want: Pagination{Page: 5, PerPage: 10, Total: 3, TotalPages: 1, HasNext: false, HasPrevious: true},
		},
		{
			name: "huge perPage", page: 1, perPage: math.MaxInt, total: 5,
			want: Pagination{Page: 1, PerPage: math.MaxInt, Total: 5, TotalPages: 1, HasNext: false, HasPrevious: false},
		},
		{
			name: "huge perPage and total", page: 1, perPage: math.MaxInt, total: math.MaxInt,
			want: Pagination{Page: 1, PerPage: math.MaxInt, Total: math.MaxInt, TotalPages: 1, HasNext: false, HasPrevious: false},
		},
		{
			name: "huge page", page: math.MaxInt, perPage: 10, total: 25,
			want: Pagination{Page: math.MaxInt, PerPage: 10, Total: 25, TotalPages: 3, HasNext: false, HasPrevious: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.perPage, tt.total))
		})
	}
}

func TestUser_NeverSerializesHash(t *testing.T) {
	user := &User{ID: 1, Name: "John", Lastname: "Doe", Email: "john@example.com", PasswordHash: "$2a$10$hash"}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.NotContains(t, string(raw), "password")

	raw, err = json.Marshal(user.Profile())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}

func TestUser_Public(t *testing.T) {
	now := time.Now()
	user := &User{ID: 3, Name: "Ana", Lastname: "Souza", Email: "ana@example.com", PasswordHash: "x", CreatedAt: now}

	assert.Equal(t, PublicUser{ID: 3, Name: "Ana", Lastname: "Souza", Email: "ana@example.com"}, user.Public())

	raw, err := json.Marshal(user.Public())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"Ana","lastname":"Souza","email":"ana@example.com"}`, string(raw))
}
