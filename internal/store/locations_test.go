package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSort(t *testing.T) {
	tests := []struct {
		name string
		sort string
		want string
	}{
		{"known column passes through", "latitude", "latitude"},
		{"created_at passes through", "created_at", "created_at"},
		{"unknown column falls back", "id; DROP TABLE locations", "created_at"},
		{"empty falls back", "", "created_at"},
		{"case sensitive", "Latitude", "created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSort(tt.sort))
		})
	}
}

func TestNormalizeOrder(t *testing.T) {
	assert.Equal(t, "ASC", normalizeOrder("asc"))
	assert.Equal(t, "ASC", normalizeOrder("ASC"))
	assert.Equal(t, "DESC", normalizeOrder("desc"))
	assert.Equal(t, "DESC", normalizeOrder(""))
	assert.Equal(t, "DESC", normalizeOrder("sideways"))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultLimit, clampLimit(0))
	assert.Equal(t, defaultLimit, clampLimit(-5))
	assert.Equal(t, 1, clampLimit(1))
	assert.Equal(t, maxLimit, clampLimit(100))
	assert.Equal(t, maxLimit, clampLimit(5000))
}

func TestDeviceFilter(t *testing.T) {
	assert.Empty(t, deviceFilter(""))
	assert.Equal(t, "WHERE device_id = $3", deviceFilter("iphone"))
}
