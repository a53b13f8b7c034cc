package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogicalExpire(t *testing.T) {
	fresh := NewDataWithLogicalExpire([]int{1, 2}, time.Minute)
	assert.False(t, fresh.IsLogicalExpired())
	assert.Equal(t, []int{1, 2}, fresh.Data)

	stale := NewDataWithLogicalExpire("x", -time.Second)
	assert.True(t, stale.IsLogicalExpired())
}
