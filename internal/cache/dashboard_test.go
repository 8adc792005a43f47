package cache

import (
	"sync"
	"testing"

	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestDashboardCache(t *testing.T) {
	c := NewDashboard()

	_, ok := c.Get()
	assert.False(t, ok)

	d := &entity.Dashboard{RunID: "run-1"}
	c.Set(d)

	got, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, "run-1", got.RunID)

	c.Set(&entity.Dashboard{RunID: "run-2"})
	got, _ = c.Get()
	assert.Equal(t, "run-2", got.RunID)
}

func TestDashboardCacheConcurrent(t *testing.T) {
	c := NewDashboard()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set(&entity.Dashboard{RunID: "x"})
		}()
		go func() {
			defer wg.Done()
			c.Get()
		}()
	}
	wg.Wait()

	_, ok := c.Get()
	assert.True(t, ok)
}
