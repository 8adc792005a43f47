package cache

import (
	"sync"

	"github.com/jadegt/joyeria-manager/internal/entity"
)

// DashboardCache holds the last computed dashboard. Refresh is explicit:
// nothing here expires or polls in the background.
type DashboardCache struct {
	mu   sync.RWMutex
	dash *entity.Dashboard
}

func NewDashboard() *DashboardCache {
	return &DashboardCache{}
}

func (c *DashboardCache) Get() (*entity.Dashboard, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dash, c.dash != nil
}

func (c *DashboardCache) Set(d *entity.Dashboard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dash = d
}
