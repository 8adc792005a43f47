package dependency

import (
	"context"

	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/jadegt/joyeria-manager/internal/normalize"
)

type (
	// TableSource fetches all rows of a logical table as loosely-typed
	// records. Both the MySQL store and the Supabase REST client satisfy
	// it; retries and timeouts are the implementation's business.
	TableSource interface {
		FetchTable(ctx context.Context, table string) ([]normalize.Row, error)
		Close()
	}

	// DashboardCache keeps the last computed dashboard between explicit
	// refreshes.
	DashboardCache interface {
		Get() (*entity.Dashboard, bool)
		Set(d *entity.Dashboard)
	}
)
