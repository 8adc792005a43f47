package report

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jadegt/joyeria-manager/internal/dependency"
	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/jadegt/joyeria-manager/internal/normalize"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultFallbackMargin prices COGS for products without a supplier cost
// row. It is a modeling default, not a measured value.
const DefaultFallbackMargin = 0.55

type Config struct {
	FallbackMargin float64 `mapstructure:"fallback_margin"`
}

// Service runs the aggregation pipeline over a snapshot fetched from the
// configured table source. Each run builds fresh indices; there is no
// shared mutable state between runs.
type Service struct {
	c   Config
	src dependency.TableSource
	now func() time.Time
}

func New(c Config, src dependency.TableSource) *Service {
	if c.FallbackMargin <= 0 {
		c.FallbackMargin = DefaultFallbackMargin
	}
	return &Service{c: c, src: src, now: time.Now}
}

// BuildDashboard fetches every logical table, normalizes the rows and
// folds them into the dashboard aggregates. A failed table contributes an
// empty collection and a warning; the run fails only when every single
// fetch failed.
func (s *Service) BuildDashboard(ctx context.Context) (*entity.Dashboard, error) {
	tables, warnings, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	warnings = append(warnings, validateMappings(tables)...)

	orders := decodeAll(tables[TableOrders], normalize.Order)
	lines := decodeAll(tables[TableOrderLines], normalize.OrderLine)
	products := decodeAll(tables[TableProducts], normalize.Product)
	categories := decodeAll(tables[TableCategories], normalize.Category)
	clients := decodeAll(tables[TableClients], normalize.Client)
	addresses := decodeAll(tables[TableAddresses], normalize.Address)
	coupons := decodeAll(tables[TableCoupons], normalize.Coupon)
	costs := decodeAll(tables[TableSupplierCosts], normalize.SupplierCost)
	movements := decodeAll(tables[TableInventoryMovements], normalize.InventoryMovement)
	returns := decodeAll(tables[TableReturns], normalize.Return)

	ix := buildIndex(orders, products, categories, clients, addresses, costs, coupons)
	alloc := newAllocator(lines, ix)

	rb := &recordBuilder{
		ix:             ix,
		alloc:          alloc,
		fallbackMargin: decimal.NewFromFloat(s.c.FallbackMargin),
		now:            s.now().UTC(),
	}
	records, orphans := rb.build(lines)
	if orphans > 0 {
		warnings = append(warnings, fmt.Sprintf("%s: %d lines dropped, order or product unresolved", TableOrderLines, orphans))
	}

	rollup := rollupOrders(records)
	monthly := monthlySeries(records)

	counts := make(map[string]int, len(tables))
	for table, rows := range tables {
		counts[table] = len(rows)
	}

	dash := &entity.Dashboard{
		RunID:       uuid.NewString(),
		GeneratedAt: s.now().UTC(),

		Records: records,
		Summary: summarize(monthly, records),

		Monthly:      monthly,
		Segments:     segmentBreakdown(records),
		Regions:      regionBreakdown(records),
		TopClients:   topClients(orders, rollup, ix),
		RecentOrders: recentOrders(orders, rollup, ix),
		LowStock:     lowStockProducts(products),
		Movements:    movementSummaries(movements),

		ReturnReasons: returnReasons(returns),
		TableCounts:   counts,
		Warnings:      warnings,
		OrphanLines:   orphans,
	}

	slog.Default().InfoContext(ctx, "dashboard built",
		slog.String("run_id", dash.RunID),
		slog.Int("records", len(records)),
		slog.Int("orphan_lines", orphans),
		slog.Int("warnings", len(warnings)),
	)
	return dash, nil
}

// fetchSnapshot issues all table fetches concurrently and waits for every
// one to settle. Failures never cancel sibling fetches.
func (s *Service) fetchSnapshot(ctx context.Context) (map[string][]normalize.Row, []string, error) {
	var (
		mu       sync.Mutex
		warnings []string
		failed   int
	)
	tables := make(map[string][]normalize.Row, len(AllTables))

	g, gctx := errgroup.WithContext(ctx)
	for _, table := range AllTables {
		table := table
		g.Go(func() error {
			rows, err := s.src.FetchTable(gctx, table)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				tables[table] = nil
				warnings = append(warnings, fmt.Sprintf("%s: %s", table, err.Error()))
				failed++
				return nil
			}
			tables[table] = rows
			return nil
		})
	}
	_ = g.Wait() // goroutines report failures through warnings only

	if failed == len(AllTables) {
		return nil, nil, fmt.Errorf("all %d table fetches failed", failed)
	}
	sort.Strings(warnings)
	return tables, warnings, nil
}

func validateMappings(tables map[string][]normalize.Row) []string {
	checks := []struct {
		table   string
		mapping normalize.Mapping
	}{
		{TableOrders, normalize.OrderMapping},
		{TableOrderLines, normalize.OrderLineMapping},
		{TableProducts, normalize.ProductMapping},
		{TableCategories, normalize.CategoryMapping},
		{TableClients, normalize.ClientMapping},
		{TableAddresses, normalize.AddressMapping},
		{TableCoupons, normalize.CouponMapping},
		{TableSupplierCosts, normalize.SupplierCostMapping},
		{TableInventoryMovements, normalize.MovementMapping},
		{TableReturns, normalize.ReturnMapping},
	}
	var warnings []string
	for _, c := range checks {
		warnings = append(warnings, c.mapping.Validate(tables[c.table])...)
	}
	return warnings
}

func decodeAll[T any](rows []normalize.Row, decode func(normalize.Row) T) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, decode(row))
	}
	return out
}
