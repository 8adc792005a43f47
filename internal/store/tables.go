package store

import (
	"context"
	"fmt"

	"github.com/Knetic/go-namedParameterQuery"
	"github.com/jadegt/joyeria-manager/internal/normalize"
	"github.com/jadegt/joyeria-manager/internal/report"
	"github.com/jmoiron/sqlx"
)

// allowedTables whitelists the logical table names so FetchTable can
// interpolate them without opening an injection hole.
var allowedTables = func() map[string]struct{} {
	m := make(map[string]struct{}, len(report.AllTables))
	for _, t := range report.AllTables {
		m[t] = struct{}{}
	}
	return m
}()

// FetchTable returns every row of a logical table as loosely-typed maps.
// When a reporting window is configured, the orders table is filtered on
// its date column the way the legacy endpoint did.
func (ms *MYSQLStore) FetchTable(ctx context.Context, table string) ([]normalize.Row, error) {
	if _, ok := allowedTables[table]; !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}
	if table == report.TableOrders && (ms.c.DateFrom != "" || ms.c.DateTo != "") {
		return ms.fetchOrdersWindowed(ctx)
	}
	return ms.queryRows(ctx, "SELECT * FROM "+table)
}

func (ms *MYSQLStore) fetchOrdersWindowed(ctx context.Context) ([]normalize.Row, error) {
	query := "SELECT * FROM " + report.TableOrders + " WHERE 1=1"
	params := map[string]any{}
	if ms.c.DateFrom != "" {
		query += " AND fecha >= :from"
		params["from"] = ms.c.DateFrom
	}
	if ms.c.DateTo != "" {
		query += " AND fecha < DATE_ADD(:to, INTERVAL 1 DAY)"
		params["to"] = ms.c.DateTo
	}

	named := namedParameterQuery.NewNamedParameterQuery(query)
	named.SetValuesFromMap(params)
	q, args, err := sqlx.In(named.GetParsedQuery(), named.GetParsedParameters()...)
	if err != nil {
		return nil, fmt.Errorf("in: %w", err)
	}
	return ms.queryRows(ctx, q, args...)
}

func (ms *MYSQLStore) queryRows(ctx context.Context, query string, args ...any) ([]normalize.Row, error) {
	rows, err := ms.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	var out []normalize.Row
	for rows.Next() {
		row := make(normalize.Row)
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("map scan: %w", err)
		}
		out = append(out, decodeRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// decodeRow converts MySQL []byte column values into strings so the
// normalizer sees the same shapes as the REST backend.
func decodeRow(row normalize.Row) normalize.Row {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
	return row
}
