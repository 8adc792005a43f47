package supabase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jadegt/joyeria-manager/internal/normalize"
)

type Config struct {
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Client reads logical tables over the Supabase REST interface
// (GET /rest/v1/<table>?select=*).
type Client struct {
	cli *resty.Client
}

func New(c *Config) *Client {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New()
	cli.SetBaseURL(strings.TrimRight(c.URL, "/"))
	cli.SetHeader("apikey", c.APIKey)
	cli.SetHeader("Authorization", "Bearer "+c.APIKey)
	cli.SetTimeout(timeout)

	return &Client{cli: cli}
}

func (c *Client) FetchTable(ctx context.Context, table string) ([]normalize.Row, error) {
	var rows []normalize.Row
	resp, err := c.cli.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetResult(&rows).
		Get("/rest/v1/" + table)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", table, resp.Status())
	}
	return rows, nil
}

func (c *Client) Close() {}
