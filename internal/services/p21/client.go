package p21

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/microsoft/go-mssqldb"

	"prodlogs/internal/config"
	"prodlogs/internal/logging"
)

// OpenOrder is one open production order line.
type OpenOrder struct {
	OrderNumber      string
	Machine          string
	ItemID           string
	Description      string
	QtyToMake        float64
	NetWeightLB      float64
	ExtendedWeightLB float64
	Scheduler        string
	DueDate          time.Time
}

// Client queries the ERP database for open production orders.
type Client struct {
	db           *sql.DB
	locationID   int
	queryTimeout time.Duration
	logger       *slog.Logger
}

// NewClient opens a connection pool to the configured SQL Server instance.
// The pool dials lazily; a bad address surfaces on the first query.
func NewClient(cfg config.P21, logger *slog.Logger) (*Client, error) {
	dsn := connectionURL(cfg)
	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("open erp connection: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return NewClientWithDB(db, cfg, logger), nil
}

// NewClientWithDB wraps an existing database handle.
func NewClientWithDB(db *sql.DB, cfg config.P21, logger *slog.Logger) *Client {
	timeout := time.Duration(cfg.QueryTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		db:           db,
		locationID:   cfg.LocationID,
		queryTimeout: timeout,
		logger:       logging.NewComponentLogger(logger, "p21"),
	}
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

func connectionURL(cfg config.P21) string {
	u := &url.URL{
		Scheme: "sqlserver",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Server, cfg.Port),
	}
	q := url.Values{}
	q.Set("database", cfg.Database)
	u.RawQuery = q.Encode()
	return u.String()
}

const openOrdersQuery = `
SELECT
    RTRIM(h.order_no),
    RTRIM(COALESCE(h.production_line, '')),
    RTRIM(im.item_id),
    RTRIM(COALESCE(im.item_desc, '')),
    l.qty_to_make,
    COALESCE(im.net_weight, 0),
    COALESCE(im.net_weight, 0) * l.qty_to_make,
    RTRIM(COALESCE(u.name, '')),
    h.required_date
FROM prod_order_hdr h
JOIN prod_order_line l
    ON l.order_no = h.order_no
JOIN inv_mast im
    ON im.inv_mast_uid = l.inv_mast_uid
LEFT JOIN users u
    ON u.id = h.scheduler_id
WHERE h.location_id = @locationID
  AND h.cancel_flag = 'N'
  AND h.complete = 'N'
ORDER BY h.required_date, h.order_no`

// OpenOrders returns every incomplete, uncancelled production order line at
// the configured location, ordered by due date.
func (c *Client) OpenOrders(ctx context.Context) ([]OpenOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	rows, err := c.db.QueryContext(ctx, openOrdersQuery, sql.Named("locationID", c.locationID))
	if err != nil {
		return nil, fmt.Errorf("query open orders: %w", err)
	}
	defer rows.Close()

	var orders []OpenOrder
	for rows.Next() {
		var o OpenOrder
		var due sql.NullTime
		if err := rows.Scan(
			&o.OrderNumber, &o.Machine, &o.ItemID, &o.Description,
			&o.QtyToMake, &o.NetWeightLB, &o.ExtendedWeightLB,
			&o.Scheduler, &due,
		); err != nil {
			return nil, fmt.Errorf("scan open order: %w", err)
		}
		if due.Valid {
			o.DueDate = due.Time
		}
		o.Machine = strings.TrimSpace(o.Machine)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read open orders: %w", err)
	}

	c.logger.Debug("open orders loaded", logging.Int("count", len(orders)))
	return orders, nil
}
