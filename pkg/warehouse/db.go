// Package warehouse owns the MySQL side: idempotent schema creation
// and the propagation of staged documents into the relational tables.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Config holds what is needed to connect to the MySQL warehouse.
type Config struct {
	Host     string // host or host:port; port 3306 is assumed when absent
	User     string
	Password string
	Database string

	// Optional pool tuning.
	MaxOpenConns int
	MaxIdleConns int
	ConnMaxIdle  time.Duration
	ConnMaxLife  time.Duration
}

func (c Config) dsn(database string) string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = c.Host
	mc.DBName = database
	return mc.FormatDSN()
}

// Client is a thin wrapper around a sql.DB handle pointed at the
// warehouse database.
type Client struct {
	db  *sql.DB
	cfg Config
}

// NewClient constructs an unconnected warehouse client.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// Connect creates the warehouse database if it does not exist, then
// opens and verifies the pooled handle against it.
func (c *Client) Connect(ctx context.Context) error {
	if c.cfg.Host == "" {
		return fmt.Errorf("mysql host is required")
	}
	if c.cfg.Database == "" {
		return fmt.Errorf("mysql database name is required")
	}

	if err := c.ensureDatabase(ctx); err != nil {
		return err
	}

	db, err := sql.Open("mysql", c.cfg.dsn(c.cfg.Database))
	if err != nil {
		return fmt.Errorf("open mysql: %w", err)
	}

	if c.cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.cfg.MaxOpenConns)
	}
	if c.cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.cfg.MaxIdleConns)
	}
	if c.cfg.ConnMaxIdle > 0 {
		db.SetConnMaxIdleTime(c.cfg.ConnMaxIdle)
	}
	if c.cfg.ConnMaxLife > 0 {
		db.SetConnMaxLifetime(c.cfg.ConnMaxLife)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping mysql: %w", err)
	}

	c.db = db
	return nil
}

// ensureDatabase connects without a database selected and issues an
// idempotent CREATE DATABASE.
func (c *Client) ensureDatabase(ctx context.Context) error {
	db, err := sql.Open("mysql", c.cfg.dsn(""))
	if err != nil {
		return fmt.Errorf("open mysql server: %w", err)
	}
	defer db.Close()

	stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", c.cfg.Database)
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("create database %s: %w", c.cfg.Database, err)
	}
	return nil
}

// Close closes the underlying sql.DB handle.
func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// DB exposes the underlying handle for query/exec operations.
func (c *Client) DB() *sql.DB {
	return c.db
}
