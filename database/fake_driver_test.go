package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// fakeRows is the canned result of every query whose text mentions table
type fakeRows struct {
	table   string
	columns []string
	values  [][]driver.Value
}

type statement struct {
	query string
	args  []driver.Value
}

// fakeConnector answers queries from canned rows and records every statement it receives
type fakeConnector struct {
	mutex      sync.Mutex
	results    []fakeRows
	statements []statement
	lastID     int64
}

func (f *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeConn{connector: f}, nil
}

func (f *fakeConnector) Driver() driver.Driver {
	return fakeDriver{connector: f}
}

func (f *fakeConnector) record(query string, args []driver.NamedValue) {
	values := make([]driver.Value, len(args))
	for i, arg := range args {
		values[i] = arg.Value
	}
	f.statements = append(f.statements, statement{query: query, args: values})
}

// executed returns the statements starting with prefix
func (f *fakeConnector) executed(prefix string) []statement {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	var matching []statement
	for _, s := range f.statements {
		if strings.HasPrefix(s.query, prefix) {
			matching = append(matching, s)
		}
	}
	return matching
}

type fakeDriver struct {
	connector *fakeConnector
}

func (d fakeDriver) Open(string) (driver.Conn, error) {
	return &fakeConn{connector: d.connector}, nil
}

type fakeConn struct {
	connector *fakeConnector
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepared statements are not supported")
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	c.connector.mutex.Lock()
	defer c.connector.mutex.Unlock()
	c.connector.statements = append(c.connector.statements, statement{query: "BEGIN"})
	return fakeTx{connector: c.connector}, nil
}

func (c *fakeConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.connector.mutex.Lock()
	defer c.connector.mutex.Unlock()
	c.connector.record(query, args)
	for _, result := range c.connector.results {
		if strings.Contains(query, "`"+result.table+"`") {
			return &fakeRowsCursor{columns: result.columns, values: result.values}, nil
		}
	}
	return &fakeRowsCursor{columns: []string{"id"}}, nil
}

func (c *fakeConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.connector.mutex.Lock()
	defer c.connector.mutex.Unlock()
	c.connector.record(query, args)
	c.connector.lastID++
	return fakeResult{id: c.connector.lastID}, nil
}

type fakeTx struct {
	connector *fakeConnector
}

func (tx fakeTx) Commit() error {
	tx.connector.mutex.Lock()
	defer tx.connector.mutex.Unlock()
	tx.connector.statements = append(tx.connector.statements, statement{query: "COMMIT"})
	return nil
}

func (tx fakeTx) Rollback() error {
	tx.connector.mutex.Lock()
	defer tx.connector.mutex.Unlock()
	tx.connector.statements = append(tx.connector.statements, statement{query: "ROLLBACK"})
	return nil
}

type fakeResult struct {
	id int64
}

func (r fakeResult) LastInsertId() (int64, error) {
	return r.id, nil
}

func (r fakeResult) RowsAffected() (int64, error) {
	return 1, nil
}

type fakeRowsCursor struct {
	columns []string
	values  [][]driver.Value
	next    int
}

func (r *fakeRowsCursor) Columns() []string {
	return r.columns
}

func (r *fakeRowsCursor) Close() error {
	return nil
}

func (r *fakeRowsCursor) Next(dest []driver.Value) error {
	if r.next >= len(r.values) {
		return io.EOF
	}
	copy(dest, r.values[r.next])
	r.next++
	return nil
}

// newFakeDBService opens gorm's mysql dialect on top of the fake connector
func newFakeDBService(t *testing.T, results ...fakeRows) (*DBService, *fakeConnector) {
	connector := &fakeConnector{results: results}
	sqlDB := sql.OpenDB(connector)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return &DBService{DB: db}, connector
}
