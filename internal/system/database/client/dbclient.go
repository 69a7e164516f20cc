/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package client

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/csdept/dept-portal/internal/system/log"

	_ "github.com/lib/pq"
)

// Executor is the statement surface shared by *sql.DB and *sql.Tx. Stores built over a *sql.Tx
// take part in the caller's transaction; stores built over a *sql.DB commit every statement.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DBClientInterface defines the interface for database operations.
type DBClientInterface interface {
	ExecuteQuery(query string, args ...interface{}) ([]map[string]interface{}, error)
	BeginTx(ctx context.Context) (*sql.Tx, error)
	DB() *sql.DB
	Close() error
	InitDatabase(portalHome, file string) error
}

// DBClient is the implementation of DBClientInterface.
type DBClient struct {
	db    *sql.DB
	owned bool
}

// NewDBClient creates a client that owns the given connection pool and closes it on Close.
func NewDBClient(db *sql.DB) DBClientInterface {

	return &DBClient{
		db:    db,
		owned: true,
	}
}

// NewSharedDBClient creates a client over a pool owned by someone else. Close is a no-op.
func NewSharedDBClient(db *sql.DB) DBClientInterface {

	return &DBClient{
		db: db,
	}
}

// InitDatabase executes the schema script found at portalHome/file.
func (client *DBClient) InitDatabase(portalHome, file string) error {

	sqlBytes, err := os.ReadFile(path.Join(portalHome, file))
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	_, err = client.db.Exec(string(sqlBytes))
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	log.GetLogger().Info("Database schema created successfully")
	return nil
}

// ExecuteQuery executes a SELECT query and returns the result as a slice of maps.
func (client *DBClient) ExecuteQuery(query string, args ...interface{}) ([]map[string]interface{}, error) {

	rows, err := client.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []map[string]interface{}
	for rows.Next() {
		row := make([]interface{}, len(columns))
		rowPointers := make([]interface{}, len(columns))
		for i := range row {
			rowPointers[i] = &row[i]
		}

		if err := rows.Scan(rowPointers...); err != nil {
			return nil, err
		}

		result := map[string]interface{}{}
		for i, col := range columns {
			result[strings.ToLower(col)] = row[i]
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// BeginTx starts a new database transaction.
func (client *DBClient) BeginTx(ctx context.Context) (*sql.Tx, error) {

	return client.db.BeginTx(ctx, nil)
}

// DB exposes the underlying pool for stores running in immediate-commit mode.
func (client *DBClient) DB() *sql.DB {
	return client.db
}

// Close closes the database connection when the client owns it.
func (client *DBClient) Close() error {
	if !client.owned {
		return nil
	}
	return client.db.Close()
}
