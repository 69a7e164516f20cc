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

package provider

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/csdept/dept-portal/internal/system/config"
	"github.com/csdept/dept-portal/internal/system/database/client"
)

// DBConfig represents the local database configuration.
type DBConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
	GetDBType() string
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct{}

var (
	pool     *sql.DB
	poolErr  error
	poolOnce sync.Once
	poolMu   sync.RWMutex
)

// NewDBProvider creates a new instance of DBProvider.
func NewDBProvider() DBProviderInterface {

	return &DBProvider{}
}

// SetTestDB installs an already opened pool, bypassing the runtime configuration.
func SetTestDB(db *sql.DB) {
	poolMu.Lock()
	defer poolMu.Unlock()
	pool = db
	poolErr = nil
	poolOnce = sync.Once{}
	poolOnce.Do(func() {})
}

// GetDBClient returns a client over the process wide connection pool, opening it on first use.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {

	poolMu.RLock()
	defer poolMu.RUnlock()

	poolOnce.Do(func() {
		runtimeConfig := config.GetPortalRuntime().Config
		dbConfig := getDBConfig(runtimeConfig)

		db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
		if err != nil {
			poolErr = fmt.Errorf("failed to connect to database: %v", err)
			return
		}
		db.SetMaxOpenConns(20)
		db.SetConnMaxIdleTime(5 * time.Minute)

		if err := db.Ping(); err != nil {
			_ = db.Close()
			poolErr = fmt.Errorf("failed to ping database: %v", err)
			return
		}
		pool = db
	})
	if poolErr != nil {
		return nil, poolErr
	}

	return client.NewSharedDBClient(pool), nil
}

// GetDBType returns the dialect key used to look up queries in the scripts package.
func (d *DBProvider) GetDBType() string {
	return "postgres"
}

func getDBConfig(cfg config.Config) DBConfig {

	var dbConfig DBConfig

	dbConfig.driverName = "postgres"
	dbConfig.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DataSource.Hostname, cfg.DataSource.Port, cfg.DataSource.Username, cfg.DataSource.Password,
		cfg.DataSource.Name, cfg.DataSource.SSLMode)

	return dbConfig
}
