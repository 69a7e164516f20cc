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

package bootstrap

import (
	"database/sql"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/csdept/dept-portal/internal/system/config"
	"github.com/csdept/dept-portal/internal/system/database/provider"
	"github.com/csdept/dept-portal/internal/system/log"
)

const (
	ConfigFile = "repository/conf/deployment.yaml"
	SchemaFile = "dbscripts/postgres.sql"
)

// LoadRuntime reads config/*.env into the environment, loads the deployment file, installs it as the
// process runtime and initializes the logger.
func LoadRuntime(portalHome string) (*config.Config, error) {
	envFiles, _ := filepath.Glob(filepath.Join(portalHome, "config", "*.env"))
	if len(envFiles) > 0 {
		// Real environment variables win over the files.
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, errors.Wrap(err, "failed to load env files")
		}
	}

	cfg, err := config.LoadConfig(portalHome, ConfigFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", ConfigFile)
	}
	if err := config.InitializePortalRuntime(portalHome, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to initialize the portal runtime")
	}
	if err := log.InitWithOptions(cfg.Log.LogLevel, log.Options{
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to initialize the logger")
	}
	return cfg, nil
}

// OpenDatabase opens the shared pool and, when migrate is set, applies the idempotent schema script.
func OpenDatabase(portalHome string, migrate bool) (*sql.DB, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := dbClient.InitDatabase(portalHome, SchemaFile); err != nil {
			return nil, err
		}
	}
	return dbClient.DB(), nil
}
