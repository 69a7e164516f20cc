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

package config

import (
	"os"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	defaultTokenTTL       = 12 * time.Hour
	defaultBRSTimeout     = 30 * time.Second
	defaultRetryWait      = time.Second
	defaultSearchMaxYears = 10
	defaultLockKey        = "brs-sync"
	defaultURLPrefix      = "/static/icons"
	defaultUploadDir      = "uploads"
)

// LoadConfig reads the deployment file relative to the portal home, expanding environment variables.
func LoadConfig(portalHome, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(portalHome, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration in %s", filePath)
	}
	return &cfg, nil
}

// validate rejects settings the portal cannot run safely without.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Auth.SigningSecret) == "" {
		return errors.New("auth.signing_secret must not be empty")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}
	if c.BRS.Timeout <= 0 {
		c.BRS.Timeout = defaultBRSTimeout
	}
	if c.BRS.RetryWait <= 0 {
		c.BRS.RetryWait = defaultRetryWait
	}
	if c.BRS.SearchMaxYears <= 0 {
		c.BRS.SearchMaxYears = defaultSearchMaxYears
	}
	if c.Sync.LockKey == "" {
		c.Sync.LockKey = defaultLockKey
	}
	if c.Sync.Schedule.Weekday == "" {
		c.Sync.Schedule.Weekday = "sunday"
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = defaultUploadDir
	}
	if c.Uploads.URLPrefix == "" {
		c.Uploads.URLPrefix = defaultURLPrefix
	}
	if c.DataSource.SSLMode == "" {
		c.DataSource.SSLMode = "disable"
	}
}

// OverridePortalRuntime replaces the runtime configuration. Used by tests and the admin CLI.
func OverridePortalRuntime(conf Config) {
	conf.applyDefaults()
	runtimeConfig = &PortalRuntime{
		Config: conf,
	}
}
