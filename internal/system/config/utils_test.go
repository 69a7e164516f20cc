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
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeployment(t *testing.T, content string) string {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "conf"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "conf", "deployment.yaml"), []byte(content), 0o600))
	return home
}

func TestLoadConfigExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_BRS_URL", "https://brs.example.edu/teachers?year={year}&session={session_num}")
	home := writeDeployment(t, `
addr:
  port: 8900
auth:
  signing_secret: "test-secret"
  token_ttl: 2h
brs:
  teachers_url: "${TEST_BRS_URL}"
sync:
  schedule:
    enabled: true
    weekday: "friday"
    hour: 23
`)

	cfg, err := LoadConfig(home, "conf/deployment.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8900, cfg.Addr.Port)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "https://brs.example.edu/teachers?year={year}&session={session_num}", cfg.BRS.TeachersURL)
	assert.Equal(t, "friday", cfg.Sync.Schedule.Weekday)
	assert.Equal(t, 23, cfg.Sync.Schedule.Hour)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	home := writeDeployment(t, "addr:\n  port: 1\nauth:\n  signing_secret: s\n")

	cfg, err := LoadConfig(home, "conf/deployment.yaml")
	require.NoError(t, err)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultBRSTimeout, cfg.BRS.Timeout)
	assert.Equal(t, defaultSearchMaxYears, cfg.BRS.SearchMaxYears)
	assert.Equal(t, defaultLockKey, cfg.Sync.LockKey)
	assert.Equal(t, "sunday", cfg.Sync.Schedule.Weekday)
	assert.Equal(t, defaultUploadDir, cfg.Uploads.Dir)
	assert.Equal(t, "disable", cfg.DataSource.SSLMode)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), "conf/deployment.yaml")
	assert.Error(t, err)
}

func TestLoadConfigRejectsEmptySigningSecret(t *testing.T) {
	t.Setenv("TEST_SIGNING_SECRET", "")
	for name, content := range map[string]string{
		"missing":    "addr:\n  port: 1\n",
		"unset env":  "auth:\n  signing_secret: \"${TEST_SIGNING_SECRET}\"\n",
		"whitespace": "auth:\n  signing_secret: \"   \"\n",
	} {
		t.Run(name, func(t *testing.T) {
			home := writeDeployment(t, content)
			cfg, err := LoadConfig(home, "conf/deployment.yaml")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "signing_secret")
		})
	}
}
