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

import "time"

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel   string `yaml:"log_level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type AuthConfig struct {
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	SigningSecret      string        `yaml:"signing_secret"`
	TokenTTL           time.Duration `yaml:"token_ttl"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// BRSConfig holds the URL templates of the BRS endpoints and the outbound client settings.
// A template containing {year} is probed over (year, session) pairs.
type BRSConfig struct {
	TeachersURL    string        `yaml:"teachers_url"`
	SubjectsURL    string        `yaml:"subjects_url"`
	GroupsURL      string        `yaml:"groups_url"`
	UnitsURL       string        `yaml:"units_url"`
	Timeout        time.Duration `yaml:"timeout"`
	RetryCount     int           `yaml:"retry_count"`
	RetryWait      time.Duration `yaml:"retry_wait"`
	SearchMaxYears int           `yaml:"search_max_years"`
}

type ScheduleConfig struct {
	Enabled bool   `yaml:"enabled"`
	Weekday string `yaml:"weekday"`
	Hour    int    `yaml:"hour"`
	Minute  int    `yaml:"minute"`
}

type SyncConfig struct {
	Schedule ScheduleConfig `yaml:"schedule"`
	LockKey  string         `yaml:"lock_key"`
}

type UploadsConfig struct {
	Dir       string `yaml:"dir"`
	URLPrefix string `yaml:"url_prefix"`
}

type IconsConfig struct {
	DefaultMale    string `yaml:"default_male"`
	DefaultFemale  string `yaml:"default_female"`
	DefaultArticle string `yaml:"default_article"`
}

type SiteConfig struct {
	PinnedTeacherSurname string `yaml:"pinned_teacher_surname"`
	HiddenRankShort      string `yaml:"hidden_rank_short"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	Auth       AuthConfig       `yaml:"auth"`
	DataSource DataSourceConfig `yaml:"datasource"`
	BRS        BRSConfig        `yaml:"brs"`
	Sync       SyncConfig       `yaml:"sync"`
	Uploads    UploadsConfig    `yaml:"uploads"`
	Icons      IconsConfig      `yaml:"icons"`
	Site       SiteConfig       `yaml:"site"`
}
