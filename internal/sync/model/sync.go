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

package model

import "time"

// Entity names accepted by the sync endpoints and the admin CLI.
const (
	EntityAll             = "all"
	EntityTeachers        = "teachers"
	EntitySubjects        = "subjects"
	EntityStudGroups      = "groups"
	EntityCurriculumUnits = "units"
)

const (
	PolicyFullReplace = "full-replace"
	PolicyIncremental = "incremental"
)

// SyncResult summarizes one committed reconciliation run.
type SyncResult struct {
	RunID           string    `json:"run_id"`
	Entity          string    `json:"entity"`
	Policy          string    `json:"policy"`
	Teachers        int       `json:"teachers"`
	Subjects        int       `json:"subjects"`
	StudGroups      int       `json:"stud_groups"`
	CurriculumUnits int       `json:"curriculum_units"`
	Links           int       `json:"links"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
}

// RunStatus is the outcome of the latest attempted run, reported by the health endpoint.
type RunStatus struct {
	LastSuccess *SyncResult `json:"last_success,omitempty"`
	LastAttempt *time.Time  `json:"last_attempt,omitempty"`
	LastError   string      `json:"last_error,omitempty"`
}
