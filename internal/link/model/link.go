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

// Link attaches a teacher to a curriculum unit. IsPractice distinguishes the practice role from
// the primary one. Links are derived from curriculum units and rebuilt by the sync engine only.
type Link struct {
	TeacherID        int64 `json:"teacher_id"`
	CurriculumUnitID int64 `json:"curriculum_unit_id"`
	IsPractice       bool  `json:"is_practice"`
}
