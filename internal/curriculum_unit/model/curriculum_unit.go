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

import (
	subjectModel "github.com/csdept/dept-portal/internal/subject/model"
	groupModel "github.com/csdept/dept-portal/internal/stud_group/model"
	teacherModel "github.com/csdept/dept-portal/internal/teacher/model"
)

const DefaultMarkType = "unspecified"

// CurriculumUnit binds a subject, a student group and its teachers. All references are BRS ids
// and may point at rows that do not exist locally.
type CurriculumUnit struct {
	ID                    int64   `json:"id"`
	BrsID                 int64   `json:"brs_id"`
	TeacherBrsID          *int64  `json:"teacher_brs_id"`
	SubjectBrsID          *int64  `json:"subject_brs_id"`
	StudGroupBrsID        *int64  `json:"stud_group_brs_id"`
	PracticeTeacherBrsIDs []int64 `json:"practice_teacher_brs_ids"`
	MarkType              string  `json:"mark_type"`
}

// CurriculumUnitFull is a unit with its references resolved. Unresolved references are nil.
type CurriculumUnitFull struct {
	ID               int64                  `json:"id"`
	BrsID            int64                  `json:"brs_id"`
	MarkType         string                 `json:"mark_type"`
	Teacher          *teacherModel.Teacher  `json:"teacher"`
	Subject          *subjectModel.Subject  `json:"subject"`
	StudGroup        *groupModel.StudGroup  `json:"stud_group"`
	PracticeTeachers []teacherModel.Teacher `json:"practice_teachers"`
}
