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
	unitModel "github.com/csdept/dept-portal/internal/curriculum_unit/model"
	subjectModel "github.com/csdept/dept-portal/internal/subject/model"
	groupModel "github.com/csdept/dept-portal/internal/stud_group/model"
	teacherModel "github.com/csdept/dept-portal/internal/teacher/model"
)

// Envelope keys of the BRS list endpoints.
const (
	TeachersKey        = "teachers"
	SubjectsKey        = "subjects"
	StudGroupsKey      = "stud_groups"
	CurriculumUnitsKey = "curriculum_units"
	OkKey              = "ok"
)

// TeacherPayload is a teacher record as published by BRS. Fields not listed here are ignored.
type TeacherPayload struct {
	ID                       int64   `json:"id"`
	AcademicDegree           *string `json:"academic_degree"`
	DepartmentID             int64   `json:"department_id"`
	DepartmentLeader         bool    `json:"department_leader"`
	DepartmentPartTimeJobIDs []int64 `json:"department_part_time_job_ids"`
	DepartmentSecretary      bool    `json:"department_secretary"`
	Firstname                string  `json:"firstname"`
	Gender                   string  `json:"gender"`
	Middlename               *string `json:"middlename"`
	PersonID                 int64   `json:"person_id"`
	Rank                     string  `json:"rank"`
	RankShort                *string `json:"rank_short"`
	Surname                  string  `json:"surname"`
	Icon                     *string `json:"icon"`
}

type SubjectPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type StudGroupPayload struct {
	ID             int64  `json:"id"`
	Course         int    `json:"course"`
	Semester       int    `json:"semester"`
	EducationLevel string `json:"education_level"`
}

type CurriculumUnitPayload struct {
	ID                 int64   `json:"id"`
	TeacherID          *int64  `json:"teacher_id"`
	SubjectID          *int64  `json:"subject_id"`
	StudGroupID        *int64  `json:"stud_group_id"`
	PracticeTeacherIDs []int64 `json:"practice_teacher_ids"`
	MarkType           *string `json:"mark_type"`
}

// ToTeacher maps id to brs_id. The icon is copied as published; the caller decides defaults.
func (p TeacherPayload) ToTeacher() teacherModel.Teacher {
	brsID := p.ID
	jobIDs := p.DepartmentPartTimeJobIDs
	if jobIDs == nil {
		jobIDs = []int64{}
	}
	return teacherModel.Teacher{
		BrsID:                    &brsID,
		AcademicDegree:           p.AcademicDegree,
		DepartmentID:             p.DepartmentID,
		DepartmentLeader:         p.DepartmentLeader,
		DepartmentPartTimeJobIDs: jobIDs,
		DepartmentSecretary:      p.DepartmentSecretary,
		Firstname:                p.Firstname,
		Gender:                   p.Gender,
		Middlename:               p.Middlename,
		PersonID:                 p.PersonID,
		Rank:                     p.Rank,
		RankShort:                p.RankShort,
		Surname:                  p.Surname,
		Icon:                     p.Icon,
	}
}

func (p SubjectPayload) ToSubject() subjectModel.Subject {
	return subjectModel.Subject{BrsID: p.ID, Name: p.Name}
}

func (p StudGroupPayload) ToStudGroup() groupModel.StudGroup {
	return groupModel.StudGroup{
		BrsID:          p.ID,
		Course:         p.Course,
		Semester:       p.Semester,
		EducationLevel: p.EducationLevel,
	}
}

// ToCurriculumUnit maps id, teacher_id, subject_id, stud_group_id and practice_teacher_ids onto
// their *_brs_id counterparts. A missing mark type becomes "unspecified".
func (p CurriculumUnitPayload) ToCurriculumUnit() unitModel.CurriculumUnit {
	markType := unitModel.DefaultMarkType
	if p.MarkType != nil && *p.MarkType != "" {
		markType = *p.MarkType
	}
	practice := p.PracticeTeacherIDs
	if practice == nil {
		practice = []int64{}
	}
	return unitModel.CurriculumUnit{
		BrsID:                 p.ID,
		TeacherBrsID:          p.TeacherID,
		SubjectBrsID:          p.SubjectID,
		StudGroupBrsID:        p.StudGroupID,
		PracticeTeacherBrsIDs: practice,
		MarkType:              markType,
	}
}

func ToTeachers(payloads []TeacherPayload) []teacherModel.Teacher {
	out := make([]teacherModel.Teacher, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.ToTeacher())
	}
	return out
}

func ToSubjects(payloads []SubjectPayload) []subjectModel.Subject {
	out := make([]subjectModel.Subject, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.ToSubject())
	}
	return out
}

func ToStudGroups(payloads []StudGroupPayload) []groupModel.StudGroup {
	out := make([]groupModel.StudGroup, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.ToStudGroup())
	}
	return out
}

func ToCurriculumUnits(payloads []CurriculumUnitPayload) []unitModel.CurriculumUnit {
	out := make([]unitModel.CurriculumUnit, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.ToCurriculumUnit())
	}
	return out
}
