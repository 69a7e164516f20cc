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

// Gender codes used by BRS.
const (
	GenderMale   = "M"
	GenderFemale = "W"
)

// Teacher is a department staff member mirrored from BRS. BrsID is nil for teachers created by an
// administrator. Icon is operator state and is never overwritten by a sync.
type Teacher struct {
	ID                       int64   `json:"id"`
	BrsID                    *int64  `json:"brs_id"`
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

// TeacherCreateRequest is the body of the administrative create endpoint.
type TeacherCreateRequest struct {
	AcademicDegree           *string `json:"academic_degree"`
	DepartmentID             int64   `json:"department_id" validate:"required"`
	DepartmentLeader         bool    `json:"department_leader"`
	DepartmentPartTimeJobIDs []int64 `json:"department_part_time_job_ids"`
	DepartmentSecretary      bool    `json:"department_secretary"`
	Firstname                string  `json:"firstname" validate:"required"`
	Gender                   string  `json:"gender" validate:"required"`
	Middlename               *string `json:"middlename"`
	PersonID                 int64   `json:"person_id" validate:"required"`
	Rank                     string  `json:"rank" validate:"required"`
	RankShort                *string `json:"rank_short"`
	Surname                  string  `json:"surname" validate:"required"`
}

// ToTeacher builds a teacher without a BRS identity.
func (r TeacherCreateRequest) ToTeacher() Teacher {
	return Teacher{
		AcademicDegree:           r.AcademicDegree,
		DepartmentID:             r.DepartmentID,
		DepartmentLeader:         r.DepartmentLeader,
		DepartmentPartTimeJobIDs: r.DepartmentPartTimeJobIDs,
		DepartmentSecretary:      r.DepartmentSecretary,
		Firstname:                r.Firstname,
		Gender:                   r.Gender,
		Middlename:               r.Middlename,
		PersonID:                 r.PersonID,
		Rank:                     r.Rank,
		RankShort:                r.RankShort,
		Surname:                  r.Surname,
	}
}

// TeacherPatch lists every field an administrator may change. Nil fields are left as they are.
// Identity fields (id, brs_id, person_id) and the icon are not patchable.
type TeacherPatch struct {
	AcademicDegree           *string  `json:"academic_degree"`
	DepartmentID             *int64   `json:"department_id"`
	DepartmentLeader         *bool    `json:"department_leader"`
	DepartmentPartTimeJobIDs *[]int64 `json:"department_part_time_job_ids"`
	DepartmentSecretary      *bool    `json:"department_secretary"`
	Firstname                *string  `json:"firstname" validate:"omitempty,min=1"`
	Gender                   *string  `json:"gender" validate:"omitempty,min=1"`
	Middlename               *string  `json:"middlename"`
	Rank                     *string  `json:"rank" validate:"omitempty,min=1"`
	RankShort                *string  `json:"rank_short"`
	Surname                  *string  `json:"surname" validate:"omitempty,min=1"`
}

// Apply copies the set fields of the patch onto t.
func (p TeacherPatch) Apply(t *Teacher) {
	if p.AcademicDegree != nil {
		t.AcademicDegree = p.AcademicDegree
	}
	if p.DepartmentID != nil {
		t.DepartmentID = *p.DepartmentID
	}
	if p.DepartmentLeader != nil {
		t.DepartmentLeader = *p.DepartmentLeader
	}
	if p.DepartmentPartTimeJobIDs != nil {
		t.DepartmentPartTimeJobIDs = *p.DepartmentPartTimeJobIDs
	}
	if p.DepartmentSecretary != nil {
		t.DepartmentSecretary = *p.DepartmentSecretary
	}
	if p.Firstname != nil {
		t.Firstname = *p.Firstname
	}
	if p.Gender != nil {
		t.Gender = *p.Gender
	}
	if p.Middlename != nil {
		t.Middlename = p.Middlename
	}
	if p.Rank != nil {
		t.Rank = *p.Rank
	}
	if p.RankShort != nil {
		t.RankShort = p.RankShort
	}
	if p.Surname != nil {
		t.Surname = *p.Surname
	}
}

// TeacherSubject is a subject taught by a teacher, in the role given by IsPractice.
type TeacherSubject struct {
	ID         int64  `json:"id"`
	BrsID      int64  `json:"brs_id"`
	Name       string `json:"name"`
	IsPractice bool   `json:"is_practice"`
}

// SubjectTeacher is a teacher of a subject, in the role given by IsPractice.
type SubjectTeacher struct {
	ID         int64   `json:"id"`
	Surname    string  `json:"surname"`
	Firstname  string  `json:"firstname"`
	Middlename *string `json:"middlename"`
	RankShort  *string `json:"rank_short"`
	Icon       *string `json:"icon"`
	IsPractice bool    `json:"is_practice"`
}

// DefaultIcon picks the icon for a teacher without one. Nil when no icon is configured for the gender.
func DefaultIcon(male, female, gender string) *string {
	var icon string
	switch gender {
	case GenderMale:
		icon = male
	case GenderFemale:
		icon = female
	}
	if icon == "" {
		return nil
	}
	return &icon
}
