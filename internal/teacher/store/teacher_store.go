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

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/csdept/dept-portal/internal/system/database/client"
	"github.com/csdept/dept-portal/internal/system/database/scripts"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
	"github.com/csdept/dept-portal/internal/teacher/model"
)

const dialect = "postgres"

// TeacherStoreInterface is the repository contract for teachers.
type TeacherStoreInterface interface {
	FindByID(ctx context.Context, id int64) (*model.Teacher, error)
	FindByBrsID(ctx context.Context, brsID int64) (*model.Teacher, error)
	FindByPersonID(ctx context.Context, personID int64) (*model.Teacher, error)
	FindByBrsIDs(ctx context.Context, brsIDs []int64) ([]model.Teacher, error)
	ListAll(ctx context.Context) ([]model.Teacher, error)
	Insert(ctx context.Context, teacher *model.Teacher) error
	Upsert(ctx context.Context, teacher *model.Teacher) error
	Update(ctx context.Context, teacher *model.Teacher) error
	UpdateIcon(ctx context.Context, id int64, icon string) error
	DeleteByIDs(ctx context.Context, ids []int64) error
	DeleteAll(ctx context.Context) error
	ListSubjects(ctx context.Context, teacherID int64) ([]model.TeacherSubject, error)
	ListBySubject(ctx context.Context, subjectID int64) ([]model.SubjectTeacher, error)
}

// TeacherStore runs against a pool (immediate commit) or a transaction.
type TeacherStore struct {
	db client.Executor
}

func NewTeacherStore(db client.Executor) *TeacherStore {
	return &TeacherStore{db: db}
}

func serverError(code errors2.ErrorMessage, description string, err error) error {
	log.GetLogger().Debug(description, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        code.Code,
		Message:     code.Message,
		Description: description,
	}, err)
}

func scanTeacher(row interface{ Scan(...interface{}) error }) (model.Teacher, error) {
	var t model.Teacher
	err := row.Scan(&t.ID, &t.BrsID, &t.AcademicDegree, &t.DepartmentID, &t.DepartmentLeader,
		pq.Array(&t.DepartmentPartTimeJobIDs), &t.DepartmentSecretary, &t.Firstname, &t.Gender, &t.Middlename,
		&t.PersonID, &t.Rank, &t.RankShort, &t.Surname, &t.Icon)
	return t, err
}

func (s *TeacherStore) findOne(ctx context.Context, query string, arg interface{}, what string) (*model.Teacher, error) {

	t, err := scanTeacher(s.db.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		log.GetLogger().Debug(fmt.Sprintf("No teacher found for %s", what))
		return nil, nil
	}
	if err != nil {
		return nil, serverError(errors2.FETCH_TEACHERS, fmt.Sprintf("Failed to fetch teacher for %s", what), err)
	}
	return &t, nil
}

func (s *TeacherStore) findMany(ctx context.Context, query string, args ...interface{}) ([]model.Teacher, error) {

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, serverError(errors2.FETCH_TEACHERS, "Failed to execute query for fetching teachers.", err)
	}
	defer rows.Close()

	teachers := make([]model.Teacher, 0)
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, serverError(errors2.FETCH_TEACHERS, "Failed to scan teacher row.", err)
		}
		teachers = append(teachers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, serverError(errors2.FETCH_TEACHERS, "Failed to iterate teacher rows.", err)
	}
	return teachers, nil
}

// FindByID returns nil when no teacher has the given local id.
func (s *TeacherStore) FindByID(ctx context.Context, id int64) (*model.Teacher, error) {
	return s.findOne(ctx, scripts.GetTeacherByID[dialect], id, fmt.Sprintf("id: %d", id))
}

// FindByBrsID returns nil when no teacher has the given business key.
func (s *TeacherStore) FindByBrsID(ctx context.Context, brsID int64) (*model.Teacher, error) {
	return s.findOne(ctx, scripts.GetTeacherByBrsID[dialect], brsID, fmt.Sprintf("brs_id: %d", brsID))
}

func (s *TeacherStore) FindByPersonID(ctx context.Context, personID int64) (*model.Teacher, error) {
	return s.findOne(ctx, scripts.GetTeacherByPersonID[dialect], personID, fmt.Sprintf("person_id: %d", personID))
}

func (s *TeacherStore) FindByBrsIDs(ctx context.Context, brsIDs []int64) ([]model.Teacher, error) {
	if len(brsIDs) == 0 {
		return []model.Teacher{}, nil
	}
	return s.findMany(ctx, scripts.GetTeachersByBrsIDs[dialect], pq.Array(brsIDs))
}

func (s *TeacherStore) ListAll(ctx context.Context) ([]model.Teacher, error) {
	return s.findMany(ctx, scripts.ListTeachers[dialect])
}

func teacherArgs(t *model.Teacher) []interface{} {
	jobIDs := t.DepartmentPartTimeJobIDs
	if jobIDs == nil {
		jobIDs = []int64{}
	}
	return []interface{}{t.BrsID, t.AcademicDegree, t.DepartmentID, t.DepartmentLeader, pq.Array(jobIDs),
		t.DepartmentSecretary, t.Firstname, t.Gender, t.Middlename, t.PersonID, t.Rank, t.RankShort, t.Surname, t.Icon}
}

// Insert stores a new teacher and sets its local id.
func (s *TeacherStore) Insert(ctx context.Context, t *model.Teacher) error {

	err := s.db.QueryRowContext(ctx, scripts.InsertTeacher[dialect], teacherArgs(t)...).Scan(&t.ID)
	if err != nil {
		return serverError(errors2.UPSERT_TEACHER,
			fmt.Sprintf("Failed to insert teacher with person_id: %d", t.PersonID), err)
	}
	return nil
}

// Upsert inserts or updates by brs_id. An existing icon is kept; t.ID and t.Icon are set to the
// stored values.
func (s *TeacherStore) Upsert(ctx context.Context, t *model.Teacher) error {

	if t.BrsID == nil {
		return serverError(errors2.UPSERT_TEACHER, "Cannot upsert a teacher without brs_id.", nil)
	}
	err := s.db.QueryRowContext(ctx, scripts.UpsertTeacher[dialect], teacherArgs(t)...).Scan(&t.ID, &t.Icon)
	if err != nil {
		return serverError(errors2.UPSERT_TEACHER, fmt.Sprintf("Failed to upsert teacher with brs_id: %d", *t.BrsID), err)
	}
	return nil
}

func (s *TeacherStore) Update(ctx context.Context, t *model.Teacher) error {

	jobIDs := t.DepartmentPartTimeJobIDs
	if jobIDs == nil {
		jobIDs = []int64{}
	}
	_, err := s.db.ExecContext(ctx, scripts.UpdateTeacher[dialect], t.AcademicDegree, t.DepartmentID,
		t.DepartmentLeader, pq.Array(jobIDs), t.DepartmentSecretary, t.Firstname, t.Gender, t.Middlename, t.Rank,
		t.RankShort, t.Surname, t.ID)
	if err != nil {
		return serverError(errors2.UPSERT_TEACHER, fmt.Sprintf("Failed to update teacher: %d", t.ID), err)
	}
	return nil
}

func (s *TeacherStore) UpdateIcon(ctx context.Context, id int64, icon string) error {

	_, err := s.db.ExecContext(ctx, scripts.UpdateTeacherIcon[dialect], icon, id)
	if err != nil {
		return serverError(errors2.UPSERT_TEACHER, fmt.Sprintf("Failed to update icon of teacher: %d", id), err)
	}
	return nil
}

func (s *TeacherStore) DeleteByIDs(ctx context.Context, ids []int64) error {

	if len(ids) == 0 {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, scripts.DeleteTeachersByIDs[dialect], pq.Array(ids)); err != nil {
		return serverError(errors2.DELETE_TEACHERS, "Failed to delete teachers by id.", err)
	}
	return nil
}

func (s *TeacherStore) DeleteAll(ctx context.Context) error {

	if _, err := s.db.ExecContext(ctx, scripts.DeleteAllTeachers[dialect]); err != nil {
		return serverError(errors2.DELETE_TEACHERS, "Failed to delete teachers.", err)
	}
	return nil
}

// ListSubjects returns the subjects a teacher is linked to, once per role.
func (s *TeacherStore) ListSubjects(ctx context.Context, teacherID int64) ([]model.TeacherSubject, error) {

	rows, err := s.db.QueryContext(ctx, scripts.GetSubjectsByTeacher[dialect], teacherID)
	if err != nil {
		return nil, serverError(errors2.FETCH_LINKS, fmt.Sprintf("Failed to fetch subjects of teacher: %d", teacherID), err)
	}
	defer rows.Close()

	subjects := make([]model.TeacherSubject, 0)
	for rows.Next() {
		var ts model.TeacherSubject
		if err := rows.Scan(&ts.ID, &ts.BrsID, &ts.Name, &ts.IsPractice); err != nil {
			return nil, serverError(errors2.FETCH_LINKS, "Failed to scan subject row.", err)
		}
		subjects = append(subjects, ts)
	}
	return subjects, rows.Err()
}

// ListBySubject returns the teachers linked to a subject, once per role.
func (s *TeacherStore) ListBySubject(ctx context.Context, subjectID int64) ([]model.SubjectTeacher, error) {

	rows, err := s.db.QueryContext(ctx, scripts.GetTeachersBySubject[dialect], subjectID)
	if err != nil {
		return nil, serverError(errors2.FETCH_LINKS, fmt.Sprintf("Failed to fetch teachers of subject: %d", subjectID), err)
	}
	defer rows.Close()

	teachers := make([]model.SubjectTeacher, 0)
	for rows.Next() {
		var st model.SubjectTeacher
		if err := rows.Scan(&st.ID, &st.Surname, &st.Firstname, &st.Middlename, &st.RankShort, &st.Icon,
			&st.IsPractice); err != nil {
			return nil, serverError(errors2.FETCH_LINKS, "Failed to scan teacher row.", err)
		}
		teachers = append(teachers, st)
	}
	return teachers, rows.Err()
}
