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

	unitStore "github.com/csdept/dept-portal/internal/curriculum_unit/store"
	linkStore "github.com/csdept/dept-portal/internal/link/store"
	subjectStore "github.com/csdept/dept-portal/internal/subject/store"
	groupStore "github.com/csdept/dept-portal/internal/stud_group/store"
	"github.com/csdept/dept-portal/internal/system/database/client"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
	teacherStore "github.com/csdept/dept-portal/internal/teacher/store"
)

// Repositories bundles the mirror stores bound to one executor.
type Repositories struct {
	Teachers   teacherStore.TeacherStoreInterface
	Subjects   subjectStore.SubjectStoreInterface
	StudGroups groupStore.StudGroupStoreInterface
	Units      unitStore.CurriculumUnitStoreInterface
	Links      linkStore.LinkStoreInterface
}

// NewRepositories binds every mirror store to db, which is either a pool or a transaction.
func NewRepositories(db client.Executor) Repositories {
	return Repositories{
		Teachers:   teacherStore.NewTeacherStore(db),
		Subjects:   subjectStore.NewSubjectStore(db),
		StudGroups: groupStore.NewStudGroupStore(db),
		Units:      unitStore.NewCurriculumUnitStore(db),
		Links:      linkStore.NewLinkStore(db),
	}
}

// TxManagerInterface runs fn inside one transaction. fn's error rolls everything back.
type TxManagerInterface interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

type TxManager struct {
	db *sql.DB
}

func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {

	logger := log.GetLogger()
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		errorMsg := "Failed to begin the sync transaction."
		logger.Error(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.TX_BEGIN.Code,
			Message:     errors2.TX_BEGIN.Message,
			Description: errorMsg,
		}, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, NewRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Failed to roll back the sync transaction", log.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		errorMsg := fmt.Sprintf("Failed to commit the sync transaction: %v", err)
		logger.Error(errorMsg)
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.TX_COMMIT.Code,
			Message:     errors2.TX_COMMIT.Message,
			Description: "Failed to commit the sync transaction.",
		}, err)
	}
	return nil
}
