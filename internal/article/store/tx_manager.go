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

	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

// TxManagerInterface runs fn with an article store bound to one transaction.
type TxManagerInterface interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, store ArticleStoreInterface) error) error
}

type TxManager struct {
	db *sql.DB
}

func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, store ArticleStoreInterface) error) error {

	logger := log.GetLogger()
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("Failed to begin the article transaction.", log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.TX_BEGIN.Code,
			Message:     errors2.TX_BEGIN.Message,
			Description: "Failed to begin the article transaction.",
		}, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, NewArticleStore(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Failed to roll back the article transaction", log.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.TX_COMMIT.Code,
			Message:     errors2.TX_COMMIT.Message,
			Description: "Failed to commit the article transaction.",
		}, err)
	}
	return nil
}
