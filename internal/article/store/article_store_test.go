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
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csdept/dept-portal/internal/article/model"
	"github.com/csdept/dept-portal/internal/system/database/scripts"
)

func intPtr(v int) *int { return &v }

func TestBuildListQuery_NoFilter(t *testing.T) {
	query, args := buildListQuery(model.ArticleFilter{Page: 2, Limit: 12})

	assert.Equal(t, scripts.ListArticlesBase[dialect]+" ORDER BY a.event_date DESC, a.id DESC LIMIT $1 OFFSET $2", query)
	assert.Equal(t, []interface{}{12, 12}, args)
}

func TestBuildListQuery_AllFilters(t *testing.T) {
	query, args := buildListQuery(model.ArticleFilter{
		YearMin:  intPtr(2023),
		YearMax:  intPtr(2024),
		MonthMin: intPtr(3),
		MonthMax: intPtr(5),
		Tags:     []string{"news", "sports", "news", " "},
		Page:     1,
		Limit:    6,
	})

	assert.Contains(t, query, "EXTRACT(YEAR FROM a.event_date) >= $1 AND EXTRACT(YEAR FROM a.event_date) <= $2")
	assert.Contains(t, query, "EXTRACT(MONTH FROM a.event_date) >= $3 AND EXTRACT(MONTH FROM a.event_date) <= $4")
	assert.Contains(t, query, "t.name = ANY($5) GROUP BY at.article_id HAVING COUNT(DISTINCT t.name) = $6")
	assert.True(t, regexp.MustCompile(`LIMIT \$7 OFFSET \$8$`).MatchString(query))
	require.Len(t, args, 8)
	assert.Equal(t, pq.Array([]string{"news", "sports"}), args[4])
	assert.Equal(t, 2, args[5], "duplicate and blank tags are not counted")
}

func TestList_AttachesTagsAndTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := NewArticleStore(db)

	eventDate := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	filter := model.ArticleFilter{Tags: []string{"news", "sports"}, Page: 1, Limit: 12}
	query, _ := buildListQuery(filter)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(sqlmock.AnyArg(), 2, 12, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "icon", "title", "content", "event_date", "created_at", "views", "total"}).
			AddRow(1, "/static/icons/a.png", "Both", "body", eventDate, created, 4, 1))
	mock.ExpectQuery(regexp.QuoteMeta(scripts.GetArticleTags[dialect])).
		WillReturnRows(sqlmock.NewRows([]string{"article_id", "name"}).AddRow(1, "news").AddRow(1, "sports"))

	articles, total, err := store.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, articles, 1)
	assert.Equal(t, "Both", articles[0].Title)
	assert.Equal(t, []string{"news", "sports"}, articles[0].Tags)
	assert.Equal(t, eventDate, articles[0].EventDate.Time)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ReportsMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(scripts.DeleteArticle[dialect])).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := NewArticleStore(db).Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceTags(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(scripts.DeleteArticleTags[dialect])).WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(scripts.InsertArticleTag[dialect])).WithArgs(int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(scripts.InsertArticleTag[dialect])).WithArgs(int64(1), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewArticleStore(db).ReplaceTags(context.Background(), 1, []int64{3, 4}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
