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

//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csdept/dept-portal/internal/article/model"
	articleStore "github.com/csdept/dept-portal/internal/article/store"
	tagModel "github.com/csdept/dept-portal/internal/tag/model"
	tagStore "github.com/csdept/dept-portal/internal/tag/store"
)

func intPtr(v int) *int { return &v }

func seedArticle(t *testing.T, store *articleStore.ArticleStore, title string, date time.Time, tagIDs ...int64) {
	t.Helper()
	ctx := context.Background()
	article := &model.Article{Title: title, EventDate: model.Date{Time: date}}
	require.NoError(t, store.Insert(ctx, article))
	require.NoError(t, store.ReplaceTags(ctx, article.ID, tagIDs))
}

func TestArticleListFilters(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	tags := tagStore.NewTagStore(testDB)
	articles := articleStore.NewArticleStore(testDB)

	news, olympiad := &tagModel.Tag{Name: "news"}, &tagModel.Tag{Name: "olympiad"}
	require.NoError(t, tags.Insert(ctx, news))
	require.NoError(t, tags.Insert(ctx, olympiad))

	seedArticle(t, articles, "Both tags", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), news.ID, olympiad.ID)
	seedArticle(t, articles, "News only", time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), news.ID)
	seedArticle(t, articles, "Old olympiad", time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC), olympiad.ID, news.ID)

	t.Run("tags use AND semantics", func(t *testing.T) {
		list, total, err := articles.List(ctx, model.ArticleFilter{Tags: []string{"news", "olympiad"}, Page: 1, Limit: 12})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, list, 2)
		assert.Equal(t, "Both tags", list[0].Title)
		assert.ElementsMatch(t, []string{"news", "olympiad"}, list[0].Tags)
	})

	t.Run("year and month ranges are inclusive", func(t *testing.T) {
		list, total, err := articles.List(ctx, model.ArticleFilter{
			YearMin: intPtr(2024), YearMax: intPtr(2024), MonthMin: intPtr(3), MonthMax: intPtr(4), Page: 1, Limit: 12,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, "Both tags", list[0].Title)
	})

	t.Run("pagination keeps the total", func(t *testing.T) {
		list, total, err := articles.List(ctx, model.ArticleFilter{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, list, 1)
		assert.Equal(t, "Old olympiad", list[0].Title)
	})
}
