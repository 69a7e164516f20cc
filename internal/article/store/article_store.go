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
	"strings"

	"github.com/lib/pq"

	"github.com/csdept/dept-portal/internal/article/model"
	"github.com/csdept/dept-portal/internal/system/database/client"
	"github.com/csdept/dept-portal/internal/system/database/scripts"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

const dialect = "postgres"

type ArticleStoreInterface interface {
	List(ctx context.Context, filter model.ArticleFilter) ([]model.Article, int, error)
	ListLatest(ctx context.Context, limit int) ([]model.Article, error)
	FindByID(ctx context.Context, id int64) (*model.Article, error)
	FindByTitle(ctx context.Context, title string) (*model.Article, error)
	IncrementViews(ctx context.Context, id int64) error
	Insert(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id int64) (bool, error)
	ReplaceTags(ctx context.Context, articleID int64, tagIDs []int64) error
}

type ArticleStore struct {
	db client.Executor
}

func NewArticleStore(db client.Executor) *ArticleStore {
	return &ArticleStore{db: db}
}

func serverError(code errors2.ErrorMessage, description string, err error) error {
	log.GetLogger().Debug(description, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        code.Code,
		Message:     code.Message,
		Description: description,
	}, err)
}

// buildListQuery appends the filter clauses to the base listing query. Tag matching requires every
// requested tag, so an article qualifies only when the number of distinct matching names equals the
// number of requested names.
func buildListQuery(filter model.ArticleFilter) (string, []interface{}) {

	var (
		conditions []string
		args       []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.YearMin != nil {
		conditions = append(conditions, "EXTRACT(YEAR FROM a.event_date) >= "+arg(*filter.YearMin))
	}
	if filter.YearMax != nil {
		conditions = append(conditions, "EXTRACT(YEAR FROM a.event_date) <= "+arg(*filter.YearMax))
	}
	if filter.MonthMin != nil {
		conditions = append(conditions, "EXTRACT(MONTH FROM a.event_date) >= "+arg(*filter.MonthMin))
	}
	if filter.MonthMax != nil {
		conditions = append(conditions, "EXTRACT(MONTH FROM a.event_date) <= "+arg(*filter.MonthMax))
	}
	if tags := distinct(filter.Tags); len(tags) > 0 {
		conditions = append(conditions, "a.id IN (SELECT at.article_id FROM article_tags at "+
			"JOIN tags t ON t.id = at.tag_id WHERE t.name = ANY("+arg(pq.Array(tags))+") "+
			"GROUP BY at.article_id HAVING COUNT(DISTINCT t.name) = "+arg(len(tags))+")")
	}

	var sb strings.Builder
	sb.WriteString(scripts.ListArticlesBase[dialect])
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY a.event_date DESC, a.id DESC")
	sb.WriteString(" LIMIT " + arg(filter.Limit))
	sb.WriteString(" OFFSET " + arg((filter.Page-1)*filter.Limit))
	return sb.String(), args
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row scanner, extra ...interface{}) (model.Article, error) {
	var a model.Article
	dest := append([]interface{}{&a.ID, &a.Icon, &a.Title, &a.Content, &a.EventDate.Time, &a.CreatedAt, &a.Views},
		extra...)
	err := row.Scan(dest...)
	a.Tags = []string{}
	return a, err
}

// List returns one page of articles matching the filter and the total number of matches.
func (s *ArticleStore) List(ctx context.Context, filter model.ArticleFilter) ([]model.Article, int, error) {

	query, args := buildListQuery(filter)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, serverError(errors2.FETCH_ARTICLES, "Failed to execute query for fetching articles.", err)
	}
	defer rows.Close()

	articles := make([]model.Article, 0)
	total := 0
	for rows.Next() {
		a, err := scanArticle(rows, &total)
		if err != nil {
			return nil, 0, serverError(errors2.FETCH_ARTICLES, "Failed to scan article row.", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, serverError(errors2.FETCH_ARTICLES, "Failed to iterate article rows.", err)
	}
	if err := s.attachTags(ctx, articles); err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// ListLatest orders upcoming events first, then by distance to today.
func (s *ArticleStore) ListLatest(ctx context.Context, limit int) ([]model.Article, error) {

	rows, err := s.db.QueryContext(ctx, scripts.ListLatestArticles[dialect], limit)
	if err != nil {
		return nil, serverError(errors2.FETCH_ARTICLES, "Failed to execute query for fetching latest articles.", err)
	}
	defer rows.Close()

	articles := make([]model.Article, 0, limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, serverError(errors2.FETCH_ARTICLES, "Failed to scan article row.", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, serverError(errors2.FETCH_ARTICLES, "Failed to iterate article rows.", err)
	}
	if err := s.attachTags(ctx, articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *ArticleStore) findOne(ctx context.Context, query string, arg interface{}) (*model.Article, error) {

	a, err := scanArticle(s.db.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, serverError(errors2.FETCH_ARTICLES, fmt.Sprintf("Failed to fetch article: %v", arg), err)
	}
	articles := []model.Article{a}
	if err := s.attachTags(ctx, articles); err != nil {
		return nil, err
	}
	return &articles[0], nil
}

func (s *ArticleStore) FindByID(ctx context.Context, id int64) (*model.Article, error) {
	return s.findOne(ctx, scripts.GetArticleByID[dialect], id)
}

func (s *ArticleStore) FindByTitle(ctx context.Context, title string) (*model.Article, error) {
	return s.findOne(ctx, scripts.GetArticleByTitle[dialect], title)
}

func (s *ArticleStore) attachTags(ctx context.Context, articles []model.Article) error {

	if len(articles) == 0 {
		return nil
	}
	ids := make([]int64, len(articles))
	index := make(map[int64]int, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
		index[a.ID] = i
	}

	rows, err := s.db.QueryContext(ctx, scripts.GetArticleTags[dialect], pq.Array(ids))
	if err != nil {
		return serverError(errors2.FETCH_TAGS, "Failed to fetch article tags.", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			articleID int64
			name      string
		)
		if err := rows.Scan(&articleID, &name); err != nil {
			return serverError(errors2.FETCH_TAGS, "Failed to scan article tag row.", err)
		}
		if i, ok := index[articleID]; ok {
			articles[i].Tags = append(articles[i].Tags, name)
		}
	}
	return rows.Err()
}

func (s *ArticleStore) IncrementViews(ctx context.Context, id int64) error {

	if _, err := s.db.ExecContext(ctx, scripts.IncrementArticleViews[dialect], id); err != nil {
		return serverError(errors2.UPDATE_ARTICLE, fmt.Sprintf("Failed to count view of article: %d", id), err)
	}
	return nil
}

// Insert stores a new article and sets its id, creation time and view count.
func (s *ArticleStore) Insert(ctx context.Context, a *model.Article) error {

	err := s.db.QueryRowContext(ctx, scripts.InsertArticle[dialect], a.Icon, a.Title, a.Content, a.EventDate.Time).
		Scan(&a.ID, &a.CreatedAt, &a.Views)
	if err != nil {
		return serverError(errors2.ADD_ARTICLE, fmt.Sprintf("Failed to insert article: %s", a.Title), err)
	}
	return nil
}

func (s *ArticleStore) Update(ctx context.Context, a *model.Article) error {

	_, err := s.db.ExecContext(ctx, scripts.UpdateArticle[dialect], a.Icon, a.Title, a.Content, a.EventDate.Time, a.ID)
	if err != nil {
		return serverError(errors2.UPDATE_ARTICLE, fmt.Sprintf("Failed to update article: %d", a.ID), err)
	}
	return nil
}

// Delete reports whether a row was removed. Tag links cascade.
func (s *ArticleStore) Delete(ctx context.Context, id int64) (bool, error) {

	result, err := s.db.ExecContext(ctx, scripts.DeleteArticle[dialect], id)
	if err != nil {
		return false, serverError(errors2.DELETE_ARTICLE, fmt.Sprintf("Failed to delete article: %d", id), err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, serverError(errors2.DELETE_ARTICLE, fmt.Sprintf("Failed to delete article: %d", id), err)
	}
	return affected > 0, nil
}

func (s *ArticleStore) ReplaceTags(ctx context.Context, articleID int64, tagIDs []int64) error {

	if _, err := s.db.ExecContext(ctx, scripts.DeleteArticleTags[dialect], articleID); err != nil {
		return serverError(errors2.UPDATE_ARTICLE, fmt.Sprintf("Failed to clear tags of article: %d", articleID), err)
	}
	for _, tagID := range tagIDs {
		if _, err := s.db.ExecContext(ctx, scripts.InsertArticleTag[dialect], articleID, tagID); err != nil {
			return serverError(errors2.UPDATE_ARTICLE,
				fmt.Sprintf("Failed to tag article %d with tag %d", articleID, tagID), err)
		}
	}
	return nil
}
