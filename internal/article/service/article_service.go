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

package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/csdept/dept-portal/internal/article/model"
	"github.com/csdept/dept-portal/internal/article/store"
	"github.com/csdept/dept-portal/internal/system/constants"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
	tagModel "github.com/csdept/dept-portal/internal/tag/model"
)

type ArticleServiceInterface interface {
	ListArticles(ctx context.Context, filter model.ArticleFilter) ([]model.Article, int, error)
	ListLatestArticles(ctx context.Context) ([]model.Article, error)
	GetArticle(ctx context.Context, id int64) (*model.Article, error)
	CreateArticle(ctx context.Context, create model.ArticleCreate, icon multipart.File, header *multipart.FileHeader,
		admin string) (*model.Article, error)
	UpdateArticle(ctx context.Context, id int64, patch model.ArticlePatch, icon multipart.File,
		header *multipart.FileHeader, admin string) (*model.Article, error)
	DeleteArticle(ctx context.Context, id int64, admin string) error
}

type ImageStore interface {
	SaveImage(file multipart.File, header *multipart.FileHeader) (string, error)
}

type TagLookup interface {
	FindByIDs(ctx context.Context, ids []int64) ([]tagModel.Tag, error)
}

type ArticleService struct {
	store       store.ArticleStoreInterface
	txm         store.TxManagerInterface
	tags        TagLookup
	images      ImageStore
	defaultIcon string
}

func NewArticleService(store store.ArticleStoreInterface, txm store.TxManagerInterface, tags TagLookup,
	images ImageStore, defaultIcon string) *ArticleService {

	return &ArticleService{store: store, txm: txm, tags: tags, images: images, defaultIcon: defaultIcon}
}

// ListArticles validates the filter and returns one page plus the total number of matches.
func (s *ArticleService) ListArticles(ctx context.Context, filter model.ArticleFilter) ([]model.Article, int, error) {

	if err := validateFilter(filter); err != nil {
		return nil, 0, err
	}
	return s.store.List(ctx, filter)
}

func validateFilter(f model.ArticleFilter) error {
	if f.HasMonth() && !f.HasYear() {
		return filterError("Filtering by month requires a year range.")
	}
	for _, m := range []*int{f.MonthMin, f.MonthMax} {
		if m != nil && (*m < 1 || *m > 12) {
			return filterError(fmt.Sprintf("Month %d is out of range 1-12.", *m))
		}
	}
	if f.YearMin != nil && f.YearMax != nil && *f.YearMin > *f.YearMax {
		return filterError("year_min must not be greater than year_max.")
	}
	if f.MonthMin != nil && f.MonthMax != nil && *f.MonthMin > *f.MonthMax {
		return filterError("month_min must not be greater than month_max.")
	}
	return nil
}

func (s *ArticleService) ListLatestArticles(ctx context.Context) ([]model.Article, error) {
	return s.store.ListLatest(ctx, constants.LatestArticlesCount)
}

// GetArticle counts a view and returns the article with the updated count.
func (s *ArticleService) GetArticle(ctx context.Context, id int64) (*model.Article, error) {

	article, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	article.Views++
	return article, nil
}

func (s *ArticleService) find(ctx context.Context, id int64) (*model.Article, error) {

	article, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ARTICLE_NOT_FOUND.Code,
			Message:     errors2.ARTICLE_NOT_FOUND.Message,
			Description: fmt.Sprintf("No article found with id %d.", id),
		}, http.StatusNotFound)
	}
	return article, nil
}

// CreateArticle rejects duplicate titles and unknown tags before anything is written. Without an
// uploaded icon the default article icon is used.
func (s *ArticleService) CreateArticle(ctx context.Context, create model.ArticleCreate, icon multipart.File,
	header *multipart.FileHeader, admin string) (*model.Article, error) {

	create.Title = strings.TrimSpace(create.Title)
	if err := s.ensureTitleFree(ctx, create.Title, 0); err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(ctx, create.TagIDs)
	if err != nil {
		return nil, err
	}

	article := &model.Article{
		Title:     create.Title,
		Content:   create.Content,
		EventDate: create.EventDate,
		Tags:      tags,
	}
	if icon != nil {
		url, err := s.images.SaveImage(icon, header)
		if err != nil {
			return nil, err
		}
		article.Icon = &url
	} else if s.defaultIcon != "" {
		defaultIcon := s.defaultIcon
		article.Icon = &defaultIcon
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context, tx store.ArticleStoreInterface) error {
		if err := tx.Insert(ctx, article); err != nil {
			return err
		}
		return tx.ReplaceTags(ctx, article.ID, create.TagIDs)
	})
	if err != nil {
		return nil, err
	}
	s.audit(admin, log.ActionAddArticle, article.ID)
	return article, nil
}

// UpdateArticle applies the set fields of patch. A new title must not belong to another article.
func (s *ArticleService) UpdateArticle(ctx context.Context, id int64, patch model.ArticlePatch, icon multipart.File,
	header *multipart.FileHeader, admin string) (*model.Article, error) {

	article, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
		if err := s.ensureTitleFree(ctx, title, id); err != nil {
			return nil, err
		}
	}
	if patch.TagIDs != nil {
		if article.Tags, err = s.resolveTags(ctx, *patch.TagIDs); err != nil {
			return nil, err
		}
	}
	if icon != nil {
		url, err := s.images.SaveImage(icon, header)
		if err != nil {
			return nil, err
		}
		patch.Icon = &url
	}
	patch.Apply(article)

	err = s.txm.WithinTx(ctx, func(ctx context.Context, tx store.ArticleStoreInterface) error {
		if err := tx.Update(ctx, article); err != nil {
			return err
		}
		if patch.TagIDs == nil {
			return nil
		}
		return tx.ReplaceTags(ctx, id, *patch.TagIDs)
	})
	if err != nil {
		return nil, err
	}
	s.audit(admin, log.ActionUpdateArticle, id)
	return article, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id int64, admin string) error {

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ARTICLE_NOT_FOUND.Code,
			Message:     errors2.ARTICLE_NOT_FOUND.Message,
			Description: fmt.Sprintf("No article found with id %d.", id),
		}, http.StatusNotFound)
	}
	s.audit(admin, log.ActionDeleteArticle, id)
	return nil
}

// ensureTitleFree fails with a conflict when another article (not self) already uses title.
func (s *ArticleService) ensureTitleFree(ctx context.Context, title string, self int64) error {

	existing, err := s.store.FindByTitle(ctx, title)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ARTICLE_ALREADY_EXISTS.Code,
			Message:     errors2.ARTICLE_ALREADY_EXISTS.Message,
			Description: fmt.Sprintf("An article titled '%s' already exists.", title),
		}, http.StatusConflict)
	}
	return nil
}

// resolveTags checks every id refers to an existing tag and returns the tag names.
func (s *ArticleService) resolveTags(ctx context.Context, ids []int64) ([]string, error) {

	tags, err := s.tags.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := make(map[int64]string, len(tags))
	for _, tag := range tags {
		known[tag.ID] = tag.Name
	}
	names := make([]string, 0, len(tags))
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return nil, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.BAD_REQUEST.Code,
				Message:     errors2.BAD_REQUEST.Message,
				Description: fmt.Sprintf("Tag %d does not exist.", id),
			}, http.StatusBadRequest)
		}
	}
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names, nil
}

func (s *ArticleService) audit(admin, action string, id int64) {
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   admin,
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      fmt.Sprint(id),
		TargetType:    log.TargetTypeArticle,
		ActionID:      action,
	})
}

func filterError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.ARTICLE_FILTER_INVALID.Code,
		Message:     errors2.ARTICLE_FILTER_INVALID.Message,
		Description: description,
	}, http.StatusBadRequest)
}
