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

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/csdept/dept-portal/internal/article/model"
	"github.com/csdept/dept-portal/internal/article/service"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/pagination"
	"github.com/csdept/dept-portal/internal/system/security"
	"github.com/csdept/dept-portal/internal/system/utils"
)

const totalCountHeader = "X-Total-Count"

type ArticleHandler struct {
	service service.ArticleServiceInterface
}

func NewArticleHandler(service service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// articleForm is the multipart body of POST /articles.
type articleForm struct {
	Title     string `validate:"required,max=1024"`
	EventDate string `validate:"required"`
}

// ListArticles handles GET /articles
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	articles, total, err := h.service.ListArticles(r.Context(), filter)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	w.Header().Set(totalCountHeader, strconv.Itoa(total))
	utils.WriteJSON(w, http.StatusOK, articles)
}

func parseFilter(r *http.Request) (model.ArticleFilter, error) {

	page, err := pagination.Parse(r)
	if err != nil {
		return model.ArticleFilter{}, badRequest(err.Error())
	}
	filter := model.ArticleFilter{Page: page.Page, Limit: page.Limit}

	query := r.URL.Query()
	for name, target := range map[string]**int{
		"year_min":  &filter.YearMin,
		"year_max":  &filter.YearMax,
		"month_min": &filter.MonthMin,
		"month_max": &filter.MonthMax,
	} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return model.ArticleFilter{}, badRequest("Query parameter '" + name + "' must be an integer.")
		}
		*target = &v
	}
	for _, raw := range query["tags"] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}
	return filter, nil
}

// ListLatestArticles handles GET /articles/latest
func (h *ArticleHandler) ListLatestArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.ListLatestArticles(r.Context())
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, articles)
}

// GetArticle handles GET /articles/{id}
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt64(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	article, err := h.service.GetArticle(r.Context(), id)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, article)
}

// CreateArticle handles multipart POST /articles
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	if err := utils.ParseMultipart(w, r); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	form := articleForm{Title: formValue(r, "title"), EventDate: formValue(r, "event_date")}
	if err := utils.ValidateStruct(&form); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	eventDate, err := model.ParseDate(form.EventDate)
	if err != nil {
		utils.HandleError(w, r, badRequest(err.Error()))
		return
	}
	tagIDs, err := formIDs(r, "tag_ids")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	file, header, err := utils.FormFile(r, "icon", false)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	create := model.ArticleCreate{Title: form.Title, EventDate: eventDate, TagIDs: tagIDs}
	if content := formValue(r, "content"); content != "" {
		create.Content = &content
	}
	admin, _ := security.AdminFromContext(r.Context())
	article, err := h.service.CreateArticle(r.Context(), create, file, header, admin)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, article)
}

// UpdateArticle handles multipart PUT /articles/{id}. Every field is optional.
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt64(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	if err := utils.ParseMultipart(w, r); err != nil {
		utils.HandleError(w, r, err)
		return
	}

	var patch model.ArticlePatch
	if title := formValue(r, "title"); title != "" {
		patch.Title = &title
	}
	if content := formValue(r, "content"); content != "" {
		patch.Content = &content
	}
	if raw := formValue(r, "event_date"); raw != "" {
		eventDate, err := model.ParseDate(raw)
		if err != nil {
			utils.HandleError(w, r, badRequest(err.Error()))
			return
		}
		patch.EventDate = &eventDate
	}
	if _, ok := r.MultipartForm.Value["tag_ids"]; ok {
		tagIDs, err := formIDs(r, "tag_ids")
		if err != nil {
			utils.HandleError(w, r, err)
			return
		}
		patch.TagIDs = &tagIDs
	}
	file, header, err := utils.FormFile(r, "icon", false)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	admin, _ := security.AdminFromContext(r.Context())
	article, err := h.service.UpdateArticle(r.Context(), id, patch, file, header, admin)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, article)
}

// DeleteArticle handles DELETE /articles/{id}
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt64(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	admin, _ := security.AdminFromContext(r.Context())
	if err := h.service.DeleteArticle(r.Context(), id, admin); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// formValue treats "null" like an absent field.
func formValue(r *http.Request, name string) string {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "null" {
		return ""
	}
	return v
}

// formIDs reads a repeated or comma separated id field.
func formIDs(r *http.Request, name string) ([]int64, error) {
	ids := make([]int64, 0)
	for _, raw := range r.MultipartForm.Value[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" || part == "null" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				return nil, badRequest("Form field '" + name + "' must contain positive integers.")
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func badRequest(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.BAD_REQUEST.Code,
		Message:     errors2.BAD_REQUEST.Message,
		Description: description,
	}, http.StatusBadRequest)
}
