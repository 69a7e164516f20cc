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

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	brsModel "github.com/csdept/dept-portal/internal/system/client/model"
	unitModel "github.com/csdept/dept-portal/internal/curriculum_unit/model"
	subjectModel "github.com/csdept/dept-portal/internal/subject/model"
	groupModel "github.com/csdept/dept-portal/internal/stud_group/model"
	"github.com/csdept/dept-portal/internal/system/config"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
	teacherModel "github.com/csdept/dept-portal/internal/teacher/model"
)

const (
	yearPlaceholder    = "{year}"
	sessionPlaceholder = "{session_num}"
)

var (
	errNoData          = errors.New("no data in response")
	errInvalidResponse = errors.New("invalid response")
)

// listEndpoint describes one BRS list endpoint.
type listEndpoint struct {
	name      string
	key       string
	requireOk bool
}

var (
	teachersEndpoint = listEndpoint{name: "teachers", key: brsModel.TeachersKey, requireOk: true}
	subjectsEndpoint = listEndpoint{name: "subjects", key: brsModel.SubjectsKey}
	groupsEndpoint   = listEndpoint{name: "student groups", key: brsModel.StudGroupsKey}
	unitsEndpoint    = listEndpoint{name: "curriculum units", key: brsModel.CurriculumUnitsKey}
)

// BRSClient pulls the mirror entities from BRS. A URL containing {year} is resolved by probing
// (year, session) pairs backwards from the current year; any other URL is fetched once.
type BRSClient struct {
	cfg  config.BRSConfig
	http *resty.Client
	now  func() time.Time
}

// NewBRSClient creates a client with the timeout and transport retry policy of cfg.
func NewBRSClient(cfg config.BRSConfig) *BRSClient {

	httpClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetHeader("Accept", "application/json")

	return &BRSClient{
		cfg:  cfg,
		http: httpClient,
		now:  time.Now,
	}
}

// WithClock replaces the clock used to pick the starting year.
func (c *BRSClient) WithClock(now func() time.Time) *BRSClient {
	c.now = now
	return c
}

func (c *BRSClient) FetchTeachers(ctx context.Context) ([]teacherModel.Teacher, error) {
	payloads, err := fetchList[brsModel.TeacherPayload](ctx, c, c.cfg.TeachersURL, teachersEndpoint)
	if err != nil {
		return nil, err
	}
	return brsModel.ToTeachers(payloads), nil
}

func (c *BRSClient) FetchSubjects(ctx context.Context) ([]subjectModel.Subject, error) {
	payloads, err := fetchList[brsModel.SubjectPayload](ctx, c, c.cfg.SubjectsURL, subjectsEndpoint)
	if err != nil {
		return nil, err
	}
	return brsModel.ToSubjects(payloads), nil
}

func (c *BRSClient) FetchStudGroups(ctx context.Context) ([]groupModel.StudGroup, error) {
	payloads, err := fetchList[brsModel.StudGroupPayload](ctx, c, c.cfg.GroupsURL, groupsEndpoint)
	if err != nil {
		return nil, err
	}
	return brsModel.ToStudGroups(payloads), nil
}

func (c *BRSClient) FetchCurriculumUnits(ctx context.Context) ([]unitModel.CurriculumUnit, error) {
	payloads, err := fetchList[brsModel.CurriculumUnitPayload](ctx, c, c.cfg.UnitsURL, unitsEndpoint)
	if err != nil {
		return nil, err
	}
	return brsModel.ToCurriculumUnits(payloads), nil
}

func fetchList[T any](ctx context.Context, c *BRSClient, urlTemplate string, endpoint listEndpoint) ([]T, error) {

	if urlTemplate == "" {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.BRS_UNREACHABLE.Code,
			Message:     errors2.BRS_UNREACHABLE.Message,
			Description: fmt.Sprintf("No BRS URL is configured for %s.", endpoint.name),
		}, nil)
	}
	if strings.Contains(urlTemplate, yearPlaceholder) {
		return searchAndFetch[T](ctx, c, urlTemplate, endpoint)
	}
	return fetch[T](ctx, c, urlTemplate, endpoint)
}

// fetch performs a single GET. Any response that does not carry the list is an error.
func fetch[T any](ctx context.Context, c *BRSClient, url string, endpoint listEndpoint) ([]T, error) {

	logger := log.GetLogger()
	resp, err := c.get(ctx, url, endpoint)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		errorMsg := fmt.Sprintf("BRS returned status %d while fetching %s.", resp.StatusCode(), endpoint.name)
		logger.Debug(errorMsg)
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.BRS_INVALID_RESPONSE.Code,
			Message:     errors2.BRS_INVALID_RESPONSE.Message,
			Description: errorMsg,
		}, fmt.Errorf("status %d", resp.StatusCode()))
	}
	items, err := decodeList[T](resp.Body(), endpoint)
	if err != nil {
		errorMsg := fmt.Sprintf("BRS response for %s could not be used.", endpoint.name)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.BRS_INVALID_RESPONSE.Code,
			Message:     errors2.BRS_INVALID_RESPONSE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Fetched %d %s from BRS", len(items), endpoint.name))
	return items, nil
}

// searchAndFetch walks (year, session) pairs backwards from the current year:
// (Y,2), then (Y,1) if (Y,2) was empty, and so on. A hit at session 2 is completed with session 1
// of the same year; a hit at session 1 is completed with session 2 of the previous year.
// The older half comes first in the result so that a record published in both is taken from the
// newer session.
func searchAndFetch[T any](ctx context.Context, c *BRSClient, urlTemplate string, endpoint listEndpoint) ([]T, error) {

	logger := log.GetLogger()
	year := c.now().Year()
	for i := 0; i < c.cfg.SearchMaxYears; i, year = i+1, year-1 {
		second, err := probe[T](ctx, c, urlTemplate, year, 2, endpoint)
		if err != nil {
			return nil, err
		}
		if len(second) > 0 {
			first, err := probe[T](ctx, c, urlTemplate, year, 1, endpoint)
			if err != nil {
				return nil, err
			}
			logger.Info(fmt.Sprintf("Fetched %s from BRS for year %d sessions 1 and 2", endpoint.name, year))
			return append(first, second...), nil
		}

		first, err := probe[T](ctx, c, urlTemplate, year, 1, endpoint)
		if err != nil {
			return nil, err
		}
		if len(first) > 0 {
			previous, err := probe[T](ctx, c, urlTemplate, year-1, 2, endpoint)
			if err != nil {
				return nil, err
			}
			logger.Info(fmt.Sprintf("Fetched %s from BRS for year %d session 1 and year %d session 2",
				endpoint.name, year, year-1))
			return append(previous, first...), nil
		}
	}

	errorMsg := fmt.Sprintf("BRS published no %s in the last %d years.", endpoint.name, c.cfg.SearchMaxYears)
	logger.Warn(errorMsg)
	return nil, errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.BRS_NO_DATA.Code,
		Message:     errors2.BRS_NO_DATA.Message,
		Description: errorMsg,
	}, errNoData)
}

// probe returns an empty list for anything but a usable response. Only transport failures are errors.
func probe[T any](ctx context.Context, c *BRSClient, urlTemplate string, year, session int, endpoint listEndpoint) ([]T, error) {

	url := strings.NewReplacer(
		yearPlaceholder, strconv.Itoa(year),
		sessionPlaceholder, strconv.Itoa(session),
	).Replace(urlTemplate)

	resp, err := c.get(ctx, url, endpoint)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		log.GetLogger().Debug(fmt.Sprintf("No %s at year %d session %d: status %d", endpoint.name, year, session,
			resp.StatusCode()))
		return nil, nil
	}
	items, err := decodeList[T](resp.Body(), endpoint)
	if err != nil {
		log.GetLogger().Debug(fmt.Sprintf("No %s at year %d session %d", endpoint.name, year, session), log.Error(err))
		return nil, nil
	}
	return items, nil
}

func (c *BRSClient) get(ctx context.Context, url string, endpoint listEndpoint) (*resty.Response, error) {

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		errorMsg := fmt.Sprintf("BRS is unreachable while fetching %s.", endpoint.name)
		log.GetLogger().Error(errorMsg, log.String("url", url), log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.BRS_UNREACHABLE.Code,
			Message:     errors2.BRS_UNREACHABLE.Message,
			Description: errorMsg,
		}, err)
	}
	return resp, nil
}

func decodeList[T any](body []byte, endpoint listEndpoint) ([]T, error) {

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(errInvalidResponse, err.Error())
	}
	if endpoint.requireOk {
		var ok bool
		raw, found := envelope[brsModel.OkKey]
		if !found || json.Unmarshal(raw, &ok) != nil || !ok {
			return nil, errors.Wrapf(errNoData, "%s is not true", brsModel.OkKey)
		}
	}
	raw, found := envelope[endpoint.key]
	if !found {
		return nil, errors.Wrapf(errInvalidResponse, "missing %q", endpoint.key)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrapf(errInvalidResponse, "decoding %q: %v", endpoint.key, err)
	}
	return items, nil
}
