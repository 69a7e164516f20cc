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

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date '%s', expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	parsed, err := ParseDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type Article struct {
	ID        int64     `json:"id"`
	Icon      *string   `json:"icon"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	EventDate Date      `json:"event_date"`
	CreatedAt time.Time `json:"created_at"`
	Views     int       `json:"views"`
	Tags      []string  `json:"tags"`
}

// ArticleFilter narrows the article listing. Ranges are inclusive and may be open on either side.
type ArticleFilter struct {
	YearMin  *int
	YearMax  *int
	MonthMin *int
	MonthMax *int
	// Tags must all be present on an article.
	Tags  []string
	Page  int
	Limit int
}

func (f ArticleFilter) HasYear() bool {
	return f.YearMin != nil || f.YearMax != nil
}

func (f ArticleFilter) HasMonth() bool {
	return f.MonthMin != nil || f.MonthMax != nil
}

type ArticleCreate struct {
	Title     string
	Content   *string
	EventDate Date
	TagIDs    []int64
}

// ArticlePatch lists the fields an administrator may change. Nil fields are left as they are.
// Icon is set from an uploaded file.
type ArticlePatch struct {
	Title     *string
	Content   *string
	EventDate *Date
	TagIDs    *[]int64
	Icon      *string
}

// Apply copies the set scalar fields of the patch onto a. Tags are replaced by the store.
func (p ArticlePatch) Apply(a *Article) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Content != nil {
		a.Content = p.Content
	}
	if p.EventDate != nil {
		a.EventDate = *p.EventDate
	}
	if p.Icon != nil {
		a.Icon = p.Icon
	}
}
