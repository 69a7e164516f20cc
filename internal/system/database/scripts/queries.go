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

package scripts

const teacherColumns = `id, brs_id, academic_degree, department_id, department_leader, department_part_time_job_ids,
	department_secretary, firstname, gender, middlename, person_id, rank, rank_short, surname, icon`

var ListTeachers = map[string]string{
	"postgres": `SELECT ` + teacherColumns + ` FROM teachers ORDER BY surname, firstname, id`,
}

var GetTeacherByID = map[string]string{
	"postgres": `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`,
}

var GetTeacherByBrsID = map[string]string{
	"postgres": `SELECT ` + teacherColumns + ` FROM teachers WHERE brs_id = $1`,
}

var GetTeacherByPersonID = map[string]string{
	"postgres": `SELECT ` + teacherColumns + ` FROM teachers WHERE person_id = $1 LIMIT 1`,
}

var GetTeachersByBrsIDs = map[string]string{
	"postgres": `SELECT ` + teacherColumns + ` FROM teachers WHERE brs_id = ANY($1) ORDER BY surname, firstname, id`,
}

var InsertTeacher = map[string]string{
	"postgres": `INSERT INTO teachers (brs_id, academic_degree, department_id, department_leader,
	department_part_time_job_ids, department_secretary, firstname, gender, middlename, person_id, rank, rank_short,
	surname, icon) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`,
}

// UpsertTeacher matches on brs_id and leaves icon untouched on conflict.
var UpsertTeacher = map[string]string{
	"postgres": `INSERT INTO teachers (brs_id, academic_degree, department_id, department_leader,
	department_part_time_job_ids, department_secretary, firstname, gender, middlename, person_id, rank, rank_short,
	surname, icon) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (brs_id) DO UPDATE SET
		academic_degree = EXCLUDED.academic_degree,
		department_id = EXCLUDED.department_id,
		department_leader = EXCLUDED.department_leader,
		department_part_time_job_ids = EXCLUDED.department_part_time_job_ids,
		department_secretary = EXCLUDED.department_secretary,
		firstname = EXCLUDED.firstname,
		gender = EXCLUDED.gender,
		middlename = EXCLUDED.middlename,
		person_id = EXCLUDED.person_id,
		rank = EXCLUDED.rank,
		rank_short = EXCLUDED.rank_short,
		surname = EXCLUDED.surname
	RETURNING id, icon`,
}

var UpdateTeacher = map[string]string{
	"postgres": `UPDATE teachers SET academic_degree = $1, department_id = $2, department_leader = $3,
	department_part_time_job_ids = $4, department_secretary = $5, firstname = $6, gender = $7, middlename = $8,
	rank = $9, rank_short = $10, surname = $11 WHERE id = $12`,
}

var UpdateTeacherIcon = map[string]string{
	"postgres": `UPDATE teachers SET icon = $1 WHERE id = $2`,
}

var DeleteTeachersByIDs = map[string]string{
	"postgres": `DELETE FROM teachers WHERE id = ANY($1)`,
}

var DeleteAllTeachers = map[string]string{
	"postgres": `DELETE FROM teachers`,
}

var ListSubjects = map[string]string{
	"postgres": `SELECT id, brs_id, name FROM subjects ORDER BY name, id`,
}

var GetSubjectByID = map[string]string{
	"postgres": `SELECT id, brs_id, name FROM subjects WHERE id = $1`,
}

var GetSubjectByBrsID = map[string]string{
	"postgres": `SELECT id, brs_id, name FROM subjects WHERE brs_id = $1`,
}

var UpsertSubject = map[string]string{
	"postgres": `INSERT INTO subjects (brs_id, name) VALUES ($1, $2)
	ON CONFLICT (brs_id) DO UPDATE SET name = EXCLUDED.name RETURNING id`,
}

var DeleteSubjectsByIDs = map[string]string{
	"postgres": `DELETE FROM subjects WHERE id = ANY($1)`,
}

var DeleteAllSubjects = map[string]string{
	"postgres": `DELETE FROM subjects`,
}

var ListStudGroups = map[string]string{
	"postgres": `SELECT id, brs_id, course, semester, education_level FROM stud_groups ORDER BY course, semester, id`,
}

var GetStudGroupByBrsID = map[string]string{
	"postgres": `SELECT id, brs_id, course, semester, education_level FROM stud_groups WHERE brs_id = $1`,
}

var UpsertStudGroup = map[string]string{
	"postgres": `INSERT INTO stud_groups (brs_id, course, semester, education_level) VALUES ($1, $2, $3, $4)
	ON CONFLICT (brs_id) DO UPDATE SET course = EXCLUDED.course, semester = EXCLUDED.semester,
		education_level = EXCLUDED.education_level
	RETURNING id`,
}

var DeleteStudGroupsByIDs = map[string]string{
	"postgres": `DELETE FROM stud_groups WHERE id = ANY($1)`,
}

var DeleteAllStudGroups = map[string]string{
	"postgres": `DELETE FROM stud_groups`,
}

const unitColumns = `id, brs_id, teacher_brs_id, subject_brs_id, stud_group_brs_id, practice_teacher_brs_ids, mark_type`

var ListCurriculumUnits = map[string]string{
	"postgres": `SELECT ` + unitColumns + ` FROM curriculum_units ORDER BY id`,
}

var GetCurriculumUnitByID = map[string]string{
	"postgres": `SELECT ` + unitColumns + ` FROM curriculum_units WHERE id = $1`,
}

var GetCurriculumUnitByBrsID = map[string]string{
	"postgres": `SELECT ` + unitColumns + ` FROM curriculum_units WHERE brs_id = $1`,
}

var UpsertCurriculumUnit = map[string]string{
	"postgres": `INSERT INTO curriculum_units (brs_id, teacher_brs_id, subject_brs_id, stud_group_brs_id,
	practice_teacher_brs_ids, mark_type) VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (brs_id) DO UPDATE SET
		teacher_brs_id = EXCLUDED.teacher_brs_id,
		subject_brs_id = EXCLUDED.subject_brs_id,
		stud_group_brs_id = EXCLUDED.stud_group_brs_id,
		practice_teacher_brs_ids = EXCLUDED.practice_teacher_brs_ids,
		mark_type = EXCLUDED.mark_type
	RETURNING id`,
}

var DeleteCurriculumUnitsByIDs = map[string]string{
	"postgres": `DELETE FROM curriculum_units WHERE id = ANY($1)`,
}

var DeleteAllCurriculumUnits = map[string]string{
	"postgres": `DELETE FROM curriculum_units`,
}

var InsertLink = map[string]string{
	"postgres": `INSERT INTO teacher_curriculum_unit_links (teacher_id, curriculum_unit_id, is_practice)
	VALUES ($1, $2, $3) ON CONFLICT (teacher_id, curriculum_unit_id, is_practice) DO NOTHING`,
}

var ListLinks = map[string]string{
	"postgres": `SELECT teacher_id, curriculum_unit_id, is_practice FROM teacher_curriculum_unit_links
	ORDER BY curriculum_unit_id, is_practice, teacher_id`,
}

var DeleteAllLinks = map[string]string{
	"postgres": `DELETE FROM teacher_curriculum_unit_links`,
}

var DeleteLinksByTeacherIDs = map[string]string{
	"postgres": `DELETE FROM teacher_curriculum_unit_links WHERE teacher_id = ANY($1)`,
}

var DeleteLinksByUnitIDs = map[string]string{
	"postgres": `DELETE FROM teacher_curriculum_unit_links WHERE curriculum_unit_id = ANY($1)`,
}

var GetSubjectsByTeacher = map[string]string{
	"postgres": `SELECT DISTINCT s.id, s.brs_id, s.name, l.is_practice
	FROM teacher_curriculum_unit_links l
	JOIN curriculum_units cu ON cu.id = l.curriculum_unit_id
	JOIN subjects s ON s.brs_id = cu.subject_brs_id
	WHERE l.teacher_id = $1
	ORDER BY s.name, s.id, l.is_practice`,
}

var GetTeachersBySubject = map[string]string{
	"postgres": `SELECT DISTINCT t.id, t.surname, t.firstname, t.middlename, t.rank_short, t.icon, l.is_practice
	FROM teacher_curriculum_unit_links l
	JOIN curriculum_units cu ON cu.id = l.curriculum_unit_id
	JOIN subjects s ON s.brs_id = cu.subject_brs_id
	JOIN teachers t ON t.id = l.teacher_id
	WHERE s.id = $1
	ORDER BY t.surname, t.firstname, t.id, l.is_practice`,
}

var ListTags = map[string]string{
	"postgres": `SELECT id, name FROM tags ORDER BY name`,
}

var GetTagByName = map[string]string{
	"postgres": `SELECT id, name FROM tags WHERE name = $1`,
}

var GetTagsByIDs = map[string]string{
	"postgres": `SELECT id, name FROM tags WHERE id = ANY($1) ORDER BY name`,
}

var InsertTag = map[string]string{
	"postgres": `INSERT INTO tags (name) VALUES ($1) RETURNING id`,
}

const articleColumns = `a.id, a.icon, a.title, a.content, a.event_date, a.created_at, a.views`

// ListArticlesBase is extended with the filter clauses built by the article store.
var ListArticlesBase = map[string]string{
	"postgres": `SELECT ` + articleColumns + `, COUNT(*) OVER() AS total FROM articles a`,
}

var ListLatestArticles = map[string]string{
	"postgres": `SELECT ` + articleColumns + ` FROM articles a
	ORDER BY (a.event_date < CURRENT_DATE), ABS(a.event_date - CURRENT_DATE), a.id DESC LIMIT $1`,
}

var GetArticleByID = map[string]string{
	"postgres": `SELECT ` + articleColumns + ` FROM articles a WHERE a.id = $1`,
}

var GetArticleByTitle = map[string]string{
	"postgres": `SELECT ` + articleColumns + ` FROM articles a WHERE a.title = $1`,
}

var IncrementArticleViews = map[string]string{
	"postgres": `UPDATE articles SET views = views + 1 WHERE id = $1`,
}

var InsertArticle = map[string]string{
	"postgres": `INSERT INTO articles (icon, title, content, event_date) VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, views`,
}

var UpdateArticle = map[string]string{
	"postgres": `UPDATE articles SET icon = $1, title = $2, content = $3, event_date = $4 WHERE id = $5`,
}

var DeleteArticle = map[string]string{
	"postgres": `DELETE FROM articles WHERE id = $1`,
}

var GetArticleTags = map[string]string{
	"postgres": `SELECT at.article_id, t.name FROM article_tags at JOIN tags t ON t.id = at.tag_id
	WHERE at.article_id = ANY($1) ORDER BY t.name`,
}

var InsertArticleTag = map[string]string{
	"postgres": `INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
}

var DeleteArticleTags = map[string]string{
	"postgres": `DELETE FROM article_tags WHERE article_id = $1`,
}

var GetAdminUserByUsername = map[string]string{
	"postgres": `SELECT id, username, password_hash FROM admin_users WHERE username = $1`,
}

var InsertAdminUser = map[string]string{
	"postgres": `INSERT INTO admin_users (username, password_hash) VALUES ($1, $2) RETURNING id`,
}

var HealthCheck = map[string]string{
	"postgres": `SELECT 1 AS ok`,
}
