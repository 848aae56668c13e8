package service

import (
	"context"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/util"
	"sort"
	"sync"
	"time"
)

// 内存版存储，只实现服务层测试需要的语义

type fakeUsers struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]*model.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{rows: map[uint]*model.User{}}
}

func (f *fakeUsers) Create(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.Email == user.Email {
			return util.ErrEmailRegistered
		}
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.rows[user.ID] = &cp
	return nil
}

func (f *fakeUsers) FindByID(ctx context.Context, id uint) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (f *fakeUsers) List(ctx context.Context, role model.UserRole, page, limit int) ([]model.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.User
	for _, u := range f.rows {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := int64(len(out))
	start := (page - 1) * limit
	if start >= len(out) {
		return []model.User{}, total, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (f *fakeUsers) UpdateRole(ctx context.Context, id uint, role model.UserRole) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return util.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUsers) SetDisabled(ctx context.Context, id uint, disabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return util.ErrUserNotFound
	}
	u.Disabled = disabled
	return nil
}

func (f *fakeUsers) SetPrimarySubjectOnce(ctx context.Context, userID, subjectID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[userID]
	if !ok || u.Role != model.Student || u.PrimarySubjectID != nil {
		return false, nil
	}
	id := subjectID
	u.PrimarySubjectID = &id
	return true, nil
}

func (f *fakeUsers) CountByRole(ctx context.Context) (map[model.UserRole]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[model.UserRole]int64{model.SuperAdmin: 0, model.QAuthor: 0, model.Student: 0}
	for _, u := range f.rows {
		counts[u.Role]++
	}
	return counts, nil
}

type fakeSubjects struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]*model.Subject
}

func newFakeSubjects() *fakeSubjects {
	return &fakeSubjects{rows: map[uint]*model.Subject{}}
}

func (f *fakeSubjects) Create(ctx context.Context, subject *model.Subject) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.rows {
		if s.Name == subject.Name {
			return util.ErrSubjectNameTaken
		}
	}
	f.nextID++
	subject.ID = f.nextID
	cp := *subject
	f.rows[subject.ID] = &cp
	return nil
}

func (f *fakeSubjects) FindByID(ctx context.Context, id uint) (*model.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[id]
	if !ok {
		return nil, util.ErrSubjectNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSubjects) List(ctx context.Context) ([]model.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Subject{}
	for _, s := range f.rows {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSubjects) Update(ctx context.Context, subject *model.Subject) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, s := range f.rows {
		if id != subject.ID && s.Name == subject.Name {
			return util.ErrSubjectNameTaken
		}
	}
	cp := *subject
	f.rows[subject.ID] = &cp
	return nil
}

func (f *fakeSubjects) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return util.ErrSubjectNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeSubjects) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

type fakeQuestions struct {
	mu      sync.Mutex
	nextID  uint
	rows    map[uint]*model.Question
	deleted map[uint]bool
	base    time.Time
}

func newFakeQuestions() *fakeQuestions {
	return &fakeQuestions{
		rows:    map[uint]*model.Question{},
		deleted: map[uint]bool{},
		base:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeQuestions) Create(ctx context.Context, q *model.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	q.ID = f.nextID
	if q.CreatedAt.IsZero() {
		q.CreatedAt = f.base.Add(time.Duration(q.ID) * time.Minute)
	}
	cp := *q
	f.rows[q.ID] = &cp
	return nil
}

func (f *fakeQuestions) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.rows[id]
	if !ok || f.deleted[id] {
		return nil, util.ErrQuestionNotFound
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuestions) List(ctx context.Context, filter repository.QuestionFilter) ([]model.Question, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Question{}
	for id, q := range f.rows {
		if f.deleted[id] {
			continue
		}
		if filter.CreatorID != 0 && q.CreatorID != filter.CreatorID {
			continue
		}
		if filter.SubjectID != 0 && q.SubjectID != filter.SubjectID {
			continue
		}
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeQuestions) Update(ctx context.Context, q *model.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *q
	f.rows[q.ID] = &cp
	return nil
}

func (f *fakeQuestions) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok || f.deleted[id] {
		return util.ErrQuestionNotFound
	}
	f.deleted[id] = true
	return nil
}

func (f *fakeQuestions) ListUnattempted(ctx context.Context, subjectID uint, attempted []uint, limit int) ([]model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	skip := map[uint]bool{}
	for _, id := range attempted {
		skip[id] = true
	}
	var out []model.Question
	for id, q := range f.rows {
		if f.deleted[id] || skip[id] || q.SubjectID != subjectID {
			continue
		}
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeQuestions) FindByIDs(ctx context.Context, ids []uint) ([]model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Question
	for _, id := range ids {
		if q, ok := f.rows[id]; ok {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestions) CountBySubject(ctx context.Context, subjectID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, q := range f.rows {
		if !f.deleted[id] && q.SubjectID == subjectID {
			n++
		}
	}
	return n, nil
}

func (f *fakeQuestions) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows) - len(f.deleted)), nil
}

type fakeAttempts struct {
	mu     sync.Mutex
	nextID uint
	rows   []model.StudentAttempt
}

func (f *fakeAttempts) append(attempts []model.StudentAttempt) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range attempts {
		f.nextID++
		a.ID = f.nextID
		f.rows = append(f.rows, a)
	}
}

func (f *fakeAttempts) all() []model.StudentAttempt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.StudentAttempt(nil), f.rows...)
}

func (f *fakeAttempts) AttemptedQuestionIDs(ctx context.Context, studentID uint) ([]uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[uint]bool{}
	var ids []uint
	for _, a := range f.rows {
		if a.StudentID == studentID && !seen[a.QuestionID] {
			seen[a.QuestionID] = true
			ids = append(ids, a.QuestionID)
		}
	}
	return ids, nil
}

func (f *fakeAttempts) ListByStudent(ctx context.Context, studentID uint, page, limit int) ([]repository.AttemptHistoryRow, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []repository.AttemptHistoryRow
	for i := len(f.rows) - 1; i >= 0; i-- {
		a := f.rows[i]
		if a.StudentID != studentID {
			continue
		}
		rows = append(rows, repository.AttemptHistoryRow{
			ID:             a.ID,
			QuestionID:     a.QuestionID,
			DailySetID:     a.DailySetID,
			SelectedOption: a.SelectedOption,
			IsCorrect:      a.IsCorrect,
			AttemptedAt:    a.AttemptedAt,
		})
	}
	total := int64(len(rows))
	start := (page - 1) * limit
	if start >= len(rows) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], total, nil
}

func (f *fakeAttempts) Count(ctx context.Context) (int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var correct int64
	for _, a := range f.rows {
		if a.IsCorrect {
			correct++
		}
	}
	return int64(len(f.rows)), correct, nil
}

type fakeSets struct {
	mu       sync.Mutex
	rows     map[string]*model.DailyQuestionSet
	attempts *fakeAttempts

	// beforeCreate 模拟并发请求抢先写入
	beforeCreate func(set *model.DailyQuestionSet)
	creates      int
}

func newFakeSets(attempts *fakeAttempts) *fakeSets {
	return &fakeSets{rows: map[string]*model.DailyQuestionSet{}, attempts: attempts}
}

func (f *fakeSets) FindByStudentAndDate(ctx context.Context, studentID uint, date string) (*model.DailyQuestionSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.rows {
		if s.StudentID == studentID && s.SetDate == date {
			cp := *s
			return &cp, nil
		}
	}
	return nil, util.ErrSetNotFound
}

func (f *fakeSets) insert(set *model.DailyQuestionSet) error {
	for _, s := range f.rows {
		if s.StudentID == set.StudentID && s.SetDate == set.SetDate {
			return util.ErrSetExists
		}
	}
	if set.ID == "" {
		set.ID = model.NewID()
	}
	cp := *set
	f.rows[set.ID] = &cp
	return nil
}

func (f *fakeSets) Create(ctx context.Context, set *model.DailyQuestionSet) error {
	if f.beforeCreate != nil {
		hook := f.beforeCreate
		f.beforeCreate = nil
		hook(set)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	return f.insert(set)
}

func (f *fakeSets) CompleteWithAttempts(ctx context.Context, setID string, score int, attempts []model.StudentAttempt) error {
	f.mu.Lock()
	s, ok := f.rows[setID]
	if !ok || s.Completed {
		f.mu.Unlock()
		return util.ErrSetAlreadyCompleted
	}
	s.Completed = true
	s.Score = &score
	f.mu.Unlock()

	f.attempts.append(attempts)
	return nil
}

func (f *fakeSets) Count(ctx context.Context) (int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var completed int64
	for _, s := range f.rows {
		if s.Completed {
			completed++
		}
	}
	return int64(len(f.rows)), completed, nil
}

func (f *fakeSets) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

var (
	_ UserStore     = (*fakeUsers)(nil)
	_ SubjectStore  = (*fakeSubjects)(nil)
	_ QuestionStore = (*fakeQuestions)(nil)
	_ DailySetStore = (*fakeSets)(nil)
	_ AttemptStore  = (*fakeAttempts)(nil)
)
