package service

import (
	"context"
	"errors"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"
	"exam_prep_backend/pkg/logger"
	"exam_prep_backend/pkg/monitoring"
	"exam_prep_backend/pkg/tracing"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CaughtUpMessage 主攻科目下没有未做过的题
const CaughtUpMessage = "You're all caught up! No new questions are available in your subject right now."

type OptionView struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type DailyQuestionView struct {
	ID       uint         `json:"id"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	ImageURL string       `json:"imageUrl,omitempty"`
	Options  []OptionView `json:"options"`
}

// DailySetView 每日题组的返回结构；全部做完时只有 Message 和 Completed
type DailySetView struct {
	Date      string              `json:"date,omitempty"`
	Questions []DailyQuestionView `json:"questions,omitempty"`
	Completed bool                `json:"completed"`
	Score     *int                `json:"score,omitempty"`
	Message   string              `json:"message,omitempty"`
}

type AnswerInput struct {
	QuestionID     uint   `json:"questionId" binding:"required"`
	SelectedOption string `json:"selectedOption" binding:"required"`
}

type SubmitResult struct {
	Date           string `json:"date"`
	Completed      bool   `json:"completed"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
}

type DailySetService struct {
	Users     UserStore
	Questions QuestionStore
	Attempts  AttemptStore
	Sets      DailySetStore

	BatchSize      int
	ShuffleOptions bool

	now func() time.Time
	mu  sync.Mutex
	rng *rand.Rand
}

func NewDailySetService(users UserStore, questions QuestionStore, attempts AttemptStore, sets DailySetStore, cfg config.DailySetConfig) *DailySetService {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = util.DefaultDailyBatchSize
	}
	return &DailySetService{
		Users:          users,
		Questions:      questions,
		Attempts:       attempts,
		Sets:           sets,
		BatchSize:      batch,
		ShuffleOptions: cfg.ShuffleOptions,
		now:            time.Now,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithClock 测试用，固定“今天”
func (s *DailySetService) WithClock(now func() time.Time) *DailySetService {
	s.now = now
	return s
}

// WithRand 测试用，固定选项打乱的随机源
func (s *DailySetService) WithRand(r *rand.Rand) *DailySetService {
	s.rng = r
	return s
}

// Today 按进程本地时区取日历日
func (s *DailySetService) Today() string {
	return s.now().In(time.Local).Format(util.DateFormat)
}

func (s *DailySetService) optionOrder() model.OptionOrder {
	if !s.ShuffleOptions {
		return model.IdentityOrder
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.ShuffledOrder(s.rng)
}

// GetOrCreate 返回学生今天的题组，不存在则组题
func (s *DailySetService) GetOrCreate(ctx context.Context, studentID uint) (*DailySetView, error) {
	ctx, span := tracing.Tracer.Start(ctx, "DailySetService.GetOrCreate")
	defer span.End()

	date := s.Today()
	span.SetAttributes(attribute.Int64("student.id", int64(studentID)), attribute.String("set.date", date))

	set, err := s.Sets.FindByStudentAndDate(ctx, studentID, date)
	if err == nil {
		monitoring.DailySetOutcomes.WithLabelValues("existing").Inc()
		return s.present(ctx, set)
	}
	if !errors.Is(err, util.ErrSetNotFound) {
		return nil, fmt.Errorf("find daily set: %w", err)
	}

	student, err := s.Users.FindByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load student: %w", err)
	}
	if student.PrimarySubjectID == nil {
		monitoring.DailySetOutcomes.WithLabelValues("no_subject").Inc()
		return nil, util.ErrNoPrimarySubject
	}

	attempted, err := s.Attempts.AttemptedQuestionIDs(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load attempted questions: %w", err)
	}

	qs, err := s.Questions.ListUnattempted(ctx, *student.PrimarySubjectID, attempted, s.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("select questions: %w", err)
	}
	if len(qs) == 0 {
		monitoring.DailySetOutcomes.WithLabelValues("caught_up").Inc()
		return &DailySetView{Message: CaughtUpMessage, Completed: true}, nil
	}

	set = &model.DailyQuestionSet{
		StudentID: studentID,
		SetDate:   date,
	}
	ids := make([]uint, len(qs))
	orders := make(map[uint]model.OptionOrder, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
		orders[q.ID] = s.optionOrder()
	}
	if err := set.SetIDs(ids); err != nil {
		return nil, err
	}
	if err := set.SetOrders(orders); err != nil {
		return nil, err
	}

	if err := s.Sets.Create(ctx, set); err != nil {
		if !errors.Is(err, util.ErrSetExists) {
			return nil, fmt.Errorf("create daily set: %w", err)
		}
		// 并发请求先写入了，以它为准
		logger.Log.Info("daily set created concurrently, re-reading",
			zap.Uint("studentID", studentID), zap.String("date", date))
		existing, err := s.Sets.FindByStudentAndDate(ctx, studentID, date)
		if err != nil {
			return nil, fmt.Errorf("re-read daily set: %w", err)
		}
		monitoring.DailySetOutcomes.WithLabelValues("existing").Inc()
		return s.present(ctx, existing)
	}

	monitoring.DailySetOutcomes.WithLabelValues("created").Inc()
	logger.Log.Info("daily set assembled",
		zap.Uint("studentID", studentID),
		zap.String("date", date),
		zap.Int("questions", len(ids)))
	return s.build(set, ids, qs)
}

func (s *DailySetService) present(ctx context.Context, set *model.DailyQuestionSet) (*DailySetView, error) {
	ids, err := set.IDs()
	if err != nil {
		return nil, fmt.Errorf("decode question ids: %w", err)
	}
	qs, err := s.Questions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load set questions: %w", err)
	}
	return s.build(set, ids, qs)
}

// build 按题组保存的顺序组装返回，选项按冻结的顺序重新标 A-D
func (s *DailySetService) build(set *model.DailyQuestionSet, ids []uint, qs []model.Question) (*DailySetView, error) {
	orders, err := set.Orders()
	if err != nil {
		return nil, fmt.Errorf("decode option orders: %w", err)
	}

	byID := make(map[uint]*model.Question, len(qs))
	for i := range qs {
		byID[qs[i].ID] = &qs[i]
	}

	view := &DailySetView{
		Date:      set.SetDate,
		Questions: make([]DailyQuestionView, 0, len(ids)),
		Completed: set.Completed,
		Score:     set.Score,
	}
	for _, id := range ids {
		q, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("question %d of set %s is missing", id, set.ID)
		}
		order := orders[id]
		if !order.Valid() {
			order = model.IdentityOrder
		}
		options := make([]OptionView, 0, len(model.OptionKeys))
		for i, display := range model.OptionKeys {
			options = append(options, OptionView{
				Key:   string(display),
				Value: q.OptionText(string(order[i])),
			})
		}
		view.Questions = append(view.Questions, DailyQuestionView{
			ID:       q.ID,
			Title:    q.Title,
			Content:  q.Content,
			ImageURL: q.ImageURL,
			Options:  options,
		})
	}
	return view, nil
}

// Submit 对指定日期的题组判分，每个题组只能成功判分一次
func (s *DailySetService) Submit(ctx context.Context, studentID uint, date string, answers []AnswerInput) (*SubmitResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "DailySetService.Submit")
	defer span.End()
	span.SetAttributes(attribute.Int64("student.id", int64(studentID)), attribute.String("set.date", date))

	result, err := s.submit(ctx, studentID, date, answers)
	if err != nil {
		monitoring.DailySetSubmissions.WithLabelValues("rejected").Inc()
		return nil, err
	}
	monitoring.DailySetSubmissions.WithLabelValues("graded").Inc()
	if result.TotalQuestions > 0 {
		monitoring.DailySetScoreRatio.Observe(float64(result.Score) / float64(result.TotalQuestions))
	}
	return result, nil
}

func (s *DailySetService) submit(ctx context.Context, studentID uint, date string, answers []AnswerInput) (*SubmitResult, error) {
	if _, err := time.ParseInLocation(util.DateFormat, date, time.Local); err != nil {
		return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", util.ErrInvalidSubmission, date)
	}

	set, err := s.Sets.FindByStudentAndDate(ctx, studentID, date)
	if err != nil {
		if errors.Is(err, util.ErrSetNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find daily set: %w", err)
	}
	if set.Completed {
		return nil, util.ErrSetAlreadyCompleted
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: no answers", util.ErrInvalidSubmission)
	}

	ids, err := set.IDs()
	if err != nil {
		return nil, fmt.Errorf("decode question ids: %w", err)
	}
	members := make(map[uint]bool, len(ids))
	for _, id := range ids {
		members[id] = true
	}
	orders, err := set.Orders()
	if err != nil {
		return nil, fmt.Errorf("decode option orders: %w", err)
	}

	// 先整体校验，任何一条不合法都不写库
	originals := make([]string, len(answers))
	for i, a := range answers {
		if !members[a.QuestionID] {
			return nil, fmt.Errorf("%w: question %d is not in this set", util.ErrInvalidSubmission, a.QuestionID)
		}
		display := strings.ToUpper(strings.TrimSpace(a.SelectedOption))
		original, ok := orders[a.QuestionID].Original(display)
		if !ok {
			return nil, fmt.Errorf("%w: option %q for question %d", util.ErrInvalidSubmission, a.SelectedOption, a.QuestionID)
		}
		originals[i] = original
	}

	qs, err := s.Questions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load correct options: %w", err)
	}
	correct := make(map[uint]string, len(qs))
	for _, q := range qs {
		correct[q.ID] = q.CorrectOption
	}

	now := s.now()
	score := 0
	attempts := make([]model.StudentAttempt, 0, len(answers))
	for i, a := range answers {
		want, ok := correct[a.QuestionID]
		if !ok {
			return nil, fmt.Errorf("question %d of set %s is missing", a.QuestionID, set.ID)
		}
		isCorrect := originals[i] == want
		if isCorrect {
			score++
		}
		attempts = append(attempts, model.StudentAttempt{
			StudentID:      studentID,
			QuestionID:     a.QuestionID,
			DailySetID:     set.ID,
			SelectedOption: originals[i],
			IsCorrect:      isCorrect,
			AttemptedAt:    now,
		})
	}

	if err := s.Sets.CompleteWithAttempts(ctx, set.ID, score, attempts); err != nil {
		if errors.Is(err, util.ErrSetAlreadyCompleted) {
			return nil, err
		}
		return nil, fmt.Errorf("complete daily set: %w", err)
	}

	logger.Log.Info("daily set graded",
		zap.Uint("studentID", studentID),
		zap.String("date", date),
		zap.Int("score", score),
		zap.Int("total", len(ids)))

	return &SubmitResult{
		Date:           date,
		Completed:      true,
		Score:          score,
		TotalQuestions: len(ids),
	}, nil
}
