package controller

import (
	"context"
	"encoding/json"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDailySets struct {
	view      *service.DailySetView
	result    *service.SubmitResult
	err       error
	gotDate   string
	gotAnswer []service.AnswerInput
}

func (s *stubDailySets) GetOrCreate(ctx context.Context, studentID uint) (*service.DailySetView, error) {
	return s.view, s.err
}

func (s *stubDailySets) Submit(ctx context.Context, studentID uint, date string, answers []service.AnswerInput) (*service.SubmitResult, error) {
	s.gotDate = date
	s.gotAnswer = answers
	return s.result, s.err
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newDailySetRouter(stub *stubDailySets) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		util.SetCurrentUser(c, &model.User{BaseModel: model.BaseModel{ID: 9}, Role: model.Student})
	})
	ctrl := NewDailySetController(stub)
	r.GET("/api/student/daily-set", ctrl.GetDailySet)
	r.POST("/api/student/daily-set", ctrl.SubmitDailySet)
	return r
}

func perform(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestDailySetController_Get(t *testing.T) {
	stub := &stubDailySets{view: &service.DailySetView{
		Date: "2024-03-15",
		Questions: []service.DailyQuestionView{{
			ID: 1, Title: "t", Content: "c",
			Options: []service.OptionView{{Key: "A", Value: "x"}, {Key: "B", Value: "y"}, {Key: "C", Value: "z"}, {Key: "D", Value: "w"}},
		}},
	}}
	w, env := perform(t, newDailySetRouter(stub), http.MethodGet, "/api/student/daily-set", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "2024-03-15", view["date"])
	assert.Equal(t, false, view["completed"])
	assert.NotContains(t, view, "score")
	assert.Len(t, view["questions"], 1)
}

func TestDailySetController_CaughtUp(t *testing.T) {
	stub := &stubDailySets{view: &service.DailySetView{Message: service.CaughtUpMessage, Completed: true}}
	_, env := perform(t, newDailySetRouter(stub), http.MethodGet, "/api/student/daily-set", "")

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, map[string]interface{}{"message": service.CaughtUpMessage, "completed": true}, view)
}

func TestDailySetController_NoPrimarySubjectHint(t *testing.T) {
	stub := &stubDailySets{err: util.ErrNoPrimarySubject}
	w, env := perform(t, newDailySetRouter(stub), http.MethodGet, "/api/student/daily-set", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Contains(t, data["hint"], "primary-subject")
}

func TestDailySetController_Submit(t *testing.T) {
	stub := &stubDailySets{result: &service.SubmitResult{Date: "2024-03-15", Completed: true, Score: 7, TotalQuestions: 10}}
	body := `{"date":"2024-03-15","answers":[{"questionId":1,"selectedOption":"B"}]}`
	w, env := perform(t, newDailySetRouter(stub), http.MethodPost, "/api/student/daily-set", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-03-15", stub.gotDate)
	assert.Equal(t, []service.AnswerInput{{QuestionID: 1, SelectedOption: "B"}}, stub.gotAnswer)

	var res service.SubmitResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, *stub.result, res)
}

func TestDailySetController_SubmitErrors(t *testing.T) {
	body := `{"date":"2024-03-15","answers":[{"questionId":1,"selectedOption":"B"}]}`
	cases := []struct {
		err  error
		code int
	}{
		{util.ErrSetNotFound, http.StatusNotFound},
		{util.ErrSetAlreadyCompleted, http.StatusConflict},
		{fmt.Errorf("%w: question 99 is not in this set", util.ErrInvalidSubmission), http.StatusBadRequest},
		{fmt.Errorf("complete daily set: %w", fmt.Errorf("connection refused")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w, _ := perform(t, newDailySetRouter(&stubDailySets{err: tc.err}), http.MethodPost, "/api/student/daily-set", body)
			assert.Equal(t, tc.code, w.Code)
		})
	}

	w, _ := perform(t, newDailySetRouter(&stubDailySets{}), http.MethodPost, "/api/student/daily-set", `{"answers":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing date")
}
