package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"foundation-backend/config"
	"foundation-backend/models"
	"foundation-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	t   *testing.T
	db  *gorm.DB
	app *App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, config.AutoMigrate(db))

	dir := t.TempDir()
	cfg := &config.Config{
		App:     config.AppConfig{Env: "dev", CorsOrigins: "*", PublicURL: "http://localhost:8080"},
		DB:      config.DBConfig{Driver: "sqlite"},
		JWT:     config.JWTConfig{Secret: "test-secret", TTLHours: 1},
		Storage: config.StorageConfig{Driver: "local", Dir: dir, MaxImageWidth: 1920},
		Print:   config.PrintConfig{OrgName: "มูลนิธิทดสอบ"},
		Teacher: config.TeacherConfig{CodeTTLHours: 24},
	}
	app := SetupRouter(Deps{
		DB:     db,
		Config: cfg,
		Store:  services.NewLocalStorage(dir, "http://localhost:8080/uploads"),
		Log:    zap.NewNop(),
	})
	return &testServer{t: t, db: db, app: app}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (s *testServer) do(method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.app.Router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func (s *testServer) adminToken() string {
	s.t.Helper()
	_, err := services.CreateAdmin(context.Background(), s.db, "ผู้ดูแล", "admin", "secret123")
	require.NoError(s.t, err)

	rec, env := s.do(http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "secret123"}, "")
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	var sess struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &sess))
	require.NotEmpty(s.t, sess.Token)
	return sess.Token
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec, _ := s.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec, _ = s.do(http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/health",status="200"}`)
}

func TestSubmitContact(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodPost, "/api/public/contact-messages", gin.H{
		"name": "สมชาย", "email": "somchai@example.com", "subject": "สอบถามทุน", "message": "สวัสดีครับ",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.Success)

	var msg models.ContactMessage
	require.NoError(t, json.Unmarshal(env.Data, &msg))
	assert.Equal(t, models.MessageUnread, msg.Status)
	assert.NotZero(t, msg.ID)
}

func TestSubmitContactMissingFieldSavesNothing(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodPost, "/api/public/contact-messages", gin.H{
		"name": "สมชาย", "email": "somchai@example.com", "subject": "   ",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)

	var n int64
	require.NoError(t, s.db.Model(&models.ContactMessage{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestSubmitScholarshipReturnsAck(t *testing.T) {
	s := newTestServer(t)
	rec, env := s.do(http.MethodPost, "/api/public/scholarship-applications", gin.H{
		"full_name": "มะลิ", "school_name": "โรงเรียนบ้านนา", "status": models.ScholarshipApproved,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		Application models.ScholarshipApplication `json:"application"`
		Message     string                        `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, services.AckMessage, out.Message)
	assert.Equal(t, models.ScholarshipPending, out.Application.Status)
}

func TestStudentStatusLookup(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodPost, "/api/public/students/register", gin.H{
		"first_name": "สมหญิง", "last_name": "ใจงาม", "id_card": "1234567890123",
		"phone": "0812345678", "applied_level": "ม.4",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env = s.do(http.MethodGet, "/api/public/students/status?id_card=1234567890123", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var found struct {
		Found   bool `json:"found"`
		Student struct {
			FullName      string `json:"full_name"`
			DepositStatus string `json:"deposit_status"`
		} `json:"student"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &found))
	assert.True(t, found.Found)
	assert.Equal(t, "สมหญิง ใจงาม", found.Student.FullName)
	assert.Equal(t, models.StatusPending, found.Student.DepositStatus)

	rec, env = s.do(http.MethodGet, "/api/public/students/status?id_card=9999999999999", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var missing struct {
		Found       bool   `json:"found"`
		RegisterURL string `json:"register_url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &missing))
	assert.False(t, missing.Found)
	assert.Equal(t, "/student/register", missing.RegisterURL)
}

func TestRegisterStudentRejectsBadIDCard(t *testing.T) {
	s := newTestServer(t)
	rec, _ := s.do(http.MethodPost, "/api/public/students/register", gin.H{
		"first_name": "ก", "last_name": "ข", "id_card": "12345", "phone": "08", "applied_level": "ม.1",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodGet, "/api/admin/dashboard", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)

	rec, _ = s.do(http.MethodGet, "/api/admin/dashboard", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	teacherToken, _, err := s.app.Tokens.Issue(1, services.RoleTeacher, "ครู")
	require.NoError(t, err)
	rec, _ = s.do(http.MethodGet, "/api/admin/dashboard", nil, teacherToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	token := s.adminToken()
	rec, _ = s.do(http.MethodGet, "/api/admin/dashboard", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken()

	rec, _ := s.do(http.MethodGet, "/api/auth/session", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := s.do(http.MethodGet, "/api/auth/session", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token revoked", env.Error)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServer(t)
	s.adminToken()
	rec, env := s.do(http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
}

func TestNavbarCrudAndReorder(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken()

	var ids []uint
	for _, label := range []string{"หน้าแรก", "ข่าว"} {
		rec, env := s.do(http.MethodPost, "/api/admin/navbar", gin.H{"label": label, "href": "/" + label}, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var out struct {
			Item  models.NavbarItem   `json:"item"`
			Items []models.NavbarItem `json:"items"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &out))
		ids = append(ids, out.Item.ID)
		assert.Len(t, out.Items, len(ids))
	}

	rec, _ := s.do(http.MethodPost, "/api/admin/navbar/reorder", gin.H{"id_a": ids[0], "id_b": ids[1]}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, env := s.do(http.MethodGet, "/api/public/navbar", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.NavbarItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "ข่าว", items[0].Label)

	rec, _ = s.do(http.MethodPut, "/api/admin/navbar/"+itoa(ids[0]), gin.H{"label": "Home", "href": "/"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// ไม่ confirm = ไม่ลบ
	rec, _ = s.do(http.MethodDelete, "/api/admin/navbar/"+itoa(ids[0]), nil, token)
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	var n int64
	require.NoError(t, s.db.Model(&models.NavbarItem{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)

	rec, _ = s.do(http.MethodDelete, "/api/admin/navbar/"+itoa(ids[0])+"?confirm=true", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = s.do(http.MethodDelete, "/api/admin/navbar/"+itoa(ids[0])+"?confirm=true", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/admin/navbar/abc", nil, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScholarshipStatusAndExport(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken()

	app := models.ScholarshipApplication{FullName: "มะลิ", SchoolName: "บ้านนา"}
	require.NoError(t, services.NewScholarshipService(s.db).Submit(context.Background(), &app))
	path := "/api/admin/scholarship-applications/" + itoa(app.ID)

	rec, _ := s.do(http.MethodPatch, path+"/status", gin.H{"status": models.ScholarshipApproved}, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = s.do(http.MethodPatch, path+"/status", gin.H{"status": models.ScholarshipUnderReview}, token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = s.do(http.MethodGet, "/api/admin/scholarship-applications/export", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename=scholarship_applications_\d+\.csv$`, rec.Header().Get("Content-Disposition"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\ufeff"))
	assert.Equal(t, 2, strings.Count(body, "\n"))
	assert.Contains(t, body, models.ScholarshipUnderReview)

	rec, _ = s.do(http.MethodGet, path+"/print", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "window.print()")
}

func TestTeacherAccessFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken()

	rec, env := s.do(http.MethodPost, "/api/admin/teachers", gin.H{"name": "ครูสมศรี", "position": "ครูแนะแนว", "group_level": 2}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Item models.Teacher `json:"item"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, env = s.do(http.MethodPost, "/api/admin/teachers/"+itoa(created.Item.ID)+"/access-code", nil, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var issued services.IssuedCode
	require.NoError(t, json.Unmarshal(env.Data, &issued))

	rec, _ = s.do(http.MethodPost, "/api/teacher/login", gin.H{"code": "ZZZZ-ZZZZ"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = s.do(http.MethodPost, "/api/teacher/login", gin.H{"code": strings.ToLower(issued.Code)}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var sess services.TeacherSession
	require.NoError(t, json.Unmarshal(env.Data, &sess))

	rec, _ = s.do(http.MethodGet, "/api/teacher/me", nil, sess.Token)
	assert.Equal(t, http.StatusOK, rec.Code)

	// token ครูใช้หลังบ้านไม่ได้
	rec, _ = s.do(http.MethodGet, "/api/admin/dashboard", nil, sess.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSettingsEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken()

	rec, _ := s.do(http.MethodGet, "/api/public/settings/statistics", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(http.MethodPut, "/api/admin/settings/statistics", gin.H{"value": []gin.H{{"number": "100+", "label": "นักเรียน"}}}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, env := s.do(http.MethodGet, "/api/public/settings/statistics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var row struct {
		Value []models.Statistic `json:"value"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &row))
	assert.Equal(t, []models.Statistic{{Number: "100+", Label: "นักเรียน"}}, row.Value)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
