// 共用的測試 helpers + in-memory mock repos（repo 是假的，handler 是真的）
package routes_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"eventapi/models"
	"eventapi/routes"
)

/* ---------- mock repos ---------- */

type mockUserRepo struct {
	Users   map[string]models.User // key 是 email
	nextID  int64
	FindErr error // 設了就讓 FindByEmail 回這個錯（模擬 DB 掛掉）
}

func (m *mockUserRepo) FindByEmail(email string) (models.User, error) {
	if m.FindErr != nil {
		return models.User{}, m.FindErr
	}
	u, ok := m.Users[email]
	if !ok {
		return models.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (m *mockUserRepo) Insert(u *models.User) error {
	m.nextID++
	u.ID = m.nextID
	m.Users[u.Email] = *u
	return nil
}

type mockEventRepo struct {
	Items   map[int64]models.Event
	nextID  int64
	ListErr error
}

func (m *mockEventRepo) FindByTitle(title string) (models.Event, error) {
	for _, e := range m.Items {
		if e.Title == title {
			return e, nil
		}
	}
	return models.Event{}, sql.ErrNoRows
}

func (m *mockEventRepo) Insert(e *models.Event) error {
	m.nextID++
	e.ID = m.nextID
	m.Items[e.ID] = *e
	return nil
}

func (m *mockEventRepo) AllByTitleDesc() ([]models.Event, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.Event, 0, len(m.Items))
	for _, e := range m.Items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title > out[j].Title })
	return out, nil
}

func (m *mockEventRepo) UpdateByID(e *models.Event) (int64, error) {
	if _, ok := m.Items[e.ID]; !ok {
		return 0, nil // 沒中 row 不是錯
	}
	m.Items[e.ID] = *e
	return 1, nil
}

// seed 直接塞一筆進 mock（跳過 handler），id 自動遞增
func (m *mockEventRepo) seed(e models.Event) {
	m.nextID++
	e.ID = m.nextID
	m.Items[e.ID] = e
}

func (m *mockEventRepo) DeleteByID(id int64) (int64, error) {
	if _, ok := m.Items[id]; !ok {
		return 0, nil
	}
	delete(m.Items, id)
	return 1, nil
}

/* ---------- helpers ---------- */

type serverDeps struct {
	s  *gin.Engine
	ur *mockUserRepo
	er *mockEventRepo
}

func setupServerWithDeps(t *testing.T) serverDeps {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ur := &mockUserRepo{Users: map[string]models.User{}}
	er := &mockEventRepo{Items: map[int64]models.Event{}}

	s := gin.New()
	// 限速開很寬，測試不會撞到 429
	routes.RegisterRoutes(s, ur, er, routes.Options{AuthRPS: 1000, AuthBurst: 1000})
	return serverDeps{s: s, ur: ur, er: er}
}

func doReq(s *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	s.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	deps := setupServerWithDeps(t)
	w := doReq(deps.s, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
