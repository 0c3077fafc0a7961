package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartcoach/internal/config"
	"smartcoach/internal/middleware"
	"smartcoach/internal/models"
	"smartcoach/internal/notify"
	"smartcoach/internal/routes"
	"smartcoach/internal/storage"
)

// fakeSender records delivered mail. Async sends are observed through
// the channel so tests can wait without sleeping.
type fakeSender struct {
	mu   sync.Mutex
	sent []notify.Message
	fail error
	ch   chan notify.Message
}

func newFakeSender() *fakeSender {
	return &fakeSender{ch: make(chan notify.Message, 16)}
}

func (f *fakeSender) Send(m notify.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, m)
	select {
	case f.ch <- m:
	default:
	}
	return nil
}

func (f *fakeSender) waitForMail(t *testing.T) notify.Message {
	t.Helper()
	select {
	case m := <-f.ch:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return notify.Message{}
	}
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// setupTest wires the router against a fresh in-memory database and a
// recording mail sender.
func setupTest(t *testing.T) (*gin.Engine, *fakeSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	// The in-memory database lives per connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	config.DB = db

	sender := newFakeSender()
	notify.Default = sender

	storage.UploadDir = t.TempDir()

	return routes.SetupRouter(), sender
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("could not encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("could not decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func createUser(t *testing.T, username, role string) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Valid1pw!"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("could not hash password: %v", err)
	}
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		Role:     role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("could not create user %s: %v", username, err)
	}
	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}
	return user, token
}

func seedTrain(t *testing.T, number, name string, coachNumbers ...string) (models.Train, []models.Coach) {
	t.Helper()
	train := models.Train{Number: number, Name: name}
	if err := config.DB.Create(&train).Error; err != nil {
		t.Fatalf("could not create train: %v", err)
	}
	coaches := make([]models.Coach, 0, len(coachNumbers))
	for _, cn := range coachNumbers {
		coach := models.Coach{CoachNumber: cn, CoachType: "SL", TrainID: train.ID}
		if err := config.DB.Create(&coach).Error; err != nil {
			t.Fatalf("could not create coach: %v", err)
		}
		coaches = append(coaches, coach)
	}
	return train, coaches
}

func countRows(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := config.DB.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}
