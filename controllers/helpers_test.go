package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"eventhub/config"
	"eventhub/models"
	"eventhub/utils"
	"eventhub/utils/email"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// mailRecorder is a Mailer that records calls instead of sending.
type mailRecorder struct {
	confirmations []string
	cancellations [][]email.Recipient
	fail          bool
}

func (m *mailRecorder) SendConfirmation(userName, userEmail, eventName, eventDate, eventVenue, eventCategory string, eventPrice float64) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.confirmations = append(m.confirmations, userEmail)
	return nil
}

func (m *mailRecorder) SendCancellation(recipients []email.Recipient, eventName, eventDate, eventVenue string) error {
	m.cancellations = append(m.cancellations, recipients)
	if m.fail {
		return errors.New("smtp unavailable")
	}
	return nil
}

// setupTest builds a router over a fresh in-memory database keyed by the
// test name, with a recording mailer.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB, *mailRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, MigrateModels(db))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{JWTSecret: testSecret}
	mailer := &mailRecorder{}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := gin.New()
	RegisterRoutes(r, db, cfg, mailer, logger)
	return r, db, mailer
}

func createUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		IsAdmin:  isAdmin,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createEvent(t *testing.T, db *gorm.DB, title string, capacity int) models.Event {
	t.Helper()
	event := models.Event{
		Title:       title,
		Description: "A test event",
		Venue:       "Town Hall",
		Capacity:    capacity,
		Price:       25,
		Date:        time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Category:    "General",
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	tok, err := utils.GenerateToken(testSecret, user)
	require.NoError(t, err)
	return tok
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
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
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
