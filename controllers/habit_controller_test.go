package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// habitTestRouter wires the habit endpoints behind a stub auth layer that
// injects the given user id.
func habitTestRouter(t *testing.T, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Habit{}))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	r.GET("/habits", ListHabits)
	r.POST("/habits", CreateHabit)
	r.PUT("/habits/:id", UpdateHabit)
	r.DELETE("/habits/:id", DeleteHabit)
	r.POST("/habits/:id/complete", CompleteHabit)
	r.POST("/habits/:id/reset-streak", ResetHabitStreak)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHabitEndpoints(t *testing.T) {
	r := habitTestRouter(t, 1)

	// create with defaults
	w := doJSON(r, http.MethodPost, "/habits", gin.H{"name": "Read 20 pages"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Habit
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.HabitFrequencyDaily, created.Frequency)
	assert.Equal(t, models.HabitPriorityMedium, created.Priority)
	assert.Equal(t, 1, created.TargetValue)
	assert.Equal(t, 0, created.Streak)

	// missing name is a 400
	w = doJSON(r, http.MethodPost, "/habits", gin.H{"category": "learning"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// complete twice in a day: streak stays at 1
	path := fmt.Sprintf("/habits/%d/complete", created.ID)
	for i := 0; i < 2; i++ {
		w = doJSON(r, http.MethodPost, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Streak        int    `json:"streak"`
			LastCompleted string `json:"last_completed"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Streak)
		assert.NotEmpty(t, resp.LastCompleted)
	}

	// reset
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/habits/%d/reset-streak", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reset struct {
		Streak int `json:"streak"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reset))
	assert.Equal(t, 0, reset.Streak)

	// deactivate without touching anything else
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/habits/%d", created.ID), gin.H{
		"name": "Read 20 pages", "is_active": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// active filter hides it
	w = doJSON(r, http.MethodGet, "/habits?active=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var habits []models.Habit
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &habits))
	assert.Empty(t, habits)

	// delete, then 404 on the second attempt
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/habits/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/habits/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHabitEndpointsUnknownID(t *testing.T) {
	r := habitTestRouter(t, 1)

	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodPost, "/habits/42/complete", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodPost, "/habits/42/reset-streak", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, "/habits/42", nil).Code)
}
