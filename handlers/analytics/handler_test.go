package analytics

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"seoboost-backend/models"
	"seoboost-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

const testUserID = "123e4567-e89b-12d3-a456-426614174000"

func TestGetUserAnalytics_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "analytics_events" WHERE user_id = \$1 ORDER BY timestamp DESC`).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_type", "event_data"}).
			AddRow("event-2", testUserID, models.EventDescriptionGenerated, []byte(`{"seoScore": 8}`)).
			AddRow("event-1", testUserID, models.EventProductCreated, []byte(`{"productName": "Headphones"}`)))

	r := testutils.SetupTestRouter()
	r.GET("/analytics", func(c *gin.Context) {
		c.Set("user_id", testUserID)
		GetUserAnalytics(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/analytics", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var events []models.AnalyticsEvent
	json.Unmarshal(resp.Body.Bytes(), &events)
	assert.Len(t, events, 2)
	assert.Equal(t, models.EventDescriptionGenerated, events[0].EventType)
}
