package dashboard

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

func setupDashboardRouter() *gin.Engine {
	r := testutils.SetupTestRouter()
	r.GET("/dashboard/stats", func(c *gin.Context) {
		c.Set("user_id", testUserID)
		GetStats(c)
	})
	r.GET("/dashboard/recent-products", func(c *gin.Context) {
		c.Set("user_id", testUserID)
		GetRecentProducts(c)
	})
	return r
}

func TestGetStats_Aggregation(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE user_id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "descriptions" WHERE user_id = \$1 AND created_at >= \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(seo_score\), 0\) FROM "descriptions" WHERE user_id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7.5))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs(testUserID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "api_credits"}).
			AddRow(testUserID, "user@example.com", 42))

	r := setupDashboardRouter()

	req, _ := http.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var stats DashboardStats
	json.Unmarshal(resp.Body.Bytes(), &stats)
	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.GeneratedThisMonth)
	assert.Equal(t, 7.5, stats.AvgSeoScore)
	assert.Equal(t, 42, stats.ApiCredits)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStats_NoDescriptions(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE user_id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "descriptions" WHERE user_id = \$1 AND created_at >= \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(seo_score\), 0\) FROM "descriptions" WHERE user_id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	// NULL credit counter shows as 0 on the dashboard
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs(testUserID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "api_credits"}).
			AddRow(testUserID, "user@example.com", nil))

	r := setupDashboardRouter()

	req, _ := http.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var stats DashboardStats
	json.Unmarshal(resp.Body.Bytes(), &stats)
	assert.Equal(t, float64(0), stats.AvgSeoScore)
	assert.Equal(t, 0, stats.ApiCredits)
}

func TestGetRecentProducts_DefaultLimit(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE user_id = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs(testUserID, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}).
			AddRow("id-1", testUserID, "Newest"))

	r := setupDashboardRouter()

	req, _ := http.NewRequest(http.MethodGet, "/dashboard/recent-products", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var products []models.Product
	json.Unmarshal(resp.Body.Bytes(), &products)
	assert.Len(t, products, 1)
	assert.Equal(t, "Newest", products[0].Name)
}

func TestGetRecentProducts_CustomLimit(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE user_id = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs(testUserID, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}).
			AddRow("id-1", testUserID, "Newest").
			AddRow("id-2", testUserID, "Second"))

	r := setupDashboardRouter()

	req, _ := http.NewRequest(http.MethodGet, "/dashboard/recent-products?limit=2", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var products []models.Product
	json.Unmarshal(resp.Body.Bytes(), &products)
	assert.Len(t, products, 2)
}
