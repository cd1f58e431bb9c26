package pass_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anygymuk/anygymAPI/internal/audit"
	"github.com/anygymuk/anygymAPI/internal/auth"
	"github.com/anygymuk/anygymAPI/internal/gym"
	"github.com/anygymuk/anygymAPI/internal/pass"
	"github.com/anygymuk/anygymAPI/internal/staff"
)

func newStaffRouter(db *sqlx.DB) *gin.Engine {
	auditRepo := audit.NewRepository(db)
	gymRepo := gym.NewRepository(db)
	gymService := gym.NewService(gymRepo, auditRepo)
	gymHandler := gym.NewHandler(gymService)

	staffRepo := staff.NewRepository(db)
	staffService := staff.NewService(staffRepo, gymRepo, auditRepo, "test-secret")

	passRepo := pass.NewRepository(db)

	authMiddleware := auth.AuthMiddleware("test-secret")
	accountMiddleware := staff.AccountMiddleware(staffService)

	router := gin.New()
	staffGroup := router.Group("/staff")
	staffGroup.Use(authMiddleware, accountMiddleware)
	{
		staffGroup.GET("/gyms", gymHandler.ListGymsForStaff)

		// The pass list uses the same scope resolution as the gym list.
		staffGroup.GET("/passes", func(c *gin.Context) {
			acct, _ := staff.AccountFromContext(c)
			passes, err := passRepo.ListInScope(c.Request.Context(), staff.ScopeFor(acct))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, passes)
		})
	}

	return router
}

func TestStaffScopeIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	defer db.Close()

	cleanDatabase(t, db)
	ensureTierPrices(t, db)

	router := newStaffRouter(db)

	listGyms := func(staffID int, email string) (int, []map[string]interface{}) {
		token := generateTestToken(staffID, email, "gym_staff")
		req := httptest.NewRequest("GET", "/staff/gyms", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var gyms []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &gyms)
		return w.Code, gyms
	}

	t.Run("Chain admin sees every gym in the chain", func(t *testing.T) {
		cleanDatabase(t, db)

		chainAID := createTestChain(t, db, "Chain A")
		chainBID := createTestChain(t, db, "Chain B")
		createTestGym(t, db, chainAID, "A1", "standard", "active")
		createTestGym(t, db, chainAID, "A2", "standard", "inactive")
		createTestGym(t, db, chainBID, "B1", "standard", "active")

		adminID := createTestStaff(t, db, "admin@example.com", "chain_admin", &chainAID, nil)

		code, gyms := listGyms(adminID, "admin@example.com")
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, gyms, 2)
	})

	t.Run("Gym staff sees only assigned gyms", func(t *testing.T) {
		cleanDatabase(t, db)

		chainID := createTestChain(t, db, "Chain A")
		gym1 := createTestGym(t, db, chainID, "A1", "standard", "active")
		createTestGym(t, db, chainID, "A2", "standard", "active")

		deskID := createTestStaff(t, db, "desk@example.com", "gym_staff", nil, []int{gym1})

		code, gyms := listGyms(deskID, "desk@example.com")
		require.Equal(t, http.StatusOK, code)
		require.Len(t, gyms, 1)
		assert.Equal(t, "A1", gyms[0]["name"])
	})

	t.Run("Account with no assignments sees nothing", func(t *testing.T) {
		cleanDatabase(t, db)

		chainID := createTestChain(t, db, "Chain A")
		createTestGym(t, db, chainID, "A1", "standard", "active")

		deskID := createTestStaff(t, db, "desk@example.com", "gym_staff", nil, nil)

		code, gyms := listGyms(deskID, "desk@example.com")
		require.Equal(t, http.StatusOK, code)
		assert.Empty(t, gyms)
	})

	t.Run("Pass list is chain scoped", func(t *testing.T) {
		cleanDatabase(t, db)

		memberID := createTestMember(t, db, "sam@example.com", "Sam")
		chainAID := createTestChain(t, db, "Chain A")
		chainBID := createTestChain(t, db, "Chain B")
		gymA := createTestGym(t, db, chainAID, "A1", "standard", "active")
		gymB := createTestGym(t, db, chainBID, "B1", "standard", "active")

		_, err := db.Exec(`
			INSERT INTO gym_passes (member_id, gym_id, code, status, tier, cost_cents, valid_until)
			VALUES ($1, $2, 'GP-SCOPEA01', 'active', 'standard', 900, NOW() + INTERVAL '1 day'),
			       ($1, $3, 'GP-SCOPEB01', 'active', 'standard', 900, NOW() + INTERVAL '1 day')
		`, memberID, gymA, gymB)
		require.NoError(t, err)

		adminID := createTestStaff(t, db, "admin@example.com", "chain_admin", &chainAID, nil)

		token := generateTestToken(adminID, "admin@example.com", "chain_admin")
		req := httptest.NewRequest("GET", "/staff/passes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var passes []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &passes)
		require.Len(t, passes, 1)
		assert.Equal(t, "GP-SCOPEA01", passes[0]["code"])
	})
}
