package staff

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func accountColumns() []string {
	return []string{"id", "name", "email", "password_hash", "role", "chain_id", "created_at"}
}

func TestCreateAccount_WithAssignments(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO staff_accounts").
		WithArgs("Desk", "desk@anygym.uk", "hash", RoleGymStaff, (*int)(nil)).
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow(7, "Desk", "desk@anygym.uk", "hash", "gym_staff", nil, now))
	mock.ExpectExec("INSERT INTO staff_gym_assignments").
		WithArgs(7, 10).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO staff_gym_assignments").
		WithArgs(7, 11).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	acct, err := repo.Create(ctx, "Desk", "desk@anygym.uk", "hash", RoleGymStaff, nil, []int{10, 11})
	require.NoError(t, err)
	require.Equal(t, 7, acct.ID)
	require.Equal(t, []int{10, 11}, acct.GymIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_RollbackOnAssignmentError(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO staff_accounts").
		WithArgs("Desk", "desk@anygym.uk", "hash", RoleGymStaff, (*int)(nil)).
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow(7, "Desk", "desk@anygym.uk", "hash", "gym_staff", nil, now))
	mock.ExpectExec("INSERT INTO staff_gym_assignments").
		WithArgs(7, 99).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := repo.Create(ctx, "Desk", "desk@anygym.uk", "hash", RoleGymStaff, nil, []int{99})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail_LoadsAssignments(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT id, name, email, password_hash, role, chain_id, created_at").
		WithArgs("desk@anygym.uk").
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow(7, "Desk", "desk@anygym.uk", "hash", "gym_staff", nil, now))
	mock.ExpectQuery("SELECT gym_id").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"gym_id"}).AddRow(10).AddRow(11))

	acct, err := repo.FindByEmail(ctx, "desk@anygym.uk")
	require.NoError(t, err)
	require.Equal(t, RoleGymStaff, acct.Role)
	require.Equal(t, []int{10, 11}, acct.GymIDs)
}

func TestFindByID_ChainAdmin(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT id, name, email, password_hash, role, chain_id, created_at").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow(3, "Ava", "ava@anygym.uk", "hash", "chain_admin", 1, now))
	mock.ExpectQuery("SELECT gym_id").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"gym_id"}))

	acct, err := repo.FindByID(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, RoleChainAdmin, acct.Role)
	require.NotNil(t, acct.ChainID)
	require.Equal(t, 1, *acct.ChainID)
	require.Empty(t, acct.GymIDs)
}

func TestStaffEmailExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("desk@anygym.uk").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(ctx, "desk@anygym.uk")
	require.NoError(t, err)
	require.True(t, exists)
}
