package member

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/anygymuk/anygymAPI/internal/staff"
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

func memberColumns() []string {
	return []string{"id", "name", "email", "password_hash", "created_at"}
}

func TestCreateMember(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO members").
		WithArgs("Sam", "sam@test.com", "hash").
		WillReturnRows(sqlmock.NewRows(memberColumns()).
			AddRow(1, "Sam", "sam@test.com", "hash", now))

	m, err := repo.Create(ctx, "Sam", "sam@test.com", "hash")
	require.NoError(t, err)
	require.Equal(t, 1, m.ID)
	require.Equal(t, "sam@test.com", m.Email)
}

func TestFindByEmail(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at").
		WithArgs("sam@test.com").
		WillReturnRows(sqlmock.NewRows(memberColumns()).
			AddRow(1, "Sam", "sam@test.com", "hash", now))

	m, err := repo.FindByEmail(ctx, "sam@test.com")
	require.NoError(t, err)
	require.Equal(t, 1, m.ID)
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at").
		WithArgs("ghost@test.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@test.com")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMemberEmailExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("sam@test.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "sam@test.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestMemberListInScope_Chain(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT DISTINCT m.id").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(memberColumns()).
			AddRow(1, "Sam", "sam@test.com", "hash", now).
			AddRow(2, "Kim", "kim@test.com", "hash", now))

	members, err := repo.ListInScope(ctx, staff.Scope{Kind: staff.ChainScope, ChainID: 1})
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestMemberListInScope_GymSet(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT DISTINCT m.id").
		WithArgs(10, 11).
		WillReturnRows(sqlmock.NewRows(memberColumns()).
			AddRow(1, "Sam", "sam@test.com", "hash", now))

	members, err := repo.ListInScope(ctx, staff.Scope{Kind: staff.GymSetScope, GymIDs: []int{10, 11}})
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestMemberListInScope_Empty(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	members, err := repo.ListInScope(context.Background(), staff.Scope{Kind: staff.EmptyScope})
	require.NoError(t, err)
	require.Empty(t, members)
	require.NoError(t, mock.ExpectationsWereMet())
}
