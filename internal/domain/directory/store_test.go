package directory

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompanyReturnsID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO companies").
		WithArgs("Acme", "ops@acme.test", "50-100", "software").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("company-1"))

	store := NewStore(mock)
	id, err := store.CreateCompany(context.Background(), "Acme", "ops@acme.test", "50-100", "software")
	require.NoError(t, err)
	assert.Equal(t, "company-1", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCompanyAbsentIsNil(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM companies").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "size", "industry", "created_at"}))

	store := NewStore(mock)
	company, err := store.GetCompany(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, company)
}

func TestGetCompanyScansNullableColumns(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM companies").
		WithArgs("company-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "size", "industry", "created_at"}).
			AddRow("company-1", "Acme", "", "", "", time.Now()))

	store := NewStore(mock)
	company, err := store.GetCompany(context.Background(), "company-1")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "Acme", company.Name)
	assert.Empty(t, company.Industry)
}

func TestCreateTeamBlankDepartmentBecomesNull(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO teams").
		WithArgs("company-1", "", "Platform", "infra team").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("team-1"))

	store := NewStore(mock)
	id, err := store.CreateTeam(context.Background(), "company-1", "", "Platform", "infra team")
	require.NoError(t, err)
	assert.Equal(t, "team-1", id)
}

func TestListTeamsScopedToCompany(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM teams").
		WithArgs("company-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "company_id", "department_id", "name", "description"}).
			AddRow("team-1", "company-1", "", "Platform", "").
			AddRow("team-2", "company-1", "dep-1", "Product", "feature work"))

	store := NewStore(mock)
	teams, err := store.ListTeams(context.Background(), "company-1")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Platform", teams[0].Name)
	assert.Equal(t, "dep-1", teams[1].DepartmentID)
}

func TestDeleteTeam(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM teams").
		WithArgs("company-1", "team-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	store := NewStore(mock)
	require.NoError(t, store.DeleteTeam(context.Background(), "company-1", "team-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
