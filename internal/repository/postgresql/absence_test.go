package postgresql

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
)

func newAbsenceMock(t *testing.T) (pgxmock.PgxPoolIface, absence.AbsenceRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewAbsenceRepository(mock)
}

func absenceColumns() []string {
	return []string{"id", "matricule", "date", "reason_code", "source", "note", "upload_id", "created_at", "updated_at"}
}

func TestAbsenceRepository_Upsert(t *testing.T) {
	t.Parallel()
	mock, repo := newAbsenceMock(t)

	now := time.Now()
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO absences`).
		WithArgs("abs-1", "100", "2025-06-11", absence.ReasonSick, absence.SourceManual, (*string)(nil), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows(absenceColumns()).
			AddRow("abs-1", "100", date, "SICK", "MANUAL", (*string)(nil), (*string)(nil), now, now))

	saved, err := repo.Upsert(context.Background(), absence.Absence{
		ID:         "abs-1",
		Matricule:  "100",
		Date:       "2025-06-11",
		ReasonCode: absence.ReasonSick,
		Source:     absence.SourceManual,
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-06-11", saved.Date)
	assert.Equal(t, absence.SourceManual, saved.Source)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAbsenceRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	mock, repo := newAbsenceMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM absences`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(absenceColumns()))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAbsenceRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()
	mock, repo := newAbsenceMock(t)

	mock.ExpectExec(`DELETE FROM absences`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAbsenceRepository_ListForDate(t *testing.T) {
	t.Parallel()
	mock, repo := newAbsenceMock(t)

	now := time.Now()
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	note := "sick note"
	mock.ExpectQuery(`SELECT (.+) FROM absences`).
		WithArgs("2025-06-11").
		WillReturnRows(pgxmock.NewRows(absenceColumns()).
			AddRow("abs-1", "100", date, "SICK", "MANUAL", &note, (*string)(nil), now, now).
			AddRow("abs-2", "200", date, "ABSENT", "FILE", (*string)(nil), (*string)(nil), now, now))

	absences, err := repo.ListForDate(context.Background(), "2025-06-11")

	require.NoError(t, err)
	require.Len(t, absences, 2)
	assert.Equal(t, "100", absences[0].Matricule)
	require.NotNil(t, absences[0].Note)
	assert.Equal(t, "sick note", *absences[0].Note)
	assert.Equal(t, absence.SourceFile, absences[1].Source)
	assert.NoError(t, mock.ExpectationsWereMet())
}
