package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db database.Querier
}

func NewAbsenceRepository(db database.Querier) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

// ListForMonth implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) ListForMonth(ctx context.Context, year int, month int, matricule string) ([]absence.Absence, error) {
	query := `
		SELECT id, matricule, date, reason_code, source, note, upload_id, created_at, updated_at
		FROM absences
		WHERE date >= make_date($1, $2, 1)
			AND date < make_date($1, $2, 1) + INTERVAL '1 month'
			AND ($3 = '' OR matricule = $3)
		ORDER BY date, matricule
	`

	rows, err := r.db.Query(ctx, query, year, month, matricule)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences for %04d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	return collectAbsences(rows)
}

// ListForDate implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) ListForDate(ctx context.Context, date string) ([]absence.Absence, error) {
	query := `
		SELECT id, matricule, date, reason_code, source, note, upload_id, created_at, updated_at
		FROM absences
		WHERE date = $1::date
		ORDER BY matricule
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences for %s: %w", date, err)
	}
	defer rows.Close()

	return collectAbsences(rows)
}

// GetByID implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id string) (absence.Absence, error) {
	query := `
		SELECT id, matricule, date, reason_code, source, note, upload_id, created_at, updated_at
		FROM absences
		WHERE id = $1
	`

	a, err := scanAbsence(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Absence{}, absence.ErrAbsenceNotFound
		}
		return absence.Absence{}, fmt.Errorf("failed to get absence %s: %w", id, err)
	}
	return a, nil
}

// Upsert implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Upsert(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	query := `
		INSERT INTO absences (id, matricule, date, reason_code, source, note, upload_id)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7)
		ON CONFLICT (matricule, date, source) DO UPDATE
			SET reason_code = EXCLUDED.reason_code,
				note = EXCLUDED.note,
				upload_id = EXCLUDED.upload_id,
				updated_at = NOW()
		RETURNING id, matricule, date, reason_code, source, note, upload_id, created_at, updated_at
	`

	saved, err := scanAbsence(r.db.QueryRow(ctx, query,
		a.ID, a.Matricule, a.Date, a.ReasonCode, a.Source, a.Note, a.UploadID,
	))
	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to upsert absence for %s on %s: %w", a.Matricule, a.Date, err)
	}
	return saved, nil
}

// Update implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Update(ctx context.Context, a absence.Absence) error {
	query := `
		UPDATE absences
		SET date = $1::date, reason_code = $2, note = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := r.db.QueryRow(ctx, query, a.Date, a.ReasonCode, a.Note, a.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.ErrAbsenceNotFound
		}
		return fmt.Errorf("failed to update absence %s: %w", a.ID, err)
	}
	return nil
}

// Delete implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM absences WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete absence %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}

// ListTypes implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) ListTypes(ctx context.Context) ([]absence.AbsenceType, error) {
	query := `
		SELECT reason_code, label, description, category, created_at
		FROM absence_types
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence types: %w", err)
	}
	defer rows.Close()

	var types []absence.AbsenceType
	for rows.Next() {
		var t absence.AbsenceType
		err := rows.Scan(&t.ReasonCode, &t.Label, &t.Description, &t.Category, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

// CreateType implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) CreateType(ctx context.Context, t absence.AbsenceType) (absence.AbsenceType, error) {
	query := `
		INSERT INTO absence_types (reason_code, label, description, category)
		VALUES ($1, $2, $3, $4)
		RETURNING reason_code, label, description, category, created_at
	`

	var created absence.AbsenceType
	err := r.db.QueryRow(ctx, query, t.ReasonCode, t.Label, t.Description, t.Category).Scan(
		&created.ReasonCode, &created.Label, &created.Description, &created.Category, &created.CreatedAt,
	)
	if err != nil {
		return absence.AbsenceType{}, fmt.Errorf("failed to create absence type %s: %w", t.Label, err)
	}
	return created, nil
}

func collectAbsences(rows pgx.Rows) ([]absence.Absence, error) {
	var absences []absence.Absence
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, err
		}
		absences = append(absences, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return absences, nil
}

func scanAbsence(row pgx.Row) (absence.Absence, error) {
	var a absence.Absence
	var date time.Time
	err := row.Scan(
		&a.ID, &a.Matricule, &date, &a.ReasonCode, &a.Source,
		&a.Note, &a.UploadID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return absence.Absence{}, err
	}
	a.Date = date.Format("2006-01-02")
	return a, nil
}
