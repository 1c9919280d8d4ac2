package absence

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
	"github.com/atlashr/pointage-backend-go/internal/pkg/validator"
)

// fileReasonMap normalizes the reason cell of uploaded absence files to
// the internal vocabulary. Keys are matched after trimming and
// uppercasing; anything else is skipped.
var fileReasonMap = map[string]string{
	"A":      absence.ReasonAbsent,
	"ABS":    absence.ReasonAbsent,
	"ABSENT": absence.ReasonAbsent,
	"1":      absence.ReasonAbsent,
	"AN":     absence.ReasonAbsent,
	"SICK":   absence.ReasonSick,
	"LEAVE":  absence.ReasonLeave,
	"UNPAID": absence.ReasonUnpaid,
}

// builtinTypes is the fixed part of the reason-code vocabulary; custom
// types registered at runtime extend it.
var builtinTypes = []absence.AbsenceType{
	{ReasonCode: absence.ReasonAbsent, Label: "Unjustified absence", Category: absence.CategoryUnjustified},
	{ReasonCode: absence.ReasonSick, Label: "Sick leave", Category: absence.CategoryJustified},
	{ReasonCode: absence.ReasonLeave, Label: "Annual leave", Category: absence.CategoryJustified},
	{ReasonCode: absence.ReasonUnpaid, Label: "Unpaid leave", Category: absence.CategorySpecial},
}

type AbsenceServiceImpl struct {
	absenceRepo absence.AbsenceRepository
	calendar    *holiday.Calendar

	// Absence data epoch. Every successful write bumps it so cached
	// analytics keyed on the version are invalidated.
	mu           sync.Mutex
	version      uint64
	recomputedAt time.Time
}

func NewAbsenceService(absenceRepo absence.AbsenceRepository, calendar *holiday.Calendar) absence.AbsenceService {
	return &AbsenceServiceImpl{
		absenceRepo:  absenceRepo,
		calendar:     calendar,
		version:      1,
		recomputedAt: time.Now(),
	}
}

func (s *AbsenceServiceImpl) bumpVersion() {
	s.mu.Lock()
	s.version++
	s.recomputedAt = time.Now()
	s.mu.Unlock()
}

// Version implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Version() absence.VersionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return absence.VersionInfo{
		Version:      s.version,
		RecomputedAt: s.recomputedAt.UTC().Format(time.RFC3339),
	}
}

// ListAbsences implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListAbsences(ctx context.Context, year int, month int, matricule string) ([]absence.AbsenceResponse, error) {
	records, err := s.absenceRepo.ListForMonth(ctx, year, month, matricule)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	responses := make([]absence.AbsenceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, mapAbsenceToResponse(a))
	}
	return responses, nil
}

// AddAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) AddAbsence(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}
	if _, isHoliday := s.calendar.IsHoliday(req.Date); isHoliday {
		return absence.AbsenceResponse{}, absence.ErrAbsenceOnHoliday
	}
	if err := s.validateReasonCode(ctx, req.ReasonCode); err != nil {
		return absence.AbsenceResponse{}, err
	}

	saved, err := s.absenceRepo.Upsert(ctx, absence.Absence{
		ID:         uuid.NewString(),
		Matricule:  req.Matricule,
		Date:       req.Date,
		ReasonCode: req.ReasonCode,
		Source:     absence.SourceManual,
		Note:       req.Note,
	})
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to save absence: %w", err)
	}

	s.bumpVersion()
	return mapAbsenceToResponse(saved), nil
}

// UpdateAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) UpdateAbsence(ctx context.Context, req absence.UpdateAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}
	if _, isHoliday := s.calendar.IsHoliday(req.Date); isHoliday {
		return absence.AbsenceResponse{}, absence.ErrAbsenceOnHoliday
	}
	if err := s.validateReasonCode(ctx, req.ReasonCode); err != nil {
		return absence.AbsenceResponse{}, err
	}

	existing, err := s.absenceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	existing.Date = req.Date
	existing.ReasonCode = req.ReasonCode
	existing.Note = req.Note
	if err := s.absenceRepo.Update(ctx, existing); err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to update absence: %w", err)
	}

	s.bumpVersion()
	existing.UpdatedAt = time.Now()
	return mapAbsenceToResponse(existing), nil
}

// DeleteAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) DeleteAbsence(ctx context.Context, id string) error {
	if err := s.absenceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.bumpVersion()
	return nil
}

// ImportFromFile implements absence.AbsenceService. Rows are upserted
// independently; a bad row is skipped, never fails the whole upload.
func (s *AbsenceServiceImpl) ImportFromFile(ctx context.Context, rows []absence.ImportRow) (absence.ImportResult, error) {
	uploadID := uuid.NewString()
	result := absence.ImportResult{UploadID: uploadID}

	for _, row := range rows {
		reasonCode, ok := fileReasonMap[strings.ToUpper(strings.TrimSpace(row.Reason))]
		_, validDate := validator.IsValidDate(row.Date)
		if !ok || strings.TrimSpace(row.Matricule) == "" || !validDate {
			result.Skipped++
			continue
		}
		if _, isHoliday := s.calendar.IsHoliday(row.Date); isHoliday {
			result.Skipped++
			continue
		}

		record := absence.Absence{
			ID:         uuid.NewString(),
			Matricule:  strings.TrimSpace(row.Matricule),
			Date:       row.Date,
			ReasonCode: reasonCode,
			Source:     absence.SourceFile,
			UploadID:   &uploadID,
		}
		if note := strings.TrimSpace(row.Note); note != "" {
			record.Note = &note
		}

		if _, err := s.absenceRepo.Upsert(ctx, record); err != nil {
			return result, fmt.Errorf("failed to import absence for %s on %s: %w", record.Matricule, record.Date, err)
		}
		result.Imported++
	}

	if result.Imported > 0 {
		s.bumpVersion()
	}
	return result, nil
}

// ListTypes implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListTypes(ctx context.Context) ([]absence.AbsenceTypeResponse, error) {
	custom, err := s.absenceRepo.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence types: %w", err)
	}

	responses := make([]absence.AbsenceTypeResponse, 0, len(builtinTypes)+len(custom))
	for _, t := range builtinTypes {
		responses = append(responses, mapTypeToResponse(t))
	}
	for _, t := range custom {
		responses = append(responses, mapTypeToResponse(t))
	}
	return responses, nil
}

// AddType implements absence.AbsenceService.
func (s *AbsenceServiceImpl) AddType(ctx context.Context, req absence.CreateTypeRequest) (absence.AbsenceTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceTypeResponse{}, err
	}

	label := strings.TrimSpace(req.Label)
	existing, err := s.absenceRepo.ListTypes(ctx)
	if err != nil {
		return absence.AbsenceTypeResponse{}, fmt.Errorf("failed to list absence types: %w", err)
	}
	for _, t := range append(builtinTypes, existing...) {
		if strings.EqualFold(t.Label, label) {
			return absence.AbsenceTypeResponse{}, absence.ErrTypeLabelExists
		}
	}

	created, err := s.absenceRepo.CreateType(ctx, absence.AbsenceType{
		ReasonCode:  customReasonCode(label),
		Label:       label,
		Description: req.Description,
		Category:    absence.Category(req.Category),
	})
	if err != nil {
		return absence.AbsenceTypeResponse{}, fmt.Errorf("failed to create absence type: %w", err)
	}
	return mapTypeToResponse(created), nil
}

// validateReasonCode accepts the built-in vocabulary plus registered
// custom types.
func (s *AbsenceServiceImpl) validateReasonCode(ctx context.Context, code string) error {
	for _, t := range builtinTypes {
		if t.ReasonCode == code {
			return nil
		}
	}
	custom, err := s.absenceRepo.ListTypes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list absence types: %w", err)
	}
	for _, t := range custom {
		if t.ReasonCode == code {
			return nil
		}
	}
	return absence.ErrInvalidReasonCode
}

// customReasonCode derives a stable unique code from a display label,
// e.g. "Jury duty" -> "CUSTOM_JURY_DUTY_1717000000000".
func customReasonCode(label string) string {
	upper := strings.ToUpper(label)
	var b strings.Builder
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return fmt.Sprintf("CUSTOM_%s_%d", b.String(), time.Now().UnixMilli())
}

func mapAbsenceToResponse(a absence.Absence) absence.AbsenceResponse {
	return absence.AbsenceResponse{
		ID:         a.ID,
		Matricule:  a.Matricule,
		Date:       a.Date,
		ReasonCode: a.ReasonCode,
		Source:     string(a.Source),
		Note:       a.Note,
		UploadID:   a.UploadID,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapTypeToResponse(t absence.AbsenceType) absence.AbsenceTypeResponse {
	return absence.AbsenceTypeResponse{
		ReasonCode:  t.ReasonCode,
		Label:       t.Label,
		Description: t.Description,
		Category:    string(t.Category),
	}
}
