package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"billmitra/internal/csvexport"
	"billmitra/internal/domain"
	"billmitra/internal/export"
	"billmitra/internal/ledger"
	"billmitra/internal/port"
)

// ExportArtifact is a generated export file, optionally uploaded to object
// storage.
type ExportArtifact struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
	Location    string `json:"location,omitempty"`
	PresignURL  string `json:"presign_url,omitempty"`
}

// LedgerService builds party ledgers and day books and renders them as
// downloadable files.
type LedgerService interface {
	PartyLedger(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time) ([]domain.LedgerEntry, error)
	DayBook(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.LedgerEntry, error)
	ExportPartyLedgerCSV(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time, upload bool) (*ExportArtifact, error)
	ExportDayBookXLSX(ctx context.Context, tenantID uuid.UUID, from, to time.Time, upload bool) (*ExportArtifact, error)
}

type ledgerService struct {
	aggregator    *ledger.Aggregator
	parties       port.PartyRepository
	storage       port.ObjectStorage
	bucket        string
	presignExpiry time.Duration
}

// NewLedgerService creates a new LedgerService implementation. Storage may be
// nil, in which case uploads are skipped and exports are download-only.
func NewLedgerService(
	aggregator *ledger.Aggregator,
	parties port.PartyRepository,
	storage port.ObjectStorage,
	bucket string,
	presignExpiry time.Duration,
) LedgerService {
	return &ledgerService{
		aggregator:    aggregator,
		parties:       parties,
		storage:       storage,
		bucket:        bucket,
		presignExpiry: presignExpiry,
	}
}

func (s *ledgerService) PartyLedger(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time) ([]domain.LedgerEntry, error) {
	if _, err := s.parties.GetByID(ctx, tenantID, partyID); err != nil {
		return nil, err
	}
	return s.aggregator.BuildLedger(ctx, tenantID, partyID, from, to)
}

func (s *ledgerService) DayBook(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.LedgerEntry, error) {
	return s.aggregator.BuildDayBook(ctx, tenantID, from, to)
}

func (s *ledgerService) ExportPartyLedgerCSV(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time, upload bool) (*ExportArtifact, error) {
	party, err := s.parties.GetByID(ctx, tenantID, partyID)
	if err != nil {
		return nil, err
	}
	entries, err := s.aggregator.BuildLedger(ctx, tenantID, partyID, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := buf.Write(csvexport.BOM); err != nil {
		return nil, fmt.Errorf("ledgerService.ExportPartyLedgerCSV: %w", err)
	}
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, fmt.Errorf("ledgerService.ExportPartyLedgerCSV: %w", err)
	}
	if err := w.WriteEntries(entries); err != nil {
		return nil, fmt.Errorf("ledgerService.ExportPartyLedgerCSV: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("ledgerService.ExportPartyLedgerCSV: %w", err)
	}

	artifact := &ExportArtifact{
		Filename:    csvexport.BuildFilename(party.Name),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}
	if upload {
		if err := s.upload(ctx, tenantID, artifact); err != nil {
			return nil, err
		}
	}
	return artifact, nil
}

func (s *ledgerService) ExportDayBookXLSX(ctx context.Context, tenantID uuid.UUID, from, to time.Time, upload bool) (*ExportArtifact, error) {
	entries, err := s.aggregator.BuildDayBook(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	data, err := export.DayBookXLSX(entries, from, to)
	if err != nil {
		return nil, fmt.Errorf("ledgerService.ExportDayBookXLSX: %w", err)
	}

	artifact := &ExportArtifact{
		Filename:    export.BuildDayBookFilename(from, to),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}
	if upload {
		if err := s.upload(ctx, tenantID, artifact); err != nil {
			return nil, err
		}
	}
	return artifact, nil
}

// upload stores the artifact under exports/{tenant}/{filename} and attaches
// the location plus a presigned download URL.
func (s *ledgerService) upload(ctx context.Context, tenantID uuid.UUID, artifact *ExportArtifact) error {
	if s.storage == nil {
		return domain.ErrInvalidInput
	}
	key := fmt.Sprintf("exports/%s/%s", tenantID, artifact.Filename)
	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(artifact.Data),
		ContentType: artifact.ContentType,
	})
	if err != nil {
		return fmt.Errorf("ledgerService.upload: %w", err)
	}
	artifact.Location = out.Location

	url, err := s.storage.PresignGet(ctx, s.bucket, key, s.presignExpiry)
	if err != nil {
		return fmt.Errorf("ledgerService.upload: %w", err)
	}
	artifact.PresignURL = url
	return nil
}
