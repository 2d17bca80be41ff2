// Package importer ingests provider box feeds from CSV, reconciling incoming
// rows against the existing catalog by fuzzy slug matching.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
	"github.com/whaamkabaam/trust-skin-hub/internal/metrics"
	"github.com/whaamkabaam/trust-skin-hub/internal/repository"
	"github.com/whaamkabaam/trust-skin-hub/internal/slug"
)

// MatchThreshold is the minimum fuzzy score for an incoming box name to be
// treated as an update of an existing box rather than a new insert.
const MatchThreshold = 0.8

// expected CSV header, one row per prize item
var expectedHeader = []string{
	"box_name", "price", "category", "tags", "box_image",
	"item_name", "item_value", "drop_chance", "item_image", "item_type",
}

// row is one parsed CSV line, validated before grouping
type row struct {
	BoxName    string  `validate:"required"`
	Price      float64 `validate:"gte=0"`
	Category   string  `validate:"required"`
	Tags       []string
	BoxImage   string
	ItemName   string  `validate:"required"`
	ItemValue  float64 `validate:"gte=0"`
	DropChance float64 `validate:"gt=0,lte=100"`
	ItemImage  string
	ItemType   string
}

// RowError describes one rejected CSV line
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Report summarizes one import run
type Report struct {
	Provider     string     `json:"provider"`
	BoxesCreated int        `json:"boxes_created"`
	BoxesUpdated int        `json:"boxes_updated"`
	RowsImported int        `json:"rows_imported"`
	RowsRejected int        `json:"rows_rejected"`
	Errors       []RowError `json:"errors,omitempty"`
}

// Service defines the interface for provider feed imports
type Service interface {
	ImportCSV(ctx context.Context, provider, sourceFile string, r io.Reader) (*Report, error)
}

type service struct {
	boxes    repository.Box
	syncMeta repository.SyncMetadata
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates a new importer service
func NewService(boxes repository.Box, syncMeta repository.SyncMetadata) Service {
	return &service{
		boxes:    boxes,
		syncMeta: syncMeta,
		validate: validator.New(),
		now:      time.Now,
	}
}

// ImportCSV parses a provider feed and reconciles it against the catalog.
// Bad rows are reported and skipped; a bad header fails the whole run.
func (s *service) ImportCSV(ctx context.Context, provider, sourceFile string, r io.Reader) (*Report, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidProviders[provider] {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidProvider, provider)
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header", domain.ErrImportRow)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	report := &Report{Provider: provider}
	grouped := make(map[string][]row)
	var order []string

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			report.reject(line, err.Error())
			continue
		}

		parsed, err := s.parseRow(record)
		if err != nil {
			report.reject(line, err.Error())
			continue
		}

		if _, seen := grouped[parsed.BoxName]; !seen {
			order = append(order, parsed.BoxName)
		}
		grouped[parsed.BoxName] = append(grouped[parsed.BoxName], *parsed)
		report.RowsImported++
	}

	existing, err := s.boxes.GetAllNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get box names: %w", err)
	}
	candidates := make([]string, 0, len(existing))
	for name := range existing {
		candidates = append(candidates, name)
	}

	for _, boxName := range order {
		rows := grouped[boxName]
		box := buildBox(provider, boxName, rows)

		created, err := s.reconcile(ctx, box, existing, candidates)
		if err != nil {
			// The whole box fails together; its rows move to rejected
			report.Errors = append(report.Errors, RowError{Reason: fmt.Sprintf("box %q: %v", boxName, err)})
			report.RowsImported -= len(rows)
			report.RowsRejected += len(rows)
			continue
		}
		if created {
			report.BoxesCreated++
			// Later boxes in this feed must see the new box, or a
			// fuzzy-equivalent name would take the insert path again and
			// fail on slug conflict.
			existing[box.Name] = box.Slug
			candidates = append(candidates, box.Name)
		} else {
			report.BoxesUpdated++
		}
		metrics.BoxesImported.WithLabelValues(provider).Add(float64(len(rows)))
	}

	metrics.ImportRowsRejected.WithLabelValues(provider).Add(float64(report.RowsRejected))

	err = s.syncMeta.Upsert(ctx, &domain.SyncMetadata{
		Provider:     provider,
		LastSyncedAt: s.now().UTC(),
		RowsImported: report.RowsImported,
		RowsRejected: report.RowsRejected,
		SourceFile:   sourceFile,
	})
	if err != nil {
		return nil, err
	}

	log.Info("Import finished",
		"provider", provider,
		"created", report.BoxesCreated,
		"updated", report.BoxesUpdated,
		"rejected", report.RowsRejected)
	return report, nil
}

func (r *Report) reject(line int, reason string) {
	r.RowsRejected++
	r.Errors = append(r.Errors, RowError{Line: line, Reason: reason})
}

func checkHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("%w: expected %d columns, got %d", domain.ErrImportRow, len(expectedHeader), len(header))
	}
	for i, col := range header {
		if strings.TrimSpace(strings.ToLower(col)) != expectedHeader[i] {
			return fmt.Errorf("%w: column %d is %q, want %q", domain.ErrImportRow, i+1, col, expectedHeader[i])
		}
	}
	return nil
}

func (s *service) parseRow(record []string) (*row, error) {
	if len(record) != len(expectedHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(expectedHeader), len(record))
	}

	price, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return nil, fmt.Errorf("bad price %q", record[1])
	}
	itemValue, err := strconv.ParseFloat(record[6], 64)
	if err != nil {
		return nil, fmt.Errorf("bad item value %q", record[6])
	}
	dropChance, err := strconv.ParseFloat(record[7], 64)
	if err != nil {
		return nil, fmt.Errorf("bad drop chance %q", record[7])
	}

	parsed := &row{
		BoxName:    strings.TrimSpace(record[0]),
		Price:      price,
		Category:   strings.TrimSpace(record[2]),
		Tags:       splitTags(record[3]),
		BoxImage:   strings.TrimSpace(record[4]),
		ItemName:   strings.TrimSpace(record[5]),
		ItemValue:  itemValue,
		DropChance: dropChance,
		ItemImage:  strings.TrimSpace(record[8]),
		ItemType:   strings.TrimSpace(record[9]),
	}
	if err := s.validate.Struct(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// splitTags parses a pipe-separated tag list
func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, "|") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func buildBox(provider, boxName string, rows []row) *domain.Box {
	first := rows[0]
	box := &domain.Box{
		Name:     boxName,
		Slug:     slug.Generate(boxName),
		Price:    first.Price,
		Category: first.Category,
		Tags:     first.Tags,
		Provider: provider,
		ImageURL: first.BoxImage,
	}
	for _, r := range rows {
		box.Items = append(box.Items, domain.BoxItem{
			Name:       r.ItemName,
			Value:      r.ItemValue,
			DropChance: r.DropChance,
			Image:      r.ItemImage,
			Type:       r.ItemType,
		})
	}
	return box
}

// reconcile updates the best fuzzy match at or above the threshold, inserting
// a new box otherwise. Returns true when a new box was created.
func (s *service) reconcile(ctx context.Context, box *domain.Box, existing map[string]string, candidates []string) (bool, error) {
	matches := slug.FindBestMatches(box.Slug, candidates)
	if len(matches) > 0 && matches[0].Score >= MatchThreshold {
		storedSlug, ok := existing[matches[0].OriginalName]
		if ok {
			current, err := s.boxes.GetBySlug(ctx, storedSlug)
			if err != nil {
				return false, err
			}
			// Keep identity fields owned by the catalog, not the feed
			box.ID = current.ID
			box.Slug = current.Slug
			box.OperatorID = current.OperatorID
			box.Published = current.Published
			if err := s.boxes.Update(ctx, current.ID, box); err != nil {
				return false, err
			}
			return false, s.boxes.ReplaceItems(ctx, current.ID, box.Items)
		}
	}

	if _, err := s.boxes.Insert(ctx, box); err != nil {
		return false, err
	}
	return true, nil
}
