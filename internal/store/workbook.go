package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hyperengineering/stride/internal/record"
)

// WorkbookStore persists records into the sheets of a single workbook
// file, using the file itself as the database. The document is loaded
// lazily on first use and cached until Invalidate; every mutation is a
// full re-encode-and-write of the file.
type WorkbookStore struct {
	path string
	doc  *excelize.File
}

// NewWorkbookStore binds a store to path without touching the file
// system. The workbook is created or decoded on first access.
func NewWorkbookStore(path string) *WorkbookStore {
	return &WorkbookStore{path: path}
}

// Path returns the workbook file path this store is bound to.
func (s *WorkbookStore) Path() string {
	return s.path
}

// Invalidate drops the cached document so the next operation reloads
// from disk.
func (s *WorkbookStore) Invalidate() error {
	if s.doc == nil {
		return nil
	}
	err := s.doc.Close()
	s.doc = nil
	if err != nil {
		return fmt.Errorf("close workbook: %w", err)
	}
	return nil
}

// document returns the cached workbook, loading or creating it on first
// access. Reads are raw so date cells surface as their stored serial
// values instead of display-formatted text.
func (s *WorkbookStore) document() (*excelize.File, error) {
	if s.doc != nil {
		return s.doc, nil
	}

	if _, err := os.Stat(s.path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat workbook: %w", err)
		}
		doc, err := s.createWorkbook()
		if err != nil {
			return nil, err
		}
		s.doc = doc
		return s.doc, nil
	}

	doc, err := excelize.OpenFile(s.path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("decode workbook %s: %w", s.path, err)
	}

	// Heal missing sheets or header rows in memory; the next save
	// persists the repair.
	for _, def := range record.Definitions() {
		if err := ensureSheet(doc, def); err != nil {
			doc.Close()
			return nil, err
		}
	}

	s.doc = doc
	return s.doc, nil
}

// createWorkbook writes a fresh file containing every sheet with its
// header row, so the file exists on disk before any record is added.
func (s *WorkbookStore) createWorkbook() (*excelize.File, error) {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create workbook directory: %w", err)
		}
	}

	doc := excelize.NewFile()
	for _, def := range record.Definitions() {
		if err := ensureSheet(doc, def); err != nil {
			return nil, err
		}
	}

	// Drop the placeholder sheet excelize seeds new files with.
	if err := doc.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	if idx, err := doc.GetSheetIndex(record.Definitions()[0].Sheet); err == nil && idx >= 0 {
		doc.SetActiveSheet(idx)
	}

	if err := doc.SaveAs(s.path); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return doc, nil
}

// ensureSheet guarantees def's sheet exists and starts with its header
// row.
func ensureSheet(doc *excelize.File, def record.Definition) error {
	idx, err := doc.GetSheetIndex(def.Sheet)
	if err != nil {
		return fmt.Errorf("resolve sheet %s: %w", def.Sheet, err)
	}
	if idx < 0 {
		if _, err := doc.NewSheet(def.Sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", def.Sheet, err)
		}
		return writeHeader(doc, def)
	}

	rows, err := doc.GetRows(def.Sheet)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", def.Sheet, err)
	}
	if len(rows) == 0 {
		return writeHeader(doc, def)
	}
	return nil
}

func writeHeader(doc *excelize.File, def record.Definition) error {
	if err := doc.SetSheetRow(def.Sheet, "A1", &def.Headers); err != nil {
		return fmt.Errorf("write %s header: %w", def.Sheet, err)
	}
	return nil
}

// persist re-encodes the whole document to disk. An encode failure
// leaves the previous on-disk state intact.
func (s *WorkbookStore) persist(doc *excelize.File) error {
	if err := doc.SaveAs(s.path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// rowID extracts the trimmed id column from a raw row.
func rowID(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return strings.TrimSpace(row[0])
}

// Add appends rec to its kind's sheet under a freshly assigned identity
// and persists the workbook. The identifier the caller set on rec is
// discarded.
func (s *WorkbookStore) Add(ctx context.Context, rec record.Record) error {
	def, ok := record.DefinitionFor(rec.Kind())
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, rec.Kind())
	}

	doc, err := s.document()
	if err != nil {
		return err
	}

	rows, err := doc.GetRows(def.Sheet)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", def.Sheet, err)
	}

	record.Assign(rec, uuid.NewString(), time.Now().UTC())

	axis, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return fmt.Errorf("locate append row: %w", err)
	}
	// SetSheetRow skips nil entries, and a row stored with holes breaks
	// the cell-by-cell rewrite Update performs on a document built in
	// process. Empty cells are written as empty strings so every row is
	// dense.
	cells := record.EncodeRow(rec)
	for i, value := range cells {
		if value == nil {
			cells[i] = ""
		}
	}
	if err := doc.SetSheetRow(def.Sheet, axis, &cells); err != nil {
		return fmt.Errorf("append %s row: %w", def.Sheet, err)
	}

	return s.persist(doc)
}

// List returns every decodable record of kind in on-disk row order.
// Rows with a blank id column are treated as incomplete and skipped;
// rows that fail to decode are logged and skipped.
func (s *WorkbookStore) List(ctx context.Context, kind record.Kind) ([]record.Record, error) {
	def, ok := record.DefinitionFor(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	doc, err := s.document()
	if err != nil {
		return nil, err
	}

	rows, err := doc.GetRows(def.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", def.Sheet, err)
	}

	records := make([]record.Record, 0, len(rows))
	for i, row := range rows {
		if i == 0 || rowID(row) == "" {
			continue
		}
		rec, err := def.Decode(row)
		if err != nil {
			slog.Warn("skipping undecodable row",
				"sheet", def.Sheet,
				"row", i+1,
				"error", err,
			)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Get returns the record whose id column matches id exactly. A matching
// row that fails to decode is reported as ErrNotFound: a corrupt row
// must not crash a lookup.
func (s *WorkbookStore) Get(ctx context.Context, kind record.Kind, id string) (record.Record, error) {
	def, ok := record.DefinitionFor(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if id == "" {
		return nil, ErrNotFound
	}

	doc, err := s.document()
	if err != nil {
		return nil, err
	}

	rows, err := doc.GetRows(def.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", def.Sheet, err)
	}

	for i, row := range rows {
		if i == 0 || rowID(row) != id {
			continue
		}
		rec, err := def.Decode(row)
		if err != nil {
			slog.Warn("matched row failed to decode",
				"sheet", def.Sheet,
				"row", i+1,
				"error", err,
			)
			return nil, ErrNotFound
		}
		return rec, nil
	}
	return nil, ErrNotFound
}

// Update rewrites the row whose id matches rec, refreshes the record's
// UpdatedAt stamp, and persists the workbook. It reports false with a
// nil error when no row carries rec's id; that is a normal outcome, not
// an error.
func (s *WorkbookStore) Update(ctx context.Context, rec record.Record) (bool, error) {
	def, ok := record.DefinitionFor(rec.Kind())
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownKind, rec.Kind())
	}
	id := record.ID(rec)
	if id == "" {
		return false, nil
	}

	doc, err := s.document()
	if err != nil {
		return false, err
	}

	rows, err := doc.GetRows(def.Sheet)
	if err != nil {
		return false, fmt.Errorf("read sheet %s: %w", def.Sheet, err)
	}

	target := -1
	for i, row := range rows {
		if i > 0 && rowID(row) == id {
			target = i + 1
			break
		}
	}
	if target < 0 {
		return false, nil
	}

	record.Touch(rec, time.Now().UTC())

	// Cell-by-cell write: a nil serialized value must clear the cell it
	// replaces, which a whole-row write would leave untouched.
	for col, value := range record.EncodeRow(rec) {
		axis, err := excelize.CoordinatesToCellName(col+1, target)
		if err != nil {
			return false, fmt.Errorf("locate cell: %w", err)
		}
		if value == nil {
			value = ""
		}
		if err := doc.SetCellValue(def.Sheet, axis, value); err != nil {
			return false, fmt.Errorf("write cell %s!%s: %w", def.Sheet, axis, err)
		}
	}

	if err := s.persist(doc); err != nil {
		return false, err
	}
	return true, nil
}
