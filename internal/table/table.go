package table

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"finance-view/internal/models"

	"github.com/google/uuid"
)

// DefaultBatchSize is the number of rows rendered between yields
const DefaultBatchSize = 100

var ErrDuplicateRow = errors.New("duplicate row id")

// Table holds rendered rows in display order
type Table struct {
	rows  []*Row
	index map[string]int
}

// New creates an empty table
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Rows returns the rows in display order. The slice is a copy; the rows are shared.
func (t *Table) Rows() []*Row {
	rows := make([]*Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Row looks a row up by id
func (t *Table) Row(id string) (*Row, bool) {
	i, ok := t.index[id]
	if !ok {
		return nil, false
	}
	return t.rows[i], true
}

// Append adds rows at the end of the table. Ids must be unique.
func (t *Table) Append(rows ...*Row) error {
	for _, row := range rows {
		if _, exists := t.index[row.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateRow, row.ID)
		}
		t.index[row.ID] = len(t.rows)
		t.rows = append(t.rows, row)
	}
	return nil
}

// Remove deletes a row by id
func (t *Table) Remove(id string) bool {
	i, ok := t.index[id]
	if !ok {
		return false
	}

	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	delete(t.index, id)
	for j := i; j < len(t.rows); j++ {
		t.index[t.rows[j].ID] = j
	}
	return true
}

// Clear removes every row
func (t *Table) Clear() {
	t.rows = nil
	t.index = make(map[string]int)
}

// IncludedCount returns the number of rows currently included by the filter
func (t *Table) IncludedCount() int {
	count := 0
	for _, row := range t.rows {
		if row.Included {
			count++
		}
	}
	return count
}

// VisibleRows returns the rows currently marked visible, in display order
func (t *Table) VisibleRows() []*Row {
	visible := make([]*Row, 0)
	for _, row := range t.rows {
		if row.Visible {
			visible = append(visible, row)
		}
	}
	return visible
}

// Render replaces the table contents with rows built from transactions. Rows are
// built in batches of batchSize; between batches the goroutine yields and ctx is
// checked, so a very large list does not monopolise the scheduler. Batches are
// processed strictly in order.
func (t *Table) Render(ctx context.Context, transactions []models.Transaction, accountNames map[uuid.UUID]string, batchSize int) error {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	t.Clear()

	for start := 0; start < len(transactions); start += batchSize {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("render interrupted after %d rows: %w", start, err)
		}

		end := start + batchSize
		if end > len(transactions) {
			end = len(transactions)
		}

		for i := start; i < end; i++ {
			if err := t.Append(NewRow(&transactions[i], accountNames)); err != nil {
				return err
			}
		}

		runtime.Gosched()
	}

	return nil
}
