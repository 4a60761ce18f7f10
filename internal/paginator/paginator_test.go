package paginator

import (
	"bytes"
	"strconv"
	"testing"

	"finance-view/internal/table"

	"github.com/stretchr/testify/suite"
)

type PaginatorTestSuite struct {
	suite.Suite
	tbl        *table.Table
	pageInfos  []PageInfo
	scrollTops int
}

func TestPaginatorSuite(t *testing.T) {
	suite.Run(t, new(PaginatorTestSuite))
}

func (s *PaginatorTestSuite) SetupTest() {
	s.tbl = table.New()
	s.pageInfos = nil
	s.scrollTops = 0
}

func (s *PaginatorTestSuite) fill(n int) {
	for i := 0; i < n; i++ {
		s.Require().NoError(s.tbl.Append(&table.Row{
			ID:       strconv.Itoa(i),
			Included: true,
			Visible:  true,
		}))
	}
}

func (s *PaginatorTestSuite) newPaginator(pageSize int) *Paginator {
	return New(s.tbl, Options{
		DefaultPageSize: DefaultPageSize,
		PageSize:        pageSize,
		OnPageChange:    func(info PageInfo) { s.pageInfos = append(s.pageInfos, info) },
		OnScrollTop:     func() { s.scrollTops++ },
	})
}

func (s *PaginatorTestSuite) visibleIDs() []string {
	ids := make([]string, 0)
	for _, row := range s.tbl.VisibleRows() {
		ids = append(ids, row.ID)
	}
	return ids
}

func idRange(from, to int) []string {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, strconv.Itoa(i))
	}
	return ids
}

func (s *PaginatorTestSuite) TestThreePagesOf120Rows() {
	s.fill(120)
	p := s.newPaginator(50)
	p.UpdateVisibility(false)

	s.Equal(3, p.TotalPages())
	s.Equal(idRange(0, 50), s.visibleIDs())

	p.GoToPage(2)
	s.Equal(idRange(50, 100), s.visibleIDs())

	p.GoToPage(3)
	s.Equal(idRange(100, 120), s.visibleIDs())
	s.Equal(20, p.Info().VisibleItems)
	s.Equal(2, s.scrollTops)
}

func (s *PaginatorTestSuite) TestTotalPagesFormula() {
	for _, tc := range []struct {
		rows, pageSize, expected int
	}{
		{0, 50, 1},
		{1, 50, 1},
		{50, 50, 1},
		{51, 50, 2},
		{99, 10, 10},
		{100, 10, 10},
		{7, 1, 7},
	} {
		s.SetupTest()
		s.fill(tc.rows)
		p := s.newPaginator(tc.pageSize)
		p.UpdateVisibility(false)

		s.Equal(tc.expected, p.TotalPages(), "rows=%d pageSize=%d", tc.rows, tc.pageSize)

		last := tc.rows - tc.pageSize*(tc.expected-1)
		p.GoToPage(tc.expected)
		s.Equal(last, p.Info().VisibleItems, "rows=%d pageSize=%d", tc.rows, tc.pageSize)
	}
}

func (s *PaginatorTestSuite) TestGoToPageClamps() {
	s.fill(120)
	p := s.newPaginator(50)
	p.UpdateVisibility(false)

	p.GoToPage(99)
	s.Equal(3, p.CurrentPage())

	p.GoToPage(-4)
	s.Equal(1, p.CurrentPage())

	p.PrevPage()
	s.Equal(1, p.CurrentPage())
	s.Equal(2, s.scrollTops)
}

func (s *PaginatorTestSuite) TestNextAndPrevPage() {
	s.fill(30)
	p := s.newPaginator(10)
	p.UpdateVisibility(false)

	p.NextPage()
	p.NextPage()
	p.NextPage()
	s.Equal(3, p.CurrentPage())

	p.PrevPage()
	s.Equal(2, p.CurrentPage())
	s.Equal(idRange(10, 20), s.visibleIDs())
}

func (s *PaginatorTestSuite) TestExcludedRowsAreNeverVisible() {
	s.fill(20)
	rows := s.tbl.Rows()
	for i, row := range rows {
		row.Included = i%2 == 0
	}

	p := s.newPaginator(5)
	p.UpdateVisibility(false)

	s.Equal(2, p.TotalPages())
	s.Equal([]string{"0", "2", "4", "6", "8"}, s.visibleIDs())

	p.NextPage()
	s.Equal([]string{"10", "12", "14", "16", "18"}, s.visibleIDs())
}

func (s *PaginatorTestSuite) TestSetPageSizeResetsToFirstPage() {
	s.fill(120)
	p := s.newPaginator(50)
	p.UpdateVisibility(false)
	p.GoToPage(3)

	s.Require().NoError(p.SetPageSize(25))

	s.Equal(1, p.CurrentPage())
	s.Equal(5, p.TotalPages())
	s.Equal(idRange(0, 25), s.visibleIDs())

	s.ErrorIs(p.SetPageSize(0), ErrInvalidPageSize)
	s.Equal(25, p.PageSize())
}

func (s *PaginatorTestSuite) TestShowAllPagesHidesStrip() {
	s.fill(120)
	p := s.newPaginator(50)
	p.UpdateVisibility(false)
	p.GoToPage(2)

	p.ShowAllPages()
	p.UpdateVisibility(false)

	s.True(p.IsShowingAll())
	s.Equal(1, p.TotalPages())
	s.Len(s.visibleIDs(), 120)
	s.True(p.Strip().Hidden)

	last := s.pageInfos[len(s.pageInfos)-1]
	s.Equal(120, last.PageSize)
	s.Equal(120, last.VisibleItems)
}

func (s *PaginatorTestSuite) TestSetPageSizeAllBehavesLikeShowAll() {
	s.fill(60)
	p := s.newPaginator(50)
	p.UpdateVisibility(false)

	s.Require().NoError(p.SetPageSize(AllPages))

	s.True(p.IsShowingAll())
	s.Len(s.visibleIDs(), 60)
}

func (s *PaginatorTestSuite) TestFiltersChangedReturnsToFirstPage() {
	s.fill(120)
	p := s.newPaginator(50)
	p.UpdateVisibility(false)
	p.GoToPage(3)

	for _, row := range s.tbl.Rows()[:60] {
		row.Included = false
	}
	p.FiltersChanged()

	s.Equal(1, p.CurrentPage())
	s.Equal(2, p.TotalPages())
	s.Equal(idRange(60, 110), s.visibleIDs())
}

func (s *PaginatorTestSuite) TestCurrentPageClampedWhenFilteredCountShrinks() {
	s.fill(120)
	p := s.newPaginator(50)
	p.UpdateVisibility(false)
	p.GoToPage(3)

	for _, row := range s.tbl.Rows()[40:] {
		row.Included = false
	}
	p.UpdateVisibility(false)

	s.Equal(1, p.CurrentPage())
	s.Equal(idRange(0, 40), s.visibleIDs())
}

func (s *PaginatorTestSuite) TestApplyFilterAndClearFilters() {
	s.fill(30)
	p := s.newPaginator(10)
	p.UpdateVisibility(false)
	p.GoToPage(2)

	p.ApplyFilter(func(row *table.Row) bool {
		n, _ := strconv.Atoi(row.ID)
		return n >= 25
	})

	s.Equal(1, p.CurrentPage())
	s.Equal(idRange(25, 30), s.visibleIDs())
	s.True(p.Strip().Hidden)

	p.ClearFilters()
	s.Equal(30, p.Info().FilteredItems)
	s.Equal(idRange(0, 10), s.visibleIDs())
}

func (s *PaginatorTestSuite) TestResetRestoresDefaultPageSize() {
	s.fill(120)
	p := s.newPaginator(10)
	p.UpdateVisibility(false)
	p.GoToPage(4)

	p.Reset(false)

	s.Equal(DefaultPageSize, p.PageSize())
	s.Equal(1, p.CurrentPage())
	s.Equal(idRange(0, 50), s.visibleIDs())
}

func (s *PaginatorTestSuite) TestRefreshPicksUpNewRows() {
	s.fill(10)
	p := s.newPaginator(50)
	p.UpdateVisibility(false)
	s.Equal(10, p.Info().TotalItems)

	s.Require().NoError(s.tbl.Append(&table.Row{ID: "new", Included: true}))
	p.UpdateVisibility(false)
	s.Equal(10, p.Info().TotalItems)

	p.Refresh()
	s.Equal(11, p.Info().TotalItems)
}

func (s *PaginatorTestSuite) TestPageChangeCallbackPayload() {
	s.fill(120)
	p := s.newPaginator(50)
	p.UpdateVisibility(false)

	s.Require().Len(s.pageInfos, 1)
	s.Equal(PageInfo{
		CurrentPage:   1,
		PageSize:      50,
		TotalPages:    3,
		TotalItems:    120,
		FilteredItems: 120,
		VisibleItems:  50,
	}, s.pageInfos[0])
}

func (s *PaginatorTestSuite) TestNilTableIsNoOp() {
	p := New(nil, Options{OnPageChange: func(PageInfo) { s.Fail("callback on nil table") }})

	p.UpdateVisibility(true)
	p.GoToPage(3)
	p.NextPage()
	p.ShowAllPages()
	p.ApplyFilter(func(*table.Row) bool { return true })
	p.ClearFilters()
	p.Reset(true)

	s.Equal(1, p.CurrentPage())
}

func (s *PaginatorTestSuite) TestParsePageSize() {
	size, err := ParsePageSize("All")
	s.NoError(err)
	s.Equal(AllPages, size)

	size, err = ParsePageSize(" 25 ")
	s.NoError(err)
	s.Equal(25, size)

	_, err = ParsePageSize("0")
	s.ErrorIs(err, ErrInvalidPageSize)

	_, err = ParsePageSize("lots")
	s.ErrorIs(err, ErrInvalidPageSize)
}

func (s *PaginatorTestSuite) TestStripHiddenForSinglePage() {
	s.fill(50)
	p := s.newPaginator(50)
	p.UpdateVisibility(false)

	s.True(p.Strip().Hidden)
}

func (s *PaginatorTestSuite) TestStripButtons() {
	s.fill(200)
	p := s.newPaginator(10)
	p.UpdateVisibility(false)
	p.GoToPage(10)

	strip := p.Strip()
	s.False(strip.Hidden)
	s.Equal("Showing 10 of 200 items (Page 10 of 20)", strip.Summary)

	labels := make([]string, 0, len(strip.Buttons))
	for _, b := range strip.Buttons {
		labels = append(labels, b.Label)
	}
	s.Equal([]string{"« Prev", "1", "...", "8", "9", "10", "11", "12", "...", "20", "Next »"}, labels)

	for _, b := range strip.Buttons {
		if b.Kind == ButtonPage {
			s.Equal(b.Page == 10, b.Active)
		}
	}
}

func (s *PaginatorTestSuite) TestStripDisablesPrevAndNextAtEdges() {
	s.fill(30)
	p := s.newPaginator(10)
	p.UpdateVisibility(false)

	strip := p.Strip()
	s.True(strip.Buttons[0].Disabled)
	s.False(strip.Buttons[len(strip.Buttons)-1].Disabled)

	p.GoToPage(3)
	strip = p.Strip()
	s.False(strip.Buttons[0].Disabled)
	s.True(strip.Buttons[len(strip.Buttons)-1].Disabled)
}

func (s *PaginatorTestSuite) TestPageWindow() {
	for _, tc := range []struct {
		current, total, start, end int
	}{
		{1, 3, 1, 3},
		{1, 20, 1, 5},
		{3, 20, 1, 5},
		{10, 20, 8, 12},
		{19, 20, 16, 20},
		{20, 20, 16, 20},
	} {
		start, end := PageWindow(tc.current, tc.total)
		s.Equal(tc.start, start, "current=%d total=%d", tc.current, tc.total)
		s.Equal(tc.end, end, "current=%d total=%d", tc.current, tc.total)
	}
}

func (s *PaginatorTestSuite) TestRenderStrip() {
	s.fill(120)
	p := s.newPaginator(50)
	p.UpdateVisibility(false)

	var buf bytes.Buffer
	s.Require().NoError(p.Strip().Render(&buf))

	html := buf.String()
	s.Contains(html, "Showing 50 of 120 items (Page 1 of 3)")
	s.Contains(html, `data-page="2"`)
	s.Contains(html, `pagination-btn-active`)
	s.NotContains(html, "display: none")

	buf.Reset()
	s.Require().NoError(ControlStrip{Hidden: true}.Render(&buf))
	s.Contains(buf.String(), "display: none")
}
