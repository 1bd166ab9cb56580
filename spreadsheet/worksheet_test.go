package spreadsheet

import (
	"errors"
	"strings"
	"testing"
)

// fakeSheet is an in-memory RawSheet for tests.
type fakeSheet struct {
	name string
	rows [][]RawCell
}

func (s fakeSheet) Name() string        { return s.name }
func (s fakeSheet) NumRows() int        { return len(s.rows) }
func (s fakeSheet) Row(i int) []RawCell { return s.rows[i] }

// testTable builds a worksheet with headers A,B,C and two data rows.
func testTable(t *testing.T) *Worksheet {
	t.Helper()
	return FromRows("test", []Row{
		RowOf(Text("A"), Text("B"), Text("C")),
		RowOf(Int(1), Int(2), Int(3)),
		RowOf(Int(4), Int(5), Int(6)),
	})
}

func TestFromRawSheet(t *testing.T) {
	rs := fakeSheet{
		name: "survey",
		rows: [][]RawCell{
			{{Type: RawText, Text: "name"}, {Type: RawText, Text: "age "}},
			{{Type: RawText, Text: "ada"}, {Type: RawNumber, Number: 36}},
			{{Type: RawText, Text: "linus"}, {Type: RawEmpty}},
		},
	}
	ws, err := FromRawSheet(rs, DefaultDateMode, true)
	if err != nil {
		t.Fatalf("FromRawSheet: %v", err)
	}
	if ws.Name() != "survey" {
		t.Errorf("name = %q, want survey", ws.Name())
	}
	nrow, ncol, err := ws.Dim()
	if err != nil || nrow != 3 || ncol != 2 {
		t.Fatalf("Dim = (%d, %d, %v), want (3, 2, nil)", nrow, ncol, err)
	}
	if got := ws.Row(0)[1].String(); got != "age" {
		t.Errorf("header not trimmed: %q", got)
	}
	if got := ws.Row(1)[1].Value; got != Int(36) {
		t.Errorf("numeric cell = %v, want Int(36)", got)
	}
	if !ws.Row(2)[1].IsBlank() {
		t.Error("empty raw cell should normalize to blank")
	}
}

func TestFromRawSheet_MalformedCellAborts(t *testing.T) {
	rs := fakeSheet{
		name: "bad",
		rows: [][]RawCell{
			{{Type: RawText, Text: "ok"}},
			{{Type: RawError, Text: "#N/A"}},
		},
	}
	_, err := FromRawSheet(rs, DefaultDateMode, true)
	var mce *MalformedCellError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MalformedCellError, got %v", err)
	}
	// The caller needs the position to report it back to the user.
	for _, want := range []string{`"bad"`, "row 1", "col 0"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestDim(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		nrow, ncol, err := New("empty").Dim()
		if err != nil || nrow != 0 || ncol != 0 {
			t.Errorf("Dim = (%d, %d, %v), want (0, 0, nil)", nrow, ncol, err)
		}
	})

	t.Run("ragged table", func(t *testing.T) {
		ws := FromRows("ragged", []Row{
			RowOf(Int(1), Int(2), Int(3)),
			RowOf(Int(4), Int(5), Int(6), Int(7)),
		})
		_, _, err := ws.Dim()
		var tie *TableIntegrityError
		if !errors.As(err, &tie) {
			t.Fatalf("expected TableIntegrityError, got %v", err)
		}
		if len(tie.Widths) != 2 {
			t.Errorf("Widths = %v, want two distinct widths", tie.Widths)
		}
	})
}

func TestPrependRow(t *testing.T) {
	t.Run("nil row inserts blanks of table width", func(t *testing.T) {
		ws := testTable(t)
		if err := ws.PrependRow(nil); err != nil {
			t.Fatalf("PrependRow: %v", err)
		}
		if ws.Len() != 4 {
			t.Fatalf("Len = %d, want 4", ws.Len())
		}
		for i, c := range ws.Row(0) {
			if !c.IsBlank() {
				t.Errorf("new row cell %d not blank: %v", i, c)
			}
		}
		if len(ws.Row(0)) != 3 {
			t.Errorf("new row width = %d, want 3", len(ws.Row(0)))
		}
	})

	t.Run("nil row on empty table appends single blank", func(t *testing.T) {
		ws := New("empty")
		if err := ws.PrependRow(nil); err != nil {
			t.Fatalf("PrependRow: %v", err)
		}
		if ws.Len() != 1 || len(ws.Row(0)) != 1 || !ws.Row(0)[0].IsBlank() {
			t.Errorf("want a single blank cell, got %v", ws.Row(0))
		}
	})

	t.Run("width mismatch names both widths", func(t *testing.T) {
		ws := testTable(t)
		err := ws.PrependRow(RowOf(Int(1), Int(2)))
		if !errors.Is(err, ErrRowWidthMismatch) {
			t.Fatalf("expected ErrRowWidthMismatch, got %v", err)
		}
		for _, want := range []string{"3", "2"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q should mention width %s", err, want)
			}
		}
	})

	t.Run("matching row lands at index 0", func(t *testing.T) {
		ws := testTable(t)
		if err := ws.PrependRow(RowOf(Text("x"), Text("y"), Text("z"))); err != nil {
			t.Fatalf("PrependRow: %v", err)
		}
		if got := ws.Row(0)[0].String(); got != "x" {
			t.Errorf("row 0 cell 0 = %q, want x", got)
		}
		if got := ws.Row(1)[0].String(); got != "A" {
			t.Errorf("old header row should shift to index 1, got %q", got)
		}
	})
}

func TestAppendCol(t *testing.T) {
	t.Run("header in row 0, blanks below", func(t *testing.T) {
		ws := testTable(t)
		if err := ws.AppendCol(Text("D")); err != nil {
			t.Fatalf("AppendCol: %v", err)
		}
		_, ncol, err := ws.Dim()
		if err != nil || ncol != 4 {
			t.Fatalf("Dim ncol = %d (%v), want 4", ncol, err)
		}
		if got := ws.Row(0)[3].String(); got != "D" {
			t.Errorf("header = %q, want D", got)
		}
		if !ws.Row(1)[3].IsBlank() || !ws.Row(2)[3].IsBlank() {
			t.Error("data rows should get blank cells")
		}
	})

	t.Run("ragged table fails", func(t *testing.T) {
		ws := FromRows("ragged", []Row{RowOf(Int(1)), RowOf(Int(1), Int(2))})
		var tie *TableIntegrityError
		if err := ws.AppendCol(Text("D")); !errors.As(err, &tie) {
			t.Fatalf("expected TableIntegrityError, got %v", err)
		}
	})
}

func TestColumnHeaders(t *testing.T) {
	if got := New("empty").ColumnHeaders(); len(got) != 0 {
		t.Errorf("empty table headers = %v, want none", got)
	}
	ws := FromRows("t", []Row{RowOf(Text("name"), Int(7), None())})
	got := ws.ColumnHeaders()
	want := []string{"name", "7", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSequenceProtocol(t *testing.T) {
	ws := testTable(t)
	if ws.Len() != 3 {
		t.Errorf("Len = %d, want 3", ws.Len())
	}
	var firsts []string
	for row := range ws.Rows() {
		firsts = append(firsts, row[0].String())
	}
	want := []string{"A", "1", "4"}
	for i := range want {
		if firsts[i] != want[i] {
			t.Errorf("row %d first cell = %q, want %q", i, firsts[i], want[i])
		}
	}
	// Row aliases storage so formatting can mark cells in place.
	ws.Row(1)[2].Highlight = "yellow"
	if ws.Row(1)[2].Highlight != "yellow" {
		t.Error("highlight not retained through Row access")
	}
}

func TestNamer(t *testing.T) {
	nm := NewNamer("")
	if got := nm.Next(); got != "sheet1" {
		t.Errorf("first name = %q, want sheet1", got)
	}
	if got := nm.Next(); got != "sheet2" {
		t.Errorf("second name = %q, want sheet2", got)
	}
	if got := NewNamer("tab").Next(); got != "tab1" {
		t.Errorf("prefixed name = %q, want tab1", got)
	}
}
