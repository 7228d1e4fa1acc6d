// Package xlsx renders firm reports as Excel workbooks.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/secondary"
)

// Sheet names
const (
	SheetWeekly   = "Weekly P&L"
	SheetLedger   = "Cash Ledger"
	SheetTaskLogs = "Task Logs"
)

// ReportWriter implements secondary.ReportWriter with excelize.
type ReportWriter struct{}

// NewReportWriter creates a new spreadsheet report writer.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// sheet appends rows to one worksheet.
type sheet struct {
	f    *excelize.File
	name string
	row  int
	bold int
}

func (s *sheet) add(values ...any) error {
	s.row++
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return err
	}
	return s.f.SetSheetRow(s.name, cell, &values)
}

func (s *sheet) header(values ...any) error {
	if err := s.add(values...); err != nil {
		return err
	}
	return s.f.SetRowStyle(s.name, s.row, s.row, s.bold)
}

func (s *sheet) blank() {
	s.row++
}

// WriteReport renders the weekly report, the cash ledger and the task logs.
func (w *ReportWriter) WriteReport(out io.Writer, report *secondary.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for _, name := range []string{SheetWeekly, SheetLedger, SheetTaskLogs} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := writeWeekly(&sheet{f: f, name: SheetWeekly, bold: bold}, report); err != nil {
		return fmt.Errorf("failed to write %s: %w", SheetWeekly, err)
	}
	if err := writeLedger(&sheet{f: f, name: SheetLedger, bold: bold}, report.Transactions); err != nil {
		return fmt.Errorf("failed to write %s: %w", SheetLedger, err)
	}
	if err := writeTaskLogs(&sheet{f: f, name: SheetTaskLogs, bold: bold}, report); err != nil {
		return fmt.Errorf("failed to write %s: %w", SheetTaskLogs, err)
	}

	if idx, err := f.GetSheetIndex(SheetWeekly); err == nil {
		f.SetActiveSheet(idx)
	}
	_ = f.SetColWidth(SheetWeekly, "A", "A", 24)
	_ = f.SetColWidth(SheetLedger, "A", "I", 16)
	_ = f.SetColWidth(SheetTaskLogs, "A", "H", 16)

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeWeekly(s *sheet, r *secondary.Report) error {
	pl := r.Week
	rows := [][]any{
		{"Firm", r.FirmName},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04")},
		{"Window", string(pl.Window.Kind), pl.Window.Start.Format(models.DateLayout), pl.Window.End.Format(models.DateLayout)},
	}
	for _, row := range rows {
		if err := s.add(row...); err != nil {
			return err
		}
	}

	s.blank()
	if err := s.header("Profit & Loss", "Amount"); err != nil {
		return err
	}
	for _, row := range [][]any{
		{"Income", pl.Income},
		{"Labor Cost", pl.LaborCost},
		{"Production Cost", pl.ProductionCost},
		{"Fixed Overhead", pl.FixedOverhead},
		{"Expenses", pl.Expenses},
		{"Net", pl.Net},
		{"Efficiency Ratio", pl.EfficiencyRatio},
	} {
		if err := s.add(row...); err != nil {
			return err
		}
	}

	s.blank()
	if err := s.header("Daily Burn", "Amount"); err != nil {
		return err
	}
	for _, row := range [][]any{
		{"Total Daily Burn", r.Burn.TotalDailyBurn},
		{"Daily Payroll", r.Burn.DailyPayroll},
		{"Daily Fixed Overhead", r.Burn.DailyFixedOverhead},
		{"Runway", r.Runway.String()},
		{"Health", r.Health.Label},
	} {
		if err := s.add(row...); err != nil {
			return err
		}
	}

	s.blank()
	if err := s.header("Clients", "Count"); err != nil {
		return err
	}
	for _, row := range [][]any{
		{"Total", r.Clients.Total},
		{"Active", r.Clients.Active},
		{"At Risk", r.Clients.AtRisk},
		{"Churned", r.Clients.Churned},
		{"New This Week", r.Clients.NewThisWeek},
	} {
		if err := s.add(row...); err != nil {
			return err
		}
	}

	s.blank()
	if err := s.header("Employee", "Hours", "Labor Cost", "Production Cost", "ROI", "Underperforming"); err != nil {
		return err
	}
	for _, st := range r.Staff {
		flag := ""
		if st.Underperforming {
			flag = "yes"
		}
		if err := s.add(st.Name, st.Hours, st.LaborCost, st.ProductionCost, st.ROIMultiplier, flag); err != nil {
			return err
		}
	}
	return nil
}

func writeLedger(s *sheet, txs []models.CashTransaction) error {
	if err := s.header("Date", "Type", "Method", "Category", "Amount", "Description", "Sender/Recipient", "Performed By"); err != nil {
		return err
	}
	for _, tx := range txs {
		if err := s.add(
			tx.Date.Format(models.DateLayout),
			tx.Type,
			tx.PaymentMethod,
			tx.Category,
			tx.Amount,
			tx.Description,
			tx.SenderOrRecipient,
			tx.PerformedBy,
		); err != nil {
			return err
		}
	}
	return nil
}

func writeTaskLogs(s *sheet, r *secondary.Report) error {
	if err := s.header("Date", "Employee", "Client", "Description", "Hours", "Labor Cost", "Production Cost", "Status"); err != nil {
		return err
	}
	for _, l := range r.TaskLogs {
		name := r.EmployeeNames[l.EmployeeID]
		if name == "" {
			name = l.EmployeeID
		}
		if err := s.add(l.Date, name, l.ClientID, l.Description, l.Hours, l.LaborCost, l.ProductionCost, l.Status); err != nil {
			return err
		}
	}
	return nil
}

var _ secondary.ReportWriter = (*ReportWriter)(nil)
