package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/utils"
	"github.com/xuri/excelize/v2"
)

// ExportService generates Excel exports of group ledgers
type ExportService struct {
	groupService *GroupService
}

// NewExportService creates a new export service
func NewExportService(groupService *GroupService) *ExportService {
	return &ExportService{groupService: groupService}
}

// ExportGroupLedger generates an Excel workbook for a group: a summary
// sheet with member balances, an expenses sheet and a settlements
// sheet. Membership is enforced by the ledger computation.
func (s *ExportService) ExportGroupLedger(userID, groupID string) (*excelize.File, string, error) {
	ledger, err := s.groupService.GetGroupLedger(userID, groupID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, ledger); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createExpensesSheet(f, ledger); err != nil {
		return nil, "", fmt.Errorf("failed to create expenses sheet: %v", err)
	}
	if err := s.createSettlementsSheet(f, ledger); err != nil {
		return nil, "", fmt.Errorf("failed to create settlements sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Ledger_%s.xlsx",
		utils.CleanFileName(ledger.Group.Name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	return style
}

// createSummarySheet writes each member's net balance and the directed
// debts left after netting.
func (s *ExportService) createSummarySheet(f *excelize.File, ledger *models.GroupLedger) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headers := []string{"Member", "Role", "Net Balance"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle(f))

	balances := make([]models.MemberBalance, len(ledger.Balances))
	copy(balances, ledger.Balances)
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Name < balances[j].Name
	})

	for i, balance := range balances {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), balance.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), balance.Role)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), balance.TotalBalance)
	}

	// Outstanding debts section
	debtsStartRow := len(balances) + 4
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", debtsStartRow), "Outstanding Debts:")

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", debtsStartRow), fmt.Sprintf("A%d", debtsStartRow), boldStyle)

	debtsStartRow++
	debtHeaders := []string{"From", "To", "Amount"}
	for i, header := range debtHeaders {
		cell := fmt.Sprintf("%s%d", string(rune('A'+i)), debtsStartRow)
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", debtsStartRow), fmt.Sprintf("C%d", debtsStartRow), headerStyle(f))

	row := debtsStartRow + 1
	for _, balance := range balances {
		for _, debt := range balance.Owes {
			creditor := ledger.UserLookupMap[debt.UserID]
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), balance.Name)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), creditor.Name)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), debt.Amount)
			row++
		}
	}

	f.SetColWidth(sheetName, "A", "C", 18)

	return nil
}

// createExpensesSheet writes one row per expense.
func (s *ExportService) createExpensesSheet(f *excelize.File, ledger *models.GroupLedger) error {
	sheetName := "Expenses"
	f.NewSheet(sheetName)

	headers := []string{"Date", "Description", "Category", "Paid By", "Split Type", "Amount"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	lastCol := string(rune('A' + len(headers) - 1))
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", lastCol), headerStyle(f))

	expenses := make([]*models.Expense, len(ledger.Expenses))
	copy(expenses, ledger.Expenses)
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Date < expenses[j].Date
	})

	for i, expense := range expenses {
		row := i + 2
		payer := ledger.UserLookupMap[expense.PaidByUserID]
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), time.UnixMilli(expense.Date).Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), payer.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.SplitType)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), expense.Amount)
	}

	f.SetColWidth(sheetName, "A", lastCol, 14)
	f.SetColWidth(sheetName, "B", "B", 24)

	return nil
}

// createSettlementsSheet writes one row per recorded settlement.
func (s *ExportService) createSettlementsSheet(f *excelize.File, ledger *models.GroupLedger) error {
	sheetName := "Settlements"
	f.NewSheet(sheetName)

	headers := []string{"Date", "Paid By", "Received By", "Amount", "Note"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	lastCol := string(rune('A' + len(headers) - 1))
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", lastCol), headerStyle(f))

	settlements := make([]*models.Settlement, len(ledger.Settlements))
	copy(settlements, ledger.Settlements)
	sort.Slice(settlements, func(i, j int) bool {
		return settlements[i].Date < settlements[j].Date
	})

	for i, settlement := range settlements {
		row := i + 2
		payer := ledger.UserLookupMap[settlement.PaidByUserID]
		receiver := ledger.UserLookupMap[settlement.ReceivedByUserID]
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), time.UnixMilli(settlement.Date).Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), payer.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), receiver.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), settlement.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), settlement.Note)
	}

	f.SetColWidth(sheetName, "A", lastCol, 14)

	return nil
}
