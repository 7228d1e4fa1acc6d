package models

// ExpenseField names one fixed monthly line item on Financials.
type ExpenseField string

const (
	FieldMonthlyLease         ExpenseField = "monthlyLease"
	FieldPayroll              ExpenseField = "payroll"
	FieldClio                 ExpenseField = "clio"
	FieldPhone                ExpenseField = "phone"
	FieldWifi                 ExpenseField = "wifi"
	FieldPrinter              ExpenseField = "printer"
	FieldPostage              ExpenseField = "postage"
	FieldEfile                ExpenseField = "efile"
	FieldSupplies             ExpenseField = "supplies"
	FieldChargebacks          ExpenseField = "chargebacks"
	FieldStaffLunch           ExpenseField = "staffLunch"
	FieldOtherMonthlyExpenses ExpenseField = "otherMonthlyExpenses"
)

// MonthlyExpenseFields lists every fixed monthly line item in display order.
var MonthlyExpenseFields = []ExpenseField{
	FieldMonthlyLease,
	FieldPayroll,
	FieldClio,
	FieldPhone,
	FieldWifi,
	FieldPrinter,
	FieldPostage,
	FieldEfile,
	FieldSupplies,
	FieldChargebacks,
	FieldStaffLunch,
	FieldOtherMonthlyExpenses,
}

// CustomExpense is an open-ended monthly expense row.
type CustomExpense struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Financials is the singleton settings/financials record.
//
// FixedOverheadHourly is derived. It is never persisted and is overwritten
// on every read.
type Financials struct {
	FixedOverheadHourly  float64         `json:"fixedOverheadHourly"`
	MonthlyLease         float64         `json:"monthlyLease"`
	Payroll              float64         `json:"payroll"`
	Clio                 float64         `json:"clio"`
	Phone                float64         `json:"phone"`
	Wifi                 float64         `json:"wifi"`
	Printer              float64         `json:"printer"`
	Postage              float64         `json:"postage"`
	Efile                float64         `json:"efile"`
	Supplies             float64         `json:"supplies"`
	Chargebacks          float64         `json:"chargebacks"`
	StaffLunch           float64         `json:"staffLunch"`
	OtherMonthlyExpenses float64         `json:"otherMonthlyExpenses"`
	CustomExpenses       []CustomExpense `json:"customExpenses"`
	CashOnHand           float64         `json:"cashOnHand"`
	Debt                 float64         `json:"debt"`
	CashboxBalance       float64         `json:"cashboxBalance"`
}

var expenseFieldSlots = map[ExpenseField]func(*Financials) *float64{
	FieldMonthlyLease:         func(f *Financials) *float64 { return &f.MonthlyLease },
	FieldPayroll:              func(f *Financials) *float64 { return &f.Payroll },
	FieldClio:                 func(f *Financials) *float64 { return &f.Clio },
	FieldPhone:                func(f *Financials) *float64 { return &f.Phone },
	FieldWifi:                 func(f *Financials) *float64 { return &f.Wifi },
	FieldPrinter:              func(f *Financials) *float64 { return &f.Printer },
	FieldPostage:              func(f *Financials) *float64 { return &f.Postage },
	FieldEfile:                func(f *Financials) *float64 { return &f.Efile },
	FieldSupplies:             func(f *Financials) *float64 { return &f.Supplies },
	FieldChargebacks:          func(f *Financials) *float64 { return &f.Chargebacks },
	FieldStaffLunch:           func(f *Financials) *float64 { return &f.StaffLunch },
	FieldOtherMonthlyExpenses: func(f *Financials) *float64 { return &f.OtherMonthlyExpenses },
}

// Valid reports whether the field names a known monthly line item.
func (e ExpenseField) Valid() bool {
	_, ok := expenseFieldSlots[e]
	return ok
}

// Get returns the amount of a monthly line item, or 0 for unknown fields.
func (f Financials) Get(field ExpenseField) float64 {
	slot, ok := expenseFieldSlots[field]
	if !ok {
		return 0
	}
	return *slot(&f)
}

// Set overwrites a monthly line item. Returns false for unknown fields.
func (f *Financials) Set(field ExpenseField, amount float64) bool {
	slot, ok := expenseFieldSlots[field]
	if !ok {
		return false
	}
	*slot(f) = amount
	return true
}
