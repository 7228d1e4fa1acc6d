package app

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// mockEmployeeRepository implements secondary.EmployeeRepository for testing.
type mockEmployeeRepository struct {
	employees map[string]*models.Employee
	listErr   error
}

func newMockEmployeeRepository(employees ...models.Employee) *mockEmployeeRepository {
	m := &mockEmployeeRepository{employees: make(map[string]*models.Employee)}
	for i := range employees {
		e := employees[i]
		m.employees[e.ID] = &e
	}
	return m
}

func (m *mockEmployeeRepository) Create(ctx context.Context, e *models.Employee) error {
	cp := *e
	m.employees[e.ID] = &cp
	return nil
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	if e, ok := m.employees[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, fmt.Errorf("employee %s: %w", id, models.ErrNotFound)
}

func (m *mockEmployeeRepository) Update(ctx context.Context, e *models.Employee) error {
	if _, ok := m.employees[e.ID]; !ok {
		return fmt.Errorf("employee %s: %w", e.ID, models.ErrNotFound)
	}
	cp := *e
	m.employees[e.ID] = &cp
	return nil
}

func (m *mockEmployeeRepository) List(ctx context.Context) ([]*models.Employee, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*models.Employee
	for _, e := range m.employees {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// mockTaskLogRepository implements secondary.TaskLogRepository for testing.
type mockTaskLogRepository struct {
	logs []*models.TaskLog
}

func (m *mockTaskLogRepository) Create(ctx context.Context, log *models.TaskLog) error {
	cp := *log
	m.logs = append([]*models.TaskLog{&cp}, m.logs...)
	return nil
}

func (m *mockTaskLogRepository) List(ctx context.Context, filters secondary.TaskLogFilters) ([]*models.TaskLog, error) {
	var out []*models.TaskLog
	for _, l := range m.logs {
		if filters.EmployeeID != "" && l.EmployeeID != filters.EmployeeID {
			continue
		}
		if filters.ClientID != "" && l.ClientID != filters.ClientID {
			continue
		}
		out = append(out, l)
	}
	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[:filters.Limit]
	}
	return out, nil
}

// mockClientRepository implements secondary.ClientRepository for testing.
type mockClientRepository struct {
	clients map[string]*models.Client
}

func newMockClientRepository(clients ...models.Client) *mockClientRepository {
	m := &mockClientRepository{clients: make(map[string]*models.Client)}
	for i := range clients {
		c := clients[i]
		m.clients[c.ID] = &c
	}
	return m
}

func (m *mockClientRepository) Create(ctx context.Context, c *models.Client) error {
	cp := *c
	m.clients[c.ID] = &cp
	return nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	if c, ok := m.clients[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, fmt.Errorf("client %s: %w", id, models.ErrNotFound)
}

func (m *mockClientRepository) Update(ctx context.Context, c *models.Client) error {
	stored, ok := m.clients[c.ID]
	if !ok {
		return fmt.Errorf("client %s: %w", c.ID, models.ErrNotFound)
	}
	cp := *c
	cp.HoursLogged = stored.HoursLogged
	m.clients[c.ID] = &cp
	return nil
}

func (m *mockClientRepository) List(ctx context.Context, filters secondary.ClientFilters) ([]*models.Client, error) {
	var out []*models.Client
	for _, c := range m.clients {
		if filters.Status != "" && c.Status != filters.Status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockClientRepository) AddHoursLogged(ctx context.Context, id string, hours float64) error {
	c, ok := m.clients[id]
	if !ok {
		return fmt.Errorf("client %s: %w", id, models.ErrNotFound)
	}
	c.HoursLogged += hours
	return nil
}

// mockCaseTypeRepository implements secondary.CaseTypeRepository for testing.
type mockCaseTypeRepository struct {
	caseTypes map[string]*models.CaseType
}

func newMockCaseTypeRepository() *mockCaseTypeRepository {
	return &mockCaseTypeRepository{caseTypes: make(map[string]*models.CaseType)}
}

func (m *mockCaseTypeRepository) Create(ctx context.Context, ct *models.CaseType) error {
	if _, ok := m.caseTypes[ct.ID]; ok {
		return fmt.Errorf("case type %s already exists", ct.ID)
	}
	cp := *ct
	m.caseTypes[ct.ID] = &cp
	return nil
}

func (m *mockCaseTypeRepository) GetByID(ctx context.Context, id string) (*models.CaseType, error) {
	if ct, ok := m.caseTypes[id]; ok {
		cp := *ct
		return &cp, nil
	}
	return nil, fmt.Errorf("case type %s: %w", id, models.ErrNotFound)
}

func (m *mockCaseTypeRepository) Update(ctx context.Context, ct *models.CaseType) error {
	if _, ok := m.caseTypes[ct.ID]; !ok {
		return fmt.Errorf("case type %s: %w", ct.ID, models.ErrNotFound)
	}
	cp := *ct
	m.caseTypes[ct.ID] = &cp
	return nil
}

func (m *mockCaseTypeRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.caseTypes[id]; !ok {
		return fmt.Errorf("case type %s: %w", id, models.ErrNotFound)
	}
	delete(m.caseTypes, id)
	return nil
}

func (m *mockCaseTypeRepository) List(ctx context.Context) ([]*models.CaseType, error) {
	var out []*models.CaseType
	for _, ct := range m.caseTypes {
		cp := *ct
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// mockFinancialsRepository implements secondary.FinancialsRepository for testing.
type mockFinancialsRepository struct {
	financials models.Financials
	getErr     error
}

func newMockFinancialsRepository(f models.Financials) *mockFinancialsRepository {
	if f.CustomExpenses == nil {
		f.CustomExpenses = []models.CustomExpense{}
	}
	return &mockFinancialsRepository{financials: f}
}

func (m *mockFinancialsRepository) Get(ctx context.Context) (*models.Financials, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	cp := m.financials
	cp.FixedOverheadHourly = 0
	cp.CustomExpenses = append([]models.CustomExpense{}, m.financials.CustomExpenses...)
	return &cp, nil
}

func (m *mockFinancialsRepository) Update(ctx context.Context, f *models.Financials) error {
	custom := m.financials.CustomExpenses
	m.financials = *f
	m.financials.CustomExpenses = custom
	return nil
}

func (m *mockFinancialsRepository) SetExpenseField(ctx context.Context, field models.ExpenseField, amount float64) error {
	if !m.financials.Set(field, amount) {
		return fmt.Errorf("unknown expense field %q", field)
	}
	return nil
}

func (m *mockFinancialsRepository) AddCustomExpense(ctx context.Context, e *models.CustomExpense) error {
	m.financials.CustomExpenses = append(m.financials.CustomExpenses, *e)
	return nil
}

func (m *mockFinancialsRepository) DeleteCustomExpense(ctx context.Context, id string) error {
	for i, e := range m.financials.CustomExpenses {
		if e.ID == id {
			m.financials.CustomExpenses = append(m.financials.CustomExpenses[:i], m.financials.CustomExpenses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("custom expense %s: %w", id, models.ErrNotFound)
}

// mockCashTransactionRepository implements secondary.CashTransactionRepository
// against a mockFinancialsRepository so the balance moves like the real one.
type mockCashTransactionRepository struct {
	txs        []*models.CashTransaction
	financials *mockFinancialsRepository
	recordErr  error
}

func (m *mockCashTransactionRepository) Record(ctx context.Context, tx *models.CashTransaction) (float64, error) {
	if m.recordErr != nil {
		return 0, m.recordErr
	}
	cp := *tx
	m.txs = append([]*models.CashTransaction{&cp}, m.txs...)
	switch tx.Type {
	case models.CashIn:
		m.financials.financials.CashboxBalance += tx.Amount
	case models.CashOut:
		m.financials.financials.CashboxBalance -= tx.Amount
	}
	return m.financials.financials.CashboxBalance, nil
}

func (m *mockCashTransactionRepository) List(ctx context.Context, limit int) ([]*models.CashTransaction, error) {
	if limit > 0 && len(m.txs) > limit {
		return m.txs[:limit], nil
	}
	return m.txs, nil
}

// mockIncomeRepository implements secondary.IncomeRepository for testing.
type mockIncomeRepository struct {
	entries []*models.IncomeEntry
}

func (m *mockIncomeRepository) Create(ctx context.Context, e *models.IncomeEntry) error {
	cp := *e
	m.entries = append([]*models.IncomeEntry{&cp}, m.entries...)
	return nil
}

func (m *mockIncomeRepository) List(ctx context.Context, limit int) ([]*models.IncomeEntry, error) {
	if limit > 0 && len(m.entries) > limit {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

// mockTicketRepository implements secondary.TicketRepository for testing.
type mockTicketRepository struct {
	tickets map[string]*models.SupportTicket
}

func newMockTicketRepository() *mockTicketRepository {
	return &mockTicketRepository{tickets: make(map[string]*models.SupportTicket)}
}

func (m *mockTicketRepository) Create(ctx context.Context, t *models.SupportTicket) error {
	cp := *t
	m.tickets[t.ID] = &cp
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*models.SupportTicket, error) {
	if t, ok := m.tickets[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, fmt.Errorf("ticket %s: %w", id, models.ErrNotFound)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *models.SupportTicket) error {
	if _, ok := m.tickets[t.ID]; !ok {
		return fmt.Errorf("ticket %s: %w", t.ID, models.ErrNotFound)
	}
	cp := *t
	m.tickets[t.ID] = &cp
	return nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters secondary.TicketFilters) ([]*models.SupportTicket, error) {
	var out []*models.SupportTicket
	for _, t := range m.tickets {
		if filters.Status != "" && t.Status != filters.Status {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TicketNumber > out[j].TicketNumber })
	return out, nil
}

func (m *mockTicketRepository) TicketNumbers(ctx context.Context) ([]string, error) {
	var out []string
	for _, t := range m.tickets {
		out = append(out, t.TicketNumber)
	}
	return out, nil
}

// mockLogWriter implements secondary.LogWriter and records every call.
type mockLogWriter struct {
	mu      sync.Mutex
	entries []string
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	return m.add("create " + entityType + " " + entityID)
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	return m.add("update " + entityType + " " + entityID + " " + fieldName)
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityType, entityID string) error {
	return m.add("delete " + entityType + " " + entityID)
}

func (m *mockLogWriter) add(entry string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

// mockSnapshotService implements primary.SnapshotService for testing.
type mockSnapshotService struct {
	snapshot *models.Snapshot
	source   string
	err      error
	calls    int
	mu       sync.Mutex
}

func (m *mockSnapshotService) Snapshot(ctx context.Context) (*models.Snapshot, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, "", m.err
	}
	source := m.source
	if source == "" {
		source = primary.SourceStore
	}
	cp := *m.snapshot
	return &cp, source, nil
}

// mockSnapshotCache implements secondary.SnapshotCache for testing.
type mockSnapshotCache struct {
	mu      sync.Mutex
	stored  *models.Snapshot
	saves   int
	saved   chan struct{}
	loadErr error
}

func (m *mockSnapshotCache) Load(ctx context.Context) (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.stored == nil {
		return nil, models.ErrNotFound
	}
	cp := *m.stored
	return &cp, nil
}

func (m *mockSnapshotCache) Save(ctx context.Context, s *models.Snapshot) error {
	m.mu.Lock()
	cp := *s
	m.stored = &cp
	m.saves++
	m.mu.Unlock()
	if m.saved != nil {
		m.saved <- struct{}{}
	}
	return nil
}

func (m *mockSnapshotCache) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// mockChatCompleter implements secondary.ChatCompleter for testing.
type mockChatCompleter struct {
	reply    string
	err      error
	system   string
	messages []secondary.ChatMessage
}

func (m *mockChatCompleter) Complete(ctx context.Context, system string, messages []secondary.ChatMessage) (string, error) {
	m.system = system
	m.messages = messages
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

var (
	_ secondary.EmployeeRepository        = (*mockEmployeeRepository)(nil)
	_ secondary.TaskLogRepository         = (*mockTaskLogRepository)(nil)
	_ secondary.ClientRepository          = (*mockClientRepository)(nil)
	_ secondary.CaseTypeRepository        = (*mockCaseTypeRepository)(nil)
	_ secondary.FinancialsRepository      = (*mockFinancialsRepository)(nil)
	_ secondary.CashTransactionRepository = (*mockCashTransactionRepository)(nil)
	_ secondary.IncomeRepository          = (*mockIncomeRepository)(nil)
	_ secondary.TicketRepository          = (*mockTicketRepository)(nil)
	_ secondary.LogWriter                 = (*mockLogWriter)(nil)
	_ secondary.SnapshotCache             = (*mockSnapshotCache)(nil)
	_ secondary.ChatCompleter             = (*mockChatCompleter)(nil)
	_ primary.SnapshotService             = (*mockSnapshotService)(nil)
)
