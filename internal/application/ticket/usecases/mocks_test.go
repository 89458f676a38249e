package usecases

import (
	"context"
	"fmt"
	"time"

	"scalehouse/internal/domain/catalog"
	"scalehouse/internal/domain/jobs"
	"scalehouse/internal/domain/ticket"
)

type mockTicketRepo struct {
	saveFunc             func(ctx context.Context, t *ticket.Ticket) error
	findByNumberFunc     func(ctx context.Context, number string) (*ticket.Ticket, error)
	searchFunc           func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
	documentFunc         func(ctx context.Context, number string) ([]byte, string, error)
	totalsByUnitFunc     func(ctx context.Context, filter ticket.TicketFilter) ([]ticket.UnitTotal, error)
	totalsByMaterialFunc func(ctx context.Context, filter ticket.TicketFilter) ([]ticket.MaterialTotal, error)
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepo) FindByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.findByNumberFunc != nil {
		return m.findByNumberFunc(ctx, number)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockTicketRepo) Search(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepo) Document(ctx context.Context, number string) ([]byte, string, error) {
	if m.documentFunc != nil {
		return m.documentFunc(ctx, number)
	}
	return nil, "", fmt.Errorf("not implemented")
}

func (m *mockTicketRepo) TotalsByUnit(ctx context.Context, filter ticket.TicketFilter) ([]ticket.UnitTotal, error) {
	if m.totalsByUnitFunc != nil {
		return m.totalsByUnitFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepo) TotalsByMaterial(ctx context.Context, filter ticket.TicketFilter) ([]ticket.MaterialTotal, error) {
	if m.totalsByMaterialFunc != nil {
		return m.totalsByMaterialFunc(ctx, filter)
	}
	return nil, nil
}

type mockSequenceRepo struct {
	nextFunc func(ctx context.Context, year int) (int, error)
	calls    int
}

func (m *mockSequenceRepo) Next(ctx context.Context, year int) (int, error) {
	m.calls++
	if m.nextFunc != nil {
		return m.nextFunc(ctx, year)
	}
	return m.calls, nil
}

type mockJobRepo struct {
	findByIDFunc func(ctx context.Context, id uint) (*jobs.CacheEntry, error)
}

func (m *mockJobRepo) Upsert(ctx context.Context, row jobs.SourceRow, refreshedAt time.Time) error {
	return fmt.Errorf("not implemented")
}

func (m *mockJobRepo) FindByID(ctx context.Context, id uint) (*jobs.CacheEntry, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockJobRepo) FindByCode(ctx context.Context, jobCode string) (*jobs.CacheEntry, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockJobRepo) ListActive(ctx context.Context) ([]*jobs.CacheEntry, error) {
	return nil, nil
}

type mockTruckRepo struct {
	findByIDFunc func(ctx context.Context, id uint) (*catalog.Truck, error)
}

func (m *mockTruckRepo) Create(ctx context.Context, t *catalog.Truck) error {
	return fmt.Errorf("not implemented")
}

func (m *mockTruckRepo) FindByID(ctx context.Context, id uint) (*catalog.Truck, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockTruckRepo) FindByNumber(ctx context.Context, truckNumber string) (*catalog.Truck, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockTruckRepo) List(ctx context.Context, includeInactive bool) ([]*catalog.Truck, error) {
	return nil, nil
}

func (m *mockTruckRepo) ToggleActive(ctx context.Context, id uint) (*catalog.Truck, error) {
	return nil, fmt.Errorf("not implemented")
}

type mockMaterialRepo struct {
	findByIDFunc func(ctx context.Context, id uint) (*catalog.Material, error)
}

func (m *mockMaterialRepo) Create(ctx context.Context, mt *catalog.Material) error {
	return fmt.Errorf("not implemented")
}

func (m *mockMaterialRepo) FindByID(ctx context.Context, id uint) (*catalog.Material, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockMaterialRepo) FindByName(ctx context.Context, materialName string) (*catalog.Material, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockMaterialRepo) List(ctx context.Context, includeInactive bool) ([]*catalog.Material, error) {
	return nil, nil
}

func (m *mockMaterialRepo) ToggleActive(ctx context.Context, id uint) (*catalog.Material, error) {
	return nil, fmt.Errorf("not implemented")
}

type mockRenderer struct {
	renderFunc func(t *ticket.Ticket) ([]byte, error)
}

func (m *mockRenderer) Render(t *ticket.Ticket) ([]byte, error) {
	if m.renderFunc != nil {
		return m.renderFunc(t)
	}
	return []byte("%PDF-1.4 " + t.Number()), nil
}

type mockReportRenderer struct {
	renderFunc func(data ticket.ReportData) ([]byte, error)
}

func (m *mockReportRenderer) Render(data ticket.ReportData) ([]byte, error) {
	if m.renderFunc != nil {
		return m.renderFunc(data)
	}
	return []byte("%PDF-1.4 report"), nil
}

type mockStore struct {
	writeFunc  func(path string, data []byte) error
	readFunc   func(path string) ([]byte, error)
	removeFunc func(path string) error

	written map[string][]byte
	removed []string
}

func newMockStore() *mockStore {
	return &mockStore{written: make(map[string][]byte)}
}

func (m *mockStore) PathFor(year int, number string) string {
	return fmt.Sprintf("tickets_pdf/%d/%s.pdf", year, number)
}

func (m *mockStore) ReportPathFor(name string) string {
	return "tickets_pdf/reports_pdf/" + name
}

func (m *mockStore) Write(path string, data []byte) error {
	if m.writeFunc != nil {
		return m.writeFunc(path, data)
	}
	m.written[path] = data
	return nil
}

func (m *mockStore) Read(path string) ([]byte, error) {
	if m.readFunc != nil {
		return m.readFunc(path)
	}
	data, ok := m.written[path]
	if !ok {
		return nil, fmt.Errorf("no document at %s", path)
	}
	return data, nil
}

func (m *mockStore) Remove(path string) error {
	m.removed = append(m.removed, path)
	if m.removeFunc != nil {
		return m.removeFunc(path)
	}
	delete(m.written, path)
	return nil
}

type mockPrinter struct {
	enabled   bool
	printFunc func(ctx context.Context, path string) error
	printed   []string
}

func (m *mockPrinter) Enabled() bool {
	return m.enabled
}

func (m *mockPrinter) Print(ctx context.Context, path string) error {
	m.printed = append(m.printed, path)
	if m.printFunc != nil {
		return m.printFunc(ctx, path)
	}
	return nil
}
