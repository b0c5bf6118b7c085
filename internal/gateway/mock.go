package gateway

import (
	"context"
	"fmt"
	"time"

	"equitylens/internal/model"
)

// MockGateway returns controllable fixed data for development and testing.
type MockGateway struct {
	Profiles      map[string]*model.Profile
	Histories     map[string]model.PriceSeries
	StatementData map[string]*model.StatementSet
	Valid         map[string]bool
}

// NewMockGateway creates an empty mock; populate the maps per test.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		Profiles:      map[string]*model.Profile{},
		Histories:     map[string]model.PriceSeries{},
		StatementData: map[string]*model.StatementSet{},
		Valid:         map[string]bool{},
	}
}

func (m *MockGateway) Name() string { return "mock" }

func (m *MockGateway) Profile(_ context.Context, symbol string) (*model.Profile, error) {
	if p, ok := m.Profiles[symbol]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("mock profile %s: %w", symbol, ErrSymbolNotFound)
}

func (m *MockGateway) History(_ context.Context, symbol string, _ Period) (model.PriceSeries, error) {
	if h, ok := m.Histories[symbol]; ok {
		return h, nil
	}
	return nil, fmt.Errorf("mock history %s: %w", symbol, ErrDataUnavailable)
}

func (m *MockGateway) Statements(_ context.Context, symbol string) (*model.StatementSet, error) {
	if s, ok := m.StatementData[symbol]; ok {
		return s, nil
	}
	return &model.StatementSet{}, nil
}

func (m *MockGateway) ProbeValid(_ context.Context, symbol string) bool {
	return m.Valid[symbol]
}

// GenerateBars produces count synthetic daily bars drifting linearly from
// start to end, most recent bar dated yesterday.
func GenerateBars(start, end float64, count int) model.PriceSeries {
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		p := start
		if count > 1 {
			p = start + (end-start)*float64(i)/float64(count-1)
		}
		bars[i] = model.PriceBar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return model.NewPriceSeries(bars)
}
