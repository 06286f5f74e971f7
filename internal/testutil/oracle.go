package testutil

import (
	"context"
	"sync"

	"caloreat/domain"
	"caloreat/pkg/oracle"
)

// StubOracle answers from a fixed table and counts calls. Unknown names get
// a transport error. Safe for concurrent use.
type StubOracle struct {
	mu      sync.Mutex
	results map[string]oracle.Result
	calls   map[string]int

	// BeforeReturn runs after the lookup, before the answer is returned.
	BeforeReturn func(name string)
}

func NewStubOracle() *StubOracle {
	return &StubOracle{
		results: map[string]oracle.Result{},
		calls:   map[string]int{},
	}
}

func (o *StubOracle) Set(name string, res oracle.Result) *StubOracle {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.results[name] = res
	return o
}

// SetResolved registers a successful answer with a possibly corrected name.
func (o *StubOracle) SetResolved(name, canonical string, n domain.Nutritions) *StubOracle {
	return o.Set(name, oracle.Result{Status: oracle.StatusResolved, FoodName: canonical, Nutritions: n})
}

func (o *StubOracle) Analyze(ctx context.Context, foodName string) oracle.Result {
	o.mu.Lock()
	o.calls[foodName]++
	res, ok := o.results[foodName]
	hook := o.BeforeReturn
	o.mu.Unlock()

	if hook != nil {
		hook(foodName)
	}
	if !ok {
		return oracle.Result{Status: oracle.StatusTransportError, Err: context.DeadlineExceeded}
	}
	return res
}

func (o *StubOracle) Calls(name string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls[name]
}

func (o *StubOracle) TotalCalls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	total := 0
	for _, n := range o.calls {
		total += n
	}
	return total
}

func Ptr(v float64) *float64 { return &v }
