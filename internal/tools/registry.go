package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTool is returned when no handler is registered under a name.
var ErrUnknownTool = errors.New("unknown tool")

// Registry maps tool names to handlers.
type Registry struct {
	handlers map[string]ToolHandler
}

// NewRegistry registers every tool over d.
func NewRegistry(d Deps) *Registry {
	return &Registry{handlers: map[string]ToolHandler{
		"quote_payment":      QuotePaymentHandler(d),
		"financing_plans":    FinancingPlansHandler(d),
		"leasing_plans":      LeasingPlansHandler(d),
		"financing_tips":     FinancingTipsHandler(d),
		"compare_loan_lease": CompareLoanLeaseHandler(d),
		"loan_schedule":      LoanScheduleHandler(d),
		"vehicle_lookup":     VehicleLookupHandler(d),
	}}
}

// Names lists the registered tools in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes the named tool.
func (r *Registry) Call(ctx context.Context, name string, params map[string]interface{}) (interface{}, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if params == nil {
		params = map[string]interface{}{}
	}
	return h(ctx, params)
}
