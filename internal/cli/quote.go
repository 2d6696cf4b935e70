package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cloud-ru/autobudget-go/internal/calculations"
	"github.com/cloud-ru/autobudget-go/internal/catalog"
	"github.com/cloud-ru/autobudget-go/pkg/utils"
)

var money = utils.FormatMoney

func vehicleName(v calculations.VehicleSelection) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{v.Year, v.Model, v.Trim} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Vehicle"
	}
	return strings.Join(parts, " ")
}

func planName(p calculations.PlanType) string {
	if p == calculations.PlanLease {
		return "Lease"
	}
	return "Loan"
}

// RenderQuote renders one priced plan.
func RenderQuote(v calculations.VehicleSelection, q calculations.PlanQuote) string {
	q = q.Rounded()
	rows := [][]string{
		{"MSRP", money(q.MSRP)},
	}
	if q.RebateTotal > 0 {
		rows = append(rows, []string{"Rebates", "-" + money(q.RebateTotal)})
	}
	rows = append(rows,
		[]string{"Effective price", money(q.EffectivePrice)},
		[]string{"Taxes & fees", money(q.TaxesAndFees)},
		[]string{"Down payment", money(q.DownPayment)},
	)
	if q.PlanType == calculations.PlanLoan && q.TradeInValue > 0 {
		rows = append(rows, []string{"Trade-in", money(q.TradeInValue)})
	}
	rows = append(rows, []string{Separator},
		[]string{"APR", utils.FormatPercent(q.APR)},
		[]string{"Term", fmt.Sprintf("%d months", q.TermMonths)},
	)
	if q.PlanType == calculations.PlanLease {
		rows = append(rows,
			[]string{"Annual mileage", strconv.Itoa(q.AnnualMileage)},
			[]string{"Residual value", money(q.ResidualValue)},
		)
		if q.MileageAdjustment > 0 {
			rows = append(rows, []string{"Mileage adjustment", money(q.MileageAdjustment) + "/mo"})
		}
	} else {
		rows = append(rows,
			[]string{"Amount financed", money(q.FinancedAmount)},
			[]string{"Total interest", money(q.TotalInterest)},
		)
	}
	rows = append(rows, []string{Separator},
		[]string{"Monthly payment", money(q.MonthlyPayment)},
		[]string{"Total cost", money(q.TotalCost)},
	)

	var b strings.Builder
	b.WriteString(RenderTitle(fmt.Sprintf("%s  %s", strings.ToUpper(planName(q.PlanType)), vehicleName(v))))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  Profile: %s  Credit band: %s", q.Profile, q.CreditBand)))
	b.WriteString("\n")
	b.WriteString(RenderTable(Table{Headers: []string{"Item", "Amount"}, Rows: rows}))
	return b.String()
}

// RenderPlans renders a grid of quotes, one row per plan.
func RenderPlans(title string, quotes []calculations.PlanQuote) string {
	if len(quotes) == 0 {
		return ""
	}
	lease := quotes[0].PlanType == calculations.PlanLease
	headers := []string{"Term", "APR", "Monthly", "Total cost"}
	if lease {
		headers = []string{"Term", "Miles/yr", "APR", "Monthly", "Residual", "Total cost"}
	}

	rows := make([][]string, 0, len(quotes))
	for _, q := range calculations.RoundQuotes(quotes) {
		term := fmt.Sprintf("%d mo", q.TermMonths)
		if lease {
			rows = append(rows, []string{term, strconv.Itoa(q.AnnualMileage), utils.FormatPercent(q.APR),
				money(q.MonthlyPayment), money(q.ResidualValue), money(q.TotalCost)})
			continue
		}
		rows = append(rows, []string{term, utils.FormatPercent(q.APR), money(q.MonthlyPayment), money(q.TotalCost)})
	}
	return RenderTable(Table{Title: title, Headers: headers, Rows: rows})
}

// RenderTips renders the tip list and the affordability verdict.
func RenderTips(tips []string, a calculations.AffordabilityResult) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Financing tips"))
	b.WriteString("\n")
	for _, tip := range tips {
		b.WriteString("  • ")
		b.WriteString(valueStyle.Render(tip))
		b.WriteString("\n")
	}
	if a.Known {
		b.WriteString("\n  ")
		if a.WithinBudget {
			b.WriteString(goodStyle.Render(fmt.Sprintf("Within budget: up to %s/mo (%s of income)",
				money(a.MaxMonthlyPayment), utils.FormatPercent(a.PaymentToIncome))))
		} else {
			b.WriteString(warnStyle.Render(fmt.Sprintf("Over budget by %s/mo (max %s/mo)",
				money(a.Deficit), money(a.MaxMonthlyPayment))))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderComparison renders a loan against a lease.
func RenderComparison(c calculations.LoanLeaseComparison) string {
	rows := [][]string{
		{"APR", utils.FormatPercent(c.Loan.APR), utils.FormatPercent(c.Lease.APR)},
		{"Term", fmt.Sprintf("%d mo", c.Loan.TermMonths), fmt.Sprintf("%d mo", c.Lease.TermMonths)},
		{"Monthly", money(c.Loan.MonthlyPayment), money(c.Lease.MonthlyPayment)},
		{"Total cost", money(c.Loan.TotalCost), money(c.Lease.TotalCost)},
	}

	var b strings.Builder
	b.WriteString(RenderTable(Table{Title: "Loan vs lease", Headers: []string{"", "Loan", "Lease"}, Rows: rows}))
	writeList(&b, "Loan advantages", c.LoanAdvantages)
	writeList(&b, "Lease advantages", c.LeaseAdvantages)
	b.WriteString("\n  ")
	b.WriteString(goodStyle.Render(c.Recommendation))
	b.WriteString("\n")
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	for _, it := range items {
		b.WriteString("  • ")
		b.WriteString(it)
		b.WriteString("\n")
	}
}

// RenderSchedule renders a loan schedule, one row per month.
func RenderSchedule(r *calculations.ScheduleResult) string {
	rows := make([][]string, 0, len(r.Schedule)+2)
	for _, e := range r.Schedule {
		rows = append(rows, []string{strconv.Itoa(e.Month), money(e.Payment), money(e.Interest),
			money(e.PrincipalComponent), money(e.RemainingPrincipal)})
	}
	rows = append(rows, []string{Separator},
		[]string{"Total", money(r.Summary.TotalPaid), money(r.Summary.TotalInterest), money(r.Summary.Principal), ""})
	return RenderTable(Table{
		Title:   fmt.Sprintf("Payment schedule  %s at %s", money(r.Summary.Principal), utils.FormatPercent(r.Summary.APR)),
		Headers: []string{"Month", "Payment", "Interest", "Principal", "Remaining"},
		Rows:    rows,
	})
}

// RenderSummary renders the exported plan summary.
func RenderSummary(s calculations.Summary) string {
	var b strings.Builder
	b.WriteString(RenderQuote(s.Vehicle, s.Quote))
	if s.Vehicle.Color != "" {
		b.WriteString(mutedStyle.Render("  Color: " + s.Vehicle.Color))
		b.WriteString("\n")
	}
	rebates := make([]string, 0, 2)
	if s.Inputs.Rebates.Military {
		rebates = append(rebates, "military")
	}
	if s.Inputs.Rebates.College {
		rebates = append(rebates, "college")
	}
	if len(rebates) > 0 {
		b.WriteString(mutedStyle.Render("  Rebates: " + strings.Join(rebates, ", ")))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  Credit score: %d", s.Financial.CreditScore)))
	b.WriteString("\n\n")
	b.WriteString(RenderTips(s.Tips, s.Affordability))
	return b.String()
}

// RenderModels renders catalog models with their trims.
func RenderModels(models []catalog.Model) string {
	rows := make([][]string, 0, len(models))
	for i, m := range models {
		if i > 0 {
			rows = append(rows, []string{Separator})
		}
		rows = append(rows, []string{m.Name, m.Category, "base", money(m.BasePrice)})
		for _, t := range m.Trims {
			rows = append(rows, []string{"", "", t.Name, money(t.Price)})
		}
	}
	return RenderTable(Table{Title: "Vehicles", Headers: []string{"Model", "Category", "Trim", "Price"}, Rows: rows})
}
