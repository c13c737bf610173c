package sim

import (
	"fmt"
	"math"

	"github.com/tfs2006/affiliate-simulator/internal/config"
)

// SettleResult is the outcome of one bill-settlement pass.
type SettleResult struct {
	State GameState
	Log   []string
}

// SettleBills decrements the weekly/monthly/quarterly countdowns and resolves
// any cycle that comes due. A shortfall never fails the pass: the unpaid
// remainder plus a late fee converts to debt, reputation takes the fixed
// penalty, and the countdown still resets to its cadence.
func SettleBills(s GameState, bal config.Balance) SettleResult {
	next := s.Clone()
	var logs []string

	lateFeeMult := 1.0
	if next.HasItem("bookkeeper") {
		lateFeeMult = bal.BookkeeperLateFeeMult
	}

	next.Bills.DaysUntilWeekly--
	next.Bills.DaysUntilMonthly--
	next.Finance.DaysUntilQuarter--

	pay := func(label string, items []BillItem, minFee, repPenalty int) {
		due := 0
		for _, it := range items {
			due += it.Amount
		}
		if due <= 0 {
			return
		}
		if next.Cash >= due {
			next.Cash -= due
			logs = append(logs, fmt.Sprintf("%s paid: -$%d", label, due))
			return
		}
		unpaid := due - next.Cash
		next.Cash = 0
		late := Floor(float64(unpaid) * bal.LateFeeRate * lateFeeMult)
		if late < minFee {
			late = minFee
		}
		next.Debt += unpaid + late
		next.Reputation = int(math.Max(0, float64(next.Reputation-repPenalty)))
		next.Bills.LateFeesPaid += late
		logs = append(logs, fmt.Sprintf("%s missed: +$%d to debt (late fee $%d)", label, unpaid+late, late))
	}

	if next.Bills.DaysUntilWeekly <= 0 {
		pay("Weekly bills", discountedWeekly(next), bal.LateFeeMinBill, bal.RepPenaltyBill)
		next.Bills.DaysUntilWeekly = bal.WeeklyCadence
	}
	if next.Bills.DaysUntilMonthly <= 0 {
		pay("Monthly bills", next.Bills.Monthly, bal.LateFeeMinBill, bal.RepPenaltyBill)
		next.Bills.DaysUntilMonthly = bal.MonthlyCadence
	}

	if next.Finance.DaysUntilQuarter <= 0 {
		tax := Floor(float64(next.Finance.QuarterRevenue) * bal.TaxRate)
		if tax < bal.TaxMin {
			tax = bal.TaxMin
		}
		pay("Quarterly taxes", []BillItem{{ID: "tax", Name: "Quarterly Taxes", Amount: tax}}, bal.LateFeeMinTax, bal.RepPenaltyTax)
		// The quarter rolls over regardless of payment success.
		next.Finance.QuarterRevenue = 0
		next.Finance.DaysUntilQuarter = bal.QuarterCadence
	}

	return SettleResult{State: next, Log: logs}
}

// discountedWeekly applies the negotiated vendor discount to the subscription
// line item only, while the discount window is open.
func discountedWeekly(s GameState) []BillItem {
	items := append([]BillItem(nil), s.Bills.Weekly...)
	if s.Modifiers.VendorDiscountDays <= 0 {
		return items
	}
	for i, it := range items {
		if it.ID == "subs" {
			items[i].Amount = Floor(float64(it.Amount) * (1 - s.Modifiers.VendorDiscountRate))
		}
	}
	return items
}
