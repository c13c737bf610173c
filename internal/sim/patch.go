package sim

// Patch is a typed partial update to a GameState. A nil field means "leave
// untouched". Nested records merge field-by-field through their own patch
// types; slice-valued fields replace wholesale; map-valued fields merge
// key-by-key. Effects compute absolute values from the state they were given,
// so applying a patch is assignment, not arithmetic.
type Patch struct {
	Cash          *int
	Debt          *int
	Energy        *float64
	Audience      *int
	Reputation    *int
	EmailList     *int
	Conversions   *int
	MRR           *int
	Streak        *int
	WheelCooldown *int

	ActionCounts map[string]int
	Traffic      map[string]float64

	Offers    []Offer
	Inventory []string
	Staff     []StaffMember
	Goals     []Goal

	Multipliers *MultipliersPatch
	Bills       *BillsPatch
	Finance     *FinancePatch
	Modifiers   *ModifiersPatch
}

// MultipliersPatch updates individual global multipliers.
type MultipliersPatch struct {
	Revenue  *float64
	Audience *float64
	Email    *float64
	Rep      *float64
	Energy   *float64
}

// BillsPatch updates the bill cycles. Weekly/Monthly replace wholesale.
type BillsPatch struct {
	Weekly           []BillItem
	Monthly          []BillItem
	DaysUntilWeekly  *int
	DaysUntilMonthly *int
	LateFeesPaid     *int
}

// FinancePatch updates debt pricing and quarter tracking.
type FinancePatch struct {
	APR              *float64
	DaysUntilQuarter *int
	QuarterRevenue   *int
	PayrollWeekly    *int
}

// ModifiersPatch updates the time-boxed modifier countdowns.
type ModifiersPatch struct {
	AdsPenaltyDays       *int
	EnergyCapPenaltyDays *int
	VendorDiscountDays   *int
	VendorDiscountRate   *float64
}

// IsZero reports whether the patch changes nothing (a domain no-op).
func (p Patch) IsZero() bool {
	return p.Cash == nil && p.Debt == nil && p.Energy == nil && p.Audience == nil &&
		p.Reputation == nil && p.EmailList == nil && p.Conversions == nil && p.MRR == nil &&
		p.Streak == nil && p.WheelCooldown == nil && p.ActionCounts == nil && p.Traffic == nil &&
		p.Offers == nil && p.Inventory == nil && p.Staff == nil && p.Goals == nil &&
		p.Multipliers == nil && p.Bills == nil && p.Finance == nil && p.Modifiers == nil
}

// Apply merges the patch into a copy of s and returns the copy. Sibling
// fields absent from the patch are preserved at every nesting depth.
func (s GameState) Apply(p Patch) GameState {
	next := s.Clone()

	setInt(&next.Cash, p.Cash)
	setInt(&next.Debt, p.Debt)
	setFloat(&next.Energy, p.Energy)
	setInt(&next.Audience, p.Audience)
	setInt(&next.Reputation, p.Reputation)
	setInt(&next.EmailList, p.EmailList)
	setInt(&next.Conversions, p.Conversions)
	setInt(&next.MRR, p.MRR)
	setInt(&next.Streak, p.Streak)
	setInt(&next.WheelCooldown, p.WheelCooldown)

	for k, v := range p.ActionCounts {
		next.ActionCounts[k] = v
	}
	for k, v := range p.Traffic {
		next.Traffic[k] = v
	}

	if p.Offers != nil {
		next.Offers = append([]Offer(nil), p.Offers...)
	}
	if p.Inventory != nil {
		next.Inventory = append([]string(nil), p.Inventory...)
	}
	if p.Staff != nil {
		next.Staff = append([]StaffMember(nil), p.Staff...)
	}
	if p.Goals != nil {
		next.Goals = append([]Goal(nil), p.Goals...)
	}

	if m := p.Multipliers; m != nil {
		setFloat(&next.Multipliers.Revenue, m.Revenue)
		setFloat(&next.Multipliers.Audience, m.Audience)
		setFloat(&next.Multipliers.Email, m.Email)
		setFloat(&next.Multipliers.Rep, m.Rep)
		setFloat(&next.Multipliers.Energy, m.Energy)
	}
	if b := p.Bills; b != nil {
		if b.Weekly != nil {
			next.Bills.Weekly = append([]BillItem(nil), b.Weekly...)
		}
		if b.Monthly != nil {
			next.Bills.Monthly = append([]BillItem(nil), b.Monthly...)
		}
		setInt(&next.Bills.DaysUntilWeekly, b.DaysUntilWeekly)
		setInt(&next.Bills.DaysUntilMonthly, b.DaysUntilMonthly)
		setInt(&next.Bills.LateFeesPaid, b.LateFeesPaid)
	}
	if f := p.Finance; f != nil {
		setFloat(&next.Finance.APR, f.APR)
		setInt(&next.Finance.DaysUntilQuarter, f.DaysUntilQuarter)
		setInt(&next.Finance.QuarterRevenue, f.QuarterRevenue)
		setInt(&next.Finance.PayrollWeekly, f.PayrollWeekly)
	}
	if m := p.Modifiers; m != nil {
		setInt(&next.Modifiers.AdsPenaltyDays, m.AdsPenaltyDays)
		setInt(&next.Modifiers.EnergyCapPenaltyDays, m.EnergyCapPenaltyDays)
		setInt(&next.Modifiers.VendorDiscountDays, m.VendorDiscountDays)
		setFloat(&next.Modifiers.VendorDiscountRate, m.VendorDiscountRate)
	}

	return next
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// IntPtr is a convenience for building patches from computed values.
func IntPtr(v int) *int { return &v }

// FloatPtr is a convenience for building patches from computed values.
func FloatPtr(v float64) *float64 { return &v }
