// Package sim implements the deterministic-modulo-randomness simulation
// engine: the game state model, the offer revenue engine, action application,
// the day-advance pipeline, bill settlement, and the reward wheel.
//
// Every operation is a pure computation over an input state producing a new
// state. Randomness is threaded explicitly through an RNG parameter so the
// whole engine is reproducible under test.
package sim

import (
	"math"
	"time"
)

// OfferType classifies how an offer converts traffic into money.
type OfferType string

const (
	OfferCPA    OfferType = "CPA"
	OfferCPC    OfferType = "CPC"
	OfferRebill OfferType = "REBILL"
)

// Offer is a monetization unit converting traffic metrics into cash and/or
// recurring revenue.
type Offer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       OfferType `json:"type"`
	Price      int       `json:"price,omitempty"`
	CPC        float64   `json:"cpc,omitempty"`
	Rebill     int       `json:"rebill,omitempty"`
	ConvRate   float64   `json:"conv_rate"`
	Volatility float64   `json:"volatility"`
	Unlocked   bool      `json:"unlocked"`
}

// Multipliers are global multiplicative bonuses, compounding via repeated
// purchases and action effects.
type Multipliers struct {
	Revenue  float64 `json:"revenue"`
	Audience float64 `json:"audience"`
	Email    float64 `json:"email"`
	Rep      float64 `json:"rep"`
	Energy   float64 `json:"energy"`
}

// StaffMember is a hired role with a recurring weekly payroll bill.
type StaffMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	WeeklyPay int    `json:"weekly_pay"`
}

// BillItem is a single line item on a recurring bill cycle.
type BillItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// Bills tracks the weekly and monthly obligation cycles.
type Bills struct {
	Weekly           []BillItem `json:"weekly"`
	Monthly          []BillItem `json:"monthly"`
	DaysUntilWeekly  int        `json:"days_until_weekly"`
	DaysUntilMonthly int        `json:"days_until_monthly"`
	LateFeesPaid     int        `json:"late_fees_paid"`
}

// Finance tracks debt pricing and the quarterly tax cycle.
type Finance struct {
	APR              float64 `json:"apr"`
	DaysUntilQuarter int     `json:"days_until_quarter"`
	QuarterRevenue   int     `json:"quarter_revenue"`
	PayrollWeekly    int     `json:"payroll_weekly"`
}

// Modifiers are time-boxed effects that decay by one day per day advance.
type Modifiers struct {
	AdsPenaltyDays       int     `json:"ads_penalty_days"`
	EnergyCapPenaltyDays int     `json:"energy_cap_penalty_days"`
	VendorDiscountDays   int     `json:"vendor_discount_days"`
	VendorDiscountRate   float64 `json:"vendor_discount_rate"`
}

// Goal is a fixed objective re-evaluated at every day advance.
type Goal struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// LogEntry is one line of the in-game activity log.
type LogEntry struct {
	T    time.Time `json:"t"`
	Kind string    `json:"kind"`
	Text string    `json:"text"`
}

// Log kinds.
const (
	LogInfo   = "info"
	LogAction = "action"
	LogEvent  = "event"
	LogBill   = "bill"
	LogBuy    = "buy"
)

// Settings holds player-facing toggles that ride along with the save.
type Settings struct {
	AutoDay bool `json:"auto_day"`
	AutoMS  int  `json:"auto_ms"`
}

// GameState is the canonical game-state aggregate. It is replaced wholesale
// on every transition; callers treat each returned value as the new source
// of truth and never mutate one in place.
type GameState struct {
	Day           int                `json:"day"`
	Cash          int                `json:"cash"`
	Debt          int                `json:"debt"`
	Energy        float64            `json:"energy"`
	Audience      int                `json:"audience"`
	Reputation    int                `json:"reputation"`
	EmailList     int                `json:"email_list"`
	Conversions   int                `json:"conversions"`
	MRR           int                `json:"mrr"`
	ActionCounts  map[string]int     `json:"action_counts"`
	Offers        []Offer            `json:"offers"`
	Traffic       map[string]float64 `json:"traffic"`
	Multipliers   Multipliers        `json:"multipliers"`
	Inventory     []string           `json:"inventory"`
	Staff         []StaffMember      `json:"staff"`
	Streak        int                `json:"streak"`
	WheelCooldown int                `json:"wheel_cooldown"`
	Log           []LogEntry         `json:"log"`
	Goals         []Goal             `json:"goals"`
	Achievements  []string           `json:"achievements"`
	Bills         Bills              `json:"bills"`
	Finance       Finance            `json:"finance"`
	Modifiers     Modifiers          `json:"modifiers"`
	Settings      Settings           `json:"settings"`
}

// NewGameState returns the canonical day-1 starting state.
func NewGameState(now time.Time) GameState {
	return GameState{
		Day:          1,
		Cash:         500,
		Energy:       100,
		ActionCounts: map[string]int{},
		Offers: []Offer{
			{ID: "starter", Name: "Starter Toolkit", Type: OfferCPA, Price: 29, ConvRate: 1.2, Volatility: 0.15, Unlocked: true},
			{ID: "clicks-lite", Name: "Traffic Partner (CPC)", Type: OfferCPC, CPC: 0.25, ConvRate: 0, Volatility: 0.35, Unlocked: true},
			{ID: "pro-suite", Name: "Pro Suite (Rebill)", Type: OfferRebill, Price: 19, Rebill: 9, ConvRate: 0.6, Volatility: 0.25, Unlocked: false},
		},
		Traffic: map[string]float64{
			"seo": 1, "shortform": 1, "longform": 1, "ads": 1, "email": 1, "social": 1,
		},
		Multipliers: Multipliers{Revenue: 1, Audience: 1, Email: 1, Rep: 1, Energy: 1},
		Inventory:   []string{},
		Staff:       []StaffMember{},
		Log: []LogEntry{
			{T: now, Kind: LogInfo, Text: "Welcome! Build your affiliate empire one day at a time."},
		},
		Goals: []Goal{
			{ID: "g1", Text: "Hit $1,000 cash"},
			{ID: "g2", Text: "Reach 1,000 audience"},
			{ID: "g3", Text: "Build an email list of 500"},
		},
		Achievements: []string{},
		Bills: Bills{
			Weekly: []BillItem{{ID: "subs", Name: "Tool Subscriptions", Amount: 120}},
			Monthly: []BillItem{
				{ID: "office", Name: "Home Office & Utilities", Amount: 600},
				{ID: "tax_est", Name: "Estimated Taxes", Amount: 200},
			},
			DaysUntilWeekly:  7,
			DaysUntilMonthly: 30,
		},
		Finance:  Finance{APR: 0.18, DaysUntilQuarter: 90},
		Settings: Settings{AutoDay: true, AutoMS: 6000},
	}
}

// Clone returns a deep copy so that a transition never aliases the slices or
// maps of the state it was derived from.
func (s GameState) Clone() GameState {
	out := s
	out.ActionCounts = make(map[string]int, len(s.ActionCounts))
	for k, v := range s.ActionCounts {
		out.ActionCounts[k] = v
	}
	out.Traffic = make(map[string]float64, len(s.Traffic))
	for k, v := range s.Traffic {
		out.Traffic[k] = v
	}
	out.Offers = append([]Offer(nil), s.Offers...)
	out.Inventory = append([]string(nil), s.Inventory...)
	out.Staff = append([]StaffMember(nil), s.Staff...)
	out.Log = append([]LogEntry(nil), s.Log...)
	out.Goals = append([]Goal(nil), s.Goals...)
	out.Achievements = append([]string(nil), s.Achievements...)
	out.Bills.Weekly = append([]BillItem(nil), s.Bills.Weekly...)
	out.Bills.Monthly = append([]BillItem(nil), s.Bills.Monthly...)
	return out
}

// HasItem reports whether an inventory flag is owned.
func (s GameState) HasItem(id string) bool {
	for _, it := range s.Inventory {
		if it == id {
			return true
		}
	}
	return false
}

// HasAchievement reports whether an achievement id has been earned.
func (s GameState) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// AppendLog returns the state with a log entry prepended (most recent first),
// evicting the oldest entries past the cap.
func AppendLog(s GameState, t time.Time, kind, text string, limit int) GameState {
	next := s.Clone()
	next.Log = append([]LogEntry{{T: t, Kind: kind, Text: text}}, next.Log...)
	if len(next.Log) > limit {
		next.Log = next.Log[:limit]
	}
	return next
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Floor converts x to an integer, rounding toward negative infinity. All
// revenue and fee arithmetic goes through this so that negative quantities
// floor the same way at every call site.
func Floor(x float64) int {
	return int(math.Floor(x))
}
