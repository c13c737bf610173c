package catalog

import "github.com/tfs2006/affiliate-simulator/internal/sim"

// ShopItems returns the upgrade/tool catalog plus staff hires. Multiplier
// upgrades compound multiplicatively; hires add a weekly payroll bill
// alongside their productivity bonus.
func ShopItems() []sim.ShopItem {
	return []sim.ShopItem{
		{
			ID: "repurpose", Name: "Content Repurposer", Cost: 350,
			Desc: "Multiply content reach across platforms.",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{Multipliers: &sim.MultipliersPatch{Audience: sim.FloatPtr(s.Multipliers.Audience * 1.2)}}
			},
		},
		{
			ID: "opus", Name: "Auto Clip Editor", Cost: 300,
			Desc: "Faster editing, more posts.",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{Multipliers: &sim.MultipliersPatch{Audience: sim.FloatPtr(s.Multipliers.Audience * 1.15)}}
			},
		},
		{
			ID: "email_suite", Name: "Email Suite Pro", Cost: 450,
			Desc: "+ list growth & revenue per sub.",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{Multipliers: &sim.MultipliersPatch{
					Email:   sim.FloatPtr(s.Multipliers.Email * 1.25),
					Revenue: sim.FloatPtr(s.Multipliers.Revenue * 1.1),
				}}
			},
		},
		{
			ID: "ai_voice", Name: "AI Voiceover", Cost: 280,
			Desc: "Ship more content with pro narration.",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{Multipliers: &sim.MultipliersPatch{Audience: sim.FloatPtr(s.Multipliers.Audience * 1.1)}}
			},
		},
		{
			ID: "analytics", Name: "Analytics Wizard", Cost: 520,
			Desc: "Smarter decisions = better ROI.",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{Multipliers: &sim.MultipliersPatch{Revenue: sim.FloatPtr(s.Multipliers.Revenue * 1.25)}}
			},
		},
		{
			ID: "coaching", Name: "Strategy Coaching", Cost: 600,
			Desc: "+rep and action efficiency.",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{Multipliers: &sim.MultipliersPatch{
					Rep:    sim.FloatPtr(s.Multipliers.Rep * 1.2),
					Energy: sim.FloatPtr(s.Multipliers.Energy * 1.1),
				}}
			},
		},
		{
			ID: "legal_shield", Name: "Dispute Shield", Cost: 480,
			Desc: "Reduce refund & chargeback impact by 30%.",
			// The inventory flag itself is the effect; Purchase records it.
			Apply: func(s sim.GameState) sim.Patch { return sim.Patch{} },
		},
		{
			ID: "bookkeeper", Name: "Bookkeeper App", Cost: 260,
			Desc: "Cut late fees by 50% and show bill schedule.",
			Apply: func(s sim.GameState) sim.Patch { return sim.Patch{} },
		},
		{
			ID: "business_insurance", Name: "Business Insurance", Cost: 380,
			Desc: "Halves equipment breakdown costs.",
			Apply: func(s sim.GameState) sim.Patch { return sim.Patch{} },
		},
		hire("hire_va", "Hire VA (Part-time)", "+10% energy efficiency; $150/wk payroll.", 400,
			sim.StaffMember{ID: "va", Name: "Virtual Assistant", WeeklyPay: 150},
			func(s sim.GameState) *sim.MultipliersPatch {
				return &sim.MultipliersPatch{Energy: sim.FloatPtr(s.Multipliers.Energy * 1.1)}
			}),
		hire("hire_editor", "Hire Video Editor", "+15% audience growth; $300/wk payroll.", 700,
			sim.StaffMember{ID: "editor", Name: "Video Editor", WeeklyPay: 300},
			func(s sim.GameState) *sim.MultipliersPatch {
				return &sim.MultipliersPatch{Audience: sim.FloatPtr(s.Multipliers.Audience * 1.15)}
			}),
		hire("hire_buyer", "Hire Media Buyer", "+12% revenue; $250/wk payroll.", 600,
			sim.StaffMember{ID: "buyer", Name: "Media Buyer", WeeklyPay: 250},
			func(s sim.GameState) *sim.MultipliersPatch {
				return &sim.MultipliersPatch{Revenue: sim.FloatPtr(s.Multipliers.Revenue * 1.12)}
			}),
	}
}

// hire builds a staff-hire shop item: productivity multiplier, staff roster
// entry, a new weekly payroll line item, and the payroll total.
func hire(id, name, desc string, cost int, member sim.StaffMember, mult func(sim.GameState) *sim.MultipliersPatch) sim.ShopItem {
	return sim.ShopItem{
		ID: id, Name: name, Desc: desc, Cost: cost,
		Apply: func(s sim.GameState) sim.Patch {
			weekly := append(append([]sim.BillItem(nil), s.Bills.Weekly...), sim.BillItem{
				ID:     "pay_" + member.ID,
				Name:   "Payroll: " + member.Name,
				Amount: member.WeeklyPay,
			})
			return sim.Patch{
				Multipliers: mult(s),
				Staff:       append(append([]sim.StaffMember(nil), s.Staff...), member),
				Bills:       &sim.BillsPatch{Weekly: weekly},
				Finance:     &sim.FinancePatch{PayrollWeekly: sim.IntPtr(s.Finance.PayrollWeekly + member.WeeklyPay)},
			}
		},
	}
}
