package demo

import (
	"github.com/caseprepared/backend/internal/shared"
	"github.com/caseprepared/backend/internal/template"
)

// Case couples a fixed template with the demo interview identity the
// frontend tracks progress against.
type Case struct {
	// CaseType is the route key: market-entry, profitability or merger.
	CaseType string
	// Label is the display form shown in demo responses.
	Label       string
	InterviewID string
	Template    *template.Template
}

const marketEntryQ1 = `<prompt>
You are an interviewer for McKinsey conducting a case interview, for an AI service to help candidates prepare for their case interviews.
Read: "I am an interviewer from McKinsey, welcome to your case interview. Here is the case prompt: The pandemic-induced collapse in oil prices sharply reduced profitability of Premier Oil, a major UK-based offshore upstream oil and gas producer. Premier Oil operates rigs in seven areas in the North Sea. The CEO has brought your team in to design a profitability improvement plan."

Answer clarifying questions using this information, do NOT make up information:
• Client has assets only in the North Sea and doesn't plan to adjust its portfolio
• Profitability for 2020 was -12% (losses), common in the industry that year
• No specific profitability improvement goal
• Client is an independent oil and gas company owned by various strategic investors
</prompt>`

const marketEntryQ2 = `<prompt>
You are an interviewer for McKinsey conducting a case interview, for an AI service to help candidates prepare for their case interviews.
Ask: "What factors would you consider to work on this problem? Feel free to take your time before answering the question."

Candidate should:
1) Give a brief overview
2) Cover: profitability analysis, business model, external factors
3) Add industry insights (optional)
4) Finish with a question

Guide them to consider:
• Industry benchmarks & trends
• Client's portfolio & operations
• Financial analysis (revenue/cost)
• Profitability improvement opportunities
</prompt>`

const marketEntryQ3 = `<prompt>
You are an interviewer for McKinsey conducting a case interview.
Ask: "Given there is not much Premier Oil can do to increase sales, the manager wants us to focus on costs. To begin with, what are Premier Oil's major expenses?"

Candidate should provide at least 4 cost categories.

Key costs include:
• Fixed: Maintenance, R&D, Overhead, Energy
• Variable: Labor, Platform supplies, Extraction supplies, Transportation
</prompt>`

const marketEntryQ4 = `<prompt>
You are an interviewer for McKinsey conducting a case interview.
Ask: "Let's talk about maintenance costs. We've learned they have been increasing for Premier Oil's offshore platforms. What might be the reasons behind it?. Feel free to take your time before answering the question."

Candidate should provide at least 4 reasons.

Potential reasons:
• Aging equipment requiring more frequent maintenance
• Stricter environmental regulations
• Rising costs of parts and labor
• Emergency repairs due to equipment failures
• Transportation costs for parts/technicians
</prompt>`

const profitabilityQ1 = `<prompt>
You are an interviewer for Bain conducting a case interview, for an AI service to help candidates prepare for their case interviews.
Read: "I am an interviewer from Bain and Company, welcome to your case interview. Here is the case prompt: Henderson Electric offers industrial air conditioning units, maintenance services and Internet-of-Things (IoT) enabled software to monitor system functionality in real-time. The overall sales are $1B, however the software revenue remains low. The CEO has hired your team to design a revenue growth plan to boost sales of their IoT-enabled software."

Provide these details when asked:
• Client offers various air conditioning units and cooling equipment
• Software alerts customers on system issues and maintenance needs
• Software works with equipment from other manufacturers
• No specific revenue goals
• Client serves diverse facilities: food processing, medicine production, computer chip manufacturing, etc.
</prompt>`

const profitabilityQ2 = `<prompt>
You are an interviewer for Bain conducting a case interview.
Ask: "How would you approach analyzing the low sales of the client's software and developing recommendations? Feel free to take time to structure your response."

Candidate should:
1) Present a structured approach
2) Cover: market analysis, business model, sales analysis, growth strategies

Guide them to consider:
• Software market: growth, competitors, trends
• Henderson's software: differentiators, target clients, sales team
• Sales analysis: pricing model, client growth, revenue structure
• Growth strategies: marketing, pricing, distribution, value proposition
</prompt>`

const profitabilityQ3 = `<prompt>
You are an interviewer for Bain conducting a case interview.
Ask: "Any ideas on how to help Henderson Electric increase the sales of their monitoring software? Feel free to take time to structure your response."

Candidate should provide at least 4 growth strategies.

Potential strategies:
• Marketing: Events, reports, campaigns
• Pricing: Adjust levels, bundling, different models (tiers, trials)
• Distribution: Improve sales training, address objections
• Value proposition: Customize features, add support, improve quality
</prompt>`

const profitabilityQ4 = `<prompt>
You are an interviewer for Bain conducting a case interview.
Ask: "Out of 16k large manufacturing facilities in the U.S. only 4k have adopted the software to monitor their air conditioning units. Why don't the rest 12k do the same?  Feel free to take time to structure your response."

Candidate should provide at least 4 reasons.

Factors to consider:
• Financial: High price, IT burden, unclear ROI
• Low perceived value: Lack of awareness, manual systems working adequately
• Risks: Locked-in contracts, bugs, implementation disruptions, security concerns
</prompt>`

const mergerQ1 = `<prompt>
You are an interviewer for BCG conducting a case interview, for an AI service that helps candidates prepare for their case interviews.
Read: "I am an interviewer from BCG and I am here to conduct your case interview. Here is your case prompt: Betacer is a major U.S. electronics manufacturer that offers laptop and desktop PCs, tablets, smartphones, monitors, projectors and cloud solutions. Given low growth in various electronics segments, Betacer is considering entering the U.S. video-game market. They've reached out for advice on whether this is wise."

Provide these details when asked:
• Betacer wants payback within 2 years after market entry
• They plan to target the mass market, not hardcore gamers
• Focus is on the U.S. video-game market ($41B in 2020)
• Global market is $175B and grew rapidly in 2020
• The market is fragmented with many major players
</prompt>`

const mergerQ2 = `<prompt>
You are an interviewer for BCG conducting a case interview.
Ask: "What factors would you consider to suggest whether Betacer should enter the video-game market? Feel free to take some time to structure your response"

Candidate should:
1) Give a structured overview
2) Cover: market assessment, business model, financial analysis, risks

Guide them to consider:
• Video game market: size, growth, competition, profitability
• Betacer's approach: target segments, offerings, distribution
• Financial assessment: profitability, costs, capex, payback period
• Entry risks: market, financial, operational
</prompt>`

const mergerQ3 = `<prompt>
You are an interviewer for BCG conducting a case interview.
Ask: "What factors would you consider to suggest whether Betacer should enter the video-game market? Feel free to take some time to structure your response"

Candidate should provide at least 4 factors driving customer adoption.

Key drivers include:
• Brand perception: awareness, recommendations, ratings
• Pricing: trials, affordability, compatibility with existing devices
• Distribution: easy access through app stores
• Value proposition: popular genres, platform compatibility, social features
</prompt>`

const mergerQ4 = `<prompt>
You are an interviewer for BCG conducting a case interview.
Ask: "What synergies might Betacer capture by entering the video-game market? Feel free to take some time to structure your response"

Candidate should identify both revenue and cost synergies.

Potential synergies:
• Revenue: Leverage distribution, bundle hardware and games, co-marketing
• Cost: Shared overhead, volume discounts with sales partners
</prompt>`

const (
	marketEntryLong   = "The pandemic-induced collapse in oil prices sharply reduced profitability of Premier Oil, a major UK-based offshore upstream oil and gas producer. Premier Oil operates rigs in seven areas in the North Sea. The CEO has brought your team in to design a profitability improvement plan."
	profitabilityLong = "Henderson Electric offers industrial air conditioning units, maintenance services and Internet-of-Things (IoT) enabled software to monitor system functionality in real-time. The overall sales are $1B, however the software revenue remains low. The CEO has hired your team to design a revenue growth plan to boost sales of their IoT-enabled software."
	mergerLong        = "Betacer is a major U.S. electronics manufacturer that offers laptop and desktop PCs, tablets, smartphones, monitors, projectors and cloud solutions. Given low growth in various electronics segments, Betacer is considering entering the U.S. video-game market. They've reached out for advice on whether this is wise."
)

var cases = []Case{
	{
		CaseType:    string(shared.CaseTypeMarketEntry),
		Label:       "Market Entry",
		InterviewID: "44444444-4444-4444-4444-444444444444",
		Template: &template.Template{
			ID:               "11111111-1111-1111-1111-111111111111",
			CaseType:         string(shared.CaseTypeMarketEntry),
			LeadType:         string(shared.LeadTypeInterviewerLed),
			Difficulty:       string(shared.DifficultyMedium),
			Company:          "McKinsey",
			Industry:         "Oil & Gas",
			Title:            "Premier Oil Profitability Improvement",
			DescriptionShort: "Design a profitability improvement plan for Premier Oil, a major UK-based offshore oil producer affected by pandemic-induced price collapse.",
			DescriptionLong:  marketEntryLong,
			Prompt:           marketEntryLong,
			ImageURL:         "https://images.unsplash.com/photo-1509042239860-f550ce710b93?q=80&w=1974&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
			Duration:         30,
			Version:          "1.0",
			Structure: shared.JSONMap{
				"question1": map[string]any{"number": 1, "title": "Opening", "prompt": marketEntryQ1},
				"question2": map[string]any{"number": 2, "title": "Initial Structuring", "prompt": marketEntryQ2},
				"question3": map[string]any{"number": 3, "title": "Cost Breakdown", "prompt": marketEntryQ3},
				"question4": map[string]any{"number": 4, "title": "Maintenance Cost Drivers", "prompt": marketEntryQ4},
			},
		},
	},
	{
		CaseType:    string(shared.CaseTypeProfitability),
		Label:       "Profitability",
		InterviewID: "55555555-5555-5555-5555-555555555555",
		Template: &template.Template{
			ID:               "22222222-2222-2222-2222-222222222222",
			CaseType:         string(shared.CaseTypeProfitability),
			LeadType:         string(shared.LeadTypeCandidateLed),
			Difficulty:       string(shared.DifficultyHard),
			Company:          "Bain",
			Industry:         "Industrial Equipment",
			Title:            "Henderson Electric Software Revenue Growth",
			DescriptionShort: "Design a revenue growth plan to boost sales of Henderson Electric's IoT-enabled software for industrial air conditioning systems.",
			DescriptionLong:  profitabilityLong,
			Prompt:           profitabilityLong,
			ImageURL:         "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
			Duration:         35,
			Version:          "1.0",
			Structure: shared.JSONMap{
				"question1": map[string]any{"number": 1, "title": "Opening", "prompt": profitabilityQ1},
				"question2": map[string]any{"number": 2, "title": "Structuring Low Software Sales Analysis", "prompt": profitabilityQ2},
				"question3": map[string]any{"number": 3, "title": "Growth Strategy Brainstorm", "prompt": profitabilityQ3},
				"question4": map[string]any{"number": 4, "title": "Understanding Market Adoption Gap", "prompt": profitabilityQ4},
			},
		},
	},
	{
		CaseType:    string(shared.CaseTypeMerger),
		Label:       "Merger & Acquisition",
		InterviewID: "66666666-6666-6666-6666-666666666666",
		Template: &template.Template{
			ID:               "33333333-3333-3333-3333-333333333333",
			CaseType:         string(shared.CaseTypeMerger),
			LeadType:         string(shared.LeadTypeInterviewerLed),
			Difficulty:       string(shared.DifficultyMedium),
			Company:          "BCG",
			Industry:         "Electronics Manufacturing",
			Title:            "Betacer Video Game Market Entry",
			DescriptionShort: "Evaluate whether Betacer, a major U.S. electronics manufacturer, should enter the U.S. video-game market given low growth in other segments.",
			DescriptionLong:  mergerLong,
			Prompt:           mergerLong,
			ImageURL:         "https://images.unsplash.com/photo-1576091160550-2173dba999ef?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
			Duration:         30,
			Version:          "1.0",
			Structure: shared.JSONMap{
				"question1": map[string]any{"number": 1, "title": "Opening", "prompt": mergerQ1},
				"question2": map[string]any{"number": 2, "title": "Market Entry Assessment", "prompt": mergerQ2},
				"question3": map[string]any{"number": 3, "title": "Customer Adoption Drivers", "prompt": mergerQ3},
				"question4": map[string]any{"number": 4, "title": "Synergy Opportunities", "prompt": mergerQ4},
			},
		},
	},
}

// Cases returns the fixed catalog in display order.
func Cases() []Case {
	out := make([]Case, len(cases))
	copy(out, cases)
	return out
}

// CaseByType looks a case up by its route key.
func CaseByType(caseType string) (Case, bool) {
	for _, c := range cases {
		if c.CaseType == caseType {
			return c, true
		}
	}
	return Case{}, false
}

// CaseByTemplateID looks a case up by its template's fixed ID.
func CaseByTemplateID(id string) (Case, bool) {
	for _, c := range cases {
		if c.Template.ID == id {
			return c, true
		}
	}
	return Case{}, false
}

// Templates returns copies of the catalog templates for seeding.
func Templates() []*template.Template {
	out := make([]*template.Template, 0, len(cases))
	for _, c := range cases {
		t := *c.Template
		out = append(out, &t)
	}
	return out
}
