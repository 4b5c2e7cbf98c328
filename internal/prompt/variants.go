package prompt

// Variant is one of the fixed A/B testing styles.
type Variant struct {
	Name        string
	Description string
}

// Variants returns the A/B variant styles in generation order.
func Variants() []Variant {
	return []Variant{
		{
			Name: "Story-Driven",
			Description: `
OPENING: Start with a personal anecdote or specific story
STRUCTURE: Narrative arc with setup, conflict, resolution
HOOK: "Last week..." or "I just realized..." or specific moment
CTA: Invite readers to share their own stories
TONE: Personal, relatable, conversational`,
		},
		{
			Name: "Data & Insights",
			Description: `
OPENING: Lead with a surprising statistic, number, or insight
STRUCTURE: Problem → Data → Analysis → Conclusion
HOOK: Bold statement backed by evidence
CTA: Ask for agreement/disagreement with the analysis
TONE: Analytical, thought-provoking, authoritative`,
		},
		{
			Name: "Question-Led",
			Description: `
OPENING: Start with a provocative question
STRUCTURE: Question → Exploration → Multiple perspectives → Your take
HOOK: Question that challenges common assumptions
CTA: Direct question to audience for their input
TONE: Curious, exploratory, dialogue-focused`,
		},
		{
			Name: "Listicle/Framework",
			Description: `
OPENING: Promise specific, actionable insights
STRUCTURE: Numbered list or framework (3-5 points)
HOOK: "Here are X things I learned..." or "X ways to..."
CTA: Ask which point resonates most
TONE: Practical, structured, educational`,
		},
		{
			Name: "Contrarian Take",
			Description: `
OPENING: Challenge conventional wisdom
STRUCTURE: Common belief → Why it's wrong → Alternative view → Evidence
HOOK: "Everyone says X, but..." or "Unpopular opinion:"
CTA: Invite debate and different perspectives
TONE: Bold, confident, thought-provoking`,
		},
	}
}
