package constants

// Quote is a short attributed quote shown when an entry has no insights yet.
type Quote struct {
	Text   string
	Author string
}

var Quotes = []Quote{
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "She turned her can'ts into cans and her dreams into plans.", Author: "Kobi Yamada"},
	{Text: "Be a pineapple: stand tall, wear a crown, and be sweet on the inside.", Author: "Unknown"},
	{Text: "You are braver than you believe, stronger than you seem, and smarter than you think.", Author: "A.A. Milne"},
}

var WritingPrompts = []string{
	"What is something that made you smile today?",
	"Describe a goal you want to accomplish this week.",
	"Write about a person you are grateful for and why.",
	"What is a new hobby you would like to try?",
	"If you could give your younger self one piece of advice, what would it be?",
	"What does your ideal day look like?",
	"Write about a challenge you recently overcame.",
	"List three things you love about yourself.",
}

// Stickers can be added to an entry's text from the compose form or with
// write --sticker.
var Stickers = []string{"🌸", "💖", "✨", "🎀", "🌙", "⭐", "🦋", "☁️"}

// AnalyzePrompt and SuggestPrompt are formatted with the entry text.
const AnalyzePrompt = `
Analyze the following journal entry. Act as a compassionate and insightful wellness coach.
Your goal is to provide supportive and constructive feedback.
Do not be judgmental. Focus on identifying themes, emotions, and potential areas for growth.
Based on the entry, provide a summary, identify positive aspects, suggest areas for reflection, and offer key takeaways.

Journal Entry:
%q
`

const SuggestPrompt = `
You are a friendly and caring wellness advisor.
Based on the following journal entry, provide 3-5 personalized and actionable wellness tips.
Focus specifically on practical suggestions for health, hygiene, and beauty.
The tone should be positive, gentle, and encouraging. Do not be preachy or clinical.
For example, if the user mentions feeling tired, suggest a calming bedtime routine. If they mention skin concerns, suggest a simple hydration tip.

Journal Entry:
%q
`
