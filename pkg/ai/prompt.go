package ai

// SolarSystemPrompt is the fixed domain instruction sent as the system
// message of every request.
const SolarSystemPrompt = `You are a solar industry expert assistant. You provide accurate, helpful information about:
- Solar panel technology and specifications
- Installation processes and best practices
- Maintenance requirements and schedules
- Cost analysis and ROI calculations
- Industry regulations and compliance
- Current market trends and forecasts

Provide clear, concise answers suitable for both technical and non-technical users.`

// BuildSolarMessages assembles the system prompt, any prior messages and
// the new user prompt, in that order.
func BuildSolarMessages(prompt string, prior []Message) []Message {
	msgs := make([]Message, 0, len(prior)+2)
	msgs = append(msgs, Message{Role: RoleSystem, Content: SolarSystemPrompt})
	msgs = append(msgs, prior...)
	msgs = append(msgs, Message{Role: RoleUser, Content: prompt})
	return msgs
}
