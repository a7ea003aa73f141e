package gateway

// Wire types for the generateContent REST endpoint.

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error,omitempty"`
}

// insightsPayload uses pointers so a missing field can be told apart from an
// empty one.
type insightsPayload struct {
	Summary            *string   `json:"summary"`
	PositiveAspects    *[]string `json:"positive_aspects"`
	AreasForReflection *[]string `json:"areas_for_reflection"`
	KeyTakeaways       *[]string `json:"key_takeaways"`
}

type suggestionsPayload struct {
	Suggestions *[]string `json:"suggestions"`
}

func stringList(description string) *schema {
	return &schema{Type: "ARRAY", Items: &schema{Type: "STRING"}, Description: description}
}

var insightsSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"summary": {
			Type:        "STRING",
			Description: "A brief, empathetic summary of the journal entry in 2-3 sentences.",
		},
		"positive_aspects":     stringList("A list of 2-3 positive aspects, strengths, or moments of gratitude found in the entry."),
		"areas_for_reflection": stringList("A list of 2-3 gentle, open-ended questions to prompt deeper reflection on the topics mentioned."),
		"key_takeaways":        stringList("A list of 1-2 key takeaways or general pieces of advice based on the entry's themes."),
	},
	Required: []string{"summary", "positive_aspects", "areas_for_reflection", "key_takeaways"},
}

var suggestionsSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"suggestions": stringList("A list of 3-5 personalized wellness tips."),
	},
	Required: []string{"suggestions"},
}
