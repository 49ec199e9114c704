package questiongen

// RawQuestion is one candidate question as returned by the LLM, before
// structural validation admits it into the trusted model.
type RawQuestion struct {
	QuestionText   string   `json:"question_text"`
	Type           string   `json:"type"`
	Options        []string `json:"options"`
	CorrectIndices []int    `json:"correct_indices"`
	Category       string   `json:"category"`
	Difficulty     string   `json:"difficulty"`
	Explanation    string   `json:"explanation"`
}

// batchOutput is the raw LLM response envelope.
type batchOutput struct {
	Questions []RawQuestion `json:"questions"`
}
