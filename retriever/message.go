package retriever

type Message struct {
	Id        string    `json:"id"`
	SessionId string    `json:"session_id"`
	Role      string    `json:"role"`
	Parts     []Part    `json:"parts"`
	Embedding []float32 `json:"embedding,omitempty"`
}

type Part struct {
	Type string         `json:"type"`
	Text string         `json:"text,omitempty"`
	Meta map[string]any `json:"meta,omitempty"`
}
