package domain

// AIRequest es la forma genérica que acepta el proxy de LLM.
// Se espera que solo uno de Messages/Prompt traiga contenido; si ambos
// faltan el proxy envía un mensaje de usuario vacío.
type AIRequest struct {
	Task     string    `json:"task" binding:"required"` // chat | summarize | essay | study_plan | explain_steps | quiz | diagram | pdf | images | videos
	Messages []Message `json:"messages,omitempty" binding:"omitempty,dive"`
	Prompt   string    `json:"prompt,omitempty"`
}

// AIResponse es la respuesta normalizada del proxy; nunca se persiste.
type AIResponse struct {
	Output string         `json:"output"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// LearnifyInput selecciona la plantilla de estudio a aplicar sobre un texto.
type LearnifyInput struct {
	Text    string `json:"text"`
	FileURL string `json:"file_url"` // aceptado pero sin descarga de contenido en este alcance
	Mode    string `json:"mode" binding:"required"` // explanation | flashcards | summary | mcqs
}

// QuizRequest parametriza la generación de quizzes.
type QuizRequest struct {
	Topic        string `json:"topic" binding:"required"`
	Mode         string `json:"mode" binding:"required"` // daily | stats | ranks | custom
	NumQuestions int    `json:"num_questions"`
}

// QuizPlaceholder es la respuesta vacía para los modos stats/ranks,
// que todavía no leen datos de la base.
type QuizPlaceholder struct {
	Mode  string `json:"mode"`
	Items []any  `json:"items"`
}
