package domain

// Message es un turno de conversación; inmutable una vez construido.
type Message struct {
	Role    string   `json:"role" bson:"role" binding:"required,oneof=user assistant"`
	Content string   `json:"content" bson:"content"`
	Images  []string `json:"images,omitempty" bson:"images,omitempty"`
}
