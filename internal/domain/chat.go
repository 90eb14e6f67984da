package domain

// ChatSession agrupa los mensajes guardados bajo un título; nunca se muta
// después de creada. El store asigna id/created_at/updated_at al persistirla.
type ChatSession struct {
	Title    string         `json:"title" bson:"title" binding:"required"`
	Messages []Message      `json:"messages" bson:"messages" binding:"required,dive"`
	Meta     map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}
