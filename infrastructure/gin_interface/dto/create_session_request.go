package dto

type CreateSessionRequest struct {
	UserID        string            `json:"user_id" binding:"required"`
	ContextID     string            `json:"context_id" binding:"required"`
	CharacterID   string            `json:"character_id"`
	CustomPrompts map[string]string `json:"custom_prompts"`
}
