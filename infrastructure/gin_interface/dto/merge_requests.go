package dto

type MergePairRequest struct {
	First  string `json:"first" binding:"required"`
	Second string `json:"second" binding:"required"`
}

type AssembleRequest struct {
	HookNames []string `json:"hook_names" binding:"required"`
	BodyName  string   `json:"body_name"`
}
