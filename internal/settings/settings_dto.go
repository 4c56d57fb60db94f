package settings

type UpsertSettingRequest struct {
	Key   string `json:"key" binding:"required,max=128"`
	Value string `json:"value" binding:"required"`
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
