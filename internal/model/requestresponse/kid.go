package requestresponse

// KidResponse : публичная запись ученика
type KidResponse struct {
	UUID     string  `json:"uuid" example:"11111111-1111-1111-1111-111111111111"`
	FolderID *string `json:"folder_id" example:"1a2b3c4d5e"`
}

// Pagination : offset-пагинация списка учеников
type Pagination struct {
	Page       int  `json:"page" example:"1"`
	Limit      int  `json:"limit" example:"20"`
	Total      int  `json:"total" example:"53"`
	TotalPages int  `json:"totalPages" example:"3"`
	HasMore    bool `json:"hasMore" example:"true"`
}

// ListKidsResponse : страница учеников
type ListKidsResponse struct {
	Kids       []KidResponse `json:"kids"`
	Pagination Pagination    `json:"pagination"`
}
