package dto

type PageQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=1,max=1000"`
}

type ListResponse[T any] struct {
	Data  []T   `json:"data"`
	Count int64 `json:"count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
