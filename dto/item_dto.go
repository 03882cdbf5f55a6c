package dto

type CreateItemInput struct {
	Title       string  `json:"title" binding:"required,notblank,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1024"`
}

// UpdateItemInput は部分更新用。nilのフィールドは変更しない
type UpdateItemInput struct {
	Title       *string `json:"title" binding:"omitempty,notblank,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1024"`
}

func (in UpdateItemInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil
}

// Changes returns the column updates for the fields present in the request.
func (in UpdateItemInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.Description != nil {
		// 空文字は説明の削除として扱う
		if *in.Description == "" {
			changes["description"] = nil
		} else {
			changes["description"] = *in.Description
		}
	}
	return changes
}
