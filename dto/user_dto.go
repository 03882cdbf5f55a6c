package dto

type CreateUserInput struct {
	Email       string  `json:"email" binding:"required,email,max=255"`
	Password    string  `json:"password" binding:"required,min=8,maxbytes=72"`
	FullName    *string `json:"full_name" binding:"omitempty,max=255"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser bool    `json:"is_superuser"`
}

// UpdateUserInput は管理者による部分更新。passwordはハッシュ化してから保存する
type UpdateUserInput struct {
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
	Password    *string `json:"password" binding:"omitempty,min=8,maxbytes=72"`
	FullName    *string `json:"full_name" binding:"omitempty,max=255"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

func (in UpdateUserInput) IsEmpty() bool {
	return in.Email == nil && in.Password == nil && in.FullName == nil &&
		in.IsActive == nil && in.IsSuperuser == nil
}

// Changes returns the column updates for every present field except password.
func (in UpdateUserInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Email != nil {
		changes["email"] = *in.Email
	}
	if in.FullName != nil {
		changes["full_name"] = *in.FullName
	}
	if in.IsActive != nil {
		changes["is_active"] = *in.IsActive
	}
	if in.IsSuperuser != nil {
		changes["is_superuser"] = *in.IsSuperuser
	}
	return changes
}

// UpdateMeInput is the self-service subset of UpdateUserInput.
type UpdateMeInput struct {
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Password *string `json:"password" binding:"omitempty,min=8,maxbytes=72"`
	FullName *string `json:"full_name" binding:"omitempty,max=255"`
}

func (in UpdateMeInput) IsEmpty() bool {
	return in.Email == nil && in.Password == nil && in.FullName == nil
}

func (in UpdateMeInput) AsUserUpdate() UpdateUserInput {
	return UpdateUserInput{
		Email:    in.Email,
		Password: in.Password,
		FullName: in.FullName,
	}
}
