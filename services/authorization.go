package services

import "gin-items/models"

// CanAccess reports whether actor may read or modify item.
// 所有者かスーパーユーザーのみ
func CanAccess(actor *models.User, item *models.Item) bool {
	if actor == nil || item == nil {
		return false
	}
	return actor.IsSuperuser || actor.ID == item.OwnerID
}
