package services

import (
	"testing"

	"gin-items/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	t.Parallel()

	owner := &models.User{ID: uuid.New()}
	stranger := &models.User{ID: uuid.New()}
	admin := &models.User{ID: uuid.New(), IsSuperuser: true}
	item := &models.Item{ID: uuid.New(), OwnerID: owner.ID}

	tests := []struct {
		name  string
		actor *models.User
		item  *models.Item
		want  bool
	}{
		{name: "owner", actor: owner, item: item, want: true},
		{name: "stranger", actor: stranger, item: item, want: false},
		{name: "superuser", actor: admin, item: item, want: true},
		{name: "no actor", actor: nil, item: item, want: false},
		{name: "no item", actor: owner, item: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.actor, tt.item))
		})
	}
}
