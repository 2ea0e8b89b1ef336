package service

import (
	"testing"

	"gamedash/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	owner := &entity.User{ID: 1}
	stranger := &entity.User{ID: 2}
	admin := &entity.User{ID: 3, IsAdmin: true}

	ownerID := int64(1)

	tests := []struct {
		name    string
		actor   *entity.User
		ownerID *int64
		want    bool
	}{
		{"owner mutates own resource", owner, &ownerID, true},
		{"stranger denied", stranger, &ownerID, false},
		{"admin mutates anything", admin, &ownerID, true},
		{"unowned resource denies regular user", owner, nil, false},
		{"unowned resource allows admin", admin, nil, true},
		{"nil actor denied", nil, &ownerID, false},
		{"nil actor denied on unowned", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.actor, tt.ownerID))
		})
	}
}
