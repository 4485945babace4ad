package services

import (
	"context"
	"testing"

	"foundation-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(name, group string, level, order int) models.Staff {
	return models.Staff{DirectoryMember: models.DirectoryMember{Name: name, GroupName: group, GroupLevel: level, SortOrder: order}}
}

func TestGroupMembersKeepsFirstSeenOrder(t *testing.T) {
	groups := GroupMembers([]models.Staff{
		member("ผอ.", "ผู้บริหาร", 1, 1),
		member("รองผอ.", "ผู้บริหาร", 1, 2),
		member("ครู ก", "กลุ่มสาระภาษาไทย", 2, 1),
		member("ครู ข", "กลุ่มสาระคณิต", 2, 1),
		member("ครู ค", "กลุ่มสาระภาษาไทย", 2, 2),
	})
	require.Len(t, groups, 3)

	assert.Equal(t, "ผู้บริหาร", groups[0].GroupName)
	assert.Len(t, groups[0].Members, 2)
	assert.Equal(t, "กลุ่มสาระภาษาไทย", groups[1].GroupName)
	assert.Equal(t, []string{"ครู ก", "ครู ค"}, []string{groups[1].Members[0].Name, groups[1].Members[1].Name})
	assert.Equal(t, "กลุ่มสาระคณิต", groups[2].GroupName)
}

func TestGroupMembersEmpty(t *testing.T) {
	groups := GroupMembers([]models.Teacher{})
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestDirectoryOrderFromDB(t *testing.T) {
	ctx := context.Background()
	svc := NewStaffService(newTestDB(t), newTestUploader(newMemStorage()))

	for _, s := range []models.Staff{
		member("ครู", "ครู", 3, 1),
		member("รอง", "ผู้บริหาร", 1, 2),
		member("ผอ.", "ผู้บริหาร", 1, 1),
	} {
		s := s
		require.NoError(t, svc.Create(ctx, &s))
	}

	rows, err := svc.List(ctx, "")
	require.NoError(t, err)
	groups := GroupMembers(rows)
	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].GroupLevel)
	assert.Equal(t, "ผอ.", groups[0].Members[0].Name)
	assert.Equal(t, "รอง", groups[0].Members[1].Name)
	assert.Equal(t, 3, groups[1].GroupLevel)
}
