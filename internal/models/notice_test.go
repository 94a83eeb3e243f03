package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoticeAudienceVisibility(t *testing.T) {
	assert.True(t, AudienceAll.VisibleTo(RoleStudent))
	assert.True(t, AudienceAll.VisibleTo(RoleTeacher))
	assert.True(t, AudienceAll.VisibleTo(RoleAdmin))

	assert.True(t, AudienceStudents.VisibleTo(RoleStudent))
	assert.False(t, AudienceStudents.VisibleTo(RoleTeacher))
	assert.False(t, AudienceStudents.VisibleTo(RoleAdmin))

	assert.True(t, AudienceTeachers.VisibleTo(RoleTeacher))
	assert.False(t, AudienceTeachers.VisibleTo(RoleStudent))
}
