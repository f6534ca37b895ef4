package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quanlytaitro_backend/internals/features/reminders/model"
)

func TestApplyToStampsCompletedAt(t *testing.T) {
	m := model.Reminder{ReminderTitle: "Sinh nhật"}
	now := time.Now()

	done := true
	req := UpdateReminderRequest{ReminderIsCompleted: &done}
	req.ApplyTo(&m, now)

	assert.True(t, m.ReminderIsCompleted)
	require.NotNil(t, m.ReminderCompletedAt)
	assert.Equal(t, now, *m.ReminderCompletedAt)
}

func TestApplyToClearsCompletedAt(t *testing.T) {
	done := time.Now().Add(-time.Hour)
	m := model.Reminder{ReminderIsCompleted: true, ReminderCompletedAt: &done}

	undone := false
	req := UpdateReminderRequest{ReminderIsCompleted: &undone}
	req.ApplyTo(&m, time.Now())

	assert.False(t, m.ReminderIsCompleted)
	assert.Nil(t, m.ReminderCompletedAt)
}

func TestApplyToKeepsExistingCompletedAt(t *testing.T) {
	original := time.Now().Add(-24 * time.Hour)
	m := model.Reminder{ReminderIsCompleted: true, ReminderCompletedAt: &original}

	done := true
	req := UpdateReminderRequest{ReminderIsCompleted: &done}
	req.ApplyTo(&m, time.Now())

	// mốc hoàn thành cũ không bị ghi đè
	require.NotNil(t, m.ReminderCompletedAt)
	assert.Equal(t, original, *m.ReminderCompletedAt)
}
