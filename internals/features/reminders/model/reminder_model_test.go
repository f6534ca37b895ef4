package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBuckets(t *testing.T) {
	now := time.Date(2024, 5, 12, 15, 30, 0, 0, time.Local)
	today := StartOfDay(now)

	cases := []struct {
		name string
		r    Reminder
		want Bucket
	}{
		{"đầu ngày hôm nay", Reminder{ReminderDueDate: today}, BucketToday},
		{"cuối ngày hôm nay", Reminder{ReminderDueDate: today.AddDate(0, 0, 1).Add(-time.Second)}, BucketToday},
		{"đúng 00:00 ngày mai", Reminder{ReminderDueDate: today.AddDate(0, 0, 1)}, BucketUpcoming},
		{"tuần sau", Reminder{ReminderDueDate: today.AddDate(0, 0, 7)}, BucketUpcoming},
		{"hôm qua", Reminder{ReminderDueDate: today.AddDate(0, 0, -1)}, BucketOverdue},
		{"ngay trước 00:00 hôm nay", Reminder{ReminderDueDate: today.Add(-time.Nanosecond)}, BucketOverdue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.Classify(now))
		})
	}
}

func TestClassifyCompletedWins(t *testing.T) {
	now := time.Now()
	r := Reminder{
		ReminderDueDate:     now.AddDate(0, 0, -30),
		ReminderIsCompleted: true,
	}
	// đã hoàn thành thì không bao giờ là overdue
	assert.Equal(t, BucketCompleted, r.Classify(now))
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, 5, 12, 23, 59, 59, 999, time.Local)
	assert.Equal(t, time.Date(2024, 5, 12, 0, 0, 0, 0, time.Local), StartOfDay(ts))
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2024, 5, 12, 15, 30, 0, 0, time.Local)
	today, tomorrow := DayBounds(ts)
	assert.Equal(t, time.Date(2024, 5, 12, 0, 0, 0, 0, time.Local), today)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local), tomorrow)
}
