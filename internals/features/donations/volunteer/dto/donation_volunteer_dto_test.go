package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"quanlytaitro_backend/internals/features/donations/volunteer/model"
)

func TestCreateIgnoresClientTotalValue(t *testing.T) {
	req := CreateDonationVolunteerRequest{
		DonationVolunteerDonorID:    uuid.New(),
		DonationVolunteerWorkType:   "MEDICAL",
		DonationVolunteerSkills:     "Bác sĩ tim mạch",
		DonationVolunteerStartDate:  time.Now(),
		DonationVolunteerEndDate:    time.Now().AddDate(0, 0, 4),
		DonationVolunteerHours:      40,
		DonationVolunteerHourlyRate: 500_000,
		DonationVolunteerTotalValue: 1, // client cố tình gửi sai
	}

	m := req.ToModel()
	assert.Equal(t, float64(20_000_000), m.DonationVolunteerTotalValue)
}

func TestUpdateRecalculatesTotalValue(t *testing.T) {
	m := model.DonationVolunteer{
		DonationVolunteerHours:      40,
		DonationVolunteerHourlyRate: 500_000,
	}
	m.RecalcTotalValue()

	newHours := 10.0
	req := UpdateDonationVolunteerRequest{DonationVolunteerHours: &newHours}
	req.ApplyTo(&m)

	assert.Equal(t, float64(5_000_000), m.DonationVolunteerTotalValue)
}
