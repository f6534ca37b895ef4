package dto

import (
	"time"

	"github.com/google/uuid"

	"quanlytaitro_backend/internals/features/interactions/model"
)

type CreateInteractionRequest struct {
	InteractionDonorID uuid.UUID `json:"interaction_donor_id" validate:"required"`
	InteractionType    string    `json:"interaction_type" validate:"required,oneof=CALL EMAIL MEETING EVENT"`
	InteractionDate    time.Time `json:"interaction_date" validate:"required"`
	InteractionSubject *string   `json:"interaction_subject" validate:"omitempty,max=200"`
	InteractionNotes   *string   `json:"interaction_notes"`
}

func (r *CreateInteractionRequest) ToModel() model.Interaction {
	return model.Interaction{
		InteractionDonorID: r.InteractionDonorID,
		InteractionType:    r.InteractionType,
		InteractionDate:    r.InteractionDate,
		InteractionSubject: r.InteractionSubject,
		InteractionNotes:   r.InteractionNotes,
	}
}

type UpdateInteractionRequest struct {
	InteractionType    *string    `json:"interaction_type" validate:"omitempty,oneof=CALL EMAIL MEETING EVENT"`
	InteractionDate    *time.Time `json:"interaction_date"`
	InteractionSubject *string    `json:"interaction_subject" validate:"omitempty,max=200"`
	InteractionNotes   *string    `json:"interaction_notes"`
}

func (r *UpdateInteractionRequest) ApplyTo(i *model.Interaction) {
	if r.InteractionType != nil {
		i.InteractionType = *r.InteractionType
	}
	if r.InteractionDate != nil {
		i.InteractionDate = *r.InteractionDate
	}
	if r.InteractionSubject != nil {
		i.InteractionSubject = r.InteractionSubject
	}
	if r.InteractionNotes != nil {
		i.InteractionNotes = r.InteractionNotes
	}
}
