package dto

import (
	"github.com/google/uuid"

	"quanlytaitro_backend/internals/features/emails/model"
)

type CreateEmailTemplateRequest struct {
	EmailTemplateName    string `json:"email_template_name" validate:"required,max=150"`
	EmailTemplateSubject string `json:"email_template_subject" validate:"required,max=300"`
	EmailTemplateBody    string `json:"email_template_body" validate:"required"`
	EmailTemplateType    string `json:"email_template_type" validate:"required,oneof=THANK_YOU BIRTHDAY HOLIDAY REPORT OTHER"`
}

func (r *CreateEmailTemplateRequest) ToModel() model.EmailTemplate {
	return model.EmailTemplate{
		EmailTemplateName:    r.EmailTemplateName,
		EmailTemplateSubject: r.EmailTemplateSubject,
		EmailTemplateBody:    r.EmailTemplateBody,
		EmailTemplateType:    r.EmailTemplateType,
	}
}

type UpdateEmailTemplateRequest struct {
	EmailTemplateName    *string `json:"email_template_name" validate:"omitempty,max=150"`
	EmailTemplateSubject *string `json:"email_template_subject" validate:"omitempty,max=300"`
	EmailTemplateBody    *string `json:"email_template_body"`
	EmailTemplateType    *string `json:"email_template_type" validate:"omitempty,oneof=THANK_YOU BIRTHDAY HOLIDAY REPORT OTHER"`
}

func (r *UpdateEmailTemplateRequest) ApplyTo(t *model.EmailTemplate) {
	if r.EmailTemplateName != nil {
		t.EmailTemplateName = *r.EmailTemplateName
	}
	if r.EmailTemplateSubject != nil {
		t.EmailTemplateSubject = *r.EmailTemplateSubject
	}
	if r.EmailTemplateBody != nil {
		t.EmailTemplateBody = *r.EmailTemplateBody
	}
	if r.EmailTemplateType != nil {
		t.EmailTemplateType = *r.EmailTemplateType
	}
}

// SendEmailRequest gửi hàng loạt: dùng mẫu hoặc subject/body tự soạn.
type SendEmailRequest struct {
	TemplateID    *uuid.UUID  `json:"template_id"`
	DonorIDs      []uuid.UUID `json:"donor_ids" validate:"required,min=1"`
	CustomSubject *string     `json:"custom_subject" validate:"omitempty,max=300"`
	CustomBody    *string     `json:"custom_body"`
}

// PreviewEmailRequest render thử cho một nhà tài trợ, không lưu log.
type PreviewEmailRequest struct {
	TemplateID    *uuid.UUID `json:"template_id"`
	DonorID       uuid.UUID  `json:"donor_id" validate:"required"`
	CustomSubject *string    `json:"custom_subject" validate:"omitempty,max=300"`
	CustomBody    *string    `json:"custom_body"`
}
