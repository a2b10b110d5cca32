package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Submission holds the inputs collected by the input view. It lives only for one browser session.
type Submission struct {
	JobTitle       string `json:"jobTitle" validate:"max=200"`
	CompanyWebsite string `json:"companyWebsite" validate:"max=2048"`
	JDText         string `json:"jdText" validate:"max=50000"`
	ResumeText     string `json:"resumeText" validate:"max=50000"`
	Stage          Stage  `json:"stage" validate:"required,stage"`
	CreatedAt      int64  `json:"createdAt"` // Unix milliseconds
}

// NewSubmission builds a Submission stamped with the given creation time.
func NewSubmission(jobTitle, companyWebsite, jdText, resumeText string, stage Stage, now time.Time) *Submission {
	return &Submission{
		JobTitle:       jobTitle,
		CompanyWebsite: companyWebsite,
		JDText:         jdText,
		ResumeText:     resumeText,
		Stage:          stage,
		CreatedAt:      now.UnixMilli(),
	}
}

// Created returns CreatedAt as a time.Time.
func (s *Submission) Created() time.Time {
	return time.UnixMilli(s.CreatedAt)
}

// DisplayJobTitle returns the job title as entered, or a placeholder when it is empty.
func (s *Submission) DisplayJobTitle() string {
	if s.JobTitle != "" {
		return s.JobTitle
	}
	return "(not provided)"
}

var submissionValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("stage", func(fl validator.FieldLevel) bool {
		return Stage(fl.Field().String()).Valid()
	})
	return v
}

// Validate validates the Submission using the validator.
func (s *Submission) Validate() error {
	return submissionValidator.Struct(s)
}
