package command

import (
	"io"

	"jobboard-service/internal/domain/entities"
)

// ResumeUpload is an uploaded resume as received by the transport.
type ResumeUpload struct {
	Filename string
	Content  io.Reader
}

type ApplyCommand struct {
	Caller      entities.Caller
	JobID       uint
	Resume      *ResumeUpload
	CoverLetter *string
}

type ApplyCommandResult struct {
	Message       string `json:"message"`
	ApplicationID uint   `json:"application_id"`
}

type SetApplicationStatusCommand struct {
	Caller        entities.Caller `json:"-"`
	ApplicationID uint            `json:"-"`
	Status        string          `json:"status" validate:"required"`
}
