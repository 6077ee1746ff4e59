package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"jobboard-service/internal/application/command"
	"jobboard-service/internal/application/interfaces"
	"jobboard-service/internal/application/query"
	"jobboard-service/internal/domain"
)

// sniffLen is how much of a resume is read to detect its content type.
const sniffLen = 3072

type ApplicationHandler struct {
	applications   interfaces.ApplicationService
	maxUploadBytes int64
}

func NewApplicationHandler(applications interfaces.ApplicationService, maxUploadBytes int64) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, maxUploadBytes: maxUploadBytes}
}

func (h *ApplicationHandler) Apply(c echo.Context) error {
	jobID, err := pathID(c, "id", "Job not found")
	if err != nil {
		return err
	}

	cmd := &command.ApplyCommand{Caller: CallerFrom(c), JobID: jobID}

	fh, err := c.FormFile("resume")
	switch {
	case err == nil:
		if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Resume exceeds the maximum upload size")
		}
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("open uploaded resume: %w", err)
		}
		defer f.Close()
		cmd.Resume = &command.ResumeUpload{Filename: fh.Filename, Content: f}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return domain.Wrap(domain.KindValidation, "Malformed upload", err)
	}

	if letter := c.FormValue("cover_letter"); strings.TrimSpace(letter) != "" {
		cmd.CoverLetter = &letter
	}

	res, err := h.applications.Apply(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *ApplicationHandler) List(c echo.Context) error {
	q := &query.ListApplicationsQuery{
		Caller:  CallerFrom(c),
		Status:  c.QueryParam("status"),
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "per_page"),
	}

	res, err := h.applications.ListApplications(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id", "Application not found")
	if err != nil {
		return err
	}

	res, err := h.applications.GetApplication(c.Request().Context(), CallerFrom(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c, "id", "Application not found")
	if err != nil {
		return err
	}

	var cmd command.SetApplicationStatusCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}
	cmd.Caller = CallerFrom(c)
	cmd.ApplicationID = id

	res, err := h.applications.SetStatus(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Resume streams a stored resume with a sniffed content type.
func (h *ApplicationHandler) Resume(c echo.Context) error {
	filename := c.Param("filename")

	rc, err := h.applications.OpenResume(c.Request().Context(), CallerFrom(c), filename)
	if err != nil {
		return err
	}
	defer rc.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(rc, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("read resume: %w", err)
	}
	head = head[:n]

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Stream(http.StatusOK, mimetype.Detect(head).String(), io.MultiReader(bytes.NewReader(head), rc))
}
