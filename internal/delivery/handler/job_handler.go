package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard-service/internal/application/command"
	"jobboard-service/internal/application/interfaces"
	"jobboard-service/internal/application/query"
	"jobboard-service/internal/domain/policy"
)

type JobHandler struct {
	jobs interfaces.JobService
}

func NewJobHandler(jobs interfaces.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) List(c echo.Context) error {
	q := &query.SearchJobsQuery{
		Keyword:          c.QueryParam("keyword"),
		Location:         c.QueryParam("location"),
		Category:         c.QueryParam("category"),
		JobTypes:         queryList(c, "job_type"),
		ExperienceLevels: queryList(c, "experience"),
		Skills:           queryList(c, "skills"),
		Page:             queryInt(c, "page"),
		PerPage:          queryInt(c, "per_page"),
	}

	res, err := h.jobs.SearchJobs(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *JobHandler) Featured(c echo.Context) error {
	res, err := h.jobs.FeaturedJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *JobHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id", "Job not found")
	if err != nil {
		return err
	}

	res, err := h.jobs.GetJob(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *JobHandler) Create(c echo.Context) error {
	caller := CallerFrom(c)
	if err := policy.CanPostJobs(caller).Err(); err != nil {
		return err
	}

	var cmd command.CreateJobCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}
	cmd.Caller = caller

	res, err := h.jobs.CreateJob(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *JobHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id", "Job not found")
	if err != nil {
		return err
	}

	var cmd command.UpdateJobCommand
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	cmd.Caller = CallerFrom(c)
	cmd.JobID = id

	res, err := h.jobs.UpdateJob(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *JobHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id", "Job not found")
	if err != nil {
		return err
	}

	res, err := h.jobs.DeleteJob(c.Request().Context(), &command.DeleteJobCommand{Caller: CallerFrom(c), JobID: id})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *JobHandler) Categories(c echo.Context) error {
	res, err := h.jobs.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *JobHandler) Skills(c echo.Context) error {
	res, err := h.jobs.Skills(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
