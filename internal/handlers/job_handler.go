package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
)

type JobHandler struct {
	jobs JobAPI
}

func NewJobHandler(jobs JobAPI) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	job, err := h.jobs.Create(actor.FromCtx(c), &req)
	if err != nil {
		return failFrom(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Job created", "job": job})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.jobs.Get(actor.FromCtx(c), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"job": job})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	filter := dto.JobFilter{
		Status:          c.Query("status"),
		ContractType:    c.Query("contract_type"),
		ExperienceLevel: c.Query("experience_level"),
		Location:        c.Query("location"),
		Search:          c.Query("search"),
	}
	filter.Page, filter.Limit = pageQuery(c)
	if v := c.Query("is_remote"); v != "" {
		remote := v == "true" || v == "1"
		filter.IsRemote = &remote
	}

	jobs, meta, err := h.jobs.List(actor.FromCtx(c), &filter)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"jobs": jobs, "meta": meta})
}

func (h *JobHandler) MyJobs(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	jobs, meta, err := h.jobs.MyJobs(actor.FromCtx(c), page, limit)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"jobs": jobs, "meta": meta})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	job, err := h.jobs.Update(actor.FromCtx(c), c.Params("id"), &req)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job updated", "job": job})
}

func (h *JobHandler) Publish(c *fiber.Ctx) error {
	job, err := h.jobs.Publish(actor.FromCtx(c), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job published", "job": job})
}

func (h *JobHandler) Close(c *fiber.Ctx) error {
	job, err := h.jobs.Close(actor.FromCtx(c), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job closed", "job": job})
}

func (h *JobHandler) SaveJob(c *fiber.Ctx) error {
	var req dto.SaveJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	saved, err := h.jobs.SaveJob(actor.FromCtx(c), req.JobOfferID)
	if err != nil {
		return failFrom(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Job saved", "saved_job": saved})
}

func (h *JobHandler) UnsaveJob(c *fiber.Ctx) error {
	if err := h.jobs.UnsaveJob(actor.FromCtx(c), c.Params("id")); err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job removed from saved jobs"})
}

func (h *JobHandler) ListSavedJobs(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	saved, meta, err := h.jobs.ListSavedJobs(actor.FromCtx(c), page, limit)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"saved_jobs": saved, "meta": meta})
}
