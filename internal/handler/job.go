package handler

import (
	"net/http"
	"time"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/job"
)

type JobHandler struct {
	service job.Service
}

func NewJobHandler(service job.Service) *JobHandler {
	return &JobHandler{
		service: service,
	}
}

// ApplyRequest is a job application
type ApplyRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	JobID  string `json:"job_id" validate:"required,max=64"`
}

// SubmitWorkRequest answers the outstanding work challenge
type SubmitWorkRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
	Answer *int  `json:"answer" validate:"required"`
}

// AddJobRequest registers a job listing
type AddJobRequest struct {
	JobID            string  `json:"job_id" validate:"required,max=64"`
	Name             string  `json:"name" validate:"required,max=100"`
	Description      string  `json:"description" validate:"max=500"`
	HourlyPay        int64   `json:"hourly_pay" validate:"required,gt=0"`
	AcceptanceChance float64 `json:"acceptance_chance" validate:"gte=0,lte=1"`
}

// UserJobResponse describes a user's employment. Job is null when unemployed.
type UserJobResponse struct {
	UserID     int64           `json:"user_id"`
	Job        *domain.UserJob `json:"job"`
	JobPoints  int64           `json:"job_points"`
	LastWorkAt *time.Time      `json:"last_work_at,omitempty"`
}

// HandleGetJobs returns every listing
func (h *JobHandler) HandleGetJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.GetJobs(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get jobs", err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	respondOK(w, http.StatusOK, "", jobs)
}

// HandleGetUserJob returns a user's current job and job points
func (h *JobHandler) HandleGetUserJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetIDParam(r, w, "userID")
	if !ok {
		return
	}

	userJob, err := h.service.GetUserJob(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get user job", err)
		return
	}
	points, err := h.service.GetJobPoints(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get job points", err)
		return
	}

	resp := UserJobResponse{UserID: userID, Job: userJob, JobPoints: points}
	if userJob != nil {
		resp.LastWorkAt = userJob.LastWorkAt
	}
	respondOK(w, http.StatusOK, "", resp)
}

func (h *JobHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Apply for job"); err != nil {
		return
	}

	result, err := h.service.ApplyForJob(r.Context(), req.UserID, req.JobID)
	if err != nil {
		respondServiceError(w, r, "Apply for job", err)
		return
	}

	message := MsgApplicationDenied
	if result.Accepted {
		message = MsgApplicationHired
	}
	respondOK(w, http.StatusOK, message, result)
}

func (h *JobHandler) HandleResign(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Resign"); err != nil {
		return
	}

	if err := h.service.ResignFromJob(r.Context(), req.UserID); err != nil {
		respondServiceError(w, r, "Resign", err)
		return
	}
	respondOK(w, http.StatusOK, MsgResigned, nil)
}

// HandleStartWork issues a multiplication challenge the user must answer before it expires
func (h *JobHandler) HandleStartWork(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start work"); err != nil {
		return
	}

	challenge, err := h.service.StartWork(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "Start work", err)
		return
	}
	respondOK(w, http.StatusOK, MsgWorkStarted, challenge)
}

func (h *JobHandler) HandleSubmitWork(w http.ResponseWriter, r *http.Request) {
	var req SubmitWorkRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit work"); err != nil {
		return
	}

	result, err := h.service.SubmitWork(r.Context(), req.UserID, *req.Answer)
	if err != nil {
		respondServiceError(w, r, "Submit work", err)
		return
	}

	message := MsgWorkIncorrect
	if result.Correct {
		message = MsgWorkCorrect
	}
	respondOK(w, http.StatusOK, message, result)
}

func (h *JobHandler) HandleAdminAddJob(w http.ResponseWriter, r *http.Request) {
	var req AddJobRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add job"); err != nil {
		return
	}

	j := &domain.Job{
		JobID:            req.JobID,
		Name:             req.Name,
		Description:      req.Description,
		HourlyPay:        req.HourlyPay,
		AcceptanceChance: req.AcceptanceChance,
	}
	if err := h.service.AddJob(r.Context(), j); err != nil {
		respondServiceError(w, r, "Add job", err)
		return
	}
	respondOK(w, http.StatusCreated, MsgCreated, j)
}
