package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/project"
	"github.com/softhouse-dev/backoffice-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// Create implements ProjectHandler.
func (p *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := p.projectService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", created)
}

// Update implements ProjectHandler.
func (p *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq project.UpdateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := p.projectService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", updated)
}

// GetByID implements ProjectHandler.
func (p *ProjectHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	proj, err := p.projectService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, proj)
}

// List implements ProjectHandler.
func (p *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	projects, err := p.projectService.List(r.Context(), activeOnly)
	if err != nil {
		slog.Error("List projects service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

// Assign implements ProjectHandler.
func (p *ProjectHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var assignReq project.CreateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("Assign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	assignReq.ProjectID = chi.URLParam(r, "id")

	created, err := p.projectService.Assign(r.Context(), assignReq)
	if err != nil {
		slog.Error("Assign service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee assigned successfully", created)
}

// UpdateAssignment implements ProjectHandler.
func (p *ProjectHandlerImpl) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var updateReq project.UpdateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "assignmentID")

	updated, err := p.projectService.UpdateAssignment(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment updated successfully", updated)
}

// ListAssignments implements ProjectHandler.
func (p *ProjectHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	assignments, err := p.projectService.ListAssignments(r.Context(), chi.URLParam(r, "id"), activeOnly)
	if err != nil {
		slog.Error("ListAssignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}
