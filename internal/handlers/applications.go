package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careerconnect/gateway/internal/models"
	"careerconnect/gateway/internal/upstream"
)

func (h HandlerSet) MyApplications(c *gin.Context) {
	uid, ok := h.currentUserID(c)
	if !ok {
		return
	}

	apps, err := h.api.ApplicationsByJobSeeker(c.Request.Context(), uid)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

type applyRequest struct {
	JobListingID int64 `json:"jobListingId" binding:"required"`
}

// Apply submits an application with the current resume attached. A
// missing resume is reported as a conflict the seeker can fix, not an
// opaque upstream failure.
func (h HandlerSet) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobSeekerID, ok := h.resolveJobSeekerID(c)
	if !ok {
		return
	}

	resume, err := h.api.ResumeByUser(c.Request.Context(), jobSeekerID)
	if err != nil {
		if upstream.IsNotFound(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "resume_required", "message": "upload your resume before applying"})
			return
		}
		h.writeUpstreamError(c, err)
		return
	}
	if resume.FilePath == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "resume_required", "message": "upload your resume before applying"})
		return
	}

	created, err := h.api.Apply(c.Request.Context(), models.Application{
		JobSeekerID:     jobSeekerID,
		JobListingID:    req.JobListingID,
		Status:          models.ApplicationStatusPending,
		ApplicationDate: time.Now().Format("2006-01-02"),
		FilePath:        resume.FilePath,
	})
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h HandlerSet) EmployerApplications(c *gin.Context) {
	employerID, ok := h.resolveEmployerID(c)
	if !ok {
		return
	}

	apps, err := h.api.ApplicationsByEmployer(c.Request.Context(), employerID)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h HandlerSet) UpdateApplicationStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.api.UpdateApplicationStatus(c.Request.Context(), id, req.Status); err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
