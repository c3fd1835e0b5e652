package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerconnect/gateway/internal/models"
)

func (h HandlerSet) ListJobs(c *gin.Context) {
	jobs, err := h.api.ListJobs(c.Request.Context())
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h HandlerSet) GetJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	job, err := h.api.GetJob(c.Request.Context(), id)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h HandlerSet) CreateJob(c *gin.Context) {
	var job models.JobListing
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.api.CreateJob(c.Request.Context(), job)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h HandlerSet) UpdateJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var job models.JobListing
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.api.UpdateJob(c.Request.Context(), id, job)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeleteJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.api.DeleteJob(c.Request.Context(), id); err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h HandlerSet) Recommendations(c *gin.Context) {
	jobSeekerID, ok := h.resolveJobSeekerID(c)
	if !ok {
		return
	}

	jobs, err := h.api.Recommendations(c.Request.Context(), jobSeekerID)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
