package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerconnect/gateway/internal/upstream"
)

func (h HandlerSet) CurrentResume(c *gin.Context) {
	jobSeekerID, ok := h.resolveJobSeekerID(c)
	if !ok {
		return
	}

	resume, err := h.api.ResumeByUser(c.Request.Context(), jobSeekerID)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

// UploadResume forwards the multipart file untouched; the upstream owns
// storage, conversion and preview.
func (h HandlerSet) UploadResume(c *gin.Context) {
	jobSeekerID, ok := h.resolveJobSeekerID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_required"})
		return
	}
	defer file.Close()

	resume, err := h.api.UploadResume(c.Request.Context(), jobSeekerID, header.Filename, file)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resume)
}

// DownloadResume streams the stored document through. With no explicit
// path the current resume's stored path is used.
func (h HandlerSet) DownloadResume(c *gin.Context) {
	filePath := c.Query("path")
	if filePath == "" {
		jobSeekerID, ok := h.resolveJobSeekerID(c)
		if !ok {
			return
		}
		resume, err := h.api.ResumeByUser(c.Request.Context(), jobSeekerID)
		if err != nil {
			h.writeUpstreamError(c, err)
			return
		}
		filePath = resume.FilePath
	}
	if filePath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "resume_required"})
		return
	}

	resp, err := h.api.DownloadResume(c.Request.Context(), filePath)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	extraHeaders := map[string]string{}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		extraHeaders["Content-Disposition"] = cd
	}

	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, extraHeaders)
}

func (h HandlerSet) DeleteResume(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.api.DeleteResume(c.Request.Context(), id); err != nil {
		if upstream.IsNotFound(err) {
			// Already gone; deleting twice reads the same as once.
			c.Status(http.StatusNoContent)
			return
		}
		h.writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
