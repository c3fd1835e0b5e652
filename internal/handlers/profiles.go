package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerconnect/gateway/internal/models"
	"careerconnect/gateway/internal/upstream"
)

// currentUserID prefers the userId field of the snapshot and falls back
// to id, mirroring how the upstream is loose about the two.
func (h HandlerSet) currentUserID(c *gin.Context) (int64, bool) {
	user := h.sessions.Current()
	if user == nil {
		// The role gate keeps unauthenticated traffic out; reaching
		// this means the session was cleared mid-request.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session_expired"})
		return 0, false
	}
	if user.UserID != 0 {
		return user.UserID, true
	}
	return user.ID, true
}

// resolveJobSeekerID answers from the cached hint when present and
// falls back to the upstream profile lookup otherwise. The hint is
// never treated as proof: a missing hint just means asking upstream.
func (h HandlerSet) resolveJobSeekerID(c *gin.Context) (int64, bool) {
	if user := h.sessions.Current(); user != nil && user.JobSeekerID != nil {
		return *user.JobSeekerID, true
	}

	uid, ok := h.currentUserID(c)
	if !ok {
		return 0, false
	}

	profile, err := h.api.JobSeekerByUser(c.Request.Context(), uid)
	if err != nil {
		if upstream.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile_required", "message": "complete your job seeker profile first"})
			return 0, false
		}
		h.writeUpstreamError(c, err)
		return 0, false
	}

	id := profile.JobSeekerID
	if id == 0 {
		id = profile.ID
	}
	if err := h.sessions.RememberProfileIDs(c.Request.Context(), &id, nil); err != nil {
		h.log.Warn().Err(err).Msg("could not cache job seeker id")
	}
	return id, true
}

func (h HandlerSet) resolveEmployerID(c *gin.Context) (int64, bool) {
	if user := h.sessions.Current(); user != nil && user.EmployerID != nil {
		return *user.EmployerID, true
	}

	uid, ok := h.currentUserID(c)
	if !ok {
		return 0, false
	}

	profile, err := h.api.EmployerByUser(c.Request.Context(), uid)
	if err != nil {
		if upstream.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile_required", "message": "complete your employer profile first"})
			return 0, false
		}
		h.writeUpstreamError(c, err)
		return 0, false
	}

	id := profile.EmployerID
	if id == 0 {
		id = profile.ID
	}
	if err := h.sessions.RememberProfileIDs(c.Request.Context(), nil, &id); err != nil {
		h.log.Warn().Err(err).Msg("could not cache employer id")
	}
	return id, true
}

func (h HandlerSet) JobSeekerProfile(c *gin.Context) {
	uid, ok := h.currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.api.JobSeekerByUser(c.Request.Context(), uid)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}

	id := profile.JobSeekerID
	if id == 0 {
		id = profile.ID
	}
	if id != 0 {
		if err := h.sessions.RememberProfileIDs(c.Request.Context(), &id, nil); err != nil {
			h.log.Warn().Err(err).Msg("could not cache job seeker id")
		}
	}
	c.JSON(http.StatusOK, profile)
}

// SaveJobSeekerProfile creates the profile on first save and updates it
// afterwards, keyed by the cached hint when one exists.
func (h HandlerSet) SaveJobSeekerProfile(c *gin.Context) {
	uid, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var profile models.JobSeekerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile.UserID = uid

	var (
		saved *models.JobSeekerProfile
		err   error
	)
	user := h.sessions.Current()
	if user != nil && user.JobSeekerID != nil {
		saved, err = h.api.UpdateJobSeeker(c.Request.Context(), *user.JobSeekerID, profile)
	} else {
		saved, err = h.api.CreateJobSeeker(c.Request.Context(), profile)
	}
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}

	id := saved.JobSeekerID
	if id == 0 {
		id = saved.ID
	}
	if id != 0 {
		if err := h.sessions.RememberProfileIDs(c.Request.Context(), &id, nil); err != nil {
			h.log.Warn().Err(err).Msg("could not cache job seeker id")
		}
	}
	c.JSON(http.StatusOK, saved)
}

func (h HandlerSet) EmployerProfile(c *gin.Context) {
	uid, ok := h.currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.api.EmployerByUser(c.Request.Context(), uid)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}

	id := profile.EmployerID
	if id == 0 {
		id = profile.ID
	}
	if id != 0 {
		if err := h.sessions.RememberProfileIDs(c.Request.Context(), nil, &id); err != nil {
			h.log.Warn().Err(err).Msg("could not cache employer id")
		}
	}
	c.JSON(http.StatusOK, profile)
}

func (h HandlerSet) SaveEmployerProfile(c *gin.Context) {
	uid, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var profile models.EmployerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile.UserID = uid

	var (
		saved *models.EmployerProfile
		err   error
	)
	user := h.sessions.Current()
	if user != nil && user.EmployerID != nil {
		saved, err = h.api.UpdateEmployer(c.Request.Context(), *user.EmployerID, profile)
	} else {
		saved, err = h.api.CreateEmployer(c.Request.Context(), profile)
	}
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}

	id := saved.EmployerID
	if id == 0 {
		id = saved.ID
	}
	if id != 0 {
		if err := h.sessions.RememberProfileIDs(c.Request.Context(), nil, &id); err != nil {
			h.log.Warn().Err(err).Msg("could not cache employer id")
		}
	}
	c.JSON(http.StatusOK, saved)
}
