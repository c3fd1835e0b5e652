package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"careerconnect/gateway/internal/config"
	"careerconnect/gateway/internal/guard"
	"careerconnect/gateway/internal/models"
	"careerconnect/gateway/internal/session"
	"careerconnect/gateway/internal/upstream"
)

// HandlerSet wires the session service, the role gate and the upstream
// client into the gateway's route table. Handlers stay thin: build the
// upstream request, forward the typed result or the classified error.
type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	sessions *session.Service
	api      *upstream.Client
}

func NewHandlerSet(log zerolog.Logger, cfg *config.AppConfig, sessions *session.Service, api *upstream.Client) HandlerSet {
	return HandlerSet{
		log:      log,
		cfg:      cfg,
		sessions: sessions,
		api:      api,
	}
}

func (h HandlerSet) Register(router *gin.Engine) {
	router.GET("/healthz", h.Health)
	router.GET("/", h.Home)

	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.POST("/register", h.RegisterAccount)

	router.GET("/jobs", h.ListJobs)
	router.GET("/jobs/:id", h.GetJob)

	employer := router.Group("/employer", guard.Protect(h.sessions, models.RoleEmployer))
	{
		employer.POST("/jobs", h.CreateJob)
		employer.PUT("/jobs/:id", h.UpdateJob)
		employer.DELETE("/jobs/:id", h.DeleteJob)
		employer.GET("/applications", h.EmployerApplications)
		employer.PUT("/applications/:id", h.UpdateApplicationStatus)
		employer.GET("/profile", h.EmployerProfile)
		employer.PUT("/profile", h.SaveEmployerProfile)
	}

	seeker := router.Group("/jobseeker", guard.Protect(h.sessions, models.RoleJobSeeker))
	{
		seeker.GET("/applications", h.MyApplications)
		seeker.POST("/applications", h.Apply)
		seeker.GET("/profile", h.JobSeekerProfile)
		seeker.PUT("/profile", h.SaveJobSeekerProfile)
		seeker.GET("/recommendations", h.Recommendations)
		seeker.GET("/resume", h.CurrentResume)
		seeker.POST("/resume", h.UploadResume)
		seeker.GET("/resume/download", h.DownloadResume)
		seeker.DELETE("/resume/:id", h.DeleteResume)
	}
}

// writeUpstreamError surfaces the upstream failure to the caller with
// its original status; the gateway neither swallows nor retries.
func (h HandlerSet) writeUpstreamError(c *gin.Context, err error) {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		status := ue.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": string(ue.Kind), "message": ue.Message})
		return
	}

	h.log.Error().Err(err).Msg("gateway error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return 0, false
	}
	return id, true
}
