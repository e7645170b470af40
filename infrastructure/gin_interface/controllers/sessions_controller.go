package controllers

import (
	"context"
	"net/http"

	"ads-video-pipeline/application/ports/inbound"
	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
	"ads-video-pipeline/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type SessionsController interface {
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	BuildCombinations(c *gin.Context)
	Generate(c *gin.Context)
	StartPoller(c *gin.Context)
	StopPoller(c *gin.Context)
	PollerStatus(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type sessionsController struct {
	logger         outbound.LoggerPort
	sessionManager inbound.SessionManagerPort
	mappingEngine  inbound.MappingEnginePort
	batchSubmitter inbound.BatchSubmitterPort
	statusPoller   inbound.StatusPollerPort
}

func NewSessionsController(
	logger outbound.LoggerPort,
	sessionManager inbound.SessionManagerPort,
	mappingEngine inbound.MappingEnginePort,
	batchSubmitter inbound.BatchSubmitterPort,
	statusPoller inbound.StatusPollerPort,
) SessionsController {
	return &sessionsController{
		logger:         logger,
		sessionManager: sessionManager,
		mappingEngine:  mappingEngine,
		batchSubmitter: batchSubmitter,
		statusPoller:   statusPoller,
	}
}

func (s *sessionsController) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if abortErr := c.AbortWithError(http.StatusBadRequest, err); abortErr != nil {
			s.logger.Error(abortErr, "failed to abort with error")
		}
		return
	}

	customPrompts := make(map[domain.PromptType]string, len(req.CustomPrompts))
	for promptType, template := range req.CustomPrompts {
		customPrompts[domain.PromptType(promptType)] = template
	}

	session, err := s.sessionManager.Create(c.Request.Context(), inbound.CreateSessionParams{
		UserID:        req.UserID,
		ContextID:     req.ContextID,
		CharacterID:   req.CharacterID,
		CustomPrompts: customPrompts,
	})
	if err != nil {
		abortWithError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (s *sessionsController) GetSession(c *gin.Context) {
	session, err := s.sessionManager.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithError(c, s.logger, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *sessionsController) BuildCombinations(c *gin.Context) {
	var req dto.BuildCombinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if abortErr := c.AbortWithError(http.StatusBadRequest, err); abortErr != nil {
			s.logger.Error(abortErr, "failed to abort with error")
		}
		return
	}

	lines := make([]inbound.TextLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		var highlight *domain.HighlightRange
		if line.Highlight != nil {
			highlight = &domain.HighlightRange{Start: line.Highlight.Start, End: line.Highlight.End}
		}
		lines = append(lines, inbound.TextLine{
			ID:             line.ID,
			Text:           line.Text,
			VideoName:      line.VideoName,
			Section:        domain.Section(line.Section),
			CategoryNumber: line.CategoryNumber,
			PromptType:     domain.PromptType(line.PromptType),
			Highlight:      highlight,
		})
	}

	combinations, err := s.mappingEngine.AttachCombinations(c.Request.Context(), c.Param("key"), inbound.BuildCombinationsParams{
		Lines:  lines,
		Images: req.Images,
	})
	if err != nil {
		abortWithError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"combinations": combinations})
}

func (s *sessionsController) Generate(c *gin.Context) {
	newCtx, cancel := context.WithCancel(c)
	defer cancel()

	sessionKey := c.Param("key")
	session, err := s.sessionManager.Get(newCtx, sessionKey)
	if err != nil {
		abortWithError(c, s.logger, err)
		return
	}

	if err := s.batchSubmitter.SubmitAll(newCtx, session); err != nil {
		abortWithError(c, s.logger, err)
		return
	}
	if err := s.statusPoller.Start(sessionKey); err != nil {
		abortWithError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submitted": len(session.Results)})
}

func (s *sessionsController) StartPoller(c *gin.Context) {
	if err := s.statusPoller.Start(c.Param("key")); err != nil {
		abortWithError(c, s.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *sessionsController) StopPoller(c *gin.Context) {
	s.statusPoller.Stop(c.Param("key"))
	c.Status(http.StatusNoContent)
}

func (s *sessionsController) PollerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"running": s.statusPoller.Running(c.Param("key"))})
}

func (s *sessionsController) RegisterRoutes(g *gin.Engine) {
	g.POST("/sessions", s.CreateSession)
	g.GET("/sessions/:key", s.GetSession)
	g.POST("/sessions/:key/combinations", s.BuildCombinations)
	g.POST("/sessions/:key/generate", s.Generate)
	g.POST("/sessions/:key/poller/start", s.StartPoller)
	g.POST("/sessions/:key/poller/stop", s.StopPoller)
	g.GET("/sessions/:key/poller", s.PollerStatus)
}
