package controllers

import (
	"net/http"

	"ads-video-pipeline/application/ports/inbound"
	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
	"ads-video-pipeline/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type ReviewController interface {
	Accept(c *gin.Context)
	MarkRegenerate(c *gin.Context)
	MarkRecut(c *gin.Context)
	AcceptTrim(c *gin.Context)
	UndoReview(c *gin.Context)
	Duplicate(c *gin.Context)
	Delete(c *gin.Context)
	UndoDelete(c *gin.Context)
	RegenerateOne(c *gin.Context)
	RegenerateAll(c *gin.Context)
	DeriveCutPoints(c *gin.Context)
	UpdateMarkers(c *gin.Context)
	SetMarkerLock(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type reviewController struct {
	logger          outbound.LoggerPort
	reviewService   inbound.ReviewServicePort
	cutPointService inbound.CutPointServicePort
}

func NewReviewController(
	logger outbound.LoggerPort,
	reviewService inbound.ReviewServicePort,
	cutPointService inbound.CutPointServicePort,
) ReviewController {
	return &reviewController{
		logger:          logger,
		reviewService:   reviewService,
		cutPointService: cutPointService,
	}
}

func (r *reviewController) Accept(c *gin.Context) {
	if err := r.reviewService.Accept(c.Request.Context(), c.Param("key"), c.Param("name")); err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *reviewController) MarkRegenerate(c *gin.Context) {
	if err := r.reviewService.MarkRegenerate(c.Request.Context(), c.Param("key"), c.Param("name")); err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *reviewController) MarkRecut(c *gin.Context) {
	if err := r.reviewService.MarkRecut(c.Request.Context(), c.Param("key"), c.Param("name")); err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *reviewController) AcceptTrim(c *gin.Context) {
	if err := r.reviewService.AcceptTrim(c.Request.Context(), c.Param("key"), c.Param("name")); err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *reviewController) UndoReview(c *gin.Context) {
	if err := r.reviewService.UndoLastReview(c.Request.Context(), c.Param("key")); err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *reviewController) Duplicate(c *gin.Context) {
	result, err := r.reviewService.Duplicate(c.Request.Context(), c.Param("key"), c.Param("name"))
	if err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (r *reviewController) Delete(c *gin.Context) {
	if err := r.reviewService.Delete(c.Request.Context(), c.Param("key"), c.Param("name")); err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *reviewController) UndoDelete(c *gin.Context) {
	if err := r.reviewService.UndoDelete(c.Request.Context(), c.Param("key")); err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *reviewController) RegenerateOne(c *gin.Context) {
	var req dto.RegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if abortErr := c.AbortWithError(http.StatusBadRequest, err); abortErr != nil {
			r.logger.Error(abortErr, "failed to abort with error")
		}
		return
	}

	err := r.reviewService.RegenerateOne(c.Request.Context(), c.Param("key"), c.Param("name"), inbound.RegenerateOverrides{
		Text:       req.Text,
		PromptType: domain.PromptType(req.PromptType),
	})
	if err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *reviewController) RegenerateAll(c *gin.Context) {
	count, err := r.reviewService.RegenerateAll(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resubmitted": count})
}

func (r *reviewController) DeriveCutPoints(c *gin.Context) {
	cutPoints, err := r.cutPointService.Derive(c.Request.Context(), c.Param("key"), c.Param("name"))
	if err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.JSON(http.StatusOK, cutPoints)
}

func (r *reviewController) UpdateMarkers(c *gin.Context) {
	var req dto.UpdateMarkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if abortErr := c.AbortWithError(http.StatusBadRequest, err); abortErr != nil {
			r.logger.Error(abortErr, "failed to abort with error")
		}
		return
	}

	err := r.cutPointService.UpdateMarkers(c.Request.Context(), c.Param("key"), c.Param("name"), req.StartMs, req.EndMs)
	if err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *reviewController) SetMarkerLock(c *gin.Context) {
	var req dto.MarkerLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if abortErr := c.AbortWithError(http.StatusBadRequest, err); abortErr != nil {
			r.logger.Error(abortErr, "failed to abort with error")
		}
		return
	}

	err := r.cutPointService.SetMarkerLock(c.Request.Context(), c.Param("key"), c.Param("name"), inbound.Marker(req.Marker), req.Locked)
	if err != nil {
		abortWithError(c, r.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *reviewController) RegisterRoutes(g *gin.Engine) {
	g.POST("/sessions/:key/videos/:name/accept", r.Accept)
	g.POST("/sessions/:key/videos/:name/regenerate-mark", r.MarkRegenerate)
	g.POST("/sessions/:key/videos/:name/recut-mark", r.MarkRecut)
	g.POST("/sessions/:key/videos/:name/trim-accept", r.AcceptTrim)
	g.POST("/sessions/:key/videos/:name/duplicate", r.Duplicate)
	g.POST("/sessions/:key/videos/:name/regenerate", r.RegenerateOne)
	g.DELETE("/sessions/:key/videos/:name", r.Delete)
	g.POST("/sessions/:key/review/undo", r.UndoReview)
	g.POST("/sessions/:key/deleted/undo", r.UndoDelete)
	g.POST("/sessions/:key/regenerate-all", r.RegenerateAll)
	g.POST("/sessions/:key/videos/:name/cut-points/derive", r.DeriveCutPoints)
	g.PUT("/sessions/:key/videos/:name/cut-points", r.UpdateMarkers)
	g.PUT("/sessions/:key/videos/:name/cut-points/lock", r.SetMarkerLock)
}
