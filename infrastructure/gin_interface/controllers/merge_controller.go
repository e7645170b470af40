package controllers

import (
	"net/http"

	"ads-video-pipeline/application/ports/inbound"
	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type MergeController interface {
	MergePair(c *gin.Context)
	MergeSample(c *gin.Context)
	TrimAll(c *gin.Context)
	MergeBody(c *gin.Context)
	MergeHookVariants(c *gin.Context)
	Assemble(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type mergeController struct {
	logger            outbound.LoggerPort
	mergeOrchestrator inbound.MergeOrchestratorPort
	finalAssembler    inbound.FinalAssemblerPort
}

func NewMergeController(
	logger outbound.LoggerPort,
	mergeOrchestrator inbound.MergeOrchestratorPort,
	finalAssembler inbound.FinalAssemblerPort,
) MergeController {
	return &mergeController{
		logger:            logger,
		mergeOrchestrator: mergeOrchestrator,
		finalAssembler:    finalAssembler,
	}
}

func (m *mergeController) MergePair(c *gin.Context) {
	var req dto.MergePairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if abortErr := c.AbortWithError(http.StatusBadRequest, err); abortErr != nil {
			m.logger.Error(abortErr, "failed to abort with error")
		}
		return
	}

	url, err := m.mergeOrchestrator.MergePair(c.Request.Context(), c.Param("key"), req.First, req.Second)
	if err != nil {
		abortWithError(c, m.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (m *mergeController) MergeSample(c *gin.Context) {
	url, err := m.mergeOrchestrator.MergeSample(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithError(c, m.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (m *mergeController) TrimAll(c *gin.Context) {
	report, err := m.mergeOrchestrator.TrimAll(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithError(c, m.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (m *mergeController) MergeBody(c *gin.Context) {
	url, err := m.mergeOrchestrator.MergeBody(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithError(c, m.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (m *mergeController) MergeHookVariants(c *gin.Context) {
	merged, err := m.mergeOrchestrator.MergeHookVariants(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithError(c, m.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"merged": merged})
}

func (m *mergeController) Assemble(c *gin.Context) {
	var req dto.AssembleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if abortErr := c.AbortWithError(http.StatusBadRequest, err); abortErr != nil {
			m.logger.Error(abortErr, "failed to abort with error")
		}
		return
	}

	finals, err := m.finalAssembler.Assemble(c.Request.Context(), c.Param("key"), req.HookNames, req.BodyName)
	if err != nil {
		abortWithError(c, m.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"finals": finals})
}

func (m *mergeController) RegisterRoutes(g *gin.Engine) {
	g.POST("/sessions/:key/merge/pair", m.MergePair)
	g.POST("/sessions/:key/merge/sample", m.MergeSample)
	g.POST("/sessions/:key/merge/body", m.MergeBody)
	g.POST("/sessions/:key/merge/hooks", m.MergeHookVariants)
	g.POST("/sessions/:key/trim-all", m.TrimAll)
	g.POST("/sessions/:key/assemble", m.Assemble)
}
