package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/channel_utils"
	"ads-video-pipeline/domain"
	"ads-video-pipeline/middleware"
	"github.com/gin-gonic/gin"
)

const heartbeatInterval = 15 * time.Second

type EventsController interface {
	Stream(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type eventsController struct {
	logger      outbound.LoggerPort
	eventStream outbound.EventStreamPort
	dispatcher  outbound.TaskDispatcher
}

func NewEventsController(
	logger outbound.LoggerPort,
	eventStream outbound.EventStreamPort,
	dispatcher outbound.TaskDispatcher,
) EventsController {
	return &eventsController{
		logger:      logger,
		eventStream: eventStream,
		dispatcher:  dispatcher,
	}
}

// Stream fans the requested sessions' events into one SSE stream. Repeating
// the session query parameter subscribes to several sessions at once.
func (e *eventsController) Stream(c *gin.Context) {
	sessionKeys := c.QueryArray("session")
	if len(sessionKeys) == 0 {
		if abortErr := c.AbortWithError(http.StatusBadRequest, errMissingSessionParam); abortErr != nil {
			e.logger.Error(abortErr, "failed to abort with error")
		}
		return
	}

	channels := make([]<-chan domain.PipelineEvent, 0, len(sessionKeys))
	cancels := make([]func(), 0, len(sessionKeys))
	for _, key := range sessionKeys {
		ch, cancel := e.eventStream.Subscribe(key)
		channels = append(channels, ch)
		cancels = append(cancels, cancel)
	}

	merged, err := channel_utils.MergeChannels(e.dispatcher, channels...)
	if err != nil {
		for _, cancel := range cancels {
			cancel()
		}
		abortWithError(c, e.logger, err)
		return
	}

	// Cancelling closes the source channels, which lets the merge workers
	// finish; the background drain keeps them from blocking on a reader
	// that is gone.
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
		go func() {
			for range merged {
			}
		}()
	}()

	clientGone := c.Request.Context().Done()
	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case event, ok := <-merged:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				e.logger.Error(err, "failed to encode pipeline event")
				continue
			}
			if _, err := c.Writer.WriteString("data: " + string(payload) + "\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		case <-heartbeat.C:
			if _, err := c.Writer.WriteString(": keep-alive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		case <-clientGone:
			return
		}
	}
}

func (e *eventsController) RegisterRoutes(g *gin.Engine) {
	g.GET("/events", middleware.SSEMiddleware(), e.Stream)
}
