package expiry

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodtrackerapp/expiry-notifier/internal/logger"
)

// Handler exposes the workflow as HTTP trigger endpoints for the scheduler
// platform. A completed invocation always answers 200: an aborted run is
// reported inside the payload and the logs, never as an HTTP failure,
// matching the behavior schedulers already depend on.
type Handler struct {
	workflow *Workflow
	logger   *logger.Logger
}

func NewHandler(workflow *Workflow, logger *logger.Logger) *Handler {
	return &Handler{
		workflow: workflow,
		logger:   logger,
	}
}

// TriggerRun handles POST /v1/runs and responds with the run summary.
func (h *Handler) TriggerRun(c *gin.Context) {
	ctx := logger.WithRunID(c.Request.Context(), logger.GenerateRunID())

	summary, err := h.workflow.Run(ctx)
	if err != nil {
		h.logger.WithContext(ctx).WithComponent("trigger").Error("run aborted",
			slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, summary)
}

// TriggerNaiveRun handles POST /v1/runs/naive. Its response is informational
// rather than a full summary, like the starter function it replaces.
func (h *Handler) TriggerNaiveRun(c *gin.Context) {
	ctx := logger.WithRunID(c.Request.Context(), logger.GenerateRunID())

	summary, err := h.workflow.RunNaive(ctx)
	if err != nil {
		h.logger.WithContext(ctx).WithComponent("trigger").Error("naive run aborted",
			slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, gin.H{
		"service": "expiry-notifier",
		"status":  "completed",
		"docs":    "https://github.com/foodtrackerapp/expiry-notifier",
		"summary": summary,
	})
}
