package handler

import (
	"net/http"
	"time"

	"github.com/erin-james/ai-query-interface/internal/engine"
	"github.com/erin-james/ai-query-interface/internal/parser"
	"github.com/erin-james/ai-query-interface/internal/store"
	"github.com/erin-james/ai-query-interface/pkg/logger"
	"github.com/erin-james/ai-query-interface/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// QueryHandler answers natural-language questions against the loaded
// datasets. The store is read-only, so one handler serves all requests
// concurrently.
type QueryHandler struct {
	store       *store.Store
	pacingDelay time.Duration
}

// NewQueryHandler creates a handler bound to a loaded store. pacingDelay
// is an optional artificial response delay; zero disables it.
func NewQueryHandler(s *store.Store, pacingDelay time.Duration) *QueryHandler {
	return &QueryHandler{store: s, pacingDelay: pacingDelay}
}

// Query handles GET /query?question=...
func (h *QueryHandler) Query(c echo.Context) error {
	log := logger.FromContext(c)

	question := c.QueryParam("question")
	if question == "" {
		log.Warn("Missing question parameter")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Query parameter 'question' is required",
		})
	}

	defer prometheus.TrackQuestion()(time.Now())

	parsed := parser.Parse(question)
	log.Info("Question classified",
		zap.String("question", question),
		zap.String("intent", string(parsed.Intent)))
	prometheus.RecordQuestion(string(parsed.Intent))

	if h.pacingDelay > 0 {
		time.Sleep(h.pacingDelay)
	}

	answer := engine.Answer(parsed, h.store)
	if answer == engine.UnknownAnswer {
		prometheus.RecordUnanswered()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"answer": answer,
	})
}
