package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/catalog/internal/log"
)

var CreateAuthorDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_create_author_duration_ms",
	Help:    "Duration of CreateAuthor in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(CreateAuthorDuration)
}

func (i *implementation) CreateAuthor(c *gin.Context) {
	start := time.Now()

	defer func() {
		CreateAuthorDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(c.Request.Context())
	traceID := span.SpanContext().TraceID().String()

	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); log.ErrorRegisterAuthor(i.logger, err, "got malformed request body", traceID, req.Name) {
		span.RecordError(err)
		i.validationFailed(c, err)
		return
	}

	if err := req.Validate(); log.ErrorRegisterAuthor(i.logger, err, "got invalid request", traceID, req.Name) {
		span.RecordError(err)
		i.validationFailed(c, err)
		return
	}

	span.SetAttributes(attribute.String("author_name", req.Name))

	author, err := i.authorUseCase.RegisterAuthor(c.Request.Context(), req.Name, req.parsedBirthDate())

	if err != nil {
		i.convertErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, newAuthorResponse(author))
}
