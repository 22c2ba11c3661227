package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/catalog/internal/log"
)

var UpdateAuthorDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_update_author_duration_ms",
	Help:    "Duration of UpdateAuthor in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(UpdateAuthorDuration)
}

func (i *implementation) UpdateAuthor(c *gin.Context) {
	start := time.Now()

	defer func() {
		UpdateAuthorDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(c.Request.Context())
	traceID := span.SpanContext().TraceID().String()

	idAuthor, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if log.ErrorChangeAuthorInfo(i.logger, err, "got invalid author id", traceID, 0, "") {
		span.RecordError(err)
		c.AbortWithStatusJSON(http.StatusBadRequest,
			newErrorResponse(c, "BAD_REQUEST", "author id must be an integer"))
		return
	}

	var req AuthorRequest
	if err = c.ShouldBindJSON(&req); log.ErrorChangeAuthorInfo(i.logger, err, "got malformed request body", traceID, idAuthor, req.Name) {
		span.RecordError(err)
		i.validationFailed(c, err)
		return
	}

	if err = req.Validate(); log.ErrorChangeAuthorInfo(i.logger, err, "got invalid request", traceID, idAuthor, req.Name) {
		span.RecordError(err)
		i.validationFailed(c, err)
		return
	}

	author, err := i.authorUseCase.ChangeAuthorInfo(c.Request.Context(), idAuthor, req.Name, req.parsedBirthDate())

	if err != nil {
		i.convertErr(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuthorResponse(author))
}
