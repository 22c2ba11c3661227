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

var GetAuthorBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_get_author_books_duration_ms",
	Help:    "Duration of GetAuthorBooks in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetAuthorBooksDuration)
}

func (i *implementation) GetAuthorBooks(c *gin.Context) {
	start := time.Now()

	defer func() {
		GetAuthorBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(c.Request.Context())
	traceID := span.SpanContext().TraceID().String()

	idAuthor, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if log.ErrorGetAuthorBooks(i.logger, err, "got invalid author id", traceID, 0) {
		span.RecordError(err)
		c.AbortWithStatusJSON(http.StatusBadRequest,
			newErrorResponse(c, "BAD_REQUEST", "author id must be an integer"))
		return
	}

	author, books, err := i.authorUseCase.GetAuthorBooks(c.Request.Context(), idAuthor)

	if err != nil {
		i.convertErr(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuthorBooksResponse(author, books))
}
