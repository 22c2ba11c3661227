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

var UpdateBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_update_book_duration_ms",
	Help:    "Duration of UpdateBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(UpdateBookDuration)
}

func (i *implementation) UpdateBook(c *gin.Context) {
	start := time.Now()

	defer func() {
		UpdateBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(c.Request.Context())
	traceID := span.SpanContext().TraceID().String()

	idBook, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if log.ErrorUpdateBook(i.logger, err, "got invalid book id", traceID, 0, "", nil) {
		span.RecordError(err)
		c.AbortWithStatusJSON(http.StatusBadRequest,
			newErrorResponse(c, "BAD_REQUEST", "book id must be an integer"))
		return
	}

	var req BookRequest
	if err = c.ShouldBindJSON(&req); log.ErrorUpdateBook(i.logger, err, "got malformed request body", traceID, idBook, req.Title, req.AuthorIDs) {
		span.RecordError(err)
		i.validationFailed(c, err)
		return
	}

	if err = req.Validate(); log.ErrorUpdateBook(i.logger, err, "got invalid request", traceID, idBook, req.Title, req.AuthorIDs) {
		span.RecordError(err)
		i.validationFailed(c, err)
		return
	}

	book, authors, err := i.booksUseCase.UpdateBook(c.Request.Context(), idBook, req.Title, req.Price, req.PublishStatus, req.AuthorIDs)

	if err != nil {
		i.convertErr(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookWithAuthorsResponse(book, authors))
}
