package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/catalog/internal/log"
)

var CreateBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_create_book_duration_ms",
	Help:    "Duration of CreateBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(CreateBookDuration)
}

func (i *implementation) CreateBook(c *gin.Context) {
	start := time.Now()

	defer func() {
		CreateBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(c.Request.Context())
	traceID := span.SpanContext().TraceID().String()

	var req BookRequest
	if err := c.ShouldBindJSON(&req); log.ErrorAddBook(i.logger, err, "got malformed request body", traceID, req.Title, req.AuthorIDs) {
		span.RecordError(err)
		i.validationFailed(c, err)
		return
	}

	if err := req.Validate(); log.ErrorAddBook(i.logger, err, "got invalid request", traceID, req.Title, req.AuthorIDs) {
		span.RecordError(err)
		i.validationFailed(c, err)
		return
	}

	book, authors, err := i.booksUseCase.AddBook(c.Request.Context(), req.Title, req.Price, req.PublishStatus, req.AuthorIDs)

	if err != nil {
		i.convertErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBookWithAuthorsResponse(book, authors))
}
