package handler

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/LuisR-ecu/sas-solution-factory-demo/docs"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/dto"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/model"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/repository"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/service"
)

var exportColumns = []string{"customer_id", "contract", "internet", "monthly_charges", "support_tickets", "probability"}

type Handler struct {
	churnService service.ChurnServicer
	router       *gin.Engine
	log          *zap.Logger
}

// NewHandler creates the HTTP handler. corsOrigin admits the frontend dev
// server, mirroring the original deployment.
func NewHandler(churnService service.ChurnServicer, corsOrigin string, log *zap.Logger) *Handler {
	h := &Handler{
		churnService: churnService,
		router:       gin.Default(),
		log:          log,
	}

	h.router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/predict", h.predict)
	h.router.GET("/predict/:id", h.predictByID)
	h.router.GET("/data/summary", h.dataSummary)
	h.router.GET("/data/customers", h.dataCustomers)
	h.router.GET("/data/segments/:field", h.segmentStats)
	h.router.GET("/export/high-risk", h.exportHighRisk)
	h.router.POST("/score/batch", h.scoreBatch)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// predict handles POST /predict
// @Summary Score an ad-hoc customer record
// @Description Score a customer record for churn risk and explain the top contributing features
// @Tags predictions
// @Accept json
// @Produce json
// @Param record body dto.PredictRequest true "Customer record"
// @Success 200 {object} dto.PredictResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /predict [post]
func (h *Handler) predict(c *gin.Context) {
	var req dto.PredictRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid predict request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response := h.churnService.Predict(&req)

	h.log.Info("Record scored",
		zap.Float64("churn_probability", response.ChurnProbability),
		zap.String("risk", response.Risk))

	c.JSON(http.StatusOK, response)
}

// predictByID handles GET /predict/:id
// @Summary Score a customer from the dataset
// @Description Look a customer up by ID, score it, and report its top risk factors
// @Tags predictions
// @Produce json
// @Param id path string true "Customer ID" example(C001)
// @Success 200 {object} dto.CustomerPredictionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /predict/{id} [get]
func (h *Handler) predictByID(c *gin.Context) {
	customerID := c.Param("id")

	response, err := h.churnService.PredictByID(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "not_found",
				Message: "no customer with id " + customerID,
			})
			return
		}
		h.log.Error("Failed to score customer",
			zap.String("customer_id", customerID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// dataSummary handles GET /data/summary
// @Summary Dataset summary
// @Description Report dataset size, overall churn rate, and per-segment churn rates
// @Tags data
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /data/summary [get]
func (h *Handler) dataSummary(c *gin.Context) {
	response, err := h.churnService.Summary(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to build summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// dataCustomers handles GET /data/customers
// @Summary List customers
// @Description Return every record of the dataset
// @Tags data
// @Produce json
// @Success 200 {array} dto.CustomerData
// @Failure 500 {object} dto.ErrorResponse
// @Router /data/customers [get]
func (h *Handler) dataCustomers(c *gin.Context) {
	customers, err := h.churnService.Customers(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// segmentStats handles GET /data/segments/:field
// @Summary Per-segment churn statistics
// @Description Group the dataset by a categorical field and report count, observed rate, and predicted rate per segment
// @Tags data
// @Produce json
// @Param field path string true "Grouping field (contract, internet)" example(contract)
// @Success 200 {object} dto.SegmentStatsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /data/segments/{field} [get]
func (h *Handler) segmentStats(c *gin.Context) {
	field := c.Param("field")

	response, err := h.churnService.SegmentStats(c.Request.Context(), field)
	if err != nil {
		if errors.Is(err, model.ErrUnknownSegmentField) {
			h.log.Warn("Invalid segment field", zap.String("field", field))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}
		h.log.Error("Failed to aggregate segments",
			zap.String("field", field),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// exportHighRisk handles GET /export/high-risk
// @Summary Export high-risk customers as CSV
// @Description Return a CSV attachment of every customer whose predicted probability meets the threshold
// @Tags export
// @Produce text/csv
// @Param threshold query number false "Probability threshold (defaults to the configured export threshold)" example(0.7)
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /export/high-risk [get]
func (h *Handler) exportHighRisk(c *gin.Context) {
	var req dto.ExportRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid export request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	threshold := h.churnService.ExportThreshold()
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	rows, err := h.churnService.ExportHighRisk(c.Request.Context(), threshold)
	if err != nil {
		h.log.Error("Failed to select export rows", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Exporting high-risk customers",
		zap.Float64("threshold", threshold),
		zap.Int("row_count", len(rows)))

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="high_risk_customers.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(exportColumns)
	for _, row := range rows {
		_ = w.Write([]string{
			row.CustomerID,
			row.Contract,
			row.Internet,
			strconv.FormatFloat(row.MonthlyCharges, 'f', 2, 64),
			strconv.Itoa(row.SupportTickets),
			strconv.FormatFloat(row.Probability, 'f', 4, 64),
		})
	}
	w.Flush()
}

// scoreBatch handles POST /score/batch
// @Summary Enqueue customers for asynchronous scoring
// @Description Publish customer records to the scoring queue; the scorer writes predictions to the store
// @Tags predictions
// @Accept json
// @Produce json
// @Param batch body dto.ScoreBatchRequest true "Customers to score"
// @Success 202 {object} dto.ScoreBatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /score/batch [post]
func (h *Handler) scoreBatch(c *gin.Context) {
	var req dto.ScoreBatchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid batch score request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	enqueued, errs := h.churnService.EnqueueBatch(c.Request.Context(), req.Customers)

	h.log.Info("Batch enqueued for scoring",
		zap.Int("enqueued", enqueued),
		zap.Int("rejected", len(errs)),
		zap.Int("total", len(req.Customers)))

	c.JSON(http.StatusAccepted, dto.ScoreBatchResponse{
		Enqueued: enqueued,
		Rejected: len(errs),
		Errors:   errs,
		Status:   "accepted",
	})
}
