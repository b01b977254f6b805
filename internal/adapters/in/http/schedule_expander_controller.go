package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/config"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/in"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleExpanderController struct {
	useCase in.ScheduleExpanderUseCase
	cfg     *config.Config
}

func NewScheduleExpanderController(useCase in.ScheduleExpanderUseCase, cfg *config.Config) *ScheduleExpanderController {
	return &ScheduleExpanderController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *ScheduleExpanderController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/workers/:workerId/entries", c.workerDay)
		api.GET("/workers/:workerId/entries/range", c.workerRange)
		api.GET("/workers/:workerId/summary", c.workerSummary)
		api.GET("/users/:userId/entries/range", c.userRange)
		api.POST("/assignments/:assignmentId/expand", c.expandAssignment)
		api.POST("/assignments/expand-batch", c.expandBatch)
	}
}

type ExpandAssignmentRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type ExpandBatchRequest struct {
	AssignmentIDs []uuid.UUID `json:"assignmentIds" binding:"required,min=1"`
	StartDate     string      `json:"startDate" binding:"required"`
	EndDate       string      `json:"endDate" binding:"required"`
}

// now siempre se resuelve en la frontera HTTP: el motor no lee el reloj
func now() time.Time {
	return time.Now().In(config.TimeZone)
}

func (c *ScheduleExpanderController) workerDay(ctx *gin.Context) {
	workerID, err := uuid.Parse(ctx.Param("workerId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID format"})
		return
	}

	currentNow := now()

	// Sin parámetro de fecha, el listado es el de hoy
	date := utils.StartCurrentDay(currentNow)
	if dateParam := ctx.Query("date"); dateParam != "" {
		date, err = utils.ParseDate(dateParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
	}

	entries, err := c.useCase.ExpandWorkerDay(ctx.Request.Context(), workerID, date, currentNow)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"workerId": workerID,
		"date":     date.Format("2006-01-02"),
		"entries":  entries,
	})
}

func (c *ScheduleExpanderController) workerRange(ctx *gin.Context) {
	workerID, err := uuid.Parse(ctx.Param("workerId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID format"})
		return
	}

	from, to, ok := c.parseRangeQuery(ctx)
	if !ok {
		return
	}

	entries, err := c.useCase.ExpandWorkerRange(ctx.Request.Context(), workerID, from, to, now())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"workerId": workerID,
		"entries":  entries,
	})
}

func (c *ScheduleExpanderController) workerSummary(ctx *gin.Context) {
	workerID, err := uuid.Parse(ctx.Param("workerId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID format"})
		return
	}

	from, to, ok := c.parseRangeQuery(ctx)
	if !ok {
		return
	}

	summary, err := c.useCase.WorkerSummary(ctx.Request.Context(), workerID, from, to, now())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"workerId": workerID,
		"summary":  summary,
	})
}

func (c *ScheduleExpanderController) userRange(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	from, to, ok := c.parseRangeQuery(ctx)
	if !ok {
		return
	}

	entries, err := c.useCase.ExpandUserRange(ctx.Request.Context(), userID, from, to, now())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"userId":  userID,
		"entries": entries,
	})
}

func (c *ScheduleExpanderController) expandAssignment(ctx *gin.Context) {
	assignmentID, err := uuid.Parse(ctx.Param("assignmentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID format"})
		return
	}

	var req ExpandAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, err := utils.ParseDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format"})
		return
	}

	to, err := utils.ParseDate(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format"})
		return
	}

	entries, err := c.useCase.ExpandAssignment(ctx.Request.Context(), assignmentID, from, to, now())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"assignmentId": assignmentID,
		"entries":      entries,
	})
}

func (c *ScheduleExpanderController) expandBatch(ctx *gin.Context) {
	var req ExpandBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, err := utils.ParseDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format"})
		return
	}

	to, err := utils.ParseDate(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format"})
		return
	}

	result, err := c.useCase.ExpandBatch(ctx.Request.Context(), req.AssignmentIDs, from, to, now())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": result})
}

func (c *ScheduleExpanderController) parseRangeQuery(ctx *gin.Context) (time.Time, time.Time, bool) {
	from, err := utils.ParseDate(ctx.Query("startDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format"})
		return time.Time{}, time.Time{}, false
	}

	to, err := utils.ParseDate(ctx.Query("endDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format"})
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}

func (c *ScheduleExpanderController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
