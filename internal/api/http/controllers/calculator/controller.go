package calculator

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

// Controller — маршруты калькулятора: сессии, нажатия, разовое вычисление, журнал.
type Controller struct {
	uc  ports.IKeypadUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.IKeypadUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/sessions", c.createSession)
	api.GET("/sessions/:id", c.screen)
	api.POST("/sessions/:id/keys", c.press)
	api.DELETE("/sessions/:id", c.closeSession)
	api.POST("/evaluate", c.evaluate)
	api.GET("/history", c.history)
}

// statusFor переводит доменную ошибку в HTTP-статус.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownKey),
		errors.Is(err, domain.ErrUnknownOperation),
		errors.Is(err, domain.ErrInvalidOperand):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (c *Controller) fail(ctx *gin.Context, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.log.Error(op+" failed", "error", err)
	} else {
		c.log.Warn(op+" rejected", "error", err)
	}
	_ = ctx.Error(err)
	ctx.JSON(status, ErrorResponse{Error: err.Error()})
}

// @Summary Новая сессия калькулятора
// @Tags keypad
// @Produce json
// @Success 201 {object} ScreenResponse
// @Router /api/v1/sessions [post]
func (c *Controller) createSession(ctx *gin.Context) {
	s, err := c.uc.NewSession(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "create session", err)
		return
	}
	ctx.JSON(http.StatusCreated, toScreenResponse(s))
}

// @Summary Экран сессии
// @Tags keypad
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} ScreenResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (c *Controller) screen(ctx *gin.Context) {
	s, err := c.uc.Screen(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.fail(ctx, "screen", err)
		return
	}
	ctx.JSON(http.StatusOK, toScreenResponse(s))
}

// @Summary Нажать клавиши
// @Description Клавиши применяются по порядку. Неизвестная клавиша отклоняет весь запрос.
// @Tags keypad
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body PressRequest true "Клавиши"
// @Success 200 {object} ScreenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/keys [post]
func (c *Controller) press(ctx *gin.Context) {
	var req PressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("press bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	s, err := c.uc.Press(ctx.Request.Context(), ctx.Param("id"), req.Keys...)
	if err != nil {
		c.fail(ctx, "press", err)
		return
	}
	ctx.JSON(http.StatusOK, toScreenResponse(s))
}

// @Summary Закрыть сессию
// @Tags keypad
// @Param id path string true "ID сессии"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (c *Controller) closeSession(ctx *gin.Context) {
	if err := c.uc.CloseSession(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.fail(ctx, "close session", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Разовое вычисление
// @Description Два числа и операция (+, -, *, /). Деление на ноль — 200 с display "Error".
// @Tags keypad
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Параметры вычисления"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/evaluate [post]
func (c *Controller) evaluate(ctx *gin.Context) {
	var req EvaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("evaluate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	comp, err := c.uc.Evaluate(ctx.Request.Context(), req.Number1, req.Number2, req.Operation)
	if err != nil {
		c.fail(ctx, "evaluate", err)
		return
	}
	ctx.JSON(http.StatusOK, EvaluateResponse{Result: comp.Result, Display: comp.Display, Message: comp.Message})
}

// @Summary Журнал вычислений
// @Description Последние сначала. Без session_id — все сессии.
// @Tags keypad
// @Produce json
// @Param session_id query string false "ID сессии"
// @Success 200 {object} HistoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context(), ctx.Query("session_id"))
	if err != nil {
		c.fail(ctx, "history", err)
		return
	}
	items := make([]HistoryItem, len(list))
	for i, comp := range list {
		items[i] = HistoryItem{
			ID:        comp.ID,
			SessionID: comp.SessionID,
			Number1:   comp.Number1,
			Number2:   comp.Number2,
			Operation: comp.Operation,
			Result:    comp.Result,
			Display:   comp.Display,
			Message:   comp.Message,
			Timestamp: comp.Timestamp,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}
