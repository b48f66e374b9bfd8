package session

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eidefo/eidefo/internal/domain/evaluation"
	"github.com/eidefo/eidefo/internal/platform/auth"
	"github.com/eidefo/eidefo/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/sessions", h.StartSession)
	api.GET("/sessions", h.ListSessions)
	api.GET("/sessions/:id", h.GetSession)
	api.DELETE("/sessions/:id", h.EndSession)
	api.GET("/sessions/:id/stages/:stage", h.GetStage)
	api.PATCH("/sessions/:id/stages/:stage", h.PatchStage)
	api.POST("/sessions/:id/stages/:stage/commit", h.CommitStage)
	api.POST("/sessions/:id/back", h.Back)
	api.GET("/sessions/:id/gate", h.GateStatus)
	api.POST("/sessions/:id/gate", h.GateDecide)
	api.GET("/sessions/:id/summary", h.Summary)
	api.GET("/sessions/:id/export", h.Export)
}

// httpError maps domain errors onto transport codes: unknown or expired
// sessions are 404, out-of-order stage access and closed-gate decisions are
// 409 and validation findings are 422 with the field messages attached.
func httpError(err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, ve)
	}
	var re *RoutingError
	if errors.As(err, &re) {
		return echo.NewHTTPError(http.StatusConflict, re)
	}
	var ge *GateError
	if errors.As(err, &ge) {
		return echo.NewHTTPError(http.StatusConflict, ge)
	}
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	if errors.Is(err, ErrCapacity) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "session capacity reached")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func sessionID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	return id, nil
}

func (h *Handler) StartSession(c echo.Context) error {
	professional := auth.ProfessionalFromContext(c.Request().Context())
	sess, err := h.svc.Start(c.Request().Context(), professional)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, sess)
}

func (h *Handler) ListSessions(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	sess, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) EndSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	if err := h.svc.End(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetStage(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	view, err := h.svc.HydrateStage(c.Request().Context(), id, evaluation.StageID(c.Param("stage")))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

type patchStageRequest struct {
	Writes []evaluation.FieldWrite `json:"writes"`
}

func (h *Handler) PatchStage(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req patchStageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Writes) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "writes is required")
	}
	view, err := h.svc.ApplyWrites(c.Request().Context(), id, evaluation.StageID(c.Param("stage")), req.Writes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) CommitStage(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	sess, err := h.svc.CommitStage(c.Request().Context(), id, evaluation.StageID(c.Param("stage")))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) Back(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	sess, err := h.svc.Back(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) GateStatus(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	status, err := h.svc.Gate(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, status)
}

type gateDecisionRequest struct {
	Decision evaluation.GateDecision `json:"decision"`
}

func (h *Handler) GateDecide(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req gateDecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.Decide(c.Request().Context(), id, req.Decision)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) Summary(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	doc, err := h.svc.Summary(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

// Export returns the full record and summary document together, the payload a
// client feeds into its report generator.
func (h *Handler) Export(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	sess, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	doc, err := h.svc.Summary(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"session": sess,
		"record":  sess.Record,
		"summary": doc,
	})
}
