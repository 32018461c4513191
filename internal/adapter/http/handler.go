package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"furrow/internal/app/action"
	"furrow/internal/app/ports"
	"furrow/internal/app/replay"
	"furrow/internal/app/session"
	"furrow/internal/app/status"
	"furrow/internal/app/toast"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	SessionUC session.UseCase
	ActionUC  action.UseCase
	StatusUC  status.UseCase
	ToastUC   toast.UseCase
	ReplayUC  replay.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	farm := s.Group("/api/farm")
	farm.POST("/session", h.startSession)
	farm.POST("/move", h.intent(action.ActionMove))
	farm.POST("/act", h.intent(action.ActionAct))
	farm.POST("/plant", h.intent(action.ActionPlant))
	farm.POST("/sleep", h.intent(action.ActionSleep))
	farm.POST("/panel/close", h.intent(action.ActionClosePanel))
	farm.POST("/market/buy", h.intent(action.ActionBuy))
	farm.POST("/market/sell", h.intent(action.ActionSell))
	farm.POST("/blacksmith/upgrade", h.intent(action.ActionUpgrade))
	farm.POST("/blacksmith/select", h.intent(action.ActionSelectPerk))
	farm.GET("/status", h.status)
	farm.GET("/grid", h.grid)
	farm.POST("/toast/next", h.nextToast)
	farm.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type startSessionRequest struct {
	Seed *int64 `json:"seed,omitempty"`
}

type intentRequest struct {
	SessionID string `json:"session_id"`
	Direction string `json:"direction,omitempty"`
	Item      string `json:"item,omitempty"`
	Tool      string `json:"tool,omitempty"`
	Choice    *int   `json:"choice,omitempty"`
}

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

func (h Handler) startSession(c context.Context, ctx *app.RequestContext) {
	var body startSessionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.SessionUC.Execute(c, session.Request{Seed: body.Seed})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) intent(actionType action.ActionType) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		var body intentRequest
		if err := decodeJSON(ctx, &body); err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
			return
		}
		choice := -1
		if body.Choice != nil {
			choice = *body.Choice
		}
		resp, err := h.ActionUC.Execute(c, action.Request{
			SessionID: body.SessionID,
			Type:      actionType,
			Direction: body.Direction,
			Item:      body.Item,
			Tool:      body.Tool,
			Choice:    choice,
		})
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	}
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{SessionID: ctx.Query("session_id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) grid(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Grid(c, status.Request{SessionID: ctx.Query("session_id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) nextToast(c context.Context, ctx *app.RequestContext) {
	var body sessionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ToastUC.Execute(c, toast.Request{SessionID: body.SessionID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	occurredFrom, _ := strconv.ParseInt(ctx.Query("occurred_from"), 10, 64)
	occurredTo, _ := strconv.ParseInt(ctx.Query("occurred_to"), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		SessionID:    strings.TrimSpace(ctx.Query("session_id")),
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	var panelErr *action.PanelClosedError
	switch {
	case errors.As(err, &panelErr):
		writeErrorDetails(ctx, consts.StatusConflict, "panel_closed", err.Error(), map[string]any{
			"want": string(panelErr.Want),
			"open": string(panelErr.Open),
		})
	case errors.Is(err, action.ErrPanelClosed):
		writeErrorBody(ctx, consts.StatusConflict, "panel_closed", err.Error())
	case errors.Is(err, action.ErrInputBlocked):
		writeErrorBody(ctx, consts.StatusConflict, "input_blocked", err.Error())
	case errors.Is(err, action.ErrPerkPending):
		writeErrorBody(ctx, consts.StatusConflict, "perk_pending", err.Error())
	case errors.Is(err, action.ErrNoPendingPerk):
		writeErrorBody(ctx, consts.StatusConflict, "no_pending_perk", err.Error())
	case errors.Is(err, action.ErrInvalidActionParams):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action_params", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, session.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, toast.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	writeErrorDetails(ctx, status, code, message, nil)
}

func writeErrorDetails(ctx *app.RequestContext, status int, code, message string, details map[string]any) {
	body := map[string]any{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	ctx.JSON(status, map[string]any{"error": body})
}
