package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	staticskills "emberside/internal/adapter/skills/static"
	"emberside/internal/app/action"
	"emberside/internal/app/advance"
	"emberside/internal/app/observe"
	"emberside/internal/app/ports"
	"emberside/internal/app/replay"
	"emberside/internal/app/skills"
	"emberside/internal/app/snapshot"
	"emberside/internal/app/status"
	"emberside/internal/domain/survival"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	ActionUC   action.UseCase
	AdvanceUC  advance.UseCase
	StatusUC   status.UseCase
	ObserveUC  observe.UseCase
	ReplayUC   replay.UseCase
	SkillsUC   skills.UseCase
	SnapshotUC snapshot.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	world := s.Group("/api/world")
	world.POST("/act", h.act)
	world.POST("/advance", h.advance)
	world.POST("/status", h.status)
	world.POST("/observe", h.observe)
	world.GET("/replay", h.replay)
	world.GET("/skills", h.skillLedger)

	s.GET("/skills/index.json", h.skillsIndex)
	s.GET("/skills/*filepath", h.skillsFile)
	s.GET("/ops/kpi", h.kpi)
	s.POST("/ops/snapshot", h.snapshotExport)
}

type actRequest struct {
	WorldID        string     `json:"world_id"`
	IdempotencyKey string     `json:"idempotency_key"`
	Intent         intentBody `json:"intent"`
}

// intentBody keeps the wire shape independent of the domain type.
type intentBody struct {
	Kind      string `json:"kind"`
	Item      string `json:"item,omitempty"`
	Recipe    string `json:"recipe,omitempty"`
	Direction string `json:"direction,omitempty"`
	Target    string `json:"target,omitempty"`
	Count     int    `json:"count,omitempty"`
	Ticks     int    `json:"ticks,omitempty"`
}

type advanceRequest struct {
	WorldID string `json:"world_id"`
	Ticks   int    `json:"ticks"`
}

type statusRequest struct {
	WorldID string `json:"world_id"`
}

type observeRequest struct {
	WorldID string `json:"world_id"`
}

type snapshotRequest struct {
	WorldID string `json:"world_id"`
}

func (h Handler) act(c context.Context, ctx *app.RequestContext) {
	var body actRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ActionUC.Execute(c, action.Request{
		WorldID:        body.WorldID,
		IdempotencyKey: body.IdempotencyKey,
		Intent: survival.ActionIntent{
			Kind:      survival.ActionKind(body.Intent.Kind),
			Item:      body.Intent.Item,
			Recipe:    body.Intent.Recipe,
			Direction: body.Intent.Direction,
			Target:    body.Intent.Target,
			Count:     body.Intent.Count,
			Ticks:     body.Intent.Ticks,
		},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) advance(c context.Context, ctx *app.RequestContext) {
	var body advanceRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.AdvanceUC.Execute(c, advance.Request{WorldID: body.WorldID, Ticks: body.Ticks})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	var body statusRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.StatusUC.Execute(c, status.Request{WorldID: body.WorldID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	var body observeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ObserveUC.Execute(c, observe.Request{WorldID: body.WorldID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)

	resp, err := h.ReplayUC.Execute(c, replay.Request{
		WorldID:      string(ctx.Query("world")),
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

func (h Handler) skillLedger(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SkillsUC.Ledger(c, string(ctx.Query("world")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) skillsIndex(c context.Context, ctx *app.RequestContext) {
	b, err := h.SkillsUC.Index(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", b)
}

func (h Handler) skillsFile(c context.Context, ctx *app.RequestContext) {
	path := strings.TrimPrefix(string(ctx.Param("filepath")), "/")
	if path == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_filepath", "invalid filepath")
		return
	}

	b, err := h.SkillsUC.File(c, path)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", b)
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

func (h Handler) snapshotExport(c context.Context, ctx *app.RequestContext) {
	var body snapshotRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.SnapshotUC.Export(c, snapshot.ExportRequest{WorldID: body.WorldID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, advance.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, skills.ErrInvalidRequest),
		errors.Is(err, snapshot.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, staticskills.ErrInvalidSkillsPath):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_filepath", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
