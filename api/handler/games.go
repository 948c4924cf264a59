package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/gamedesk/backend/api/transport"
	"github.com/gamedesk/backend/pkg/httpcontext"
	gamesUC "github.com/gamedesk/backend/usecase/games"
)

type GameHandler struct {
	baseHandler
	uc *gamesUC.UseCase
}

func NewGameHandler(uc *gamesUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List games
// @Tags games
// @Router /api/v1/games [get]
func (h *GameHandler) ListGames(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	games, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, games)
}

// @Summary Create game
// @Tags games
// @Router /api/v1/games [post]
func (h *GameHandler) CreateGame(ctx *fasthttp.RequestCtx) {
	var req transport.GameRequest
	if !h.parseBody(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	game, err := h.uc.Create(stdCtx, gamesUC.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Genre:       req.Genre,
	})
	h.respondMutation(ctx, http.StatusCreated, game, err)
}

// @Summary Get game
// @Tags games
// @Router /api/v1/games/{id} [get]
func (h *GameHandler) GetGame(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	game, err := h.uc.Get(stdCtx, pathParam(ctx, "id"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, game)
}

// @Summary Update game
// @Tags games
// @Router /api/v1/games/{id} [put]
func (h *GameHandler) UpdateGame(ctx *fasthttp.RequestCtx) {
	var req transport.GameUpdateRequest
	if !h.parseBody(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	game, err := h.uc.Update(stdCtx, pathParam(ctx, "id"), gamesUC.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Genre:       req.Genre,
		Completed:   req.Completed,
	})
	h.respondMutation(ctx, http.StatusOK, game, err)
}

// @Summary Delete game
// @Tags games
// @Router /api/v1/games/{id} [delete]
func (h *GameHandler) DeleteGame(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.Delete(stdCtx, pathParam(ctx, "id"))
	h.respondMutation(ctx, http.StatusNoContent, struct{}{}, err)
}

// @Summary Game statistics
// @Tags games
// @Router /api/v1/games/{id}/stats [get]
func (h *GameHandler) GetStats(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.Stats(stdCtx, pathParam(ctx, "id"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, stats)
}

// @Summary Deleted-tasks audit log
// @Tags games
// @Router /api/v1/games/{id}/deleted-tasks [get]
func (h *GameHandler) GetDeletedTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deleted, err := h.uc.DeletedTasks(stdCtx, pathParam(ctx, "id"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, deleted)
}
