package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/gamedesk/backend/api/transport"
	"github.com/gamedesk/backend/pkg/httpcontext"
	membersUC "github.com/gamedesk/backend/usecase/members"
)

type MemberHandler struct {
	baseHandler
	uc *membersUC.UseCase
}

func NewMemberHandler(uc *membersUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List members
// @Tags members
// @Router /api/v1/members [get]
func (h *MemberHandler) ListMembers(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	members, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, members)
}

// @Summary Add member
// @Tags members
// @Router /api/v1/members [post]
func (h *MemberHandler) AddMember(ctx *fasthttp.RequestCtx) {
	var req transport.MemberRequest
	if !h.parseBody(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	member, err := h.uc.Add(stdCtx, membersUC.AddInput{
		Name:  req.Name,
		Role:  req.Role,
		Email: req.Email,
	})
	h.respondMutation(ctx, http.StatusCreated, member, err)
}

// @Summary Remove member
// @Tags members
// @Router /api/v1/members/{id} [delete]
func (h *MemberHandler) RemoveMember(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.Remove(stdCtx, pathParam(ctx, "id"))
	h.respondMutation(ctx, http.StatusNoContent, struct{}{}, err)
}
