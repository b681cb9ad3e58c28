package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/pkg/httpx"
	"github.com/Gunvolt24/gift_ledger/pkg/validate"
)

// readBody — тело пакета с пределом maxBodyBytes; при ошибке ответ уже записан.
func readBody(c *gin.Context) ([]byte, bool) {
	body, err := httpx.ReadBodyLimited(c, maxBodyBytes)
	switch {
	case err == nil:
		return body, true
	case httpx.IsBodyTooLarge(err):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
	return nil, false
}

func (h *Handler) reset(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.service.Reset(ctx); err != nil {
		h.writeError(c, "Reset", err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) insertRegions(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	regions, err := validate.DecodeRegions(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.service.InsertRegions(ctx, regions); err != nil {
		h.writeError(c, "InsertRegions", err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) insertOrders(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	orders, err := validate.DecodeOrders(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.service.InsertOrders(ctx, orders); err != nil {
		h.writeError(c, "InsertOrders", err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) regionTotals(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	totals, err := h.service.RegionTotals(ctx)
	if err != nil {
		h.writeError(c, "RegionTotals", err)
		return
	}
	if totals == nil {
		totals = []domain.RegionTotal{}
	}
	c.JSON(http.StatusOK, totals)
}

func (h *Handler) topList(c *gin.Context) {
	k, err := httpx.ParseInt32Param(c, "number")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// k < 1 означает пустые списки; сверху — не больше maxTopK
	k = httpx.ClampInt(k, 0, maxTopK)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	rows, err := h.service.TopGifts(ctx, k)
	if err != nil {
		h.writeError(c, "TopGifts", err)
		return
	}
	if rows == nil {
		rows = []domain.RegionTopGifts{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ordersTotal(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	total, err := h.service.OrdersTotal(ctx)
	if err != nil {
		h.writeError(c, "OrdersTotal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *Handler) popularGift(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	name, ok, err := h.service.PopularGift(ctx)
	if err != nil {
		h.writeError(c, "PopularGift", err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"popular": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"popular": name})
}

// writeError — ErrInvalidBatch -> 400, ErrDuplicateKey -> 409 {error,id}, остальное -> 500.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()

	var dup *domain.DuplicateKeyError
	switch {
	case errors.Is(err, validate.ErrInvalidBatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate " + dup.Entity + " id", "id": dup.ID})
	default:
		h.log.Errorf(ctx, "%s failed err=%v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
