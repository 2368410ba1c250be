package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockticker/internal/domain/dto"
	"github.com/guttosm/stockticker/internal/logger"
	"github.com/guttosm/stockticker/internal/middleware"
	"github.com/guttosm/stockticker/internal/service"
)

const (
	problemMessage      = "An error occurred while processing your request."
	stockValuesProblem  = "Failed to obtain stock values"
	stockValueProblemFm = "Failed to obtain stock value for "
)

// Handler provides HTTP handlers for the stock ticker endpoints.
//
// Responsibilities:
//   - Validate required request fields before touching the service
//   - Delegate to the StockService
//   - Map absent / failed results to problem responses
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.StockService): service used to record transactions and compute values.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// AddTransaction handles POST /api/StockTicker/AddTransaction.
//
// AddTransaction godoc
// @Summary      Record a transaction
// @Description  Appends one trade for a ticker symbol. symbol and brokerId are required.
// @Tags         stockticker
// @Accept       json
// @Produce      json
// @Param        transaction  body      dto.AddTransactionRequest  true  "Transaction"
// @Success      200          {object}  models.Transaction         "Recorded transaction with its id"
// @Failure      400          {object}  dto.ErrorResponse          "Bad Request"
// @Failure      500          {object}  dto.ErrorResponse          "Internal Error"
// @Router       /api/StockTicker/AddTransaction [post]
func (h *Handler) AddTransaction(c *gin.Context) {
	var req dto.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid transaction body", err)
		return
	}
	if msg := req.Validate(); msg != "" {
		logger.L().Warn().Str("op", "AddTransaction").Msg("bad request: " + msg)
		middleware.AbortWithError(c, http.StatusBadRequest, msg, nil)
		return
	}

	tx := req.ToModel()
	if !h.svc.AddTransaction(c.Request.Context(), tx) {
		middleware.AbortWithError(c, http.StatusInternalServerError, problemMessage, nil)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// GetStockValue handles GET /api/StockTicker/GetStockValue.
//
// GetStockValue godoc
// @Summary      Get the value of a symbol
// @Description  Returns the average traded price of the given symbol (exact, case-sensitive match)
// @Tags         stockticker
// @Produce      json
// @Param        symbol  query     string  true  "Ticker symbol" example(XRO)
// @Success      200     {number}  number  "Average price"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/StockTicker/GetStockValue [get]
func (h *Handler) GetStockValue(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		symbol = c.Query("stockTickerSymbol")
	}
	if symbol == "" {
		logger.L().Warn().Str("op", "GetStockValue").Msg("bad request: missing symbol")
		middleware.AbortWithError(c, http.StatusBadRequest, "symbol is required", nil)
		return
	}

	value, ok := h.svc.GetStockValue(c.Request.Context(), symbol)
	if !ok {
		middleware.AbortWithError(c, http.StatusInternalServerError, stockValueProblemFm+symbol, nil)
		return
	}

	c.JSON(http.StatusOK, value)
}

// GetAllStockValues handles GET /api/StockTicker/GetAllStockValues.
//
// GetAllStockValues godoc
// @Summary      Get the values of all symbols
// @Description  Returns the average price of every recorded symbol, in the order symbols were first recorded
// @Tags         stockticker
// @Produce      json
// @Success      200  {array}   models.StockValue  "Values"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/StockTicker/GetAllStockValues [get]
func (h *Handler) GetAllStockValues(c *gin.Context) {
	values, ok := h.svc.GetAllStockValues(c.Request.Context())
	if !ok {
		middleware.AbortWithError(c, http.StatusInternalServerError, stockValuesProblem, nil)
		return
	}

	c.JSON(http.StatusOK, values)
}

// GetStockValues handles GET /api/StockTicker/GetStockValues.
//
// GetStockValues godoc
// @Summary      Get the values of selected symbols
// @Description  Returns the average price of each requested symbol that has transactions, in the order symbols were first recorded
// @Tags         stockticker
// @Produce      json
// @Param        symbols  query     []string  false  "Ticker symbols" collectionFormat(multi)
// @Success      200      {array}   models.StockValue  "Values"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/StockTicker/GetStockValues [get]
func (h *Handler) GetStockValues(c *gin.Context) {
	symbols := c.QueryArray("symbols")
	if len(symbols) == 0 {
		symbols = c.QueryArray("stockTickerSymbols")
	}

	values, ok := h.svc.GetStockValues(c.Request.Context(), symbols)
	if !ok {
		middleware.AbortWithError(c, http.StatusInternalServerError, stockValuesProblem, nil)
		return
	}

	c.JSON(http.StatusOK, values)
}
