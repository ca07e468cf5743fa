package api

import (
	"errors"
	"time"

	"ledger/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgTransactionNotFound       = "Transaction not found"
	msgUpdateTransactionNotFound = "Transaction was not found"
)

// TransactionHandler 交易处理器
type TransactionHandler struct {
	db *gorm.DB
}

// NewTransactionHandler 创建交易处理器
func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{db: db}
}

// TransactionRequest 创建/更新交易请求，所有字段必填
type TransactionRequest struct {
	Amount      *int    `json:"amount" binding:"required" example:"100"`
	Type        *string `json:"type" binding:"required" example:"expense"`
	Category    *string `json:"category" binding:"required" example:"Food"`
	Description *string `json:"description" binding:"required" example:"lunch"`
	Date        string  `json:"date" binding:"required" example:"2024-01-01T00:00:00Z"`
}

// validTransaction 通过校验的交易内容
type validTransaction struct {
	amount      int
	typ         string
	category    *models.Category
	description string
	date        time.Time
}

func (v validTransaction) model() models.Transaction {
	return models.Transaction{
		Amount:      v.amount,
		Type:        v.typ,
		Category:    v.category.Category,
		Description: v.description,
		Date:        v.date,
		CategoryID:  v.category.ID,
	}
}

// bindTransaction 绑定并校验交易请求
// 校验顺序：请求格式(422) -> 类别存在(404) -> 交易类型(400)，失败时已写入响应
func (h *TransactionHandler) bindTransaction(c *gin.Context, db *gorm.DB) (validTransaction, bool) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		UnprocessableEntity(c, err.Error())
		return validTransaction{}, false
	}
	date, _, err := ParseTimestamp(req.Date)
	if err != nil {
		UnprocessableEntity(c, err.Error())
		return validTransaction{}, false
	}

	cat, ok := h.requireCategory(c, db, *req.Category)
	if !ok {
		return validTransaction{}, false
	}
	if !models.IsValidTransactionType(*req.Type) {
		BadRequest(c, models.InvalidTransactionTypeMessage(*req.Type))
		return validTransaction{}, false
	}

	return validTransaction{
		amount:      *req.Amount,
		typ:         *req.Type,
		category:    cat,
		description: *req.Description,
		date:        date.UTC(),
	}, true
}

// requireCategory 按名称查找类别，不存在时写入 404
func (h *TransactionHandler) requireCategory(c *gin.Context, db *gorm.DB, name string) (*models.Category, bool) {
	cat, err := findCategoryByName(db, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, msgCategoryMissing)
			return nil, false
		}
		InternalError(c, err, "查询类别失败")
		return nil, false
	}
	return cat, true
}

// Create 创建交易
// @Summary 创建交易
// @Description 创建一条收入或支出记录，类别需提前创建
// @Tags 交易
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "交易信息"
// @Success 200 {object} models.Transaction "创建成功"
// @Failure 400 {object} ErrorResponse "交易类型错误"
// @Failure 404 {object} ErrorResponse "类别不存在"
// @Failure 422 {object} ErrorResponse "请求参数错误"
// @Router /transactions/ [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())
	in, ok := h.bindTransaction(c, db)
	if !ok {
		return
	}

	txn := in.model()
	if err := db.Create(&txn).Error; err != nil {
		InternalError(c, err, "创建交易失败")
		return
	}
	Success(c, txn)
}

// List 获取所有交易
// @Summary 获取交易列表
// @Tags 交易
// @Produce json
// @Success 200 {array} models.Transaction "获取成功"
// @Router /transactions/ [get]
func (h *TransactionHandler) List(c *gin.Context) {
	list := make([]models.Transaction, 0)
	if err := h.db.WithContext(c.Request.Context()).Find(&list).Error; err != nil {
		InternalError(c, err, "查询交易失败")
		return
	}
	Success(c, list)
}

// Get 获取单条交易，不存在时返回 null 而不是 404
// @Summary 获取单条交易
// @Tags 交易
// @Produce json
// @Param id path int true "交易ID"
// @Success 200 {object} models.Transaction "获取成功，不存在时为 null"
// @Failure 422 {object} ErrorResponse "无效的ID"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var txn models.Transaction
	if err := h.db.WithContext(c.Request.Context()).First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Success(c, nil)
			return
		}
		InternalError(c, err, "查询交易失败")
		return
	}
	Success(c, txn)
}

// Update 整体覆盖更新交易
// @Summary 更新交易
// @Description 覆盖交易的全部字段，并按类别名称重新关联类别
// @Tags 交易
// @Accept json
// @Produce json
// @Param id path int true "交易ID"
// @Param request body TransactionRequest true "交易信息"
// @Success 200 {object} models.Transaction "更新成功"
// @Failure 400 {object} ErrorResponse "交易类型错误"
// @Failure 404 {object} ErrorResponse "类别或交易不存在"
// @Failure 422 {object} ErrorResponse "请求参数错误"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := h.db.WithContext(c.Request.Context())

	// 先校验请求内容，再检查交易是否存在
	in, ok := h.bindTransaction(c, db)
	if !ok {
		return
	}

	var txn models.Transaction
	if err := db.First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, msgUpdateTransactionNotFound)
			return
		}
		InternalError(c, err, "查询交易失败")
		return
	}

	updated := in.model()
	updated.ID = txn.ID
	updates := map[string]interface{}{
		"amount":      updated.Amount,
		"type":        updated.Type,
		"category":    updated.Category,
		"description": updated.Description,
		"date":        updated.Date,
		"category_id": updated.CategoryID,
	}
	if err := db.Model(&txn).Updates(updates).Error; err != nil {
		InternalError(c, err, "更新交易失败")
		return
	}
	Success(c, updated)
}

// Delete 删除交易
// @Summary 删除交易
// @Description 删除指定交易，返回删除前的交易数据
// @Tags 交易
// @Produce json
// @Param id path int true "交易ID"
// @Success 200 {object} models.Transaction "删除成功"
// @Failure 404 {object} ErrorResponse "交易不存在"
// @Failure 422 {object} ErrorResponse "无效的ID"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := h.db.WithContext(c.Request.Context())

	var txn models.Transaction
	if err := db.First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, msgTransactionNotFound)
			return
		}
		InternalError(c, err, "查询交易失败")
		return
	}
	if err := db.Delete(&txn).Error; err != nil {
		InternalError(c, err, "删除交易失败")
		return
	}
	Success(c, txn)
}

// Search 按类型、类别和时间范围查询交易
// @Summary 搜索交易
// @Description 返回类型、类别名称均匹配且日期位于 [start_date, end_date] 内的交易；end_date 只有日期时包含当天全天
// @Tags 交易
// @Produce json
// @Param type query string true "交易类型 income/expense"
// @Param category query string true "类别名称"
// @Param start_date query string true "开始时间 (2024-01-01 或 ISO-8601)"
// @Param end_date query string true "结束时间 (2024-01-31 或 ISO-8601)"
// @Success 200 {array} models.Transaction "查询成功"
// @Failure 400 {object} ErrorResponse "交易类型错误"
// @Failure 404 {object} ErrorResponse "类别不存在"
// @Failure 422 {object} ErrorResponse "请求参数错误"
// @Router /transactions/search/ [get]
func (h *TransactionHandler) Search(c *gin.Context) {
	values := make(map[string]string, 4)
	for _, key := range []string{"type", "category", "start_date", "end_date"} {
		v, ok := c.GetQuery(key)
		if !ok {
			UnprocessableEntity(c, "field required: "+key)
			return
		}
		values[key] = v
	}

	filter := transactionFilter{}
	if err := filter.setRange(values["start_date"], values["end_date"]); err != nil {
		UnprocessableEntity(c, err.Error())
		return
	}
	db := h.db.WithContext(c.Request.Context())

	if _, ok := h.requireCategory(c, db, values["category"]); !ok {
		return
	}
	typ := values["type"]
	if !models.IsValidTransactionType(typ) {
		BadRequest(c, models.InvalidTransactionTypeMessage(typ))
		return
	}
	category := values["category"]
	filter.Type = &typ
	filter.Category = &category

	list, err := filter.find(db)
	if err != nil {
		InternalError(c, err, "查询交易失败")
		return
	}
	Success(c, list)
}
