package api

import (
	"errors"
	"strconv"

	"ledger/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgCategoryNotFound = "Category not found"
	msgCategoryMissing  = "There are no such category, please add this category first"
)

// CategoryHandler 类别管理
type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// CreateCategoryRequest 未提供 category 查询参数时使用的请求体
type CreateCategoryRequest struct {
	Category *string `json:"category" binding:"required" example:"Food"`
}

// Create 创建类别
// @Summary 创建类别
// @Description 创建新的交易类别，名称不做唯一性校验
// @Tags 类别
// @Accept json
// @Produce json
// @Param category query string false "类别名称"
// @Param request body CreateCategoryRequest false "类别名称（未提供查询参数时使用）"
// @Success 200 {object} models.Category "创建成功"
// @Failure 422 {object} ErrorResponse "缺少类别名称"
// @Router /categories/ [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	name, ok := c.GetQuery("category")
	if !ok {
		var req CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			UnprocessableEntity(c, "field required: category")
			return
		}
		name = *req.Category
	}

	cat := models.Category{Category: name}
	if err := h.db.WithContext(c.Request.Context()).Create(&cat).Error; err != nil {
		InternalError(c, err, "创建类别失败")
		return
	}
	Success(c, cat)
}

// List 获取所有类别
// @Summary 获取类别列表
// @Tags 类别
// @Produce json
// @Success 200 {array} models.Category "获取成功"
// @Router /categories/ [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list := make([]models.Category, 0)
	if err := h.db.WithContext(c.Request.Context()).Find(&list).Error; err != nil {
		InternalError(c, err, "查询类别失败")
		return
	}
	Success(c, list)
}

// Delete 删除类别及其下所有交易
// @Summary 删除类别
// @Description 删除指定类别，并级联删除该类别下的所有交易，返回删除前的类别数据
// @Tags 类别
// @Produce json
// @Param id path int true "类别ID"
// @Success 200 {object} models.Category "删除成功"
// @Failure 404 {object} ErrorResponse "类别不存在"
// @Failure 422 {object} ErrorResponse "无效的ID"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := h.db.WithContext(c.Request.Context())

	var cat models.Category
	if err := db.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, msgCategoryNotFound)
			return
		}
		InternalError(c, err, "查询类别失败")
		return
	}

	// 外键已声明 ON DELETE CASCADE，这里显式删除以兼容未开启外键约束的连接
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", cat.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cat).Error
	})
	if err != nil {
		InternalError(c, err, "删除类别失败")
		return
	}
	Success(c, cat)
}

// findCategoryByName 按名称精确查找类别，不存在时返回 gorm.ErrRecordNotFound
func findCategoryByName(db *gorm.DB, name string) (*models.Category, error) {
	var cat models.Category
	if err := db.Where("category = ?", name).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// parseID 解析路径中的 id，失败时直接写入 422 响应
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		UnprocessableEntity(c, "value is not a valid integer: id")
		return 0, false
	}
	return uint(id), true
}
