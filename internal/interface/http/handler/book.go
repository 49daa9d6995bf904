package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/bookworm/internal/application/catalog"
	"github.com/xiebiao/bookworm/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookworm/pkg/errors"
	"github.com/xiebiao/bookworm/pkg/response"
)

// BookHandler 图书目录HTTP处理器
type BookHandler struct {
	browseBooksUseCase *appcatalog.BrowseBooksUseCase
	getBookUseCase     *appcatalog.GetBookUseCase
	shelvesUseCase     *appcatalog.ShelvesUseCase
	directoryUseCase   *appcatalog.DirectoryUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	browseBooksUseCase *appcatalog.BrowseBooksUseCase,
	getBookUseCase *appcatalog.GetBookUseCase,
	shelvesUseCase *appcatalog.ShelvesUseCase,
	directoryUseCase *appcatalog.DirectoryUseCase,
) *BookHandler {
	return &BookHandler{
		browseBooksUseCase: browseBooksUseCase,
		getBookUseCase:     getBookUseCase,
		shelvesUseCase:     shelvesUseCase,
		directoryUseCase:   directoryUseCase,
	}
}

// ListBooks 目录浏览
// @Summary      图书目录浏览
// @Description  支持排序(filterBy)、作者/分类/评分过滤、关键词搜索与分页
// @Tags         图书
// @Produce      json
// @Param        filterBy query string false "排序方式" Enums(discount_desc,popular_desc,final_price_asc,final_price_desc)
// @Param        author_id query int false "作者ID"
// @Param        category_id query int false "分类ID"
// @Param        star query number false "平均评分下限"
// @Param        search query string false "书名/作者名搜索"
// @Param        limit query int false "每页条数(默认100)"
// @Param        offset query int false "跳过条数"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Failure      400 {object} response.Response "排序方式无效"
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	items, err := h.browseBooksUseCase.Execute(c.Request.Context(), appcatalog.BrowseBooksRequest{
		FilterBy:   req.FilterBy,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
		Star:       req.Star,
		Search:     req.Search,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBookResponses(items))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        book_id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{book_id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	bookID, ok := parseUintParam(c, "book_id")
	if !ok {
		return
	}

	item, err := h.getBookUseCase.Execute(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBookResponse(item))
}

// Recommended 推荐货架
// @Summary      推荐图书
// @Description  平均评分降序,实际售价升序,最多8本
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/v1/books/recommended [get]
func (h *BookHandler) Recommended(c *gin.Context) {
	items, err := h.shelvesUseCase.Recommended(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookResponses(items))
}

// Popular 热门货架
// @Summary      热门图书
// @Description  评论数降序,实际售价升序,最多8本
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/v1/books/popular [get]
func (h *BookHandler) Popular(c *gin.Context) {
	items, err := h.shelvesUseCase.Popular(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookResponses(items))
}

// OnSale 特价货架
// @Summary      特价图书
// @Description  仅含有折扣的图书,优惠金额降序,最多10本
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/v1/books/onsale [get]
func (h *BookHandler) OnSale(c *gin.Context) {
	items, err := h.shelvesUseCase.OnSale(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookResponses(items))
}

// BooksByCategory 按分类查询图书
// @Summary      分类图书
// @Tags         图书
// @Produce      json
// @Param        category_id query int true "分类ID"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Failure      400 {object} response.Response "缺少category_id"
// @Router       /api/v1/books/category [get]
func (h *BookHandler) BooksByCategory(c *gin.Context) {
	raw := c.Query("category_id")
	if raw == "" {
		response.ErrorWithCode(c, 40900, "缺少category_id参数")
		return
	}
	categoryID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.ErrorWithCode(c, 40900, "category_id必须为正整数")
		return
	}

	items, err := h.directoryUseCase.BooksByCategory(c.Request.Context(), uint(categoryID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookResponses(items))
}

// BooksByAuthor 按作者查询图书
// @Summary      作者图书
// @Tags         图书
// @Produce      json
// @Param        author_id path int true "作者ID"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/v1/books/author/{author_id} [get]
func (h *BookHandler) BooksByAuthor(c *gin.Context) {
	authorID, ok := parseUintParam(c, "author_id")
	if !ok {
		return
	}

	items, err := h.directoryUseCase.BooksByAuthor(c.Request.Context(), authorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookResponses(items))
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Tags         档案
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.AuthorInfo}
// @Router       /api/v1/authors [get]
func (h *BookHandler) ListAuthors(c *gin.Context) {
	authors, err := h.directoryUseCase.ListAuthors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.AuthorInfo, len(authors))
	for i, a := range authors {
		out[i] = dto.AuthorInfo{ID: a.ID, Name: a.Name, Bio: a.Bio}
	}
	response.Success(c, out)
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Tags         档案
// @Produce      json
// @Param        author_id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorInfo}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{author_id} [get]
func (h *BookHandler) GetAuthor(c *gin.Context) {
	authorID, ok := parseUintParam(c, "author_id")
	if !ok {
		return
	}

	a, err := h.directoryUseCase.GetAuthor(c.Request.Context(), authorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.AuthorInfo{ID: a.ID, Name: a.Name, Bio: a.Bio})
}

// ListCategories 分类列表
// @Summary      分类列表
// @Tags         档案
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.CategoryResponse}
// @Router       /api/v1/categories [get]
func (h *BookHandler) ListCategories(c *gin.Context) {
	categories, err := h.directoryUseCase.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.CategoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = dto.CategoryResponse{ID: cat.ID, Name: cat.Name, Description: cat.Description}
	}
	response.Success(c, out)
}

// GetCategory 分类详情
// @Summary      分类详情
// @Tags         档案
// @Produce      json
// @Param        category_id path int true "分类ID"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{category_id} [get]
func (h *BookHandler) GetCategory(c *gin.Context) {
	categoryID, ok := parseUintParam(c, "category_id")
	if !ok {
		return
	}

	cat, err := h.directoryUseCase.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CategoryResponse{ID: cat.ID, Name: cat.Name, Description: cat.Description})
}

// parseUintParam 解析路径中的数字参数,非法时直接写400响应
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		response.Error(c, apperrors.New(apperrors.ErrCodeInvalidParams, name+"必须为正整数"))
		return 0, false
	}
	return uint(v), true
}
