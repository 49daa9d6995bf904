package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/bookworm/internal/application/review"
	"github.com/xiebiao/bookworm/internal/interface/http/dto"
	"github.com/xiebiao/bookworm/internal/interface/http/middleware"
	"github.com/xiebiao/bookworm/pkg/response"
)

// ReviewHandler 评论HTTP处理器
type ReviewHandler struct {
	listReviewsUseCase  *appreview.ListReviewsUseCase
	createReviewUseCase *appreview.CreateReviewUseCase
}

// NewReviewHandler 创建评论处理器
func NewReviewHandler(
	listReviewsUseCase *appreview.ListReviewsUseCase,
	createReviewUseCase *appreview.CreateReviewUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		listReviewsUseCase:  listReviewsUseCase,
		createReviewUseCase: createReviewUseCase,
	}
}

// ListReviews 评论查询
// @Summary      图书评论列表
// @Description  支持星级过滤、时间排序与分页,统计字段覆盖全部评论
// @Tags         评论
// @Produce      json
// @Param        book_id path int true "图书ID"
// @Param        sort_by query string false "排序方式" Enums(newest,oldest)
// @Param        rating_star query int false "星级过滤(1-5)"
// @Param        limit query int false "每页条数(默认10)"
// @Param        offset query int false "跳过条数"
// @Success      200 {object} response.Response{data=dto.ReviewPageResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/reviews/{book_id} [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	bookID, ok := parseUintParam(c, "book_id")
	if !ok {
		return
	}

	var req dto.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	page, err := h.listReviewsUseCase.Execute(c.Request.Context(), appreview.ListReviewsRequest{
		BookID:     bookID,
		SortBy:     req.SortBy,
		RatingStar: req.RatingStar,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToReviewPageResponse(page))
}

// CreateReview 创建评论
// @Summary      创建评论
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateReviewRequest true "评论内容"
// @Success      201 {object} response.Response{data=dto.ReviewResponse}
// @Failure      400 {object} response.Response "评分超出范围"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	r, err := h.createReviewUseCase.Execute(c.Request.Context(), appreview.CreateReviewRequest{
		BookID:  req.BookID,
		UserID:  userID,
		Title:   req.Title,
		Details: req.Details,
		Rating:  req.Rating,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToReviewResponse(r))
}
